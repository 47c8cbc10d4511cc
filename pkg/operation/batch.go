// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/genpatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// DefaultPatterns match every file a rule set can exist for.
var DefaultPatterns = []string{"**/*.py", "**/*.ts"}

// 📦 BatchOptions configures a batch run
type BatchOptions struct {
	Options

	// Patterns are doublestar globs relative to the root
	Patterns []string
	// Ignore are doublestar globs of files to leave alone
	Ignore []string
	// Reporter receives each outcome, may be nil
	Reporter status.Reporter
}

// 🏃 Batch patches every matching file under root, one at a time. The first
// fatal error stops the run; results gathered so far are returned with it.
func Batch(ctx context.Context, root string, sel Selector, opts BatchOptions) ([]*Result, error) {
	logger := zerolog.Ctx(ctx)

	files, err := collect(ctx, root, opts)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Int("files", len(files)).Msg("starting batch")

	reporter := opts.Reporter
	if reporter != nil {
		reporter.StartOperation(ctx, len(files))
		defer reporter.FinishOperation(ctx)
	}

	results := make([]*Result, 0, len(files))
	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			return results, errors.Errorf("batch cancelled: %w", err)
		}

		path := filepath.Join(root, filepath.FromSlash(rel))
		res, err := Patch(ctx, path, sel, opts.Options)
		if err != nil {
			if reporter != nil {
				reporter.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusFailed, Error: err})
			}
			return results, errors.Errorf("processing file %s: %w", rel, err)
		}
		results = append(results, res)

		if reporter != nil {
			reporter.TrackFile(ctx, res.Info())
			reporter.UpdateProgress(ctx, i+1)
		}
	}

	return results, nil
}

// 🔍 collect globs the root and returns sorted, de-duplicated slash paths
func collect(ctx context.Context, root string, opts BatchOptions) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Errorf("reading batch root: %w", err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("batch root %s is not a directory", root)
	}

	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	fsys := os.DirFS(root)
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("globbing %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || shouldIgnore(ctx, opts.Ignore, m) {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}

	slices.Sort(files)
	return files, nil
}

// 🔍 shouldIgnore checks if a file should be ignored
func shouldIgnore(ctx context.Context, patterns []string, path string) bool {
	logger := zerolog.Ctx(ctx)
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", path).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", path).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
