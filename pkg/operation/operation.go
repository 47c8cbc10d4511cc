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
	"slices"

	"github.com/rs/zerolog"
	"github.com/walteh/genpatch/pkg/fixes"
	"github.com/walteh/genpatch/pkg/rewrite"
	"github.com/walteh/genpatch/pkg/status"
	"github.com/walteh/genpatch/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options controls how files are modified
type Options struct {
	// DryRun computes the result without writing the file
	DryRun bool
}

// 🎯 Selector picks the rule set for a file path
type Selector func(path string) (*rewrite.RuleSet, error)

// FixesSelector selects from the generated-file dispatch table.
func FixesSelector(v fixes.Versions) Selector {
	return func(path string) (*rewrite.RuleSet, error) {
		return fixes.Select(path, v)
	}
}

// 📄 Result is what modifying one file produced
type Result struct {
	Path      string
	Language  string
	Rules     int
	Before    []string
	After     []string
	Changed   bool
	Written   bool
	Skipped   bool
	Unmatched []string
}

// Status maps the result onto a file status.
func (r *Result) Status() status.FileStatus {
	switch {
	case r.Skipped:
		return status.StatusSkipped
	case r.Written:
		return status.StatusPatched
	case r.Changed:
		return status.StatusPending
	default:
		return status.StatusUnchanged
	}
}

// Info converts the result for a status reporter.
func (r *Result) Info() status.FileInfo {
	added, removed := r.Stats()
	return status.FileInfo{
		Path:      r.Path,
		Language:  r.Language,
		Status:    r.Status(),
		Rules:     r.Rules,
		Unmatched: r.Unmatched,
		Added:     added,
		Removed:   removed,
	}
}

// 📝 Modify reads the file at path, runs it through transform and replaces
// the file with the result. Nothing is written when the content is unchanged,
// when opts.DryRun is set, or when any step before the write fails.
func Modify(ctx context.Context, path string, transform rewrite.Transform, opts Options) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	content, err := status.ReadFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("modifying %s: %w", path, err)
	}

	before := text.Split(string(content))
	after := slices.Collect(transform(slices.Values(before)))
	out := text.Join(slices.Values(after))

	res := &Result{
		Path:    path,
		Before:  before,
		After:   after,
		Changed: out != string(content),
	}

	if !res.Changed {
		logger.Debug().Str("path", path).Msg("content unchanged")
		return res, nil
	}

	if opts.DryRun {
		logger.Debug().Str("path", path).Msg("dry run, not writing")
		return res, nil
	}

	if err := status.WriteFileAtomic(ctx, path, []byte(out)); err != nil {
		return nil, errors.Errorf("modifying %s: %w", path, err)
	}
	res.Written = true

	logger.Debug().
		Str("path", path).
		Int("lines_before", len(before)).
		Int("lines_after", len(after)).
		Msg("file rewritten")

	return res, nil
}

// 🩹 Patch selects the rules for path and applies them. The rules, and any
// version they embed, are resolved before the file is read.
func Patch(ctx context.Context, path string, sel Selector, opts Options) (*Result, error) {
	rs, err := sel(path)
	if err != nil {
		return nil, errors.Errorf("selecting rules: %w", err)
	}

	if rs.Empty() {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no corrections for file")
		return &Result{Path: path, Skipped: true}, nil
	}

	res, err := Modify(ctx, path, rs.Transform, opts)
	if err != nil {
		return nil, err
	}

	res.Language = rs.Language
	res.Rules = len(rs.Rules)
	for _, r := range rs.Unmatched(res.Before) {
		res.Unmatched = append(res.Unmatched, r.Name)
	}
	return res, nil
}
