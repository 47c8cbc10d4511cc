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

package status

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents the outcome of patching one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusPatched              // Content changed and was written
	StatusPending              // Content would change, dry run
	StatusUnchanged            // Rules ran but content matches
	StatusSkipped              // No rules registered for the file name
	StatusFailed               // Patching aborted
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusPatched:
		return "patched"
	case StatusPending:
		return "pending"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains what happened to a file
type FileInfo struct {
	Path      string     // Path as given to the driver
	Language  string     // Target language of the matched rule set
	Status    FileStatus // Outcome
	Rules     int        // Number of rules in the rule set
	Unmatched []string   // Rules whose trigger was not found
	Added     int        // Lines added
	Removed   int        // Lines removed
	Error     error      // Any error associated with this file
}

// Summary counts tracked files by status.
type Summary struct {
	Total     int
	Patched   int
	Pending   int
	Unchanged int
	Skipped   int
	Failed    int
	Unmatched int
}

// 📈 Reporter tracks file outcomes and reports progress
type Reporter interface {
	TrackFile(ctx context.Context, info FileInfo)
	ListFiles(ctx context.Context) []FileInfo

	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 🔧 Manager implements Reporter
type Manager struct {
	formatter FileFormatter

	mu    sync.RWMutex
	files map[string]FileInfo

	total     int
	processed int
}

var _ Reporter = (*Manager)(nil)

// 🏭 New creates a new status manager
func New() *Manager {
	return &Manager{
		formatter: NewDefaultFileFormatter(),
		files:     make(map[string]FileInfo),
	}
}

// WithFormatter replaces the message formatter.
func (m *Manager) WithFormatter(f FileFormatter) *Manager {
	m.formatter = f
	return m
}

func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[info.Path] = info

	logger := zerolog.Ctx(ctx)
	if info.Error != nil {
		logger.Error().Str("path", info.Path).Err(info.Error).Msg(m.formatter.FormatError(info.Error))
		return
	}

	ev := logger.Info()
	if info.Status == StatusSkipped {
		ev = logger.Debug()
	}
	ev.Str("path", info.Path).
		Str("language", info.Language).
		Stringer("status", info.Status).
		Int("added", info.Added).
		Int("removed", info.Removed).
		Msg(m.formatter.FormatFileOperation(info))

	for _, rule := range info.Unmatched {
		logger.Warn().
			Str("path", info.Path).
			Str("rule", rule).
			Msg("trigger not found, correction not applied")
	}
}

// ListFiles returns tracked files sorted by path.
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	slices.SortFunc(files, func(a, b FileInfo) int {
		return strings.Compare(a.Path, b.Path)
	})
	return files
}

// 🧮 Summary counts the tracked files
func (m *Manager) Summary(ctx context.Context) Summary {
	var s Summary
	for _, info := range m.ListFiles(ctx) {
		s.Total++
		s.Unmatched += len(info.Unmatched)
		switch info.Status {
		case StatusPatched:
			s.Patched++
		case StatusPending:
			s.Pending++
		case StatusUnchanged:
			s.Unchanged++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	zerolog.Ctx(ctx).Debug().Int("total", total).Msg(m.formatter.FormatProgress(0, total))
}

func (m *Manager) UpdateProgress(ctx context.Context, processed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.processed = processed
	zerolog.Ctx(ctx).Debug().
		Int("processed", processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(processed, m.total))
}

func (m *Manager) FinishOperation(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(m.formatter.FormatProgress(m.processed, m.total))
}

// 📖 ReadFile reads a whole file
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// 💾 WriteFileAtomic replaces path with content through a temp file in the
// same directory, keeping the permissions of the file it replaces
func WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return errors.Errorf("checking file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	cleanup := func() {
		_ = os.Remove(tempPath)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		cleanup()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		cleanup()
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		cleanup()
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Trace().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}
