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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/genpatch/pkg/status"
)

// 📦 RunOperation describes a patch run for logging
type RunOperation struct {
	Root   string // File or directory being patched
	Config string // Version store path
	DryRun bool   // Whether files are left untouched
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	files      []status.FileInfo
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// WithZerolog replaces the structured sink, mostly for tests.
func (l *Logger) WithZerolog(z zerolog.Logger) *Logger {
	l.zlog = z
	return l
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogFileOperation prints one file outcome
func (l *Logger) LogFileOperation(ctx context.Context, info status.FileInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.files = append(l.files, info)

	fmt.Fprintln(l.console, status.FormatFileOperation(info))

	ev := l.zlog.Info()
	if info.Error != nil {
		ev = l.zlog.Error().Err(info.Error)
	}
	ev.Str("file", info.Path).
		Str("language", info.Language).
		Stringer("status", info.Status).
		Int("rules", info.Rules).
		Strs("unmatched", info.Unmatched).
		Int("added", info.Added).
		Int("removed", info.Removed).
		Msg("file operation")
}

// 📝 StartRun starts a new patch run
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.files = nil

	mode := "write"
	if op.DryRun {
		mode = "dry-run"
	}

	fmt.Fprintf(l.console, "[patching %s]\n",
		color.New(color.FgCyan).Sprint(op.Root))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Config),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(mode))

	l.zlog.Info().
		Str("root", op.Root).
		Str("config", op.Config).
		Bool("dry_run", op.DryRun).
		Msg("starting patch run")
}

// 📝 EndRun ends the current patch run
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return
	}

	l.zlog.Info().
		Str("root", l.currentRun.Root).
		Int("files", len(l.files)).
		Msg("patch run complete")

	l.currentRun = nil
	l.files = nil
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("genpatch")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// say prints one console line and mirrors it to the structured sink
func (l *Logger) say(ev *zerolog.Event, icon string, c color.Attribute, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", icon, color.New(c).Sprint(msg))
	ev.Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) { l.say(l.zlog.Info(), "✅", color.FgGreen, msg) }

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) { l.say(l.zlog.Warn(), "⚠️ ", color.FgYellow, msg) }

// 📝 Error logs an error message
func (l *Logger) Error(msg string) { l.say(l.zlog.Error(), "❌", color.FgRed, msg) }

// 📝 Info logs an info message
func (l *Logger) Info(msg string) { l.say(l.zlog.Info(), "ℹ️ ", color.FgCyan, msg) }

func (l *Logger) Successf(format string, args ...any) { l.Success(fmt.Sprintf(format, args...)) }
func (l *Logger) Warningf(format string, args ...any) { l.Warning(fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any)   { l.Error(fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)    { l.Info(fmt.Sprintf(format, args...)) }

// 📝 Summary prints the totals of a run
func (l *Logger) Summary(s status.Summary) {
	msg := status.NewDefaultFileFormatter().FormatSummary(s)
	switch {
	case s.Failed > 0:
		l.Error(msg)
	case s.Unmatched > 0:
		l.Warning(msg)
	default:
		l.Success(msg)
	}
}
