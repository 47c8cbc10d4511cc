package status

import (
	"fmt"
	"strings"
)

// FileFormatter defines how file outcomes and progress should be formatted
type FileFormatter interface {
	// FormatFileOperation formats a file outcome message
	FormatFileOperation(info FileInfo) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string

	// FormatSummary formats the totals of a run
	FormatSummary(s Summary) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file outcome message with emojis
func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo) string {
	switch info.Status {
	case StatusPatched:
		return fmt.Sprintf("🩹 Patched %s (+%d -%d)", info.Path, info.Added, info.Removed)
	case StatusPending:
		return fmt.Sprintf("📝 Would patch %s (+%d -%d)", info.Path, info.Added, info.Removed)
	case StatusSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", info.Path)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s", info.Path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

// FormatSummary lists the non-zero counters of a run
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	parts := []string{fmt.Sprintf("%d files", s.Total)}
	for _, c := range []struct {
		n    int
		name string
	}{
		{s.Patched, "patched"},
		{s.Pending, "pending"},
		{s.Unchanged, "unchanged"},
		{s.Skipped, "skipped"},
		{s.Failed, "failed"},
		{s.Unmatched, "missing triggers"},
	} {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.name))
		}
	}
	return strings.Join(parts, ", ")
}
