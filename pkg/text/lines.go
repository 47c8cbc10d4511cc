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

package text

import (
	"iter"
	"strings"
)

// Split breaks content into lines that keep their terminators. Joining the
// result gives back the original content byte for byte.
func Split(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Join concatenates a line sequence.
func Join(lines iter.Seq[string]) string {
	var sb strings.Builder
	for line := range lines {
		sb.WriteString(line)
	}
	return sb.String()
}

// Indentation returns the leading whitespace of a line.
func Indentation(line string) string {
	return line[:len(line)-len(TrimIndent(line))]
}

// TrimIndent strips the leading whitespace of a single line.
func TrimIndent(line string) string {
	return strings.TrimLeft(line, " \t")
}

// IsBlank reports whether a line holds nothing but whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Dedent removes the whitespace prefix shared by every non-blank line of
// block. Whitespace-only lines are reduced to their terminator.
func Dedent(block string) string {
	lines := Split(block)

	var (
		margin string
		found  bool
	)
	for _, line := range lines {
		if IsBlank(line) {
			continue
		}
		indent := Indentation(line)
		if !found {
			margin, found = indent, true
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	var sb strings.Builder
	for _, line := range lines {
		if IsBlank(line) {
			sb.WriteString(terminator(line))
			continue
		}
		sb.WriteString(strings.TrimPrefix(line, margin))
	}
	return sb.String()
}

// Indent prefixes every non-blank line with prefix.
func Indent(lines []string, prefix string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if IsBlank(line) {
			out[i] = line
			continue
		}
		out[i] = prefix + line
	}
	return out
}

func terminator(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
