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

package rewrite

import (
	"strings"

	"github.com/walteh/genpatch/pkg/text"
)

// Indent is the width in columns of one nesting level of a generated file.
type Indent int

// Prefix returns the whitespace for the given nesting level.
func (i Indent) Prefix(level int) string {
	return strings.Repeat(" ", int(i)*level)
}

// 📄 Template is a replacement block kept in its dedented form.
type Template struct {
	lines []string
}

// NewTemplate dedents block and stores it line by line. A single leading
// newline is dropped so blocks can open on the line after a backquote, and
// every line ends with a newline so blocks can be emitted mid-file.
func NewTemplate(block string) Template {
	block = strings.TrimPrefix(block, "\n")
	lines := text.Split(text.Dedent(block))
	for i, line := range lines {
		if !strings.HasSuffix(line, "\n") {
			lines[i] = line + "\n"
		}
	}
	return Template{lines: lines}
}

// Lines returns a copy of the dedented lines.
func (t Template) Lines() []string {
	return append([]string(nil), t.lines...)
}

// Render indents the template to the given level.
func (t Template) Render(level int, unit Indent) []string {
	return text.Indent(t.lines, unit.Prefix(level))
}

// Contains reports whether any line of the template, once its indentation
// is stripped, starts with prefix.
func (t Template) Contains(prefix string) bool {
	for _, line := range t.lines {
		if strings.HasPrefix(text.TrimIndent(line), prefix) {
			return true
		}
	}
	return false
}

// crlf rewrites the "\n" terminator of every rendered line as "\r\n" so the
// block matches the line ending of the line that triggered it.
func crlf(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSuffix(line, "\n") + "\r\n"
	}
	return out
}
