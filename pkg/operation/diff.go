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
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// 📊 Stats counts added and removed lines
func (r *Result) Stats() (added, removed int) {
	for _, d := range r.lineDiffs() {
		n := strings.Count(d.Text, "\n")
		if !strings.HasSuffix(d.Text, "\n") && d.Text != "" {
			n++
		}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += n
		case diffmatchpatch.DiffDelete:
			removed += n
		}
	}
	return added, removed
}

// 🔍 Diff renders a line diff of the change, or "" when nothing changed
func (r *Result) Diff() string {
	if !r.Changed {
		return ""
	}

	var b strings.Builder
	for _, d := range r.lineDiffs() {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		default:
			prefix = "  "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (r *Result) lineDiffs() []diffmatchpatch.Diff {
	if !r.Changed {
		return nil
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(strings.Join(r.Before, ""), strings.Join(r.After, ""))
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}
