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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitJoin(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "trailing_newline",
			content: "a\nb\n",
			want:    []string{"a\n", "b\n"},
		},
		{
			name:    "no_trailing_newline",
			content: "a\nb",
			want:    []string{"a\n", "b"},
		},
		{
			name:    "crlf",
			content: "a\r\n\r\nb\r\n",
			want:    []string{"a\r\n", "\r\n", "b\r\n"},
		},
		{
			name:    "empty",
			content: "",
			want:    nil,
		},
		{
			name:    "only_newlines",
			content: "\n\n",
			want:    []string{"\n", "\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.content)
			assert.Equal(t, tt.want, got, "split lines should match")
			assert.Equal(t, tt.content, Join(slices.Values(got)), "join should restore the content")
		})
	}
}

func TestDedent(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{
			name:  "common_margin",
			block: "    if x:\n        y\n",
			want:  "if x:\n    y\n",
		},
		{
			name:  "blank_lines_are_normalized",
			block: "  a\n          \n  b\n",
			want:  "a\n\nb\n",
		},
		{
			name:  "no_margin",
			block: "a\n  b\n",
			want:  "a\n  b\n",
		},
		{
			name:  "mixed_tabs_and_spaces_share_nothing",
			block: "\ta\n    b\n",
			want:  "\ta\n    b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedent(tt.block))
		})
	}
}

func TestIndent(t *testing.T) {
	got := Indent([]string{"a\n", "\n", "  b\n"}, "    ")
	assert.Equal(t, []string{"    a\n", "\n", "      b\n"}, got, "blank lines should stay unindented")
}

func TestIndentation(t *testing.T) {
	assert.Equal(t, "    ", Indentation("    else:\n"))
	assert.Equal(t, "", Indentation("else:\n"))
	assert.Equal(t, "else:\n", TrimIndent("  \telse:\n"))
}

func TestWindows(t *testing.T) {
	var got []Window
	for w := range Windows(slices.Values([]string{"a", "b", "c"})) {
		got = append(got, w)
	}

	assert.Equal(t, []Window{
		{Cur: "a"},
		{Prev: "a", Cur: "b", HasPrev: true},
		{Prev: "b", Cur: "c", HasPrev: true},
	}, got)
}

func TestWindowsStopsEarly(t *testing.T) {
	count := 0
	for range Windows(slices.Values([]string{"a", "b", "c"})) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
