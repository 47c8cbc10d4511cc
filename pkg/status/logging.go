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
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent    = 4  // spaces to indent file entries
	nameWidth     = 35 // Base width for filename
	languageWidth = 12 // Width for language
	statusWidth   = 10 // Width for status text
)

// Symbol is the one-rune marker printed before a file entry.
func (s FileStatus) Symbol() string {
	switch s {
	case StatusPatched:
		return "✓"
	case StatusPending:
		return "⟳"
	case StatusFailed:
		return "✗"
	case StatusUnchanged:
		return "•"
	default:
		return "-"
	}
}

// Color is the console color of a status.
func (s FileStatus) Color() color.Attribute {
	switch s {
	case StatusPatched:
		return color.FgGreen
	case StatusPending:
		return color.FgBlue
	case StatusFailed:
		return color.FgRed
	case StatusUnchanged:
		return color.FgCyan
	default:
		return color.FgHiBlack
	}
}

// 🎯 FormatFileOperation formats a file outcome as one aligned console row
func FormatFileOperation(info FileInfo) string {
	language := info.Language
	if language == "" {
		language = "-"
	}

	var detail string
	switch info.Status {
	case StatusPatched, StatusPending:
		detail = "+" + strconv.Itoa(info.Added) + " -" + strconv.Itoa(info.Removed)
	case StatusFailed:
		if info.Error != nil {
			detail = info.Error.Error()
		}
	}
	if n := len(info.Unmatched); n > 0 {
		detail = strings.TrimSpace(detail + " " + color.YellowString("(%d missing)", n))
	}

	return strings.TrimRight(fmt.Sprintf("%s%s %s %s %s %s",
		strings.Repeat(" ", fileIndent),
		color.New(info.Status.Color()).Sprint(info.Status.Symbol()),
		fmt.Sprintf("%-*s", nameWidth, info.Path),
		fmt.Sprintf("%-*s", languageWidth, language),
		color.New(info.Status.Color()).Sprint(fmt.Sprintf("%-*s", statusWidth, info.Status)),
		detail,
	), " ")
}
