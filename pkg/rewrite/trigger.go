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

// 🎯 Trigger is the signature of a known generator defect. Both prefixes are
// tested against lines with their leading indentation removed.
type Trigger struct {
	// Prefix must start the current line.
	Prefix string

	// Previous, when set, must start the line right before the current one.
	Previous string
}

// Matches reports whether the trigger fires on the window's current line.
func (t Trigger) Matches(w text.Window) bool {
	if !strings.HasPrefix(text.TrimIndent(w.Cur), t.Prefix) {
		return false
	}
	if t.Previous == "" {
		return true
	}
	return w.HasPrev && strings.HasPrefix(text.TrimIndent(w.Prev), t.Previous)
}

// LooksBehind reports whether the trigger needs the previous line.
func (t Trigger) LooksBehind() bool {
	return t.Previous != ""
}

// String renders the trigger for listings.
func (t Trigger) String() string {
	if t.LooksBehind() {
		return t.Previous + " ⏎ " + t.Prefix
	}
	return t.Prefix
}
