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
	"iter"
	"slices"
	"strings"

	"github.com/walteh/genpatch/pkg/text"
)

// Transform maps an input line sequence to an output line sequence.
type Transform func(lines iter.Seq[string]) iter.Seq[string]

// Identity returns its input untouched.
func Identity(lines iter.Seq[string]) iter.Seq[string] {
	return lines
}

// 🔧 Rule binds a trigger to the block emitted when it fires.
type Rule struct {
	Name     string
	Trigger  Trigger
	Policy   Policy
	Template Template
	// Level is the absolute column of the rendered block, counted in units
	// of the rule set's Indent. It does not follow the matched line, so the
	// output only lines up when the input is laid out like the generator's.
	Level int
}

// 📚 RuleSet holds every correction for one generated file. Rules are tried
// in order and the first match wins.
type RuleSet struct {
	File     string
	Language string
	Indent   Indent
	Rules    []Rule
}

// Empty reports whether the set carries no rules. An empty set transforms
// nothing.
func (s *RuleSet) Empty() bool {
	return s == nil || len(s.Rules) == 0
}

// Match returns the first rule whose trigger fires on w.
func (s *RuleSet) Match(w text.Window) (*Rule, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.Rules {
		if s.Rules[i].Trigger.Matches(w) {
			return &s.Rules[i], true
		}
	}
	return nil, false
}

// Transform rewrites the line sequence lazily. A block queued by an Append
// rule is emitted before the next input line, or after the last one when
// the match was on the final line.
func (s *RuleSet) Transform(lines iter.Seq[string]) iter.Seq[string] {
	if s.Empty() {
		return lines
	}
	return func(yield func(string) bool) {
		var (
			pending []string
			last    string
		)

		emit := func(out ...string) bool {
			for _, line := range out {
				if !yield(line) {
					return false
				}
			}
			return true
		}

		for w := range text.Windows(lines) {
			last = w.Cur
			if pending != nil {
				if !emit(pending...) {
					return
				}
				pending = nil
			}

			rule, ok := s.Match(w)
			if !ok {
				if !emit(w.Cur) {
					return
				}
				continue
			}

			block := rule.Template.Render(rule.Level, s.Indent)
			if strings.HasSuffix(w.Cur, "\r\n") {
				block = crlf(block)
			}
			switch rule.Policy {
			case Replace:
				if !emit(block...) {
					return
				}
			case Prepend:
				if !emit(block...) || !emit(w.Cur) {
					return
				}
			case Append:
				if !emit(w.Cur) {
					return
				}
				pending = block
			default:
				if !emit(w.Cur) {
					return
				}
			}
		}

		if pending != nil {
			if !strings.HasSuffix(last, "\n") && !emit("\n") {
				return
			}
			emit(pending...)
		}
	}
}

// Apply runs Transform over a slice and collects the result.
func (s *RuleSet) Apply(lines []string) []string {
	return slices.Collect(s.Transform(slices.Values(lines)))
}

// Unmatched returns the rules that fire on none of the lines. A generator
// upgrade that changes the output shape shows up here.
func (s *RuleSet) Unmatched(lines []string) []Rule {
	if s.Empty() {
		return nil
	}
	hit := make([]bool, len(s.Rules))
	for w := range text.Windows(slices.Values(lines)) {
		for i := range s.Rules {
			if s.Rules[i].Trigger.Matches(w) {
				hit[i] = true
				break
			}
		}
	}

	var missing []Rule
	for i, ok := range hit {
		if !ok {
			missing = append(missing, s.Rules[i])
		}
	}
	return missing
}
