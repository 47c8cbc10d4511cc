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

import "iter"

// 🪟 Window is a two-line view over a line sequence: the current line and
// the one right before it.
type Window struct {
	Prev    string
	Cur     string
	HasPrev bool
}

// Windows slides a window of size two over lines. The first window has no
// previous line.
func Windows(lines iter.Seq[string]) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		w := Window{}
		first := true
		for line := range lines {
			if !first {
				w.Prev, w.HasPrev = w.Cur, true
			}
			first = false
			w.Cur = line
			if !yield(w) {
				return
			}
		}
	}
}
