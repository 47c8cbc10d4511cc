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

// 📊 Policy decides where a rendered template goes relative to the matched line.
type Policy int

const (
	PassThrough Policy = iota // line is emitted unchanged
	Replace                   // template replaces the line
	Prepend                   // template, then the line
	Append                    // line, then the template before whatever follows
)

// String returns a string representation of Policy
func (p Policy) String() string {
	switch p {
	case Replace:
		return "replace"
	case Prepend:
		return "prepend"
	case Append:
		return "append"
	default:
		return "pass-through"
	}
}
