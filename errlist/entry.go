/*
   Copyright 2025 The FormVal Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errlist

import "strings"

// Entry is one recorded validation failure: a message plus the member keys
// it targets. An entry with no members is a general (unkeyed) failure that
// applies to the whole input.
//
// Entries are immutable once produced by a snapshot.
type Entry struct {
	// Message is the formatted, human-readable failure text.
	Message string

	// Members holds the member keys the message applies to, e.g.
	// ["items[0]"] or ["password", "password_confirm"]. Nil or empty means
	// the failure is not tied to any particular member.
	Members []string
}

// Keyed reports whether the entry targets at least one member key.
func (e Entry) Keyed() bool { return len(e.Members) > 0 }

// List is an ordered, immutable snapshot of recorded failures.
//
// A List never aliases the Builder it came from: mutating the builder after
// taking a snapshot does not change the snapshot.
type List []Entry

// Separator joins messages in the aggregate string form.
const Separator = ", "

// String renders the aggregate message of the list: the distinct messages of
// unkeyed entries, in first-appearance order, joined by Separator.
//
// Keyed entries contribute nothing here — their messages surface per member
// key through a model-state feed (see package adapter) — so the same text is
// never reported both as the aggregate line and as a per-field line.
func (l List) String() string {
	var (
		b    strings.Builder
		seen map[string]struct{}
	)
	for _, e := range l {
		if e.Keyed() {
			continue
		}
		if _, dup := seen[e.Message]; dup {
			continue
		}
		if seen == nil {
			seen = make(map[string]struct{})
		}
		seen[e.Message] = struct{}{}
		if b.Len() > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(e.Message)
	}
	return b.String()
}
