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

import (
	"fmt"

	"formval.dev/result/keypath"
)

// Builder is a mutable, append-only collector of validation failures.
//
// It is created empty, mutated only through the Add* family and Clear, and
// read through Errors, String and the Assert helpers. A Builder belongs to
// exactly one logical operation and is not safe for concurrent use; callers
// that validate in parallel keep one builder per worker and merge the
// snapshots afterwards.
type Builder struct {
	entries []Entry

	// includeRoot controls whether derived keys start with the root
	// variable's name ("order.Items[0]" vs "Items[0]"). Off by default.
	includeRoot bool

	// lookup resolves member names to display labels for derived keys.
	// May be nil.
	lookup keypath.Lookup
}

// Outcome is the subset of a response envelope the builder can assert on.
// result.Result satisfies it.
type Outcome interface {
	// IsError reports whether the outcome represents a failure.
	IsError() bool
	// Payload returns the outcome's payload, if any.
	Payload() any
}

// New creates an empty Builder. Configuration is applied once here; Clear
// keeps it.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add records an unkeyed failure. The format string uses positional "{i}"
// placeholders filled from args.
//
// It returns the builder for chaining.
func (b *Builder) Add(format string, args ...any) *Builder {
	b.entries = append(b.entries, Entry{Message: formatTemplate(format, args)})
	return b
}

// AddKey records a failure tied to a single literal member key. An empty key
// records an unkeyed failure, which lets callers forward optional keys
// without special-casing.
func (b *Builder) AddKey(key, format string, args ...any) *Builder {
	var members []string
	if key != "" {
		members = []string{key}
	}
	b.entries = append(b.entries, Entry{Message: formatTemplate(format, args), Members: members})
	return b
}

// AddKeys records a failure tied to several literal member keys: the message
// will be registered once per key by a model-state feed. Empty keys are
// dropped; if none remain the failure is recorded unkeyed.
func (b *Builder) AddKeys(keys []string, format string, args ...any) *Builder {
	var members []string
	for _, k := range keys {
		if k == "" {
			continue
		}
		members = append(members, k)
	}
	b.entries = append(b.entries, Entry{Message: formatTemplate(format, args), Members: members})
	return b
}

// AddFor records a failure keyed by the shape of a member access chain.
//
// The key is derived from p using the builder's root-segment flag and label
// lookup, and appended to values as the final format argument. The template
// therefore distinguishes value placeholders from the key placeholder purely
// by position: with two values, "{0}" and "{1}" are the values and "{2}" is
// the derived key.
//
//	b.AddFor(keypath.Var("a").Member("Length"), "{1} = {0}", 3)
//	// message "Length = 3", key "Length"
//
// The message always names the field without the root segment; the recorded
// member key honors the builder's root-segment flag, so enabling it changes
// the key ("a.Length") but not the message text.
//
// An empty path records an unkeyed failure (the key argument is then "").
func (b *Builder) AddFor(p keypath.Path, format string, values ...any) *Builder {
	// A bare root is an empty access chain, even when the root segment is
	// requested.
	key := ""
	if !p.IsEmpty() {
		key = p.Key(b.includeRoot, b.lookup)
	}
	args := make([]any, 0, len(values)+1)
	args = append(args, values...)
	args = append(args, p.Key(false, b.lookup))

	var members []string
	if key != "" {
		members = []string{key}
	}
	b.entries = append(b.entries, Entry{Message: formatTemplate(format, args), Members: members})
	return b
}

// Assert records a failure when ok is false and reports whether the check
// passed. The message is only formatted (and args only rendered) on failure.
func (b *Builder) Assert(ok bool, format string, args ...any) bool {
	if !ok {
		b.Add(format, args...)
	}
	return ok
}

// AssertOutcome records a failure when the outer outcome is an error and
// reports whether it was not. The recorded message is the string form of the
// outcome's payload; an error outcome with a nil payload records nothing.
func (b *Builder) AssertOutcome(o Outcome) bool {
	ok := o == nil || !o.IsError()
	if !ok {
		if v := o.Payload(); v != nil {
			b.Add(fmt.Sprint(v))
		}
	}
	return ok
}

// Not is the logical negation convenience around Assert: it records the
// message when cond holds and returns cond.
func (b *Builder) Not(cond bool, format string, args ...any) bool {
	return !b.Assert(!cond, format, args...)
}

// Errors returns a fresh immutable snapshot of everything recorded so far,
// in insertion order. The snapshot shares no storage with the builder, so
// later Add calls never change a snapshot already handed out.
func (b *Builder) Errors() List {
	if b == nil || len(b.entries) == 0 {
		return List{}
	}
	out := make(List, len(b.entries))
	for i, e := range b.entries {
		cp := Entry{Message: e.Message}
		if len(e.Members) > 0 {
			cp.Members = make([]string, len(e.Members))
			copy(cp.Members, e.Members)
		}
		out[i] = cp
	}
	return out
}

// Len returns the number of recorded entries.
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// Clear discards all recorded entries. The builder's configuration (root
// segment flag, label lookup) is kept.
func (b *Builder) Clear() {
	b.entries = nil
}

// String renders the aggregate message of the current entries; see
// List.String.
func (b *Builder) String() string {
	return b.Errors().String()
}
