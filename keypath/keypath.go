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

package keypath

import (
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Lookup resolves a member name to a human-readable display label.
//
// It is the injected collaborator used while rendering a Path: when it
// returns ok=true the label replaces the member's own name in the derived
// key. A nil Lookup (or ok=false) falls back to the member name.
//
// Implementations must be pure and side-effect free.
type Lookup func(member string) (label string, ok bool)

// stepKind tags one step of an access chain.
type stepKind uint8

const (
	stepVar    stepKind = iota // the root variable
	stepMember                 // .Name
	stepIndex                  // [i]
)

// step is one access in the chain. Exactly one of name/index is meaningful,
// depending on kind.
type step struct {
	kind  stepKind
	name  string
	index int
}

// Path is an immutable description of a member access chain rooted at a
// variable: root, then any sequence of member and index steps.
//
// The zero Path is empty and renders to "".
type Path struct {
	steps []step
}

var (
	// ErrEmptyMember is returned by Validate for a member step with an
	// empty name. Such a chain cannot be decomposed into key segments.
	ErrEmptyMember = errors.New("keypath: empty member name")

	// ErrNegativeIndex is returned by Validate for an index step with a
	// negative index.
	ErrNegativeIndex = errors.New("keypath: negative index")
)

// Ensure Path round-trips through text encodings like any other key.
var (
	_ encoding.TextMarshaler   = Path{}
	_ encoding.TextUnmarshaler = (*Path)(nil)
)

// Var starts a Path at the named root variable.
//
// The root name is only rendered when the caller asks for it (see Segments);
// an empty name is allowed and simply means "anonymous root".
func Var(name string) Path {
	return Path{steps: []step{{kind: stepVar, name: name}}}
}

// Member returns a new Path with a member/property access appended.
// The receiver is not modified.
func (p Path) Member(name string) Path {
	return p.append(step{kind: stepMember, name: name})
}

// Index returns a new Path with an element access appended.
// The receiver is not modified.
func (p Path) Index(i int) Path {
	return p.append(step{kind: stepIndex, index: i})
}

// append copies the step slice so that two chains forked from the same
// prefix never share backing storage.
func (p Path) append(s step) Path {
	steps := make([]step, len(p.steps), len(p.steps)+1)
	copy(steps, p.steps)
	return Path{steps: append(steps, s)}
}

// IsEmpty reports whether the path contains no member or index steps
// (a bare root, or the zero Path).
func (p Path) IsEmpty() bool {
	for _, s := range p.steps {
		if s.kind != stepVar {
			return false
		}
	}
	return true
}

// Root returns the root variable's name, or "" when the path has no named
// root.
func (p Path) Root() string {
	if len(p.steps) > 0 && p.steps[0].kind == stepVar {
		return p.steps[0].name
	}
	return ""
}

// Validate checks that the chain can be decomposed into key segments.
// It reports the first offending step: ErrEmptyMember for a nameless member,
// ErrNegativeIndex for a negative index.
func (p Path) Validate() error {
	for _, s := range p.steps {
		switch s.kind {
		case stepMember:
			if s.name == "" {
				return ErrEmptyMember
			}
		case stepIndex:
			if s.index < 0 {
				return ErrNegativeIndex
			}
		}
	}
	return nil
}

// Segments derives the key segments for the chain.
//
// Walking the chain from the root outward:
//
//   - a member step appends one segment: the label the Lookup supplies for
//     the member, or the member's own name;
//   - an index step fuses "[i]" onto the trailing segment when one exists
//     ("items" -> "items[0]"), otherwise it opens a new "[i]" segment — this
//     is what renders Var("list").Index(0) as "[0]" when the root is omitted
//     and as "list[0]" when it is included;
//   - the root variable contributes a leading segment only when includeRoot
//     is true and the root is named.
//
// The returned slice is freshly allocated on every call.
func (p Path) Segments(includeRoot bool, lookup Lookup) []string {
	segs := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		switch s.kind {
		case stepVar:
			if includeRoot && s.name != "" {
				segs = append(segs, s.name)
			}
		case stepMember:
			label := s.name
			if lookup != nil {
				if l, ok := lookup(s.name); ok {
					label = l
				}
			}
			segs = append(segs, label)
		case stepIndex:
			idx := "[" + strconv.Itoa(s.index) + "]"
			if n := len(segs); n > 0 {
				segs[n-1] += idx
			} else {
				segs = append(segs, idx)
			}
		}
	}
	return segs
}

// Key renders the chain as a single dotted key, e.g. "address.City" or
// "items[0]". Index annotations are already fused to their owning segment,
// so only member boundaries introduce dots.
func (p Path) Key(includeRoot bool, lookup Lookup) string {
	return strings.Join(p.Segments(includeRoot, lookup), ".")
}

// String renders the chain in its default form: root omitted, no label
// substitution.
func (p Path) String() string {
	return p.Key(false, nil)
}

// MarshalText implements encoding.TextMarshaler using the default rendering.
func (p Path) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
