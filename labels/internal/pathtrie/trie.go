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

// Package pathtrie indexes values by member-path prefixes.
package pathtrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dotted member paths such as
// "Items[0].Qty". Each node is one segment; the wildcard "*" matches exactly
// one segment. Lookups are longest-prefix-match over segment boundaries, so
// a more specific rule wins over a shorter one.
//
// Unlike reason-style identifiers, member-path segments may be capitalized,
// start with an underscore, and carry "[n]" index annotations.
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the canonical dotted prefix (with '*' where a wildcard was
	// used) for this node, set only when hasVal=true, so Explain-style
	// callers don't build strings during lookup.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("pathtrie: invalid prefix")

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a dot-separated member-path prefix and associates it with val.
//
// Examples:
//
//	"address"
//	"Items[0].Qty"
//	"*.Qty"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected as too generic. Returns ErrInvalidPrefix on malformed
// input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		cur.pattern = prefix
	}
	return nil
}

// Match finds the best (deepest) prefix match for a full member path and
// returns (value, true) on success. Exact segment matches, index-stripped
// matches ("Items[2]" against a rule segment "Items") and "*" wildcard
// branches are all explored. A malformed path matches nothing.
func (t *Trie[T]) Match(path string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(path)
	return v, ok
}

// MatchWithPattern is Match plus the stored rule pattern of the winning
// node, for diagnostic traces.
func (t *Trie[T]) MatchWithPattern(path string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	segs, ok := splitAndValidate(path)
	if !ok {
		return zero, false, ""
	}

	bestDepth := -1
	var bestVal T
	var bestPat string

	// dfs walks both the exact and the wildcard branch for every segment,
	// keeping the deepest node that carried a value.
	var dfs func(n *Trie[T], at, depth int)
	dfs = func(n *Trie[T], at, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if at >= len(segs) {
			return
		}
		if next, ok := n.children[segs[at]]; ok {
			dfs(next, at+1, depth+1)
		}
		// An indexed segment ("Items[2]") also descends through a rule node
		// written for the plain member ("Items").
		if base := indexBase(segs[at]); base != segs[at] && base != "" {
			if next, ok := n.children[base]; ok {
				dfs(next, at+1, depth+1)
			}
		}
		if next, ok := n.children["*"]; ok {
			dfs(next, at+1, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// indexBase strips the "[n]" index annotations off a segment. A bare index
// segment ("[0]") strips to the empty string.
func indexBase(seg string) string {
	if i := strings.IndexByte(seg, '['); i >= 0 {
		return seg[:i]
	}
	return seg
}

// splitAndValidate splits a dotted member path into segments and validates
// each one. An empty string yields an empty (but valid) segment list so that
// matching "" against a root value stays possible.
func splitAndValidate(s string) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is a valid member-path trie segment.
// Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed (one-segment wildcard);
//   - otherwise: an identifier [A-Za-z_][A-Za-z0-9_]* optionally followed by
//     one or more "[<digits>]" index annotations; a segment may also be a
//     bare index annotation ("[0]"), which is how a rootless leading index
//     renders.
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}

	i := 0
	if seg[0] != '[' {
		c := seg[0]
		if c != '_' && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') {
			return false
		}
		i = 1
		for i < len(seg) {
			c = seg[i]
			if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
				i++
				continue
			}
			break
		}
	}
	// Zero or more [n] annotations until the end.
	for i < len(seg) {
		if seg[i] != '[' {
			return false
		}
		j := i + 1
		for j < len(seg) && seg[j] >= '0' && seg[j] <= '9' {
			j++
		}
		if j == i+1 || j == len(seg) || seg[j] != ']' {
			return false
		}
		i = j + 1
	}
	return true
}
