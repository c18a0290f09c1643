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

package labels

import (
	"fmt"

	"formval.dev/result/labels/internal/pathtrie"
)

// Registry resolves display labels for members and member paths.
//
// It is built once via New and is immutable afterwards: no shared references
// to user-provided structures remain, so a Registry is safe for long-lived,
// concurrent reuse.
type Registry struct {
	// exact maps a member name to its label. Checked by Lookup.
	exact map[string]string

	// trie resolves labels by longest-prefix match over dotted member
	// paths, with "*" as a one-segment wildcard. Checked by LabelFor.
	trie *pathtrie.Trie[string]
}

// New builds an immutable Registry from the given options.
//
// Build process:
//
//  1. Apply options into a builder (exact labels + path rules).
//  2. Compile path rules into a segment trie; each rule is validated on
//     insert.
//  3. Freeze the exact-label map into a fresh copy.
//
// Errors indicate a malformed path rule.
func New(opts ...Option) (*Registry, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	trie := pathtrie.New[string]()
	for _, r := range b.pathRules {
		if err := trie.Insert(r.prefix, r.label); err != nil {
			return nil, fmt.Errorf("labels: cannot register path rule %q: %w", r.prefix, err)
		}
	}

	return &Registry{
		exact: freezeExact(b.exact),
		trie:  trie,
	}, nil
}

// Lookup returns the label registered for the exact member name.
// Its signature matches keypath.Lookup, so a Registry plugs directly into
// key derivation:
//
//	errlist.New(errlist.WithLookup(reg.Lookup))
func (r *Registry) Lookup(member string) (string, bool) {
	if r == nil {
		return "", false
	}
	label, ok := r.exact[member]
	return label, ok
}

// LabelFor resolves a label for a full dotted member path, preferring the
// deepest matching path rule. Paths with no matching rule fall back to the
// exact member-name table using the path itself as the key.
func (r *Registry) LabelFor(path string) (string, bool) {
	if r == nil {
		return "", false
	}
	if label, ok := r.trie.Match(path); ok {
		return label, ok
	}
	label, ok := r.exact[path]
	return label, ok
}

// Explain produces a textual trace of how a path resolves, naming the tier
// that matched (path rule, exact, or none) and, for path rules, the stored
// pattern. Primarily a diagnostic tool.
//
// Example output:
//
//	path="Items[2].Qty" source=rule pattern="Items.*" -> "Order item"
func (r *Registry) Explain(path string) string {
	if r == nil {
		return fmt.Sprintf("path=%q source=none", path)
	}
	if label, ok, pat := r.trie.MatchWithPattern(path); ok {
		return fmt.Sprintf("path=%q source=rule pattern=%q -> %q", path, pat, label)
	}
	if label, ok := r.exact[path]; ok {
		return fmt.Sprintf("path=%q source=exact -> %q", path, label)
	}
	return fmt.Sprintf("path=%q source=none", path)
}

// pathRule is one raw prefix rule; validated when the trie is built.
type pathRule struct {
	prefix string
	label  string
}

type builder struct {
	exact     map[string]string
	pathRules []pathRule
}

func newBuilder() *builder {
	return &builder{exact: make(map[string]string)}
}

// freezeExact makes an immutable copy of the exact-label map so later
// mutation of caller-owned state cannot affect the registry.
func freezeExact(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
