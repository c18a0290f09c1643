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
	"errors"
	"fmt"
	"strconv"
)

// ErrPathSyntax is returned when a key string cannot be parsed back into a
// Path. Use errors.Is to detect it; the wrapping error names the offending
// position.
var ErrPathSyntax = errors.New("keypath: invalid key syntax")

// Parse converts a dotted, index-annotated key back into a Path.
//
// The accepted grammar is the output of Key/String:
//
//	""                   -> empty path
//	"name"               -> member "name"
//	"items[0]"           -> member "items", index 0
//	"[0].name"           -> index 0, member "name"
//	"address.City"       -> member "address", member "City"
//
// The returned Path has an anonymous root: parsing is used to reconstruct
// keys received from clients, where the original root variable is unknown.
//
// Member names must start with a letter or underscore and continue with
// letters, digits or underscores. Indexes are non-negative decimal integers.
// Anything else fails with an error wrapping ErrPathSyntax.
func Parse(s string) (Path, error) {
	p := Var("")
	if s == "" {
		return p, nil
	}

	i := 0
	for i < len(s) {
		switch {
		case s[i] == '[':
			idx, next, err := parseIndex(s, i)
			if err != nil {
				return Path{}, err
			}
			p = p.Index(idx)
			i = next
			if i < len(s) && s[i] != '.' && s[i] != '[' {
				return Path{}, fmt.Errorf("%w: unexpected %q at %d", ErrPathSyntax, s[i], i)
			}
		case isIdentStart(s[i]):
			j := i + 1
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			p = p.Member(s[i:j])
			i = j
		default:
			return Path{}, fmt.Errorf("%w: unexpected %q at %d", ErrPathSyntax, s[i], i)
		}

		// After a segment chunk: either end of input, an index, or a dot
		// followed by the next segment.
		if i < len(s) && s[i] == '.' {
			i++
			if i == len(s) {
				return Path{}, fmt.Errorf("%w: trailing dot", ErrPathSyntax)
			}
			if s[i] == '.' {
				return Path{}, fmt.Errorf("%w: empty segment at %d", ErrPathSyntax, i)
			}
		}
	}
	return p, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level path constants in var blocks.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// parseIndex reads a "[<digits>]" annotation starting at s[i] == '['.
// It returns the parsed index and the offset just past the ']'.
func parseIndex(s string, i int) (int, int, error) {
	j := i + 1
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i+1 || j == len(s) || s[j] != ']' {
		return 0, 0, fmt.Errorf("%w: malformed index at %d", ErrPathSyntax, i)
	}
	idx, err := strconv.Atoi(s[i+1 : j])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: index at %d: %v", ErrPathSyntax, i, err)
	}
	return idx, j + 1, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
