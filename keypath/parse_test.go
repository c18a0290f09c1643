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
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, key := range []string{
		"",
		"name",
		"items[0]",
		"[0]",
		"[0].name",
		"address.City",
		"Items[2].Qty",
		"m[1][3]",
		"_private.x9",
	} {
		p, err := Parse(key)
		if err != nil {
			t.Fatalf("Parse(%q): %v", key, err)
		}
		if got := p.String(); got != key {
			t.Fatalf("Parse(%q).String() = %q", key, got)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, key := range []string{
		".",
		"a.",
		"a..b",
		"a[",
		"a[]",
		"a[x]",
		"a[1",
		"a[1]x",
		"1abc",
		"a b",
		"a.-b",
	} {
		if _, err := Parse(key); !errors.Is(err, ErrPathSyntax) {
			t.Fatalf("Parse(%q): got %v, want ErrPathSyntax", key, err)
		}
	}
}

func TestParse_AnonymousRoot(t *testing.T) {
	p, err := Parse("items[0]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Root() != "" {
		t.Fatalf("parsed root = %q, want anonymous", p.Root())
	}
	// Parsed keys are identical with and without the root flag.
	if p.Key(true, nil) != p.Key(false, nil) {
		t.Fatal("anonymous root must not change the rendered key")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse must panic on invalid input")
		}
	}()
	MustParse("a..b")
}
