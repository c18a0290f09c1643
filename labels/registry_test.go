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
	"strings"
	"testing"

	"formval.dev/result/errlist"
	"formval.dev/result/keypath"
)

func TestLookup_Exact(t *testing.T) {
	reg, err := New(
		WithLabel("Qty", "Quantity"),
		WithLabel("Addr", "Address"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if label, ok := reg.Lookup("Qty"); !ok || label != "Quantity" {
		t.Fatalf("Lookup(Qty) = %q, %v", label, ok)
	}
	if _, ok := reg.Lookup("Unknown"); ok {
		t.Fatal("unexpected label for unknown member")
	}
}

func TestLabelFor_PrefixRules(t *testing.T) {
	reg, err := New(
		WithPathLabel("Items", "Order items"),
		WithPathLabel("Items.*.Qty", "Item quantity"),
		WithLabel("standalone", "Standalone"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Deeper rule wins.
	if label, ok := reg.LabelFor("Items.line.Qty"); !ok || label != "Item quantity" {
		t.Fatalf("LabelFor = %q, %v", label, ok)
	}
	// Shallower rule still matches other children.
	if label, ok := reg.LabelFor("Items.line.Sku"); !ok || label != "Order items" {
		t.Fatalf("LabelFor = %q, %v", label, ok)
	}
	// Fallback to the exact table for one-segment paths.
	if label, ok := reg.LabelFor("standalone"); !ok || label != "Standalone" {
		t.Fatalf("LabelFor = %q, %v", label, ok)
	}
	if _, ok := reg.LabelFor("nothing.here"); ok {
		t.Fatal("unexpected match")
	}
}

func TestLabelFor_IndexedSegments(t *testing.T) {
	reg, err := New(WithPathLabel("Items[0]", "First item"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if label, ok := reg.LabelFor("Items[0].Qty"); !ok || label != "First item" {
		t.Fatalf("LabelFor = %q, %v", label, ok)
	}
	if _, ok := reg.LabelFor("Items[1].Qty"); ok {
		t.Fatal("index segments must match exactly")
	}
}

func TestNew_InvalidRule(t *testing.T) {
	if _, err := New(WithPathLabel("a..b", "x")); err == nil {
		t.Fatal("malformed rule must fail the build")
	}
	if _, err := New(WithPathLabel("*", "x")); err == nil {
		t.Fatal("wildcard-only rule must fail the build")
	}
}

func TestExplain(t *testing.T) {
	reg, err := New(
		WithLabel("Qty", "Quantity"),
		WithPathLabel("Items.*", "Order item"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := reg.Explain("Items[2].Qty"); !strings.Contains(got, "source=rule") || !strings.Contains(got, `pattern="Items.*"`) {
		t.Fatalf("Explain = %q", got)
	}
	if got := reg.Explain("Qty"); !strings.Contains(got, "source=exact") {
		t.Fatalf("Explain = %q", got)
	}
	if got := reg.Explain("nope"); !strings.Contains(got, "source=none") {
		t.Fatalf("Explain = %q", got)
	}
}

func TestRegistry_PlugsIntoKeyDerivation(t *testing.T) {
	reg, err := New(WithLabel("Qty", "Quantity"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b := errlist.New(errlist.WithLookup(reg.Lookup))
	b.AddFor(keypath.Var("order").Member("Items").Index(0).Member("Qty"),
		"{1} must be positive, got {0}", -2)

	e := b.Errors()[0]
	if e.Members[0] != "Items[0].Quantity" {
		t.Fatalf("derived key = %q", e.Members[0])
	}
	if e.Message != "Items[0].Quantity must be positive, got -2" {
		t.Fatalf("message = %q", e.Message)
	}
}
