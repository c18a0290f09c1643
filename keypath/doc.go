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

// Package keypath models the member path of a validation error: the dotted,
// index-annotated key that tells a form-validation layer which field a
// message belongs to, e.g. "name", "items[0]" or "address.City".
//
// A Path is built explicitly with a small fluent builder:
//
//	keypath.Var("order").Member("Items").Index(0)
//
// and rendered into the client-facing key without evaluating anything — the
// key is derived from the *shape* of the access chain. The root variable
// segment ("order") is omitted by default and can be included on request.
//
// Member labels can be substituted through an injected Lookup, so a member
// named "Qty" can render as "Quantity" without coupling this package to any
// annotation or registry scheme (package labels provides one).
//
// Paths are immutable: every builder call returns a new Path, so partial
// chains can be stored and extended from several call sites safely.
package keypath
