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

// Package labels provides a display-label registry for member names and
// member paths.
//
// Key derivation (package keypath) asks an injected Lookup for the
// human-readable label of each member it renders; this package is the
// ready-made implementation of that collaborator. Labels are registered at
// build time — exact per-member labels and longest-prefix-match rules over
// dotted member paths, with "*" as a one-segment wildcard — and frozen into
// an immutable Registry that is safe for concurrent use.
//
//	reg, err := labels.New(
//	    labels.WithLabel("Qty", "Quantity"),
//	    labels.WithPathLabel("Items.*", "Order item"),
//	)
//	b := errlist.New(errlist.WithLookup(reg.Lookup))
package labels
