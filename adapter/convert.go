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

// Package adapter converts error snapshots and envelopes into the boundary
// shapes a response writer consumes: violation views and model-state
// registrations.
package adapter

import (
	"formval.dev/result"
	"formval.dev/result/apis"
	"formval.dev/result/errlist"
)

// listProvider is anything that can hand out an error snapshot; a live
// *errlist.Builder qualifies.
type listProvider interface {
	Errors() errlist.List
}

// Errors extracts an error snapshot from an envelope payload.
//
// It recognizes an errlist.List payload directly and anything that provides
// one (such as a builder stored in the envelope); providers are snapshotted
// here. The second return is false when the payload carries no error list.
func Errors(r result.Result) (errlist.List, bool) {
	switch v := r.Payload().(type) {
	case errlist.List:
		return v, true
	case listProvider:
		return v.Errors(), true
	default:
		return nil, false
	}
}

// ToViolations flattens a snapshot into client-facing violations: one
// violation per member key, in entry order. Unkeyed entries map to
// apis.GlobalKey, with exact duplicates under the global key suppressed so
// the same text is never reported twice as a whole-input failure.
func ToViolations(l errlist.List) []apis.Violation {
	if len(l) == 0 {
		return nil
	}
	out := make([]apis.Violation, 0, len(l))
	var seenGlobal map[string]struct{}
	for _, e := range l {
		if !e.Keyed() {
			if _, dup := seenGlobal[e.Message]; dup {
				continue
			}
			if seenGlobal == nil {
				seenGlobal = make(map[string]struct{})
			}
			seenGlobal[e.Message] = struct{}{}
			out = append(out, apis.Violation{Key: apis.GlobalKey, Message: e.Message})
			continue
		}
		for _, m := range e.Members {
			out = append(out, apis.Violation{Key: m, Message: e.Message})
		}
	}
	return out
}

// ToView wraps a snapshot into the serializable error-response body.
func ToView(l errlist.List) apis.ErrorView {
	return apis.ErrorView{Errors: ToViolations(l)}
}

// Feed registers a snapshot into a framework's model state: one registration
// per member key; unkeyed entries register under apis.GlobalKey unless the
// same text was already registered there (the aggregate / per-item
// suppression rule).
//
// A nil interface value is a no-op. A non-nil interface wrapping an
// uninitialized state (for instance a nil httpx.FormState map) is NOT
// detected here; the caller must pass a ready-to-write state such as
// httpx.NewFormState().
func Feed(ms apis.ModelState, l errlist.List) {
	if ms == nil {
		return
	}
	for _, v := range ToViolations(l) {
		ms.AddError(v.Key, v.Message)
	}
}
