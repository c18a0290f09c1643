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

// Package httpx writes result envelopes to net/http responses.
package httpx

import (
	"encoding/json"
	"net/http"

	"formval.dev/result"
	"formval.dev/result/adapter"
	"formval.dev/result/apis"
)

// Write translates an envelope into an HTTP response:
//
//   - the response status is the envelope's status;
//   - a non-empty Location is set as the Location header, a non-empty
//     ContentLocation as Content-Location;
//   - an error-list payload is serialized as a JSON apis.ErrorView body;
//   - any other non-nil payload is serialized as a JSON body;
//   - redirects and payload-less envelopes write headers only.
//
// No redaction or filtering is performed here: whatever the envelope carries
// is exposed as-is. Higher-level handlers apply policies if needed.
func Write(rw http.ResponseWriter, r result.Result) {
	if r.Location != "" {
		rw.Header().Set("Location", r.Location)
	}
	if r.ContentLocation != "" {
		rw.Header().Set("Content-Location", r.ContentLocation)
	}

	if l, ok := adapter.Errors(r); ok {
		writeJSON(rw, r.Status(), adapter.ToView(l))
		return
	}
	if v := r.Payload(); v != nil && !r.IsRedirect() {
		writeJSON(rw, r.Status(), v)
		return
	}
	rw.WriteHeader(r.Status())
}

// Apply feeds an envelope's error payload into a framework's model state and
// reports whether the envelope carried one. Success and redirect envelopes
// leave the state untouched.
func Apply(ms apis.ModelState, r result.Result) bool {
	l, ok := adapter.Errors(r)
	if !ok {
		return false
	}
	adapter.Feed(ms, l)
	return true
}

func writeJSON(rw http.ResponseWriter, status int, v any) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(v)
}
