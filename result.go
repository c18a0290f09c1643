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

package result

import (
	"net/http"

	"formval.dev/result/errlist"
)

// Result is the canonical response envelope for a business operation.
//
// It carries:
//   - status: an HTTP-semantics status code (<300 success, 300..399 redirect,
//     >=400 error); fixed at construction;
//   - payload: an optional value — a success value, an errlist.List snapshot,
//     or any other value whose string form is the error message; fixed at
//     construction;
//   - Location / ContentLocation: optional response-metadata strings that are
//     only interpreted by a response-writing adapter (see httpx). Unlike the
//     status and payload they MAY be set after construction.
//
// A Result classifies itself purely from the status value (IsError,
// IsRedirect) and performs no I/O. It is safe to copy and to share once the
// metadata fields are no longer being written.
type Result struct {
	status int
	value  any

	// Location is the redirect target for 3xx envelopes. Empty means
	// "no redirect location". Consumed by adapters, never interpreted here.
	Location string

	// ContentLocation is the Content-Location header value for envelopes
	// that describe a resource created or modified elsewhere. Empty means
	// "not set". Consumed by adapters, never interpreted here.
	ContentLocation string
}

// New constructs a Result for the given status code.
//
// Usage:
//
//	return result.New(http.StatusCreated,
//	    result.WithValue(order),
//	    result.WithContentLocation("/orders/42"),
//	)
//
// It never fails: any status code and any payload (including none) produce a
// well-formed envelope.
func New(status int, opts ...Option) Result {
	r := Result{status: status}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// FromStatus converts a bare status code into an envelope with no payload.
// It is the named form of the status-to-envelope conversion.
func FromStatus(status int) Result {
	return New(status)
}

// FromErrors converts an error builder into a 400 Bad Request envelope.
//
// The payload is the builder's Errors() snapshot taken at conversion time, so
// later mutation of the builder does not affect the envelope. A nil builder
// produces a 400 envelope with no payload.
//
// This is the principal bridge from error accumulation to a response.
func FromErrors(b *errlist.Builder) Result {
	if b == nil {
		return New(http.StatusBadRequest)
	}
	return New(http.StatusBadRequest, WithValue(b.Errors()))
}

// FromList converts an error snapshot into a 400 Bad Request envelope.
func FromList(l errlist.List) Result {
	return New(http.StatusBadRequest, WithValue(l))
}

// Status returns the status code the envelope was constructed with.
func (r Result) Status() int { return r.status }

// Payload returns the payload the envelope was constructed with, or nil.
func (r Result) Payload() any { return r.value }

// IsError reports whether the envelope represents a failed operation
// (status >= 400).
func (r Result) IsError() bool { return r.status >= http.StatusBadRequest }

// IsRedirect reports whether the envelope represents a redirect
// (status in [300, 400)).
func (r Result) IsRedirect() bool {
	return r.status >= http.StatusMultipleChoices && !r.IsError()
}
