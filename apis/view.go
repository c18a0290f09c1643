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

package apis

// Violation is one client-facing validation failure: the member key it
// applies to and the message. It is a *view type* — small, transport
// friendly, and safe to marshal to JSON.
type Violation struct {
	// Key is the member key the message applies to, e.g. "items[0].qty".
	// Empty (GlobalKey) means the failure applies to the whole input.
	Key string `json:"key,omitempty"`

	// Message is the human-readable failure text.
	Message string `json:"message"`
}

// ErrorView is the serializable body of an error response: the complete
// ordered list of violations.
//
// This is not the internal error representation — it is the shape we are
// comfortable exposing over the wire. Keeping it here lets the HTTP and gRPC
// adapters share one definition.
type ErrorView struct {
	Errors []Violation `json:"errors"`
}
