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

// Option is a functional option for constructing a Result.
// Options are applied once, inside New; after that the status and payload
// are frozen.
type Option func(*Result)

// WithValue sets the envelope payload on construction.
// Intended to be used with New(...).
func WithValue(v any) Option {
	return func(r *Result) {
		r.value = v
	}
}

// WithLocation sets the redirect location on construction.
// Intended to be used with New(...); the field remains settable afterwards.
func WithLocation(loc string) Option {
	return func(r *Result) {
		r.Location = loc
	}
}

// WithContentLocation sets the Content-Location value on construction.
// Intended to be used with New(...); the field remains settable afterwards.
func WithContentLocation(loc string) Option {
	return func(r *Result) {
		r.ContentLocation = loc
	}
}
