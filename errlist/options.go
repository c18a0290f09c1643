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

package errlist

import "formval.dev/result/keypath"

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithRootSegment makes derived keys start with the root variable's name:
// AddFor(keypath.Var("order").Member("Id"), ...) keys as "order.Id" instead
// of "Id". Literal keys are never touched.
func WithRootSegment() Option {
	return func(b *Builder) { b.includeRoot = true }
}

// WithLookup injects the display-label collaborator used when deriving keys
// from paths. A labels.Registry's Lookup method is a common choice.
func WithLookup(l keypath.Lookup) Option {
	return func(b *Builder) { b.lookup = l }
}
