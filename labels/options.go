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

// Option configures the Registry at build time. All options are applied to
// an internal builder and then frozen into an immutable Registry.
type Option func(*builder)

// WithLabel registers a display label for an exact member name. Registering
// the same member again replaces the label.
func WithLabel(member, label string) Option {
	return func(b *builder) { b.exact[member] = label }
}

// WithPathLabel adds a longest-prefix-match rule over dotted member paths.
// A more specific prefix wins. Use "*" to match a single segment.
func WithPathLabel(prefix, label string) Option {
	return func(b *builder) { b.pathRules = append(b.pathRules, pathRule{prefix, label}) }
}
