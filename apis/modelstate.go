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

// GlobalKey is the catch-all model-state key for failures that are not tied
// to any particular member. Web frameworks conventionally use the empty
// string for model-level errors, and so do we.
const GlobalKey = ""

// ModelState is the form-validation state structure a web framework exposes:
// an ordered multimap from member key to error messages.
//
// A response adapter registers each recorded failure here, once per member
// key; unkeyed failures are registered under GlobalKey. Implementations are
// owned by a single request and need not be safe for concurrent use.
type ModelState interface {
	// AddError registers one error message under the given member key.
	// key may be GlobalKey.
	AddError(key, message string)
}
