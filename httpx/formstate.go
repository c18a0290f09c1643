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

package httpx

import "formval.dev/result/apis"

// FormState is a minimal apis.ModelState for plain net/http handlers: a
// multimap from member key to messages. The zero value is not usable; create
// it with NewFormState.
type FormState map[string][]string

// NewFormState returns an empty, ready-to-use form state.
func NewFormState() FormState {
	return make(FormState)
}

// AddError implements apis.ModelState.
func (s FormState) AddError(key, message string) {
	s[key] = append(s[key], message)
}

// Valid reports whether no errors have been registered.
func (s FormState) Valid() bool { return len(s) == 0 }

// Global returns the messages registered under the catch-all key.
func (s FormState) Global() []string { return s[apis.GlobalKey] }
