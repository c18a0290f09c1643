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

// Package errlist accumulates validation failures as data.
//
// A Builder collects (message, member keys) pairs during one logical
// operation — typically one request — and hands out immutable List snapshots
// for a response adapter to consume. Failures recorded here are not Go
// errors: they are the expected outcome of validating user input, ordered
// and keyed so a form layer can attach each message to the field it belongs
// to.
//
// Messages use positional "{0} {1} ..." templates. The key for an entry is
// either given literally or derived from a keypath.Path describing the
// member access that failed:
//
//	b := errlist.New()
//	b.Add("out of stock")
//	b.AddKey("email", "{0} is not a valid address", email)
//	b.AddFor(keypath.Var("order").Member("Items").Index(0),
//	    "{1} must be positive, got {0}", qty)
//
// In AddFor the template's last placeholder receives the derived key, so a
// message can name the field it refers to without the caller spelling the
// key twice.
//
// A Builder is owned by exactly one goroutine; it does no locking. Snapshots
// returned by Errors are safe to share freely.
package errlist
