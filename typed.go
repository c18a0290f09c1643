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

// Typed is a narrowing view over a Result whose success payload is known to
// be a T. It does not change the stored data — only the statically known
// shape of the payload.
//
// Accessing Success when the runtime payload is not a T is a caller contract
// violation and panics with the usual type-assertion message. The view does
// not itself validate the cast; use SuccessOK when the payload type is not
// guaranteed.
type Typed[T any] struct {
	Result
}

// Wrap narrows an untyped envelope. The caller asserts that, for non-error
// envelopes, the payload is a T.
func Wrap[T any](r Result) Typed[T] {
	return Typed[T]{Result: r}
}

// Ok constructs a success envelope with a typed payload.
func Ok[T any](status int, v T, opts ...Option) Typed[T] {
	opts = append([]Option{WithValue(v)}, opts...)
	return Typed[T]{Result: New(status, opts...)}
}

// Success returns the payload as a T. Panics when the payload's dynamic type
// does not match.
func (t Typed[T]) Success() T {
	return t.Payload().(T)
}

// SuccessOK returns the payload as a T together with a flag reporting whether
// the narrowing succeeded.
func (t Typed[T]) SuccessOK() (T, bool) {
	v, ok := t.Payload().(T)
	return v, ok
}

// TypedErr is a narrowing view over a Result with both a typed success
// payload and a typed error payload sharing the same payload slot: which one
// is present is decided by IsError.
type TypedErr[T, E any] struct {
	Typed[T]
}

// WrapErr narrows an untyped envelope to a typed success/error view.
func WrapErr[T, E any](r Result) TypedErr[T, E] {
	return TypedErr[T, E]{Typed: Wrap[T](r)}
}

// Failure returns the payload as an E. Panics when the payload's dynamic
// type does not match.
func (t TypedErr[T, E]) Failure() E {
	return t.Payload().(E)
}

// FailureOK returns the payload as an E together with a flag reporting
// whether the narrowing succeeded.
func (t TypedErr[T, E]) FailureOK() (E, bool) {
	v, ok := t.Payload().(E)
	return v, ok
}
