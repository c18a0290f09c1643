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

package adapter

import (
	"net/http"
	"reflect"
	"testing"

	"formval.dev/result"
	"formval.dev/result/apis"
	"formval.dev/result/errlist"
)

type recordedError struct {
	key, message string
}

type recordingState []recordedError

func (s *recordingState) AddError(key, message string) {
	*s = append(*s, recordedError{key, message})
}

func TestErrors_PayloadShapes(t *testing.T) {
	l := errlist.List{{Message: "a"}}
	if got, ok := Errors(result.FromList(l)); !ok || len(got) != 1 {
		t.Fatalf("list payload: got %v, %v", got, ok)
	}

	b := errlist.New().Add("b")
	if got, ok := Errors(result.New(http.StatusBadRequest, result.WithValue(b))); !ok || got[0].Message != "b" {
		t.Fatalf("builder payload: got %v, %v", got, ok)
	}

	if _, ok := Errors(result.New(http.StatusOK, result.WithValue("plain"))); ok {
		t.Fatal("plain payload must not yield a list")
	}
	if _, ok := Errors(result.New(http.StatusOK)); ok {
		t.Fatal("nil payload must not yield a list")
	}
}

func TestToViolations_PerMemberExpansion(t *testing.T) {
	l := errlist.List{
		{Message: "mismatch", Members: []string{"password", "password_confirm"}},
		{Message: "general"},
	}
	got := ToViolations(l)
	want := []apis.Violation{
		{Key: "password", Message: "mismatch"},
		{Key: "password_confirm", Message: "mismatch"},
		{Key: apis.GlobalKey, Message: "general"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToViolations = %+v, want %+v", got, want)
	}
}

func TestToViolations_GlobalDuplicateSuppression(t *testing.T) {
	l := errlist.List{
		{Message: "same"},
		{Message: "same"},
		{Message: "same", Members: []string{"x"}}, // keyed copies are kept
	}
	got := ToViolations(l)
	want := []apis.Violation{
		{Key: apis.GlobalKey, Message: "same"},
		{Key: "x", Message: "same"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToViolations = %+v, want %+v", got, want)
	}
}

func TestFeed(t *testing.T) {
	l := errlist.New().
		AddKey("email", "invalid address").
		Add("try again").
		Add("try again").
		Errors()

	var ms recordingState
	Feed(&ms, l)

	want := recordingState{
		{"email", "invalid address"},
		{apis.GlobalKey, "try again"},
	}
	if !reflect.DeepEqual(ms, want) {
		t.Fatalf("Feed recorded %+v, want %+v", ms, want)
	}

	// A nil model state is a no-op, not a panic.
	Feed(nil, l)
}

func TestToView(t *testing.T) {
	v := ToView(errlist.List{{Message: "a", Members: []string{"k"}}})
	if len(v.Errors) != 1 || v.Errors[0].Key != "k" || v.Errors[0].Message != "a" {
		t.Fatalf("ToView = %+v", v)
	}
	if ToView(nil).Errors != nil {
		t.Fatal("empty list must produce an empty view")
	}
}
