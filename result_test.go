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
	"testing"

	"formval.dev/result/errlist"
)

func TestClassification(t *testing.T) {
	for c := 100; c < 600; c++ {
		r := New(c)
		if got, want := r.IsError(), c >= 400; got != want {
			t.Fatalf("New(%d).IsError() = %v, want %v", c, got, want)
		}
		if got, want := r.IsRedirect(), c >= 300 && c < 400; got != want {
			t.Fatalf("New(%d).IsRedirect() = %v, want %v", c, got, want)
		}
	}
}

func TestNew_Options(t *testing.T) {
	r := New(http.StatusCreated,
		WithValue("hello"),
		WithContentLocation("/things/1"),
	)
	if r.Status() != http.StatusCreated {
		t.Fatalf("status = %d", r.Status())
	}
	if r.Payload() != "hello" {
		t.Fatalf("payload = %v", r.Payload())
	}
	if r.ContentLocation != "/things/1" {
		t.Fatalf("content location = %q", r.ContentLocation)
	}

	rd := New(http.StatusSeeOther, WithLocation("/login"))
	if !rd.IsRedirect() || rd.Location != "/login" {
		t.Fatalf("redirect envelope = %+v", rd)
	}
}

func TestFromStatus(t *testing.T) {
	r := FromStatus(http.StatusNoContent)
	if r.Status() != http.StatusNoContent || r.Payload() != nil {
		t.Fatalf("FromStatus = %+v", r)
	}
}

func TestFromErrors(t *testing.T) {
	b := errlist.New().Add("bad {0}", "thing")

	r := FromErrors(b)
	if r.Status() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", r.Status())
	}
	l, ok := r.Payload().(errlist.List)
	if !ok {
		t.Fatalf("payload type %T, want errlist.List", r.Payload())
	}
	if len(l) != 1 || l[0].Message != "bad thing" {
		t.Fatalf("payload = %+v", l)
	}

	// The payload is a snapshot taken at conversion time.
	b.Add("later")
	if len(l) != 1 {
		t.Fatal("envelope payload must not track later builder mutation")
	}

	if r := FromErrors(nil); r.Status() != http.StatusBadRequest || r.Payload() != nil {
		t.Fatalf("FromErrors(nil) = %+v", r)
	}
}

func TestFromList(t *testing.T) {
	l := errlist.List{{Message: "a"}}
	r := FromList(l)
	if r.Status() != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", r.Status())
	}
	if got := r.Payload().(errlist.List); len(got) != 1 || got[0].Message != "a" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestResult_SatisfiesOutcome(t *testing.T) {
	var _ errlist.Outcome = New(http.StatusOK)

	b := errlist.New()
	if b.AssertOutcome(New(http.StatusBadGateway, WithValue("upstream down"))) {
		t.Fatal("error envelope must fail the assert")
	}
	if got := b.String(); got != "upstream down" {
		t.Fatalf("recorded %q", got)
	}
	if !b.AssertOutcome(New(http.StatusOK)) {
		t.Fatal("success envelope must pass the assert")
	}
}

func TestTyped(t *testing.T) {
	type order struct{ ID int }

	ok := Ok(http.StatusOK, order{ID: 7})
	if ok.Success().ID != 7 {
		t.Fatalf("Success() = %+v", ok.Success())
	}
	if v, okk := ok.SuccessOK(); !okk || v.ID != 7 {
		t.Fatalf("SuccessOK() = %+v, %v", v, okk)
	}

	fail := WrapErr[order, string](New(http.StatusConflict, WithValue("taken")))
	if !fail.IsError() {
		t.Fatal("must classify as error")
	}
	if fail.Failure() != "taken" {
		t.Fatalf("Failure() = %q", fail.Failure())
	}
	if _, okk := fail.SuccessOK(); okk {
		t.Fatal("SuccessOK must report a mismatched payload")
	}
}

func TestTyped_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("narrowing a mismatched payload must panic")
		}
	}()
	_ = Wrap[int](New(http.StatusOK, WithValue("not an int"))).Success()
}
