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

// Package grpcx translates result envelopes into gRPC status errors,
// carrying recorded validation failures as google.rpc.BadRequest details.
package grpcx

import (
	"fmt"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"formval.dev/result"
	"formval.dev/result/adapter"
	"formval.dev/result/errlist"
)

// Code maps an envelope's HTTP-semantics status to a gRPC status code.
//
// Well-known statuses map to their canonical gRPC counterparts; any other
// 4xx becomes InvalidArgument and any other 5xx becomes Internal. Non-error
// statuses map to OK.
func Code(status int) codes.Code {
	switch status {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusRequestedRangeNotSatisfiable:
		return codes.OutOfRange
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case 499: // client closed request
		return codes.Canceled
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	}
	switch {
	case status >= 500:
		return codes.Internal
	case status >= 400:
		return codes.InvalidArgument
	default:
		return codes.OK
	}
}

// BadRequest converts a snapshot into the canonical google.rpc.BadRequest
// detail: one field violation per member key, in entry order. Unkeyed
// entries use an empty field with exact duplicates suppressed, mirroring the
// model-state feed (see adapter.Feed).
func BadRequest(l errlist.List) *errdetails.BadRequest {
	vs := adapter.ToViolations(l)
	if len(vs) == 0 {
		return nil
	}
	br := &errdetails.BadRequest{
		FieldViolations: make([]*errdetails.BadRequest_FieldViolation, 0, len(vs)),
	}
	for _, v := range vs {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Key,
			Description: v.Message,
		})
	}
	return br
}

// Error converts an error envelope into a gRPC status error.
//
// Non-error envelopes produce nil. The status message is the snapshot's
// aggregate text when the envelope carries one, the payload's string form
// otherwise, and the standard HTTP status text as a last resort. Recorded
// failures travel as a BadRequest detail.
func Error(r result.Result) error {
	if !r.IsError() {
		return nil
	}

	var (
		msg string
		br  *errdetails.BadRequest
	)
	if l, ok := adapter.Errors(r); ok {
		msg = l.String()
		br = BadRequest(l)
	} else if v := r.Payload(); v != nil {
		msg = fmt.Sprint(v)
	}
	if msg == "" {
		msg = http.StatusText(r.Status())
	}

	code := Code(r.Status())
	if br == nil {
		return gstatus.New(code, msg).Err()
	}

	// Try to attach the violations as a detail. If packing fails, the bare
	// status still carries the right code and message.
	anyBR, err := anypb.New(br)
	if err != nil {
		return gstatus.New(code, msg).Err()
	}
	return gstatus.FromProto(&spb.Status{
		Code:    int32(code),
		Message: msg,
		Details: []*anypb.Any{anyBR},
	}).Err()
}

// ExtractBadRequest pulls the google.rpc.BadRequest detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}
