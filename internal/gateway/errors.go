// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/workhub-console/models"
)

// ErrorKind classifies a failed call. Exactly one kind applies per failure.
type ErrorKind int

const (
	// KindServer: the server responded with an error status.
	KindServer ErrorKind = iota + 1
	// KindNetwork: the request was sent but no response arrived.
	KindNetwork
	// KindRequest: the request could not be constructed or sent.
	KindRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindRequest:
		return "request"
	default:
		return "unknown"
	}
}

// Sentinels exposed through [APIError.Unwrap] so that callers can branch with
// errors.Is without inspecting status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrInternalServerError = errors.New("internal server error")
	ErrNetwork             = errors.New("network error")
	ErrRequest             = errors.New("request error")

	// ErrDecode is returned by the typed helpers when a successful payload
	// does not match the expected Go type.
	ErrDecode = errors.New("unexpected response payload")
)

var (
	errNilRequest      = errors.New("nil request")
	errBadMethod       = errors.New("unsupported http method")
	errEmptyFile       = errors.New("empty file upload")
	errMalformedHeader = errors.New("request headers are not initialised")
)

// APIError is the uniform error produced for every failed call.
type APIError struct {
	// Status is the HTTP status code, or 0 when no response arrived.
	Status int

	// Message is safe to render to the user. Never empty.
	Message string

	// Details is the backend error payload, when it had the expected shape.
	Details *models.ErrorDetail

	// Raw is the original response body (decoded JSON, or a string when the
	// body was not JSON) for server errors, and the request for network
	// errors.
	Raw any

	Kind ErrorKind

	// SessionExpired is set for 401 responses. The gateway has already
	// cleared the session and navigated to the login route when it is true.
	SessionExpired bool

	cause error
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the status sentinel and, when present, the transport error.
func (e *APIError) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// ValidationErrors returns the per-field errors reported by the backend.
func (e *APIError) ValidationErrors() []models.ValidationError {
	if e.Details == nil {
		return nil
	}
	return e.Details.ValidationErrors
}

func (e *APIError) sentinel() error {
	switch e.Kind {
	case KindNetwork:
		return ErrNetwork
	case KindRequest:
		return ErrRequest
	}

	switch {
	case e.Status == http.StatusBadRequest:
		return ErrBadRequest
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusConflict:
		return ErrConflict
	case e.Status >= http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// AsAPIError reports whether err is (or wraps) an [*APIError].
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
