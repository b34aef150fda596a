// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error. Every failure produced by the relay or the
// client gateway carries exactly one Kind.
type Kind string

const (
	KindValidation    Kind = "VALIDATION_ERROR"
	KindConfiguration Kind = "CONFIGURATION_ERROR"
	KindUpstream      Kind = "UPSTREAM_ERROR"
	KindTimeout       Kind = "TIMEOUT_ERROR"
	KindUnreachable   Kind = "UNREACHABLE_ERROR"
	KindInternal      Kind = "INTERNAL_ERROR"
)

// String implements fmt.Stringer
func (k Kind) String() string {
	return string(k)
}

// Error is the application error type.
// Message is the stable, human-readable text surfaced as the "error" field.
// Context holds extra fields merged into the JSON error body.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithCause attaches the underlying error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds a field to the JSON error body
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Body returns the JSON error body: {"error": Message, ...Context}
func (e *Error) Body() map[string]any {
	body := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		body[k] = v
	}
	body["error"] = e.Message
	return body
}

func New(kind Kind, message string, statusCode int) *Error {
	return &Error{
		Kind:       kind,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewValidationError(message, field string) *Error {
	e := New(KindValidation, message, http.StatusBadRequest)
	e.Context = map[string]any{"field": field}
	return e
}

func NewConfigurationError(message string) *Error {
	return New(KindConfiguration, message, http.StatusInternalServerError)
}

func NewUpstreamError(message string, statusCode int) *Error {
	return New(KindUpstream, message, statusCode)
}

func NewTimeoutError(message string) *Error {
	return New(KindTimeout, message, http.StatusRequestTimeout)
}

func NewUnreachableError(message string, cause error) *Error {
	return New(KindUnreachable, message, http.StatusServiceUnavailable).WithCause(cause)
}

func NewInternalError(message string, cause error) *Error {
	return New(KindInternal, message, http.StatusInternalServerError).WithCause(cause)
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
