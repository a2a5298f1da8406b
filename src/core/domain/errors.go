// Package domain contains domain entities, value objects, and domain-specific errors.
// This package should have no external dependencies except the standard library.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies an expected failure condition. The set is closed:
// every kind maps to exactly one stable code and one transport status, and
// clients may branch on the code.
type ErrorKind int

const (
	KindUnauthorized ErrorKind = iota
	KindNotFound
	KindValidation
	KindSystemFault
)

// Stable machine-readable error codes. These are part of the wire contract
// and must never change across releases.
const (
	CodeUnauthorized = "AUTH.UNAUTHORIZED"
	CodeNotFound     = "RESOURCE.NOT_FOUND"
	CodeValidation   = "INPUT.VALIDATION"
	CodeSystemFault  = "SYS.UNKNOWN"
)

// Error is a classified domain failure. It carries a stable code for
// programmatic branching, a transport status, a human-readable message,
// and optional structured details for diagnostics.
//
// Instances are constructed where the condition is detected, propagated
// up unchanged, and translated exactly once at the transport boundary.
type Error struct {
	Kind    ErrorKind
	Code    string
	Status  int
	Message string
	Details map[string]any

	// cause is the wrapped underlying error, set for system faults.
	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewUnauthorized creates an authentication failure.
func NewUnauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return &Error{
		Kind:    KindUnauthorized,
		Code:    CodeUnauthorized,
		Status:  http.StatusUnauthorized,
		Message: message,
	}
}

// NewNotFound creates a missing-resource failure. Details typically name
// the identifier that did not resolve, e.g. {"articleId": id}.
func NewNotFound(message string, details map[string]any) *Error {
	if message == "" {
		message = "Not found"
	}
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Status:  http.StatusNotFound,
		Message: message,
		Details: details,
	}
}

// NewValidation creates an invalid-input failure. Details map offending
// fields to context the caller can display; they are never parsed.
func NewValidation(message string, details map[string]any) *Error {
	if message == "" {
		message = "Invalid input"
	}
	return &Error{
		Kind:    KindValidation,
		Code:    CodeValidation,
		Status:  http.StatusUnprocessableEntity,
		Message: message,
		Details: details,
	}
}

// NewSystemFault wraps an unexpected backend or runtime failure. The
// original message is kept under details for operators; the user-facing
// message stays generic.
func NewSystemFault(cause error) *Error {
	e := &Error{
		Kind:    KindSystemFault,
		Code:    CodeSystemFault,
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
		cause:   cause,
	}
	if cause != nil {
		e.Details = map[string]any{"message": cause.Error()}
	}
	return e
}

// AsError extracts a domain *Error from err, if present anywhere in the chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsNotFound checks if an error is a not-found failure.
func IsNotFound(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindNotFound
}

// IsValidation checks if an error is a validation failure.
func IsValidation(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindValidation
}

// IsUnauthorized checks if an error is an authentication failure.
func IsUnauthorized(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindUnauthorized
}

// IsSystemFault checks if an error is an unexpected fault.
func IsSystemFault(err error) bool {
	de, ok := AsError(err)
	return ok && de.Kind == KindSystemFault
}
