// Package errors provides structured error types for chartpress.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-facing messages that can be returned to clients as-is
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes map onto the failure classes of a render request:
//   - INVALID_INPUT, UNSUPPORTED_CHART_TYPE, PAYLOAD_TOO_LARGE: client errors
//   - NOT_FOUND, METHOD_NOT_ALLOWED: routing errors
//   - RENDER_FAILED, DOCUMENT_FAILED, INTERNAL_ERROR: server errors
//
// The translation to HTTP status codes happens at the transport boundary
// (see pkg/api), so the same errors surface unchanged in the CLI.
//
// # Usage
//
//	err := errors.Invalid("chartData.labels", "labels cannot be empty")
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRender, origErr, "failed to draw %s chart", kind)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Client errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeUnsupportedKind Code = "UNSUPPORTED_CHART_TYPE"
	ErrCodePayloadTooLarge Code = "PAYLOAD_TOO_LARGE"

	// Routing errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeMethodNotAllowed Code = "METHOD_NOT_ALLOWED"

	// Server errors
	ErrCodeRender   Code = "RENDER_FAILED"
	ErrCodeDocument Code = "DOCUMENT_FAILED"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Field   string // Offending input field, if any (e.g. "chartData.labels")
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Invalid creates an INVALID_INPUT error attributed to a request field.
func Invalid(field, format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidInput,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetField returns the input field an error is attributed to, if any.
func GetField(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsClientError reports whether err was caused by the request rather than by
// the service.
func IsClientError(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeUnsupportedKind, ErrCodePayloadTooLarge,
		ErrCodeNotFound, ErrCodeMethodNotAllowed:
		return true
	}
	return false
}
