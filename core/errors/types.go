// ABOUTME: Error kinds raised by the GData transport and the Google Base service
// ABOUTME: Error covers transport/parse/auth failures, RequestError covers non-success HTTP statuses

package errors

import (
	"errors"
	"fmt"
)

// ErrorType classifies a generic Error
type ErrorType string

const (
	// ErrorTypeNetwork indicates the request never produced a response
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeParsing indicates a response body could not be decoded
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeEncoding indicates a request body could not be encoded
	ErrorTypeEncoding ErrorType = "encoding"

	// ErrorTypeAuthentication indicates missing or rejected credentials
	ErrorTypeAuthentication ErrorType = "authentication"

	// ErrorTypeConfiguration indicates an invalid client setup
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error is the generic failure raised by the service layer
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// WithCause attaches the underlying cause
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// RequestError is raised when the server answers with a non-success status
type RequestError struct {
	// StatusCode is the HTTP status returned by the server
	StatusCode int

	// Reason is the status text, or the ClientLogin error code for login failures
	Reason string

	// Body is the raw response body
	Body string

	// Method and URI identify the failed request
	Method string
	URI    string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("request error: %s %s: %d %s: %s", e.Method, e.URI, e.StatusCode, e.Reason, e.Body)
}

// IsError reports whether err is either of the service error kinds.
// A RequestError is a specialised Error, so both match.
func IsError(err error) bool {
	var genericErr *Error
	if errors.As(err, &genericErr) {
		return true
	}
	return IsRequestError(err)
}

// IsRequestError checks if an error is a RequestError
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// IsType checks if err is a generic Error of the given type
func IsType(err error, errType ErrorType) bool {
	var genericErr *Error
	if errors.As(err, &genericErr) {
		return genericErr.Type == errType
	}
	return false
}

// StatusCode returns the HTTP status carried by a RequestError
func StatusCode(err error) (int, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode, true
	}
	return 0, false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
