// ABOUTME: Error kinds surfaced by the Google Base client
// ABOUTME: Re-exports the core error types so callers need only this package

package gbase

import gerrors "gbase-api/core/errors"

// Error is a generic client failure: transport, parsing, encoding or auth
type Error = gerrors.Error

// RequestError is returned when the server answers with a non-success status
type RequestError = gerrors.RequestError

// ErrorType classifies an Error
type ErrorType = gerrors.ErrorType

// Error types
const (
	ErrorTypeNetwork        = gerrors.ErrorTypeNetwork
	ErrorTypeParsing        = gerrors.ErrorTypeParsing
	ErrorTypeEncoding       = gerrors.ErrorTypeEncoding
	ErrorTypeAuthentication = gerrors.ErrorTypeAuthentication
	ErrorTypeConfiguration  = gerrors.ErrorTypeConfiguration
)

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return gerrors.NewError(errType, message)
}

// IsError reports whether err is either client error kind
func IsError(err error) bool {
	return gerrors.IsError(err)
}

// IsRequestError reports whether err carries a non-success HTTP status
func IsRequestError(err error) bool {
	return gerrors.IsRequestError(err)
}

// IsAuthenticationError reports whether err is an authentication failure
func IsAuthenticationError(err error) bool {
	return gerrors.IsType(err, gerrors.ErrorTypeAuthentication)
}

// StatusCode returns the HTTP status of a RequestError
func StatusCode(err error) (int, bool) {
	return gerrors.StatusCode(err)
}
