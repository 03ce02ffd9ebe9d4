package interfaces

import (
	"context"
	"io"
	"net/http"
)

// HTTPClient defines the interface for making HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
//
// Every method takes the full set of request headers; implementations add
// their own defaults (User-Agent) only when the caller did not set them.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string, header http.Header) (Response, error)

	// Post performs an HTTP POST request with the given body.
	Post(ctx context.Context, url string, body io.Reader, header http.Header) (Response, error)

	// Put performs an HTTP PUT request with the given body.
	Put(ctx context.Context, url string, body io.Reader, header http.Header) (Response, error)

	// Delete performs an HTTP DELETE request.
	Delete(ctx context.Context, url string, header http.Header) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Status returns the status line text, e.g. "404 Not Found".
	Status() string

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	Header(key string) string
}
