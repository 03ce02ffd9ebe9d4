// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Retries idempotent verbs with exponential backoff and can throttle outgoing requests

package standard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"gbase-api/core/interfaces"
	"golang.org/x/time/rate"
)

const (
	defaultMaxRetries = 3
	userAgent         = "GBaseGo/1.0"
)

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithRateLimit throttles outgoing requests to rps requests per second
// with the given burst. A non-positive rps leaves the client unthrottled.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *StandardHTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMaxRetries sets how many attempts GET and DELETE make on 5xx or transport errors
func WithMaxRetries(n int) Option {
	return func(c *StandardHTTPClient) {
		if n < 1 {
			n = 1
		}
		c.maxRetries = n
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string, header http.Header) (interfaces.Response, error) {
	return c.doWithRetry(ctx, http.MethodGet, url, header)
}

// Delete performs an HTTP DELETE request
func (c *StandardHTTPClient) Delete(ctx context.Context, url string, header http.Header) (interfaces.Response, error) {
	return c.doWithRetry(ctx, http.MethodDelete, url, header)
}

// Post performs an HTTP POST request
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader, header http.Header) (interfaces.Response, error) {
	return c.doOnce(ctx, http.MethodPost, url, body, header)
}

// Put performs an HTTP PUT request
func (c *StandardHTTPClient) Put(ctx context.Context, url string, body io.Reader, header http.Header) (interfaces.Response, error) {
	return c.doOnce(ctx, http.MethodPut, url, body, header)
}

// doWithRetry sends a body-less request, retrying transport errors and 5xx
func (c *StandardHTTPClient) doWithRetry(ctx context.Context, method, url string, header http.Header) (interfaces.Response, error) {
	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := c.newRequest(ctx, method, url, nil, header)
		if err != nil {
			return nil, err
		}

		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			resp = nil
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		// Keep the last 5xx response for the caller; close the others
		if attempt < c.maxRetries-1 {
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			resp.Body.Close()
			resp = nil
		}
	}

	if resp == nil {
		return nil, lastErr
	}

	return newResponse(resp), nil
}

// doOnce sends a request without retrying; request bodies are not replayable
func (c *StandardHTTPClient) doOnce(ctx context.Context, method, url string, body io.Reader, header http.Header) (interfaces.Response, error) {
	if body == nil {
		body = bytes.NewReader(nil)
	}

	req, err := c.newRequest(ctx, method, url, body, header)
	if err != nil {
		return nil, err
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return newResponse(resp), nil
}

func (c *StandardHTTPClient) newRequest(ctx context.Context, method, url string, body io.Reader, header http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}

	return req, nil
}

// wait blocks until the rate limiter admits one more request
func (c *StandardHTTPClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	status     string
	body       io.ReadCloser
	headers    http.Header
}

func newResponse(resp *http.Response) *httpResponse {
	return &httpResponse{
		statusCode: resp.StatusCode,
		status:     resp.Status,
		body:       resp.Body,
		headers:    resp.Header,
	}
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Status returns the status line text
func (r *httpResponse) Status() string {
	return r.status
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
