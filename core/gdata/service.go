// ABOUTME: Generic authenticated GData service: header management, CRUD requests and response conversion
// ABOUTME: Service-specific clients wrap it and supply typed converters for their entries and feeds

package gdata

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	gerrors "gbase-api/core/errors"
	"gbase-api/core/interfaces"
	"gbase-api/pkg/featureflags"
	"github.com/google/uuid"
)

const (
	atomContentType = "application/atom+xml"
	clientName      = "GBaseGo/1.0"
)

// Converter turns a raw response body into a typed value
type Converter func(body []byte) (interface{}, error)

// ConvertWith adapts a typed parse function into a Converter
func ConvertWith[T any](parse func([]byte) (T, error)) Converter {
	return func(body []byte) (interface{}, error) {
		return parse(body)
	}
}

// Config describes the account and endpoint a Service talks to
type Config struct {
	Email    string
	Password string

	// Source identifies the calling application in User-Agent and ClientLogin
	Source string

	// Service is the ClientLogin service name, e.g. "gbase"
	Service string

	// Server is the host relative URIs are resolved against
	Server string

	// Scheme used for relative URIs; defaults to https
	Scheme string

	// AuthURL is the ClientLogin endpoint; defaults to ClientLoginURL
	AuthURL string

	// AdditionalHeaders are sent with every request
	AdditionalHeaders map[string]string

	// CacheTTL is how long cached GET bodies live when response caching is on
	CacheTTL time.Duration
}

// Service is a generic GData client. It is safe for concurrent use.
type Service struct {
	cfg  Config
	deps interfaces.Dependencies

	mu        sync.RWMutex
	headers   map[string]string
	authToken string
}

// NewService creates a GData service handle
func NewService(cfg Config, deps interfaces.Dependencies) *Service {
	if cfg.Scheme == "" {
		cfg.Scheme = "https"
	}
	if cfg.AuthURL == "" {
		cfg.AuthURL = ClientLoginURL
	}

	headers := make(map[string]string, len(cfg.AdditionalHeaders))
	for k, v := range cfg.AdditionalHeaders {
		headers[k] = v
	}
	cfg.AdditionalHeaders = nil

	return &Service{
		cfg:     cfg,
		deps:    deps,
		headers: headers,
	}
}

// Email returns the account email
func (s *Service) Email() string { return s.cfg.Email }

// Source returns the application identifier
func (s *Service) Source() string { return s.cfg.Source }

// ServiceName returns the ClientLogin service name
func (s *Service) ServiceName() string { return s.cfg.Service }

// Server returns the host relative URIs resolve against
func (s *Service) Server() string { return s.cfg.Server }

// SetAdditionalHeader stores a header sent with every request
func (s *Service) SetAdditionalHeader(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headers[key] = value
}

// AdditionalHeader returns a stored header and whether it is present
func (s *Service) AdditionalHeader(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.headers[key]
	return v, ok
}

// DeleteAdditionalHeader removes a stored header
func (s *Service) DeleteAdditionalHeader(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.headers, key)
}

// AdditionalHeaders returns a copy of the stored headers
func (s *Service) AdditionalHeaders() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.headers))
	for k, v := range s.headers {
		out[k] = v
	}
	return out
}

// AuthToken returns the current ClientLogin token, "" when not logged in
func (s *Service) AuthToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authToken
}

// SetAuthToken installs a token obtained elsewhere
func (s *Service) SetAuthToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authToken = token
}

// ResolveURI turns a path into an absolute URL on the configured server.
// Absolute http(s) URLs are returned unchanged.
func (s *Service) ResolveURI(uri string) string {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return uri
	}
	if !strings.HasPrefix(uri, "/") {
		uri = "/" + uri
	}
	return s.cfg.Scheme + "://" + s.cfg.Server + uri
}

// Get fetches uri. With a converter the converter's result is returned.
// Without one, Atom feeds come back as *Feed, Atom entries as *Entry and
// anything else as the raw []byte body.
func (s *Service) Get(ctx context.Context, uri string, converter Converter) (interface{}, error) {
	target := s.ResolveURI(uri)

	body, err := s.fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	return s.convert(body, converter)
}

// Post sends data to uri. data may be []byte, string, a value with a
// ToString() ([]byte, error) method, or anything encoding/xml can marshal.
// 200 and 201 are treated as success.
func (s *Service) Post(ctx context.Context, data interface{}, uri string, params map[string]string, escape bool, converter Converter) (interface{}, error) {
	return s.send(ctx, http.MethodPost, data, uri, params, escape, converter)
}

// Put replaces the resource at uri with data. 200 is treated as success.
func (s *Service) Put(ctx context.Context, data interface{}, uri string, params map[string]string, escape bool, converter Converter) (interface{}, error) {
	return s.send(ctx, http.MethodPut, data, uri, params, escape, converter)
}

// Delete removes the resource at uri and reports success
func (s *Service) Delete(ctx context.Context, uri string, params map[string]string, escape bool) (bool, error) {
	target := AppendParams(s.ResolveURI(uri), params, escape)

	header := s.requestHeader("")
	c := s.begin(ctx, http.MethodDelete, target, header)
	resp, err := s.httpClient().Delete(ctx, target, header)
	if err != nil {
		return false, s.transportError(c, err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return false, s.transportError(c, err)
	}
	s.logResponse(c, resp.StatusCode(), len(body))

	if resp.StatusCode() != http.StatusOK {
		return false, s.requestError(c, resp, body)
	}

	s.invalidate(ctx, target)
	return true, nil
}

func (s *Service) send(ctx context.Context, method string, data interface{}, uri string, params map[string]string, escape bool, converter Converter) (interface{}, error) {
	payload, err := encodeBody(data)
	if err != nil {
		return nil, err
	}

	target := AppendParams(s.ResolveURI(uri), params, escape)
	header := s.requestHeader(atomContentType)
	c := s.begin(ctx, method, target, header)

	var resp interfaces.Response
	if method == http.MethodPut {
		resp, err = s.httpClient().Put(ctx, target, bytes.NewReader(payload), header)
	} else {
		resp, err = s.httpClient().Post(ctx, target, bytes.NewReader(payload), header)
	}
	if err != nil {
		return nil, s.transportError(c, err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, s.transportError(c, err)
	}
	s.logResponse(c, resp.StatusCode(), len(body))

	ok := resp.StatusCode() == http.StatusOK
	if method == http.MethodPost {
		ok = ok || resp.StatusCode() == http.StatusCreated
	}
	if !ok {
		return nil, s.requestError(c, resp, body)
	}

	s.invalidate(ctx, target)
	return s.convert(body, converter)
}

// fetch returns the body of a successful GET, consulting the cache when enabled
func (s *Service) fetch(ctx context.Context, target string) ([]byte, error) {
	useCache := s.cacheEnabled(ctx)
	key := s.cacheKey(target)

	if useCache {
		if cached, err := s.deps.Cache.Get(ctx, key); err == nil {
			s.logger().Debug("GData cache hit", map[string]interface{}{"uri": target})
			return cached, nil
		}
	}

	header := s.requestHeader("")
	c := s.begin(ctx, http.MethodGet, target, header)
	resp, err := s.httpClient().Get(ctx, target, header)
	if err != nil {
		return nil, s.transportError(c, err)
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, s.transportError(c, err)
	}
	s.logResponse(c, resp.StatusCode(), len(body))

	if resp.StatusCode() != http.StatusOK {
		return nil, s.requestError(c, resp, body)
	}

	if useCache && len(body) > 0 {
		if err := s.deps.Cache.Set(ctx, key, body, s.cfg.CacheTTL); err != nil {
			s.logger().Warn("Failed to cache GData response", map[string]interface{}{
				"uri":   target,
				"error": err.Error(),
			})
		}
	}

	return body, nil
}

func (s *Service) convert(body []byte, converter Converter) (interface{}, error) {
	if converter != nil {
		return converter(body)
	}
	if isAtomRoot(body, "feed") {
		return FeedFromString(body)
	}
	if isAtomRoot(body, "entry") {
		return EntryFromString(body)
	}
	return body, nil
}

// requestHeader assembles the per-request headers: stored additional
// headers, auth token, User-Agent and optional Content-Type.
func (s *Service) requestHeader(contentType string) http.Header {
	header := http.Header{}

	s.mu.RLock()
	for k, v := range s.headers {
		header.Set(k, v)
	}
	token := s.authToken
	s.mu.RUnlock()

	if token != "" {
		header.Set("Authorization", "GoogleLogin auth="+token)
	}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	if header.Get("User-Agent") == "" {
		ua := clientName
		if s.cfg.Source != "" {
			ua = s.cfg.Source + " " + clientName
		}
		header.Set("User-Agent", ua)
	}

	return header
}

// call identifies one outgoing request across its log lines
type call struct {
	id      string
	method  string
	target  string
	started time.Time
}

func (c call) fields() map[string]interface{} {
	return map[string]interface{}{
		"request_id": c.id,
		"method":     c.method,
		"uri":        c.target,
	}
}

// begin starts a call and, with request tracing on, logs its redacted headers
func (s *Service) begin(ctx context.Context, method, target string, header http.Header) call {
	c := call{
		id:      uuid.New().String(),
		method:  method,
		target:  target,
		started: time.Now(),
	}

	if featureflags.Enabled(ctx, s.deps.Flags, featureflags.RequestTrace) {
		fields := c.fields()
		fields["headers"] = redactedHeaders(header)
		s.logger().Debug("GData request started", fields)
	}

	return c
}

func (s *Service) cacheEnabled(ctx context.Context) bool {
	return s.deps.Cache != nil && featureflags.Enabled(ctx, s.deps.Flags, featureflags.ResponseCache)
}

// cacheKey identifies a cached body by account and resource. The scheme is
// dropped so the http and https forms of one URI share an entry.
func (s *Service) cacheKey(target string) string {
	return fmt.Sprintf("%s:%s:%s", s.cfg.Service, s.cfg.Email, stripScheme(target))
}

// invalidate drops every cached variant of a resource that was just written,
// along with the cached listings of its parent collection
func (s *Service) invalidate(ctx context.Context, target string) {
	if !s.cacheEnabled(ctx) {
		return
	}

	resource := stripScheme(target)
	if i := strings.IndexAny(resource, "?#"); i >= 0 {
		resource = resource[:i]
	}
	resource = strings.TrimSuffix(resource, "/")

	exact := []string{}
	prefixes := []string{s.cacheKey(resource)}
	if i := strings.LastIndex(resource, "/"); i > 0 {
		parent := s.cacheKey(resource[:i])
		exact = append(exact, parent, parent+"/")
		prefixes = append(prefixes, parent+"?", parent+"/?")
	}

	for _, key := range exact {
		if err := s.deps.Cache.Delete(ctx, key); err != nil {
			s.logInvalidateFailure(target, err)
		}
	}
	for _, prefix := range prefixes {
		if err := s.deps.Cache.DeletePrefix(ctx, prefix); err != nil {
			s.logInvalidateFailure(target, err)
		}
	}
}

func (s *Service) logInvalidateFailure(target string, err error) {
	s.logger().Warn("Failed to invalidate cached GData response", map[string]interface{}{
		"uri":   target,
		"error": err.Error(),
	})
}

func stripScheme(uri string) string {
	if i := strings.Index(uri, "://"); i >= 0 {
		return uri[i+3:]
	}
	return uri
}

func (s *Service) httpClient() interfaces.HTTPClient {
	return s.deps.HTTPClient
}

func (s *Service) logger() interfaces.Logger {
	if s.deps.Logger == nil {
		return nopLogger{}
	}
	return s.deps.Logger
}

func (s *Service) logResponse(c call, status, size int) {
	fields := c.fields()
	fields["status"] = status
	fields["bytes"] = size
	fields["duration"] = time.Since(c.started).String()
	s.logger().Debug("GData request completed", fields)
}

func (s *Service) transportError(c call, err error) error {
	fields := c.fields()
	fields["error"] = err.Error()
	s.logger().Warn("GData request failed", fields)
	return gerrors.NewError(gerrors.ErrorTypeNetwork, c.method+" "+c.target).WithCause(err)
}

func (s *Service) requestError(c call, resp interfaces.Response, body []byte) error {
	reason := http.StatusText(resp.StatusCode())
	if status := resp.Status(); status != "" {
		reason = strings.TrimSpace(strings.TrimPrefix(status, fmt.Sprintf("%d", resp.StatusCode())))
	}

	fields := c.fields()
	fields["status"] = resp.StatusCode()
	s.logger().Warn("GData request rejected", fields)

	return &gerrors.RequestError{
		StatusCode: resp.StatusCode(),
		Reason:     reason,
		Body:       string(body),
		Method:     c.method,
		URI:        c.target,
	}
}

func encodeBody(data interface{}) ([]byte, error) {
	switch v := data.(type) {
	case nil:
		return nil, gerrors.NewError(gerrors.ErrorTypeEncoding, "request body is required")
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case interface{ ToString() ([]byte, error) }:
		return v.ToString()
	default:
		out, err := xml.Marshal(v)
		if err != nil {
			return nil, gerrors.NewError(gerrors.ErrorTypeEncoding, "encode request body").WithCause(err)
		}
		return append([]byte(xml.Header), out...), nil
	}
}

func redactedHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for k := range header {
		v := header.Get(k)
		if k == "Authorization" {
			v = "GoogleLogin auth=REDACTED"
		}
		out[k] = v
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
