package gdata

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"gbase-api/core/interfaces"
	"github.com/stretchr/testify/mock"
)

// recordedRequest captures one call made through mockHTTPClient
type recordedRequest struct {
	method string
	url    string
	body   string
	header http.Header
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(req recordedRequest) (interfaces.Response, error)
}

func (m *mockHTTPClient) record(method, url string, body io.Reader, header http.Header) (interfaces.Response, error) {
	req := recordedRequest{method: method, url: url, header: header}
	if body != nil {
		data, _ := io.ReadAll(body)
		req.body = string(data)
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.respond != nil {
		return m.respond(req)
	}
	return &mockResponse{statusCode: http.StatusOK}, nil
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, header http.Header) (interfaces.Response, error) {
	return m.record(http.MethodGet, url, nil, header)
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader, header http.Header) (interfaces.Response, error) {
	return m.record(http.MethodPost, url, body, header)
}

func (m *mockHTTPClient) Put(ctx context.Context, url string, body io.Reader, header http.Header) (interfaces.Response, error) {
	return m.record(http.MethodPut, url, body, header)
}

func (m *mockHTTPClient) Delete(ctx context.Context, url string, header http.Header) (interfaces.Response, error) {
	return m.record(http.MethodDelete, url, nil, header)
}

func (m *mockHTTPClient) last() recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

func (m *mockHTTPClient) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Status() string {
	return ""
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func respondWith(status int, body string) func(recordedRequest) (interfaces.Response, error) {
	return func(recordedRequest) (interfaces.Response, error) {
		return &mockResponse{statusCode: status, body: body}, nil
	}
}

// mapCache is a minimal Cache for exercising the response cache path
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, io.EOF
	}
	return v, nil
}

func (c *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *mapCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *mapCache) DeletePrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

const testEntry = `<?xml version="1.0" encoding="UTF-8"?>
<entry xmlns="http://www.w3.org/2005/Atom" xmlns:g="http://base.google.com/ns/1.0">
  <id>http://www.google.com/base/feeds/items/1234</id>
  <published>2006-11-20T19:52:27.000Z</published>
  <updated>2006-11-20T19:52:27.000Z</updated>
  <category scheme="http://base.google.com/categories/itemtypes" term="Products"/>
  <title type="text">Digital camera</title>
  <content type="html">A very nice camera</content>
  <link rel="alternate" type="text/html" href="http://www.example.com/camera"/>
  <link rel="self" type="application/atom+xml" href="http://www.google.com/base/feeds/items/1234"/>
  <link rel="edit" type="application/atom+xml" href="http://www.google.com/base/feeds/items/1234"/>
  <author><name>Jane</name><email>jane@example.com</email></author>
  <g:item_type type="text">Products</g:item_type>
  <g:price type="floatUnit">199.99 usd</g:price>
  <g:condition type="text">new</g:condition>
</entry>`

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"
      xmlns:openSearch="http://a9.com/-/spec/opensearchrss/1.0/"
      xmlns:g="http://base.google.com/ns/1.0">
  <id>http://www.google.com/base/feeds/snippets</id>
  <updated>2006-11-20T19:52:27.000Z</updated>
  <title type="text">Items matching query: digital camera</title>
  <link rel="http://schemas.google.com/g/2005#feed" type="application/atom+xml" href="http://www.google.com/base/feeds/snippets"/>
  <link rel="next" type="application/atom+xml" href="http://www.google.com/base/feeds/snippets?start-index=26"/>
  <openSearch:totalResults>1803</openSearch:totalResults>
  <openSearch:startIndex>1</openSearch:startIndex>
  <openSearch:itemsPerPage>25</openSearch:itemsPerPage>
  <entry>
    <id>http://www.google.com/base/feeds/snippets/1</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">Camera one</title>
    <content type="html">First</content>
    <link rel="alternate" type="text/html" href="http://www.example.com/1"/>
    <g:item_type type="text">Products</g:item_type>
    <g:price type="floatUnit">100 usd</g:price>
  </entry>
  <entry>
    <id>http://www.google.com/base/feeds/snippets/2</id>
    <updated>2006-11-20T19:52:27.000Z</updated>
    <title type="text">Camera two</title>
    <g:item_type type="text">Products</g:item_type>
  </entry>
</feed>`

// mockLogger is a testify mock implementation of the Logger interface
type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.Called(msg, fields)
}
