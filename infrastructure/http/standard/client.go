// ABOUTME: Standard HTTP client implementation used to reach the fact-checking service
// ABOUTME: Issues single-shot requests; any timeout is the transport's, zero meaning none

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"fact-chex/core/interfaces"
)

const userAgent = "FactChex/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// Option customizes the underlying http.Client
type Option func(*http.Client)

// WithTransport replaces the client's round tripper
func WithTransport(rt http.RoundTripper) Option {
	return func(c *http.Client) {
		c.Transport = rt
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout leaves requests unbounded.
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	client := &http.Client{
		Timeout: timeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return &StandardHTTPClient{
		client: client,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	return c.do(req)
}

// Post performs an HTTP POST request with a JSON body. Requests are never
// retried: a failed call is reported to the caller as is.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req)
}

func (c *StandardHTTPClient) do(req *http.Request) (interfaces.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
