// Package apiclient is the Go consumer of the dashboard API. It wraps the
// HTTP round trip behind a uniform result type and keeps a small read cache
// that any mutation invalidates, so list views refetch after a write.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Response is the uniform outcome of every call. Transport failures,
// non-2xx statuses and decode problems all surface through Success and
// Error; callers never receive a Go error.
type Response struct {
	Success bool
	// Status is the HTTP status code, 0 when the request never went out.
	Status int
	// Data is the raw response body of a successful call.
	Data json.RawMessage
	// Error carries the server's message, or a transport description.
	Error string
}

// Decode unmarshals the response body into out.
func (r *Response) Decode(out interface{}) error {
	if !r.Success {
		return fmt.Errorf("cannot decode failed response: %s", r.Error)
	}
	return json.Unmarshal(r.Data, out)
}

// Client talks to one API base URL. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[string]json.RawMessage
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   map[string]json.RawMessage{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches endpoint, serving repeated reads from the cache until the
// next mutation. The endpoint includes any query string and is the cache
// key, so "/alunos?page=1" and "/alunos?page=2" cache independently.
func (c *Client) Get(ctx context.Context, endpoint string) *Response {
	c.mu.Lock()
	if cached, ok := c.cache[endpoint]; ok {
		c.mu.Unlock()
		return &Response{Success: true, Status: http.StatusOK, Data: cached}
	}
	c.mu.Unlock()

	resp := c.do(ctx, http.MethodGet, endpoint, nil)
	if resp.Success {
		c.mu.Lock()
		c.cache[endpoint] = resp.Data
		c.mu.Unlock()
	}
	return resp
}

// Post sends a create request and drops the whole read cache.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) *Response {
	resp := c.do(ctx, http.MethodPost, endpoint, body)
	c.invalidate()
	return resp
}

// Put sends an update request and drops the whole read cache.
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}) *Response {
	resp := c.do(ctx, http.MethodPut, endpoint, body)
	c.invalidate()
	return resp
}

// Delete sends a delete request and drops the whole read cache.
func (c *Client) Delete(ctx context.Context, endpoint string) *Response {
	resp := c.do(ctx, http.MethodDelete, endpoint, nil)
	c.invalidate()
	return resp
}

// invalidate empties the read cache. Mutations invalidate everything
// rather than guessing which cached pages a write affected.
func (c *Client) invalidate() {
	c.mu.Lock()
	c.cache = map[string]json.RawMessage{}
	c.mu.Unlock()
}

// errorEnvelope is the server's failure shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, endpoint string, body interface{}) *Response {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Response{Error: fmt.Sprintf("failed to encode request body: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return &Response{Error: fmt.Sprintf("failed to build request: %v", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return &Response{Error: fmt.Sprintf("request failed: %v", err)}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return &Response{Status: httpResp.StatusCode, Error: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		message := ""
		var envelope errorEnvelope
		if err := json.Unmarshal(data, &envelope); err == nil {
			message = envelope.Message
		}
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", httpResp.StatusCode)
		}
		return &Response{Status: httpResp.StatusCode, Error: message}
	}

	return &Response{Success: true, Status: httpResp.StatusCode, Data: data}
}
