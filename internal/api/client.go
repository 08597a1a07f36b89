// Package api talks to the remote expense service.
// All outbound HTTP goes through Client, the single gateway: JSON in, JSON
// out, errors propagated to the caller untranslated. The service is a mock
// REST backend, so there are no auth headers and no retry policy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fintrack/internal/logging"

	"github.com/google/uuid"
)

// ClientConfig configures the API gateway.
type ClientConfig struct {
	BaseURL string
	// Timeout zero means the client waits indefinitely.
	Timeout time.Duration
}

// Client is the HTTP gateway for the expense service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// StatusError is a non-2xx response. The body is carried verbatim because
// the mock API's 404s are only distinguishable by message text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: unexpected status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a gateway for the given base URL.
func NewClient(cfg ClientConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one JSON round trip. path is relative ("/expenses"), query may
// be nil, body is marshalled when non-nil, and the response body is decoded
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	requestID := uuid.NewString()[:8]
	rl := logging.WithRequestID(logging.CategoryAPI, requestID)
	timer := logging.StartTimer(logging.CategoryAPI, method+" "+path)
	defer timer.Stop()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	rl.Debug("%s %s", method, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		rl.Error("%s %s failed: %v", method, path, err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		rl.Error("%s %s read body failed: %v", method, path, err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	rl.Debug("%s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rl.Error("%s %s -> %d: %s", method, path, resp.StatusCode, truncateBody(respBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func truncateBody(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
