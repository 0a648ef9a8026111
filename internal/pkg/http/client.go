package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// Client is a generic JSON HTTP client for external providers
type Client struct {
	BaseURL    string
	HTTPClient *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// StatusError is returned for non-2xx provider responses. Callers use the
// code to tell retryable provider faults (5xx) from terminal ones.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// GetJSON performs a GET against BaseURL+endpoint and decodes the JSON
// response into result. The request is bounded by both the client timeout
// and the context deadline.
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
