package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

// Client performs JSON requests against a Mathison API. It holds only
// immutable configuration plus a closed flag and is safe for concurrent use.
type Client struct {
	baseURL   string
	timeout   time.Duration
	client    *http.Client
	ownsHTTP  bool
	tokens    oauth2.TokenSource
	userAgent string
	logger    hclog.Logger

	closed atomic.Bool
}

// New creates a client from cfg. A nil cfg means DefaultConfig. Trailing
// slashes are stripped from the base URL.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Work on a copy so later edits to cfg do not leak into the client
	c := *cfg
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	client := &Client{
		baseURL:   strings.TrimRight(c.BaseURL, "/"),
		timeout:   c.Timeout,
		tokens:    c.TokenSource,
		userAgent: c.UserAgent,
		logger:    c.Logger.Named("mathison-client"),
	}

	if c.HTTPClient != nil {
		client.client = c.HTTPClient
	} else {
		client.client = c.NewHTTPClient()
		client.ownsHTTP = true
	}

	return client, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Get issues a GET request. Absent query values are never sent.
func (c *Client) Get(ctx context.Context, path string, query Query) (any, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request. A nil body sends no body at all.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body)
}

// Patch issues a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPatch, path, nil, body)
}

// Delete issues a DELETE request without a body.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do executes one HTTP request and returns the decoded JSON body, or nil for
// an empty body. Every failure is a *RequestError.
func (c *Client) Do(ctx context.Context, method, path string, query Query, body any) (any, error) {
	endpoint := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	fail := func(err error) error {
		return &RequestError{Method: method, URL: endpoint, Err: err}
	}

	if c.closed.Load() {
		return nil, fail(ErrClientClosed)
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fail(fmt.Errorf("failed to marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fail(fmt.Errorf("failed to obtain token: %w", err))
		}
		token.SetAuthHeader(req)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			"method", method,
			"path", path,
			"error", err,
		)
		return nil, fail(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to read response: %w", err))
	}

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fail(&StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
		})
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fail(fmt.Errorf("failed to decode response: %w", err))
	}

	return result, nil
}

// Close releases idle pooled connections and makes later calls fail with
// ErrClientClosed. A caller-supplied HTTPClient is left untouched. Close is
// safe to call more than once.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	if c.ownsHTTP {
		c.client.CloseIdleConnections()
	}
	return nil
}

// Closed reports whether Close has been called.
func (c *Client) Closed() bool {
	return c.closed.Load()
}
