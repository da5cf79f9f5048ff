package chat

import (
	"context"
)

// Health checks the API. The body is returned verbatim.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/health", nil)
	return decode[map[string]any]("check health", raw, err)
}

// Status returns the system status document.
func (c *Client) Status(ctx context.Context) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/api/status", nil)
	return decode[map[string]any]("get status", raw, err)
}

// Identity returns the server's identity document.
func (c *Client) Identity(ctx context.Context) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/api/identity", nil)
	return decode[map[string]any]("get identity", raw, err)
}
