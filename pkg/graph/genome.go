package graph

import (
	"context"
)

// Genome returns the metadata of the active genome.
func (c *Client) Genome(ctx context.Context) (*GenomeMetadata, error) {
	raw, err := c.api.Get(ctx, "/genome", nil)
	return decodeRef[GenomeMetadata]("get genome", raw, err)
}

// Health returns server health.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	raw, err := c.api.Get(ctx, "/health", nil)
	return decodeRef[HealthResponse]("check health", raw, err)
}

// OpenAPI returns the server's OpenAPI document.
func (c *Client) OpenAPI(ctx context.Context) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/openapi.json", nil)
	return decode[map[string]any]("get openapi document", raw, err)
}
