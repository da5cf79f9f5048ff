package graph

import (
	"context"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// ===================================================================
// Nodes
// ===================================================================

// CreateNode writes a node. Data is sent as {} when nil.
func (c *Client) CreateNode(ctx context.Context, req CreateNodeRequest) (*CreateNodeResponse, error) {
	data := req.Data
	if data == nil {
		data = map[string]any{}
	}

	payload := apiclient.Payload{}.
		Set("idempotency_key", req.IdempotencyKey).
		Set("type", req.Type).
		Set("data", data).
		SetMap("metadata", req.Metadata).
		SetString("id", req.ID)

	raw, err := c.api.Post(ctx, "/memory/nodes", payload)
	return decodeRef[CreateNodeResponse]("create node", raw, err)
}

// GetNode fetches one node.
func (c *Client) GetNode(ctx context.Context, nodeID string) (*Node, error) {
	raw, err := c.api.Get(ctx, "/memory/nodes/"+nodeID, nil)
	return decodeRef[Node]("get node", raw, err)
}

// UpdateNode updates the fields set in req.
func (c *Client) UpdateNode(ctx context.Context, nodeID string, req UpdateNodeRequest) (map[string]any, error) {
	payload := apiclient.Payload{}.
		SetString("type", req.Type).
		SetMap("data", req.Data).
		SetMap("metadata", req.Metadata)

	raw, err := c.api.Post(ctx, "/memory/nodes/"+nodeID, payload)
	return decode[map[string]any]("update node", raw, err)
}

// NodeEdges lists the edges touching a node.
func (c *Client) NodeEdges(ctx context.Context, nodeID string) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/memory/nodes/"+nodeID+"/edges", nil)
	return decode[map[string]any]("get node edges", raw, err)
}

// NodeHyperedges lists the hyperedges containing a node.
func (c *Client) NodeHyperedges(ctx context.Context, nodeID string) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/memory/nodes/"+nodeID+"/hyperedges", nil)
	return decode[map[string]any]("get node hyperedges", raw, err)
}

// SearchNodes runs a text search over nodes.
func (c *Client) SearchNodes(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error) {
	limit := DefaultSearchLimit
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	params := apiclient.Query{}.
		Set("q", query).
		SetInt("limit", &limit)

	raw, err := c.api.Get(ctx, "/memory/search", params)
	return decodeRef[SearchResponse]("search nodes", raw, err)
}

// ===================================================================
// Edges and hyperedges
// ===================================================================

// CreateEdge writes an edge.
func (c *Client) CreateEdge(ctx context.Context, req CreateEdgeRequest) (*CreateEdgeResponse, error) {
	payload := apiclient.Payload{}.
		Set("idempotency_key", req.IdempotencyKey).
		Set("from", req.From).
		Set("to", req.To).
		Set("type", req.Type).
		SetMap("metadata", req.Metadata)

	raw, err := c.api.Post(ctx, "/memory/edges", payload)
	return decodeRef[CreateEdgeResponse]("create edge", raw, err)
}

// GetEdge fetches one edge.
func (c *Client) GetEdge(ctx context.Context, edgeID string) (*Edge, error) {
	raw, err := c.api.Get(ctx, "/memory/edges/"+edgeID, nil)
	return decodeRef[Edge]("get edge", raw, err)
}

// CreateHyperedge writes a hyperedge. The payload is passed through
// unchanged; nil sends no body.
func (c *Client) CreateHyperedge(ctx context.Context, payload map[string]any) (map[string]any, error) {
	var body any
	if payload != nil {
		body = payload
	}

	raw, err := c.api.Post(ctx, "/memory/hyperedges", body)
	return decode[map[string]any]("create hyperedge", raw, err)
}

// GetHyperedge fetches one hyperedge.
func (c *Client) GetHyperedge(ctx context.Context, hyperedgeID string) (map[string]any, error) {
	raw, err := c.api.Get(ctx, "/memory/hyperedges/"+hyperedgeID, nil)
	return decode[map[string]any]("get hyperedge", raw, err)
}
