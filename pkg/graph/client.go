package graph

import (
	"context"
	"fmt"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// API is the genome, jobs and memory-graph surface of the Mathison server.
type API interface {
	Genome(ctx context.Context) (*GenomeMetadata, error)
	Health(ctx context.Context) (*HealthResponse, error)
	OpenAPI(ctx context.Context) (map[string]any, error)

	RunJob(ctx context.Context, req RunJobRequest) (*JobResult, error)
	JobStatus(ctx context.Context, query JobQuery) (*JobStatusResponse, error)
	JobLogs(ctx context.Context, query JobQuery) (map[string]any, error)
	ResumeJob(ctx context.Context, req ResumeJobRequest) (map[string]any, error)

	CreateNode(ctx context.Context, req CreateNodeRequest) (*CreateNodeResponse, error)
	GetNode(ctx context.Context, nodeID string) (*Node, error)
	UpdateNode(ctx context.Context, nodeID string, req UpdateNodeRequest) (map[string]any, error)
	NodeEdges(ctx context.Context, nodeID string) (map[string]any, error)
	NodeHyperedges(ctx context.Context, nodeID string) (map[string]any, error)
	SearchNodes(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error)

	CreateEdge(ctx context.Context, req CreateEdgeRequest) (*CreateEdgeResponse, error)
	GetEdge(ctx context.Context, edgeID string) (*Edge, error)
	CreateHyperedge(ctx context.Context, payload map[string]any) (map[string]any, error)
	GetHyperedge(ctx context.Context, hyperedgeID string) (map[string]any, error)

	Interpret(ctx context.Context, text string, opts InterpretOptions) (*InterpretResponse, error)
}

// Client is the blocking graph and jobs client.
type Client struct {
	api *apiclient.Client
}

var _ API = (*Client)(nil)

// New creates a client. A nil cfg means apiclient.DefaultConfig.
func New(cfg *apiclient.Config) (*Client, error) {
	api, err := apiclient.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{api: api}, nil
}

// BaseURL returns the normalized server address.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.api.Close()
}

func decode[T any](op string, raw any, err error) (T, error) {
	var out T
	if err != nil {
		return out, fmt.Errorf("failed to %s: %w", op, err)
	}
	if err := apiclient.Decode(raw, &out); err != nil {
		return out, fmt.Errorf("failed to %s: %w", op, err)
	}
	return out, nil
}

func decodeRef[T any](op string, raw any, err error) (*T, error) {
	out, err := decode[T](op, raw, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
