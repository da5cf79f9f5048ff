package graph

import (
	"context"
	"io"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// AsyncClient exposes the API as futures.
type AsyncClient struct {
	api  API
	exec apiclient.Executor
}

// NewAsync creates an AsyncClient with its own transport.
func NewAsync(cfg *apiclient.Config) (*AsyncClient, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return WrapAsync(c), nil
}

// WrapAsync runs the calls of api asynchronously.
func WrapAsync(api API) *AsyncClient {
	return &AsyncClient{api: api}
}

// Close waits for in-flight calls, then closes the underlying client if it
// is an io.Closer.
func (a *AsyncClient) Close() error {
	a.exec.Drain()
	if closer, ok := a.api.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (a *AsyncClient) Genome(ctx context.Context) *apiclient.Future[*GenomeMetadata] {
	return apiclient.Submit(&a.exec, ctx, a.api.Genome)
}

func (a *AsyncClient) Health(ctx context.Context) *apiclient.Future[*HealthResponse] {
	return apiclient.Submit(&a.exec, ctx, a.api.Health)
}

func (a *AsyncClient) OpenAPI(ctx context.Context) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, a.api.OpenAPI)
}

func (a *AsyncClient) RunJob(ctx context.Context, req RunJobRequest) *apiclient.Future[*JobResult] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*JobResult, error) {
		return a.api.RunJob(ctx, req)
	})
}

func (a *AsyncClient) JobStatus(ctx context.Context, query JobQuery) *apiclient.Future[*JobStatusResponse] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*JobStatusResponse, error) {
		return a.api.JobStatus(ctx, query)
	})
}

func (a *AsyncClient) JobLogs(ctx context.Context, query JobQuery) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.JobLogs(ctx, query)
	})
}

func (a *AsyncClient) ResumeJob(ctx context.Context, req ResumeJobRequest) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.ResumeJob(ctx, req)
	})
}

func (a *AsyncClient) CreateNode(ctx context.Context, req CreateNodeRequest) *apiclient.Future[*CreateNodeResponse] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*CreateNodeResponse, error) {
		return a.api.CreateNode(ctx, req)
	})
}

func (a *AsyncClient) GetNode(ctx context.Context, nodeID string) *apiclient.Future[*Node] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*Node, error) {
		return a.api.GetNode(ctx, nodeID)
	})
}

func (a *AsyncClient) UpdateNode(ctx context.Context, nodeID string, req UpdateNodeRequest) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.UpdateNode(ctx, nodeID, req)
	})
}

func (a *AsyncClient) NodeEdges(ctx context.Context, nodeID string) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.NodeEdges(ctx, nodeID)
	})
}

func (a *AsyncClient) NodeHyperedges(ctx context.Context, nodeID string) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.NodeHyperedges(ctx, nodeID)
	})
}

func (a *AsyncClient) SearchNodes(ctx context.Context, query string, opts SearchOptions) *apiclient.Future[*SearchResponse] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*SearchResponse, error) {
		return a.api.SearchNodes(ctx, query, opts)
	})
}

func (a *AsyncClient) CreateEdge(ctx context.Context, req CreateEdgeRequest) *apiclient.Future[*CreateEdgeResponse] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*CreateEdgeResponse, error) {
		return a.api.CreateEdge(ctx, req)
	})
}

func (a *AsyncClient) GetEdge(ctx context.Context, edgeID string) *apiclient.Future[*Edge] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*Edge, error) {
		return a.api.GetEdge(ctx, edgeID)
	})
}

func (a *AsyncClient) CreateHyperedge(ctx context.Context, payload map[string]any) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.CreateHyperedge(ctx, payload)
	})
}

func (a *AsyncClient) GetHyperedge(ctx context.Context, hyperedgeID string) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.GetHyperedge(ctx, hyperedgeID)
	})
}

func (a *AsyncClient) Interpret(ctx context.Context, text string, opts InterpretOptions) *apiclient.Future[*InterpretResponse] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*InterpretResponse, error) {
		return a.api.Interpret(ctx, text, opts)
	})
}
