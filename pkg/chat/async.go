package chat

import (
	"context"
	"io"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// AsyncClient exposes the API as futures. Every method starts its call
// immediately and returns without blocking.
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

// WrapAsync runs the calls of api asynchronously. If api is an io.Closer it is
// closed by AsyncClient.Close.
func WrapAsync(api API) *AsyncClient {
	return &AsyncClient{api: api}
}

// Close waits for in-flight calls to finish and then closes the underlying
// client.
func (a *AsyncClient) Close() error {
	a.exec.Drain()
	if closer, ok := a.api.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (a *AsyncClient) Health(ctx context.Context) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, a.api.Health)
}

func (a *AsyncClient) Status(ctx context.Context) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, a.api.Status)
}

func (a *AsyncClient) Identity(ctx context.Context) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, a.api.Identity)
}

func (a *AsyncClient) SendMessage(ctx context.Context, content string) *apiclient.Future[*SendMessageResponse] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*SendMessageResponse, error) {
		return a.api.SendMessage(ctx, content)
	})
}

func (a *AsyncClient) ChatHistory(ctx context.Context, opts HistoryOptions) *apiclient.Future[*ChatHistoryResponse] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*ChatHistoryResponse, error) {
		return a.api.ChatHistory(ctx, opts)
	})
}

func (a *AsyncClient) QueryBeams(ctx context.Context, query BeamQuery) *apiclient.Future[*BeamQueryResponse] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*BeamQueryResponse, error) {
		return a.api.QueryBeams(ctx, query)
	})
}

func (a *AsyncClient) GetBeam(ctx context.Context, beamID string) *apiclient.Future[*Beam] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*Beam, error) {
		return a.api.GetBeam(ctx, beamID)
	})
}

func (a *AsyncClient) CreateBeam(ctx context.Context, req CreateBeamRequest) *apiclient.Future[*Beam] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*Beam, error) {
		return a.api.CreateBeam(ctx, req)
	})
}

func (a *AsyncClient) UpdateBeam(ctx context.Context, beamID string, req UpdateBeamRequest) *apiclient.Future[*Beam] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (*Beam, error) {
		return a.api.UpdateBeam(ctx, beamID, req)
	})
}

func (a *AsyncClient) PinBeam(ctx context.Context, beamID string) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.PinBeam(ctx, beamID)
	})
}

func (a *AsyncClient) UnpinBeam(ctx context.Context, beamID string) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.UnpinBeam(ctx, beamID)
	})
}

func (a *AsyncClient) RetireBeam(ctx context.Context, beamID string) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.RetireBeam(ctx, beamID)
	})
}

func (a *AsyncClient) TombstoneBeam(ctx context.Context, beamID string, req TombstoneRequest) *apiclient.Future[map[string]any] {
	return apiclient.Submit(&a.exec, ctx, func(ctx context.Context) (map[string]any, error) {
		return a.api.TombstoneBeam(ctx, beamID, req)
	})
}
