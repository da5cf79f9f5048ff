package chat

import (
	"context"
	"fmt"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// API is the chat and beams surface of the Mathison server. Client is the
// blocking implementation; AsyncClient runs the same calls on goroutines.
type API interface {
	Health(ctx context.Context) (map[string]any, error)
	Status(ctx context.Context) (map[string]any, error)
	Identity(ctx context.Context) (map[string]any, error)

	SendMessage(ctx context.Context, content string) (*SendMessageResponse, error)
	ChatHistory(ctx context.Context, opts HistoryOptions) (*ChatHistoryResponse, error)

	QueryBeams(ctx context.Context, query BeamQuery) (*BeamQueryResponse, error)
	GetBeam(ctx context.Context, beamID string) (*Beam, error)
	CreateBeam(ctx context.Context, req CreateBeamRequest) (*Beam, error)
	UpdateBeam(ctx context.Context, beamID string, req UpdateBeamRequest) (*Beam, error)
	PinBeam(ctx context.Context, beamID string) (map[string]any, error)
	UnpinBeam(ctx context.Context, beamID string) (map[string]any, error)
	RetireBeam(ctx context.Context, beamID string) (map[string]any, error)
	TombstoneBeam(ctx context.Context, beamID string, req TombstoneRequest) (map[string]any, error)
}

// Client is the blocking chat and beams client.
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

// Close releases the connection pool. Defer it right after New.
func (c *Client) Close() error {
	return c.api.Close()
}

// decode converts a transport result into T, wrapping any failure with op.
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

// decodeRef is decode for struct models returned by pointer.
func decodeRef[T any](op string, raw any, err error) (*T, error) {
	out, err := decode[T](op, raw, err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
