package chat

import (
	"context"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// ===================================================================
// Beams
// ===================================================================
// Beam ids are placed into the path as given. Ids containing '/', '?' or
// '#' are not supported.

// QueryBeams lists beams matching query.
func (c *Client) QueryBeams(ctx context.Context, query BeamQuery) (*BeamQueryResponse, error) {
	params := apiclient.Query{}.
		SetString("text", query.Text).
		AddStrings("tags", query.Tags).
		AddStrings("kinds", query.Kinds).
		SetBool("include_dead", query.IncludeDead).
		SetInt("limit", query.Limit)

	raw, err := c.api.Get(ctx, "/api/beams", params)
	return decodeRef[BeamQueryResponse]("query beams", raw, err)
}

// GetBeam fetches one beam.
func (c *Client) GetBeam(ctx context.Context, beamID string) (*Beam, error) {
	raw, err := c.api.Get(ctx, "/api/beams/"+beamID, nil)
	return decodeRef[Beam]("get beam", raw, err)
}

// CreateBeam creates a beam. Tags is always sent, as [] when nil.
func (c *Client) CreateBeam(ctx context.Context, req CreateBeamRequest) (*Beam, error) {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	payload := apiclient.Payload{}.
		Set("kind", req.Kind).
		Set("title", req.Title).
		Set("tags", tags).
		Set("body", req.Body).
		SetString("beam_id", req.BeamID).
		SetBool("pinned", req.Pinned)

	raw, err := c.api.Post(ctx, "/api/beams", payload)
	return decodeRef[Beam]("create beam", raw, err)
}

// UpdateBeam patches the fields set in req.
func (c *Client) UpdateBeam(ctx context.Context, beamID string, req UpdateBeamRequest) (*Beam, error) {
	payload := apiclient.Payload{}.
		SetString("title", req.Title).
		SetStrings("tags", req.Tags).
		SetString("body", req.Body)

	raw, err := c.api.Patch(ctx, "/api/beams/"+beamID, payload)
	return decodeRef[Beam]("update beam", raw, err)
}

// PinBeam pins a beam.
func (c *Client) PinBeam(ctx context.Context, beamID string) (map[string]any, error) {
	raw, err := c.api.Post(ctx, "/api/beams/"+beamID+"/pin", nil)
	return decode[map[string]any]("pin beam", raw, err)
}

// UnpinBeam unpins a beam.
func (c *Client) UnpinBeam(ctx context.Context, beamID string) (map[string]any, error) {
	raw, err := c.api.Delete(ctx, "/api/beams/"+beamID+"/pin")
	return decode[map[string]any]("unpin beam", raw, err)
}

// RetireBeam retires a beam.
func (c *Client) RetireBeam(ctx context.Context, beamID string) (map[string]any, error) {
	raw, err := c.api.Post(ctx, "/api/beams/"+beamID+"/retire", nil)
	return decode[map[string]any]("retire beam", raw, err)
}

// TombstoneBeam tombstones a beam. The server decides whether the transition
// is allowed from the beam's current state.
func (c *Client) TombstoneBeam(ctx context.Context, beamID string, req TombstoneRequest) (map[string]any, error) {
	payload := apiclient.Payload{}.
		Set("reason_code", req.ReasonCode).
		SetString("approval_token", req.ApprovalToken)

	raw, err := c.api.Post(ctx, "/api/beams/"+beamID+"/tombstone", payload)
	return decode[map[string]any]("tombstone beam", raw, err)
}
