package graph

import (
	"context"

	"github.com/mathison-ai/mathison-go/pkg/apiclient"
)

// Interpret asks the server to interpret text against memory.
func (c *Client) Interpret(ctx context.Context, text string, opts InterpretOptions) (*InterpretResponse, error) {
	payload := apiclient.Payload{}.
		Set("text", text).
		SetInt("limit", opts.Limit)

	raw, err := c.api.Post(ctx, "/oi/interpret", payload)
	return decodeRef[InterpretResponse]("interpret", raw, err)
}
