package node

import (
	"context"
	"flag"

	"github.com/google/uuid"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type CreateCommand struct {
	*base.Command

	flagType           string
	flagData           string
	flagMetadata       string
	flagID             string
	flagIdempotencyKey string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a node"
}

func (c *CreateCommand) Help() string {
	return `Usage: mathison node create [options]

  Writes a node. A random idempotency key is generated unless
  -idempotency-key is given; reuse a key to retry a write safely.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("node create", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.StringVar(&c.flagType, "type", "", "Node type (required)")
	f.StringVar(&c.flagData, "data", "", "Node data as a JSON object")
	f.StringVar(&c.flagMetadata, "metadata", "", "Node metadata as a JSON object")
	f.StringVar(&c.flagID, "id", "", "Node id chosen by the caller")
	f.StringVar(&c.flagIdempotencyKey, "idempotency-key", "", "Idempotency key")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunGraph(f, args, func(ctx context.Context, client *graph.Client, _ []string) (any, error) {
		if c.flagType == "" {
			return nil, base.Usage("-type is required")
		}

		data, err := base.ParseObject("data", c.flagData)
		if err != nil {
			return nil, base.Usage("%v", err)
		}
		metadata, err := base.ParseObject("metadata", c.flagMetadata)
		if err != nil {
			return nil, base.Usage("%v", err)
		}

		req := graph.CreateNodeRequest{
			IdempotencyKey: idempotencyKey(c.flagIdempotencyKey),
			Type:           c.flagType,
			Data:           data,
			Metadata:       metadata,
		}
		if f.IsSet("id") {
			req.ID = apiclient.Ptr(c.flagID)
		}

		c.Log.Debug("creating node", "type", req.Type, "idempotency_key", req.IdempotencyKey)
		return client.CreateNode(ctx, req)
	})
}

func idempotencyKey(given string) string {
	if given != "" {
		return given
	}
	return uuid.NewString()
}
