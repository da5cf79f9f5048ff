package node

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type UpdateCommand struct {
	*base.Command

	flagType     string
	flagData     string
	flagMetadata string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a node"
}

func (c *UpdateCommand) Help() string {
	return `Usage: mathison node update [options] <node-id>

  Sends only the fields given as flags.` + c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("node update", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.StringVar(&c.flagType, "type", "", "New node type")
	f.StringVar(&c.flagData, "data", "", "New node data as a JSON object")
	f.StringVar(&c.flagMetadata, "metadata", "", "New node metadata as a JSON object")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunGraph(f, args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one node id")
		}

		var req graph.UpdateNodeRequest
		var err error
		if f.IsSet("type") {
			req.Type = apiclient.Ptr(c.flagType)
		}
		if req.Data, err = base.ParseObject("data", c.flagData); err != nil {
			return nil, base.Usage("%v", err)
		}
		if req.Metadata, err = base.ParseObject("metadata", c.flagMetadata); err != nil {
			return nil, base.Usage("%v", err)
		}
		return client.UpdateNode(ctx, args[0], req)
	})
}
