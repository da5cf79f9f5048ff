package edge

import (
	"context"
	"flag"

	"github.com/google/uuid"
	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage memory graph edges"
}

func (c *Command) Help() string {
	return `Usage: mathison edge <subcommand> [options] [args]

  This command groups subcommands for directed edges between two nodes.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type CreateCommand struct {
	*base.Command

	flagType           string
	flagMetadata       string
	flagIdempotencyKey string
}

func (c *CreateCommand) Synopsis() string {
	return "Create an edge"
}

func (c *CreateCommand) Help() string {
	return `Usage: mathison edge create [options] <from-node> <to-node>

  Writes an edge from one node to another. A random idempotency key is
  generated unless -idempotency-key is given.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("edge create", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.StringVar(&c.flagType, "type", "", "Edge type (required)")
	f.StringVar(&c.flagMetadata, "metadata", "", "Edge metadata as a JSON object")
	f.StringVar(&c.flagIdempotencyKey, "idempotency-key", "", "Idempotency key")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		if len(args) != 2 {
			return nil, base.Usage("expected a from node and a to node")
		}
		if c.flagType == "" {
			return nil, base.Usage("-type is required")
		}

		metadata, err := base.ParseObject("metadata", c.flagMetadata)
		if err != nil {
			return nil, base.Usage("%v", err)
		}

		key := c.flagIdempotencyKey
		if key == "" {
			key = uuid.NewString()
		}

		return client.CreateEdge(ctx, graph.CreateEdgeRequest{
			IdempotencyKey: key,
			From:           args[0],
			To:             args[1],
			Type:           c.flagType,
			Metadata:       metadata,
		})
	})
}

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show an edge"
}

func (c *GetCommand) Help() string {
	return `Usage: mathison edge get [options] <edge-id>` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("edge get", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *GetCommand) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one edge id")
		}
		return client.GetEdge(ctx, args[0])
	})
}
