package node

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

// View selects what ReadCommand fetches for a node.
type View string

const (
	ViewNode       View = "get"
	ViewEdges      View = "edges"
	ViewHyperedges View = "hyperedges"
)

// ReadCommand fetches a node or its incident edges or hyperedges.
type ReadCommand struct {
	*base.Command

	View View
}

func (c *ReadCommand) Synopsis() string {
	switch c.View {
	case ViewEdges:
		return "List the edges of a node"
	case ViewHyperedges:
		return "List the hyperedges of a node"
	default:
		return "Show a node"
	}
}

func (c *ReadCommand) Help() string {
	return "Usage: mathison node " + string(c.View) + " [options] <node-id>" + c.Flags().Help()
}

func (c *ReadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("node "+string(c.View), flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *ReadCommand) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one node id")
		}

		switch c.View {
		case ViewEdges:
			return client.NodeEdges(ctx, args[0])
		case ViewHyperedges:
			return client.NodeHyperedges(ctx, args[0])
		default:
			return client.GetNode(ctx, args[0])
		}
	})
}
