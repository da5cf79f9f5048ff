package health

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/chat"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type Command struct {
	*base.Command

	flagGraph bool
}

func (c *Command) Synopsis() string {
	return "Check server health"
}

func (c *Command) Help() string {
	return `Usage: mathison health [options]

  Calls the health endpoint and prints the response. With -graph the
  graph API's health report, including subsystem status, is shown.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("health", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.BoolVar(
		&c.flagGraph, "graph", false,
		"Query the graph API health endpoint",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()

	// -graph decides which client runs, so peek at it before dispatching.
	if err := f.Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err)
	}

	if c.flagGraph {
		return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, _ []string) (any, error) {
			return client.Health(ctx)
		})
	}
	return c.RunChat(c.Flags(), args, func(ctx context.Context, client *chat.Client, _ []string) (any, error) {
		return client.Health(ctx)
	})
}
