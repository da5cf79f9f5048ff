package genome

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Show the active genome"
}

func (c *Command) Help() string {
	return `Usage: mathison genome [options]

  Prints the metadata of the genome the server is running: id, version,
  parents, invariants and capabilities.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("genome", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *Command) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, _ []string) (any, error) {
		return client.Genome(ctx)
	})
}
