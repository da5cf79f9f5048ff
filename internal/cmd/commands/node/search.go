package node

import (
	"context"
	"flag"
	"strings"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type SearchCommand struct {
	*base.Command

	flagLimit int
}

func (c *SearchCommand) Synopsis() string {
	return "Search nodes"
}

func (c *SearchCommand) Help() string {
	return `Usage: mathison node search [options] <query>` + c.Flags().Help()
}

func (c *SearchCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("node search", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.IntVar(&c.flagLimit, "limit", graph.DefaultSearchLimit, "Maximum number of results")

	return f
}

func (c *SearchCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunGraph(f, args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		query := strings.Join(args, " ")
		if query == "" {
			return nil, base.Usage("query is required")
		}
		return client.SearchNodes(ctx, query, graph.SearchOptions{Limit: apiclient.Ptr(c.flagLimit)})
	})
}
