package interpret

import (
	"context"
	"flag"
	"strings"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type Command struct {
	*base.Command

	flagLimit int
}

func (c *Command) Synopsis() string {
	return "Interpret text against memory"
}

func (c *Command) Help() string {
	return `Usage: mathison interpret [options] <text>

  Asks the server to interpret the given text and prints the
  interpretation, its confidence and the citations it rests on.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("interpret", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.IntVar(
		&c.flagLimit, "limit", 0,
		"Maximum number of citations",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	return c.RunGraph(f, args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return nil, base.Usage("text is required")
		}

		var opts graph.InterpretOptions
		if f.IsSet("limit") {
			opts.Limit = apiclient.Ptr(c.flagLimit)
		}
		return client.Interpret(ctx, text, opts)
	})
}
