package hyperedge

import (
	"context"
	"flag"

	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage memory graph hyperedges"
}

func (c *Command) Help() string {
	return `Usage: mathison hyperedge <subcommand> [options] [args]

  This command groups subcommands for hyperedges, which join any number of
  nodes.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type CreateCommand struct {
	*base.Command

	flagPayload string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a hyperedge"
}

func (c *CreateCommand) Help() string {
	return `Usage: mathison hyperedge create [options]

  Sends -payload to the server unchanged. Without -payload no body is sent.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("hyperedge create", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.StringVar(&c.flagPayload, "payload", "", "Hyperedge as a JSON object")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, _ []string) (any, error) {
		payload, err := base.ParseObject("payload", c.flagPayload)
		if err != nil {
			return nil, base.Usage("%v", err)
		}
		return client.CreateHyperedge(ctx, payload)
	})
}

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show a hyperedge"
}

func (c *GetCommand) Help() string {
	return `Usage: mathison hyperedge get [options] <hyperedge-id>` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("hyperedge get", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *GetCommand) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one hyperedge id")
		}
		return client.GetHyperedge(ctx, args[0])
	})
}
