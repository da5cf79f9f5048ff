package identity

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/chat"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Show the server identity"
}

func (c *Command) Help() string {
	return `Usage: mathison identity [options]

  Prints the identity document the server reports for itself.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("identity", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *Command) Run(args []string) int {
	return c.RunChat(c.Flags(), args, func(ctx context.Context, client *chat.Client, _ []string) (any, error) {
		return client.Identity(ctx)
	})
}
