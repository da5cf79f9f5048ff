package beam

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/chat"
)

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show a beam"
}

func (c *GetCommand) Help() string {
	return `Usage: mathison beam get [options] <beam-id>` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("beam get", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *GetCommand) Run(args []string) int {
	return c.RunChat(c.Flags(), args, func(ctx context.Context, client *chat.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one beam id")
		}
		return client.GetBeam(ctx, args[0])
	})
}
