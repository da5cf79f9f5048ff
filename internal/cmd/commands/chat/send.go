package chat

import (
	"context"
	"flag"
	"strings"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	chatapi "github.com/mathison-ai/mathison-go/pkg/chat"
)

type SendCommand struct {
	*base.Command
}

func (c *SendCommand) Synopsis() string {
	return "Send a chat message"
}

func (c *SendCommand) Help() string {
	return `Usage: mathison chat send [options] <message>

  Sends a user message and prints the server's reply.` + c.Flags().Help()
}

func (c *SendCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("chat send", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *SendCommand) Run(args []string) int {
	return c.RunChat(c.Flags(), args, func(ctx context.Context, client *chatapi.Client, args []string) (any, error) {
		content := strings.Join(args, " ")
		if strings.TrimSpace(content) == "" {
			return nil, base.Usage("message is required")
		}
		return client.SendMessage(ctx, content)
	})
}
