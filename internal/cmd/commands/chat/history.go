package chat

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	chatapi "github.com/mathison-ai/mathison-go/pkg/chat"
)

type HistoryCommand struct {
	*base.Command

	flagLimit  int
	flagOffset int
}

func (c *HistoryCommand) Synopsis() string {
	return "Show chat history"
}

func (c *HistoryCommand) Help() string {
	return `Usage: mathison chat history [options]

  Prints one page of the conversation history.` + c.Flags().Help()
}

func (c *HistoryCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("chat history", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.IntVar(&c.flagLimit, "limit", 0, "Maximum number of messages")
	f.IntVar(&c.flagOffset, "offset", 0, "Number of messages to skip")

	return f
}

func (c *HistoryCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunChat(f, args, func(ctx context.Context, client *chatapi.Client, _ []string) (any, error) {
		var opts chatapi.HistoryOptions
		if f.IsSet("limit") {
			opts.Limit = apiclient.Ptr(c.flagLimit)
		}
		if f.IsSet("offset") {
			opts.Offset = apiclient.Ptr(c.flagOffset)
		}
		return client.ChatHistory(ctx, opts)
	})
}
