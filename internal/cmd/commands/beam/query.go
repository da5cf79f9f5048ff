package beam

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/chat"
)

type QueryCommand struct {
	*base.Command

	flagText        string
	flagTags        []string
	flagKinds       []string
	flagIncludeDead bool
	flagLimit       int
}

func (c *QueryCommand) Synopsis() string {
	return "Search beams"
}

func (c *QueryCommand) Help() string {
	return `Usage: mathison beam query [options]

  Lists beams matching the given filters, in the order the server returns
  them.` + c.Flags().Help()
}

func (c *QueryCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("beam query", flag.ContinueOnError))
	c.AddClientFlags(f)

	c.flagTags = nil
	c.flagKinds = nil

	f.StringVar(&c.flagText, "text", "", "Free-text filter")
	f.StringSliceVar(&c.flagTags, "tag", "Tag filter; repeat or comma-separate")
	f.StringSliceVar(&c.flagKinds, "kind", "Kind filter; repeat or comma-separate")
	f.BoolVar(&c.flagIncludeDead, "include-dead", false, "Include retired and tombstoned beams")
	f.IntVar(&c.flagLimit, "limit", 0, "Maximum number of beams")

	return f
}

func (c *QueryCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunChat(f, args, func(ctx context.Context, client *chat.Client, _ []string) (any, error) {
		query := chat.BeamQuery{
			Tags:  c.flagTags,
			Kinds: c.flagKinds,
		}
		if f.IsSet("text") {
			query.Text = apiclient.Ptr(c.flagText)
		}
		if f.IsSet("include-dead") {
			query.IncludeDead = apiclient.Ptr(c.flagIncludeDead)
		}
		if f.IsSet("limit") {
			query.Limit = apiclient.Ptr(c.flagLimit)
		}
		return client.QueryBeams(ctx, query)
	})
}
