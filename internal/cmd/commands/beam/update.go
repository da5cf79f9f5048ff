package beam

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/chat"
)

type UpdateCommand struct {
	*base.Command

	flagTitle     string
	flagBody      string
	flagTags      []string
	flagClearTags bool
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a beam"
}

func (c *UpdateCommand) Help() string {
	return `Usage: mathison beam update [options] <beam-id>

  Changes only the fields given as flags. -clear-tags removes every tag.` + c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("beam update", flag.ContinueOnError))
	c.AddClientFlags(f)

	c.flagTags = nil

	f.StringVar(&c.flagTitle, "title", "", "New title")
	f.StringVar(&c.flagBody, "body", "", "New body")
	f.StringSliceVar(&c.flagTags, "tag", "Replacement tag; repeat or comma-separate")
	f.BoolVar(&c.flagClearTags, "clear-tags", false, "Remove all tags")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunChat(f, args, func(ctx context.Context, client *chat.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one beam id")
		}

		var req chat.UpdateBeamRequest
		if f.IsSet("title") {
			req.Title = apiclient.Ptr(c.flagTitle)
		}
		if f.IsSet("body") {
			req.Body = apiclient.Ptr(c.flagBody)
		}
		switch {
		case c.flagClearTags:
			req.Tags = []string{}
		case f.IsSet("tag"):
			req.Tags = c.flagTags
		}
		return client.UpdateBeam(ctx, args[0], req)
	})
}
