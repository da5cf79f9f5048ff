package beam

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/chat"
)

type CreateCommand struct {
	*base.Command

	flagKind   string
	flagTitle  string
	flagBody   string
	flagTags   []string
	flagID     string
	flagPinned bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create a beam"
}

func (c *CreateCommand) Help() string {
	return `Usage: mathison beam create [options]

  Creates a beam. -kind and -title are required.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("beam create", flag.ContinueOnError))
	c.AddClientFlags(f)

	c.flagTags = nil

	f.StringVar(&c.flagKind, "kind", "", "Beam kind")
	f.StringVar(&c.flagTitle, "title", "", "Beam title")
	f.StringVar(&c.flagBody, "body", "", "Beam body")
	f.StringSliceVar(&c.flagTags, "tag", "Tag; repeat or comma-separate")
	f.StringVar(&c.flagID, "id", "", "Beam id chosen by the caller")
	f.BoolVar(&c.flagPinned, "pinned", false, "Create the beam pinned")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunChat(f, args, func(ctx context.Context, client *chat.Client, _ []string) (any, error) {
		if c.flagKind == "" || c.flagTitle == "" {
			return nil, base.Usage("-kind and -title are required")
		}

		req := chat.CreateBeamRequest{
			Kind:  c.flagKind,
			Title: c.flagTitle,
			Tags:  c.flagTags,
			Body:  c.flagBody,
		}
		if f.IsSet("id") {
			req.BeamID = apiclient.Ptr(c.flagID)
		}
		if f.IsSet("pinned") {
			req.Pinned = apiclient.Ptr(c.flagPinned)
		}
		return client.CreateBeam(ctx, req)
	})
}
