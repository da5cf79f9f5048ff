package beam

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/chat"
)

type TombstoneCommand struct {
	*base.Command

	flagReason        string
	flagApprovalToken string
}

func (c *TombstoneCommand) Synopsis() string {
	return "Tombstone a beam"
}

func (c *TombstoneCommand) Help() string {
	return `Usage: mathison beam tombstone [options] <beam-id>

  Permanently removes a beam. -reason is required; the server may also
  demand an approval token.` + c.Flags().Help()
}

func (c *TombstoneCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("beam tombstone", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.StringVar(&c.flagReason, "reason", "", "Reason code")
	f.StringVar(&c.flagApprovalToken, "approval-token", "", "Approval token")

	return f
}

func (c *TombstoneCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunChat(f, args, func(ctx context.Context, client *chat.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one beam id")
		}
		if c.flagReason == "" {
			return nil, base.Usage("-reason is required")
		}

		req := chat.TombstoneRequest{ReasonCode: c.flagReason}
		if f.IsSet("approval-token") {
			req.ApprovalToken = apiclient.Ptr(c.flagApprovalToken)
		}
		return client.TombstoneBeam(ctx, args[0], req)
	})
}
