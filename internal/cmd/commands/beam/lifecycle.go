package beam

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/chat"
)

// Lifecycle actions that take no arguments beyond the beam id.
const (
	ActionPin    = "pin"
	ActionUnpin  = "unpin"
	ActionRetire = "retire"
)

// LifecycleCommand applies one lifecycle action to each beam id given.
type LifecycleCommand struct {
	*base.Command

	Action string
}

func (c *LifecycleCommand) Synopsis() string {
	switch c.Action {
	case ActionPin:
		return "Pin beams"
	case ActionUnpin:
		return "Unpin beams"
	default:
		return "Retire beams"
	}
}

func (c *LifecycleCommand) Help() string {
	return fmt.Sprintf(`Usage: mathison beam %s [options] <beam-id>...

  Applies %q to every beam id given. Every id is attempted; failures are
  reported together at the end.`, c.Action, c.Action) + c.Flags().Help()
}

func (c *LifecycleCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("beam "+c.Action, flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *LifecycleCommand) Run(args []string) int {
	return c.RunChat(c.Flags(), args, func(ctx context.Context, client *chat.Client, ids []string) (any, error) {
		if len(ids) == 0 {
			return nil, base.Usage("at least one beam id is required")
		}

		apply, err := c.action(client)
		if err != nil {
			return nil, err
		}

		var result error
		results := make(map[string]map[string]any, len(ids))
		for _, id := range ids {
			flags, err := apply(ctx, id)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%s: %w", id, err))
				continue
			}
			results[id] = flags
			c.Log.Debug("beam updated", "action", c.Action, "beam_id", id)
		}

		if len(results) > 0 {
			if err := c.Render(results); err != nil {
				return nil, err
			}
		}
		return nil, result
	})
}

func (c *LifecycleCommand) action(client *chat.Client) (func(context.Context, string) (map[string]any, error), error) {
	switch c.Action {
	case ActionPin:
		return client.PinBeam, nil
	case ActionUnpin:
		return client.UnpinBeam, nil
	case ActionRetire:
		return client.RetireBeam, nil
	default:
		return nil, fmt.Errorf("unknown beam action %q", c.Action)
	}
}
