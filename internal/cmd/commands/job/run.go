package job

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

type RunCommand struct {
	*base.Command

	flagInputs   string
	flagPolicyID string
}

func (c *RunCommand) Synopsis() string {
	return "Start a job"
}

func (c *RunCommand) Help() string {
	return `Usage: mathison job run [options] <job-type>

  Starts a job of the given type and prints its initial state.` + c.Flags().Help()
}

func (c *RunCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("job run", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.StringVar(&c.flagInputs, "inputs", "", "Job inputs as a JSON object")
	f.StringVar(&c.flagPolicyID, "policy", "", "Policy id to run the job under")

	return f
}

func (c *RunCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunGraph(f, args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one job type")
		}

		inputs, err := base.ParseObject("inputs", c.flagInputs)
		if err != nil {
			return nil, base.Usage("%v", err)
		}

		req := graph.RunJobRequest{JobType: args[0], Inputs: inputs}
		if f.IsSet("policy") {
			req.PolicyID = apiclient.Ptr(c.flagPolicyID)
		}
		return client.RunJob(ctx, req)
	})
}
