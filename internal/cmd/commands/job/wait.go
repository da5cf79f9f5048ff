package job

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

var errNotFinished = errors.New("job has not finished")

type WaitCommand struct {
	*base.Command

	flagMaxWait  time.Duration
	flagInterval time.Duration
}

func (c *WaitCommand) Synopsis() string {
	return "Wait for a job to finish"
}

func (c *WaitCommand) Help() string {
	return `Usage: mathison job wait [options] <job-id>

  Polls the job's status with exponential backoff until it is completed,
  failed or cancelled, then prints the final state. Exits non-zero if the
  job does not finish within -max-wait.` + c.Flags().Help()
}

func (c *WaitCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("job wait", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.DurationVar(&c.flagMaxWait, "max-wait", 5*time.Minute, "Give up after this long; must be positive")
	f.DurationVar(&c.flagInterval, "interval", time.Second, "Initial polling interval")

	return f
}

func (c *WaitCommand) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		if len(args) != 1 {
			return nil, base.Usage("expected exactly one job id")
		}
		if c.flagMaxWait <= 0 {
			return nil, base.Usage("-max-wait must be positive")
		}
		if c.flagInterval <= 0 {
			return nil, base.Usage("-interval must be positive")
		}
		return c.wait(ctx, client, args[0])
	})
}

func (c *WaitCommand) wait(ctx context.Context, client graph.API, jobID string) (*graph.JobResult, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.flagInterval
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = c.flagMaxWait

	var last *graph.JobResult
	poll := func() error {
		resp, err := client.JobStatus(ctx, graph.JobQuery{JobID: apiclient.Ptr(jobID)})
		if err != nil {
			return backoff.Permanent(err)
		}
		if resp.Job == nil {
			return backoff.Permanent(fmt.Errorf("job %s: server did not report a job status", jobID))
		}

		last = resp.Job
		if !last.Status.Terminal() {
			c.Log.Debug("job still running", "job_id", jobID, "status", last.Status)
			return errNotFinished
		}
		return nil
	}

	if err := backoff.Retry(poll, backoff.WithContext(b, ctx)); err != nil {
		if errors.Is(err, errNotFinished) {
			return nil, fmt.Errorf("job %s did not finish within %s (last status %q)", jobID, c.flagMaxWait, last.Status)
		}
		return nil, err
	}
	return last, nil
}
