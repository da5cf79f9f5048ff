package job

import (
	"context"
	"flag"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/apiclient"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

// queryFlags are shared by status and logs.
type queryFlags struct {
	limit int
}

func (q *queryFlags) register(f *base.FlagSet) {
	f.IntVar(&q.limit, "limit", 0, "Maximum number of entries")
}

func (q *queryFlags) query(f *base.FlagSet, args []string) (graph.JobQuery, error) {
	var query graph.JobQuery
	switch len(args) {
	case 0:
	case 1:
		query.JobID = apiclient.Ptr(args[0])
	default:
		return query, base.Usage("expected at most one job id")
	}
	if f.IsSet("limit") {
		query.Limit = apiclient.Ptr(q.limit)
	}
	return query, nil
}

type StatusCommand struct {
	*base.Command
	queryFlags
}

func (c *StatusCommand) Synopsis() string {
	return "Show job status"
}

func (c *StatusCommand) Help() string {
	return `Usage: mathison job status [options] [job-id]

  Prints the status of one job, or the server's job listing when no id is
  given.` + c.Flags().Help()
}

func (c *StatusCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("job status", flag.ContinueOnError))
	c.AddClientFlags(f)
	c.register(f)
	return f
}

func (c *StatusCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunGraph(f, args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		query, err := c.query(f, args)
		if err != nil {
			return nil, err
		}

		resp, err := client.JobStatus(ctx, query)
		if err != nil {
			return nil, err
		}
		if resp.Job != nil {
			return resp.Job, nil
		}
		return resp.Raw, nil
	})
}

type LogsCommand struct {
	*base.Command
	queryFlags
}

func (c *LogsCommand) Synopsis() string {
	return "Show job logs"
}

func (c *LogsCommand) Help() string {
	return `Usage: mathison job logs [options] [job-id]` + c.Flags().Help()
}

func (c *LogsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("job logs", flag.ContinueOnError))
	c.AddClientFlags(f)
	c.register(f)
	return f
}

func (c *LogsCommand) Run(args []string) int {
	f := c.Flags()
	return c.RunGraph(f, args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		query, err := c.query(f, args)
		if err != nil {
			return nil, err
		}
		return client.JobLogs(ctx, query)
	})
}

type ResumeCommand struct {
	*base.Command
}

func (c *ResumeCommand) Synopsis() string {
	return "Resume a job"
}

func (c *ResumeCommand) Help() string {
	return `Usage: mathison job resume [options] [job-id]

  Resumes the given job, or lets the server choose when no id is given.` + c.Flags().Help()
}

func (c *ResumeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("job resume", flag.ContinueOnError))
	c.AddClientFlags(f)
	return f
}

func (c *ResumeCommand) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, args []string) (any, error) {
		var req graph.ResumeJobRequest
		switch len(args) {
		case 0:
		case 1:
			req.JobID = apiclient.Ptr(args[0])
		default:
			return nil, base.Usage("expected at most one job id")
		}
		return client.ResumeJob(ctx, req)
	})
}
