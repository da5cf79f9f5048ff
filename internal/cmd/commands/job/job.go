package job

import (
	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Run and inspect jobs"
}

func (c *Command) Help() string {
	return `Usage: mathison job <subcommand> [options] [args]

  This command groups subcommands for governed jobs.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
