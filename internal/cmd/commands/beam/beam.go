package beam

import (
	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Query and manage beams"
}

func (c *Command) Help() string {
	return `Usage: mathison beam <subcommand> [options] [args]

  This command groups subcommands for beams: tagged notes with a lifecycle
  of active, retired and tombstoned.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
