package node

import (
	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage memory graph nodes"
}

func (c *Command) Help() string {
	return `Usage: mathison node <subcommand> [options] [args]

  This command groups subcommands for nodes of the memory graph.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
