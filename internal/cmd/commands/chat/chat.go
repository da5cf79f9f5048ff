package chat

import (
	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Send messages and read chat history"
}

func (c *Command) Help() string {
	return `Usage: mathison chat <subcommand> [options] [args]

  This command groups subcommands for the conversation API.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
