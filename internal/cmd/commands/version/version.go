package version

import (
	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: mathison version

  Prints the version of this CLI.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("mathison " + version.HumanVersion())
	return 0
}
