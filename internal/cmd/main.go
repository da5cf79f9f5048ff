package cmd

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/version"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	cliName := filepath.Base(args[0])

	log := hclog.New(&hclog.LoggerOptions{
		Name:   cliName,
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{args[0], "version"}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:         cliName,
		Args:         args[1:],
		Version:      version.HumanVersion(),
		Commands:     Commands(log, ui),
		Autocomplete: true,
		HelpWriter:   os.Stdout,
	}

	exitCode, err := c.Run()
	if err != nil {
		log.Error("error running command", "error", err)
		return 1
	}

	return exitCode
}
