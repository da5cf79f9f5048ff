package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/mathison-ai/mathison-go/internal/config"
)

// NewTestCommand returns a Command that reads no config file and no
// environment, for use in command tests.
func NewTestCommand(ui cli.Ui) *Command {
	return &Command{
		UI:  ui,
		Log: hclog.NewNullLogger(),
		Loader: &config.Loader{
			FS:        afero.NewMemMapFs(),
			LookupEnv: func(string) (string, bool) { return "", false },
		},
	}
}
