package cmd

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands(t *testing.T) {
	commands := Commands(hclog.NewNullLogger(), cli.NewMockUi())

	for name, factory := range commands {
		t.Run(name, func(t *testing.T) {
			c, err := factory()
			require.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis())
			assert.True(t, strings.HasPrefix(c.Help(), "Usage: mathison "+name), c.Help())
		})
	}
}

func TestMain_Version(t *testing.T) {
	assert.Equal(t, 0, Main([]string{"mathison", "-version"}))
}

func TestMain_UnknownFlag(t *testing.T) {
	assert.NotEqual(t, 0, Main([]string{"mathison", "health", "-nope"}))
}
