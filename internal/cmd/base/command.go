package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/config"
	"github.com/mathison-ai/mathison-go/pkg/chat"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

// Command holds what every subcommand shares: the UI, the root logger, and
// the connection flags.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// Loader resolves configuration. Tests replace it to avoid the real
	// filesystem and environment.
	Loader *config.Loader

	// Config is set by Init.
	Config *config.Config

	flagConfig   string
	flagAddress  string
	flagAPIKey   string
	flagTimeout  time.Duration
	flagFormat   string
	flagLogLevel string
}

// NewCommand returns a Command reading configuration from the OS.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		UI:     ui,
		Log:    log,
		Loader: config.NewLoader(),
	}
}

// AddClientFlags registers the connection and output flags on f.
func (c *Command) AddClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to the HCL configuration file (default $HOME/.mathison/config.hcl)",
	)
	f.StringVar(
		&c.flagAddress, "address", "",
		"[MATHISON_ADDRESS] Base URL of the Mathison server",
	)
	f.StringVar(
		&c.flagAPIKey, "api-key", "",
		"[MATHISON_API_KEY] API key sent as a bearer token",
	)
	f.DurationVar(
		&c.flagTimeout, "timeout", 0,
		"[MATHISON_TIMEOUT] Per-request timeout",
	)
	f.StringVar(
		&c.flagFormat, "format", FormatJSON,
		"Output format: json, yaml or text",
	)
	f.StringVar(
		&c.flagLogLevel, "log-level", "",
		"[MATHISON_LOG_LEVEL] Log level: trace, debug, info, warn, error or off",
	)
}

// Init resolves configuration after flag parsing and applies the log level.
func (c *Command) Init() error {
	switch c.flagFormat {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return fmt.Errorf("unknown output format %q", c.flagFormat)
	}

	loader := c.Loader
	if loader == nil {
		loader = config.NewLoader()
	}

	cfg, err := loader.Load(c.flagConfig, config.Overrides{
		Address:  c.flagAddress,
		APIKey:   c.flagAPIKey,
		Timeout:  c.flagTimeout,
		LogLevel: c.flagLogLevel,
	})
	if err != nil {
		return err
	}
	c.Config = cfg

	if c.Log == nil {
		c.Log = hclog.NewNullLogger()
	}
	c.Log.SetLevel(cfg.Level())

	if cfg.Path != "" {
		c.Log.Debug("loaded configuration", "path", cfg.Path)
	}
	if cfg.APIKeyExpired(time.Now()) {
		c.Log.Warn("API key has expired; requests will likely be rejected")
	}

	return nil
}

// ChatClient builds the chat and beams client. Init must have been called.
func (c *Command) ChatClient() (*chat.Client, error) {
	return chat.New(c.Config.ClientConfig(c.Log))
}

// GraphClient builds the graph and jobs client. Init must have been called.
func (c *Command) GraphClient() (*graph.Client, error) {
	return graph.New(c.Config.ClientConfig(c.Log))
}

// Context returns a context cancelled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Fail reports err and returns the exit code for a failed command.
func (c *Command) Fail(format string, args ...any) int {
	c.UI.Error(fmt.Sprintf(format, args...))
	return 1
}
