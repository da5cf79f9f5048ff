package openapi

import (
	"context"
	"flag"

	"github.com/pkg/browser"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

// openURL is replaced in tests.
var openURL = browser.OpenURL

type Command struct {
	*base.Command

	flagBrowser bool
}

func (c *Command) Synopsis() string {
	return "Print or open the OpenAPI document"
}

func (c *Command) Help() string {
	return `Usage: mathison openapi [options]

  Prints the server's OpenAPI document. With -browser the document URL is
  opened in the default browser instead.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("openapi", flag.ContinueOnError))
	c.AddClientFlags(f)

	f.BoolVar(
		&c.flagBrowser, "browser", false,
		"Open the document in a browser",
	)

	return f
}

func (c *Command) Run(args []string) int {
	return c.RunGraph(c.Flags(), args, func(ctx context.Context, client *graph.Client, _ []string) (any, error) {
		if c.flagBrowser {
			url := client.BaseURL() + "/openapi.json"
			c.UI.Info("Opening " + url)
			return nil, openURL(url)
		}
		return client.OpenAPI(ctx)
	})
}
