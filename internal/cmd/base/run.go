package base

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/pkg/chat"
	"github.com/mathison-ai/mathison-go/pkg/graph"
)

// ChatFunc performs a chat command. A non-nil result is rendered.
type ChatFunc func(ctx context.Context, client *chat.Client, args []string) (any, error)

// GraphFunc performs a graph command. A non-nil result is rendered.
type GraphFunc func(ctx context.Context, client *graph.Client, args []string) (any, error)

// RunChat parses f, builds a chat client and runs fn with the remaining
// arguments.
func (c *Command) RunChat(f *FlagSet, args []string, fn ChatFunc) int {
	if code, ok := c.prepare(f, args); !ok {
		return code
	}

	client, err := c.ChatClient()
	if err != nil {
		return c.Fail("error creating client: %v", err)
	}
	defer client.Close()

	ctx, cancel := c.Context()
	defer cancel()

	result, err := fn(ctx, client, f.Args())
	return c.finish(result, err)
}

// RunGraph parses f, builds a graph client and runs fn with the remaining
// arguments.
func (c *Command) RunGraph(f *FlagSet, args []string, fn GraphFunc) int {
	if code, ok := c.prepare(f, args); !ok {
		return code
	}

	client, err := c.GraphClient()
	if err != nil {
		return c.Fail("error creating client: %v", err)
	}
	defer client.Close()

	ctx, cancel := c.Context()
	defer cancel()

	result, err := fn(ctx, client, f.Args())
	return c.finish(result, err)
}

func (c *Command) prepare(f *FlagSet, args []string) (int, bool) {
	if err := f.Parse(args); err != nil {
		return c.Fail("error parsing flags: %v", err), false
	}
	if err := c.Init(); err != nil {
		return c.Fail("error loading configuration: %v", err), false
	}
	return 0, true
}

func (c *Command) finish(result any, err error) int {
	var usage *UsageError
	if errors.As(err, &usage) {
		c.UI.Error(usage.Msg)
		return cli.RunResultHelp
	}
	if err != nil {
		return c.Fail("%v", err)
	}
	if result == nil {
		return 0
	}
	if err := c.Render(result); err != nil {
		return c.Fail("%v", err)
	}
	return 0
}

// UsageError is returned by command functions when arguments are missing or
// malformed. The command's help is shown after the message.
type UsageError struct {
	Msg string
}

// Usage returns a UsageError.
func Usage(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return e.Msg
}
