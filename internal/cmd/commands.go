package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/mathison-ai/mathison-go/internal/cmd/base"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/beam"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/chat"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/edge"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/genome"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/health"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/hyperedge"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/identity"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/interpret"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/job"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/node"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/openapi"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/status"
	"github.com/mathison-ai/mathison-go/internal/cmd/commands/version"
)

// Commands returns the command table. Every factory shares one base command;
// only one command runs per process.
func Commands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := base.NewCommand(log, ui)

	factory := func(c cli.Command) cli.CommandFactory {
		return func() (cli.Command, error) { return c, nil }
	}

	return map[string]cli.CommandFactory{
		"version":  factory(&version.Command{Command: b}),
		"health":   factory(&health.Command{Command: b}),
		"status":   factory(&status.Command{Command: b}),
		"identity": factory(&identity.Command{Command: b}),

		"chat":         factory(&chat.Command{Command: b}),
		"chat send":    factory(&chat.SendCommand{Command: b}),
		"chat history": factory(&chat.HistoryCommand{Command: b}),

		"beam":           factory(&beam.Command{Command: b}),
		"beam query":     factory(&beam.QueryCommand{Command: b}),
		"beam get":       factory(&beam.GetCommand{Command: b}),
		"beam create":    factory(&beam.CreateCommand{Command: b}),
		"beam update":    factory(&beam.UpdateCommand{Command: b}),
		"beam pin":       factory(&beam.LifecycleCommand{Command: b, Action: beam.ActionPin}),
		"beam unpin":     factory(&beam.LifecycleCommand{Command: b, Action: beam.ActionUnpin}),
		"beam retire":    factory(&beam.LifecycleCommand{Command: b, Action: beam.ActionRetire}),
		"beam tombstone": factory(&beam.TombstoneCommand{Command: b}),

		"genome":  factory(&genome.Command{Command: b}),
		"openapi": factory(&openapi.Command{Command: b}),

		"job":        factory(&job.Command{Command: b}),
		"job run":    factory(&job.RunCommand{Command: b}),
		"job status": factory(&job.StatusCommand{Command: b}),
		"job logs":   factory(&job.LogsCommand{Command: b}),
		"job resume": factory(&job.ResumeCommand{Command: b}),
		"job wait":   factory(&job.WaitCommand{Command: b}),

		"node":            factory(&node.Command{Command: b}),
		"node create":     factory(&node.CreateCommand{Command: b}),
		"node get":        factory(&node.ReadCommand{Command: b, View: node.ViewNode}),
		"node edges":      factory(&node.ReadCommand{Command: b, View: node.ViewEdges}),
		"node hyperedges": factory(&node.ReadCommand{Command: b, View: node.ViewHyperedges}),
		"node update":     factory(&node.UpdateCommand{Command: b}),
		"node search":     factory(&node.SearchCommand{Command: b}),

		"edge":        factory(&edge.Command{Command: b}),
		"edge create": factory(&edge.CreateCommand{Command: b}),
		"edge get":    factory(&edge.GetCommand{Command: b}),

		"hyperedge":        factory(&hyperedge.Command{Command: b}),
		"hyperedge create": factory(&hyperedge.CreateCommand{Command: b}),
		"hyperedge get":    factory(&hyperedge.GetCommand{Command: b}),

		"interpret": factory(&interpret.Command{Command: b}),
	}
}
