package cli

import (
	"encoding/json"
	"fmt"
	"time"
)

type DebugCmd struct {
	ForceWelcome DebugForceWelcomeCmd `cmd:"" help:"Emit the welcome-back notice regardless of history."`
	ClearGate    DebugClearGateCmd    `cmd:"" help:"Clear the once-per-day notice gate."`
	DumpStats    DebugDumpStatsCmd    `cmd:"" help:"Dump today's stats and the weekly summary as JSON."`
	DBPath       DebugDBPathCmd       `cmd:"" help:"Show storage backend path."`
}

type DebugForceWelcomeCmd struct{}

func (cmd *DebugForceWelcomeCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	now := time.Now().In(ctx.Store.Location())
	ctx.notifier().ForceWelcome(ctx.Store.Activities(), now)
	return nil
}

type DebugClearGateCmd struct{}

func (cmd *DebugClearGateCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}
	if err := ctx.notifier().ClearGate(); err != nil {
		return err
	}
	fmt.Println("Notice gate cleared")
	return nil
}

type DebugDumpStatsCmd struct{}

func (cmd *DebugDumpStatsCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	output := map[string]any{
		"today":  ctx.Store.Stats(),
		"week":   ctx.Store.Week(),
		"streak": ctx.Store.Streak(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Remote.GetConfigPath(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
