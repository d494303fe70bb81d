// Package main is the entry point for the taskmgr CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskmgr/internal/cli"
	"taskmgr/internal/commands"
)

func main() {
	// Cancel on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Nil factory opens the configured slot store
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
