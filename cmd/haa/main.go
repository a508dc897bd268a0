// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Command haa is the session tooling binary for the Home Assistant
// Assistant plugin. "haa session-check" is registered as the plugin's
// SessionStart hook; the other subcommands serve humans and skills.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/haa-plugin/haa/cmd/haa/commands"
	"github.com/haa-plugin/haa/lib/process"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().Execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		process.Fatal(err)
	}
}
