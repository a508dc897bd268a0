// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete haa command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	areascmd "github.com/haa-plugin/haa/cmd/haa/areas"
	"github.com/haa-plugin/haa/cmd/haa/cli"
	doctorcmd "github.com/haa-plugin/haa/cmd/haa/doctor"
	"github.com/haa-plugin/haa/cmd/haa/sessioncheck"
	"github.com/haa-plugin/haa/lib/version"
)

// Root builds and returns the complete haa command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "haa",
		Description: `haa: session tooling for the Home Assistant Assistant plugin.

Checks that the working directory is a Home Assistant config root ready
for the deploy and validate workflows, and answers area questions
through hass-cli.`,
		Subcommands: []*cli.Command{
			sessioncheck.Command(),
			doctorcmd.Command(),
			areascmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if len(args) > 0 {
						return cli.Usage("unexpected argument: %s", args[0])
					}
					fmt.Fprintf(os.Stdout, "haa %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
