// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package sessioncheck implements "haa session-check", the SessionStart
// hook. It runs the session diagnostics in the working directory and
// prints the hook envelope as a single JSON line on stdout.
//
// The command always exits 0 and writes nothing else to stdout. Tool
// configuration errors, an unknown working directory and write
// failures are logged to stderr and otherwise ignored.
package sessioncheck

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/haa-plugin/haa/cmd/haa/cli"
	"github.com/haa-plugin/haa/lib/config"
	"github.com/haa-plugin/haa/lib/diagnostics"
	"github.com/haa-plugin/haa/lib/hassenv"
)

type commandParams struct {
	cli.ConfigFlags
}

// Command returns the "haa session-check" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "session-check",
		Summary: "Run the SessionStart diagnostics hook",
		Description: `Check the working directory for the preconditions of the deploy and
validate workflows: a git working tree, configuration.yaml, HASS_TOKEN,
HASS_SERVER and the plugin settings file. Prints a SessionStart hook
envelope on stdout whose additionalContext carries the report.

Always exits 0. The token value is never printed, only its length.`,
		Usage: "haa session-check [flags]",
		Examples: []cli.Example{
			{
				Description: "Register as a SessionStart hook command",
				Command:     "haa session-check",
			},
			{
				Description: "Debug the probes on stderr",
				Command:     "haa session-check --log-level debug",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("session-check", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.LoadConfig()
			if err != nil {
				logger.Warn("loading tool configuration, using defaults", "error", err)
				cfg = config.Default()
			} else {
				logger = params.Logger(cfg, "session-check")
			}
			if len(args) > 0 {
				logger.Warn("ignoring unexpected arguments", "args", args)
			}

			dir, err := os.Getwd()
			if err != nil {
				logger.Warn("resolving working directory", "error", err)
				dir = "."
			}

			run(ctx, os.Stdout, diagnostics.LocalEnvironment(dir, cfg, hassenv.ProcessEnvironment(), logger), cfg, logger)
			return nil
		},
	}
}

// run writes the envelope for environment to stdout. Failures are
// logged, never returned.
func run(ctx context.Context, stdout io.Writer, environment diagnostics.Environment, cfg *config.Config, logger *slog.Logger) {
	if cfg.Git.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Git.Timeout)
		defer cancel()
	}

	findings := diagnostics.Run(ctx, environment)
	action := findings.Action()
	logger.Debug("session diagnostics complete",
		"action", action.String(),
		"warnings", len(findings.Warnings()),
		"onboarding", action.RequiresOnboarding(),
	)

	envelope := diagnostics.NewEnvelope(diagnostics.Render(findings))
	if err := diagnostics.WriteEnvelope(stdout, envelope); err != nil {
		logger.Error("writing hook envelope", "error", err)
	}
}
