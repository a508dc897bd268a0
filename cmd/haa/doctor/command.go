// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor implements "haa doctor", the interactive rendition of
// the session diagnostics.
package doctor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/haa-plugin/haa/cmd/haa/cli"
	"github.com/haa-plugin/haa/cmd/haa/cli/doctor"
	"github.com/haa-plugin/haa/lib/diagnostics"
	"github.com/haa-plugin/haa/lib/hassenv"
	"github.com/haa-plugin/haa/lib/settings"
)

// CheckSettingsSyntax names the doctor-only settings syntax check.
const CheckSettingsSyntax = "settings syntax"

type commandParams struct {
	cli.JSONOutput
	cli.ConfigFlags
	Strict bool `json:"-" flag:"strict" desc:"exit 1 when any check warns"`
}

// Command returns the "haa doctor" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "doctor",
		Summary: "Check the Home Assistant config directory and credentials",
		Description: `Run the session diagnostics and print them as a checklist: git working
tree, configuration.yaml, HASS_TOKEN, HASS_SERVER and the plugin
settings file. Also reports whether the settings file is strict JSON,
since a file with comments or trailing commas is skipped silently by
the session hook.

Warnings do not fail the command unless --strict is set.`,
		Usage: "haa doctor [flags]",
		Examples: []cli.Example{
			{
				Description: "Check the current directory",
				Command:     "haa doctor",
			},
			{
				Description: "Fail a CI job when anything is missing",
				Command:     "haa doctor --strict",
			},
			{
				Description: "Machine-readable output",
				Command:     "haa doctor --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("doctor", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Usage("unexpected argument: %s", args[0])
			}

			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			logger = params.Logger(cfg, "doctor")

			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}

			if cfg.Git.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Git.Timeout)
				defer cancel()
			}

			environment := diagnostics.LocalEnvironment(dir, cfg, hassenv.ProcessEnvironment(), logger)
			return runDoctor(ctx, os.Stdout, doctor.NewStyles(os.Stdout), environment, params)
		},
	}
}

func runDoctor(ctx context.Context, stdout io.Writer, styles doctor.Styles, environment diagnostics.Environment, params commandParams) error {
	findings := diagnostics.Run(ctx, environment)
	results := checklist(findings, environment)

	output := doctor.BuildJSON(results, params.Strict)
	if done, err := params.EmitJSON(stdout, output); done {
		if err != nil {
			return err
		}
		if !output.OK {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	checklistError := doctor.PrintChecklist(stdout, styles, results, params.Strict)

	// The session hook's directive doubles as the next step to take.
	if action := findings.Action(); action != diagnostics.ActionNone {
		fmt.Fprintf(stdout, "\n%s\n", action.Directive())
	}
	return checklistError
}

// checklist converts the session findings to doctor results and
// appends the settings syntax check.
func checklist(findings diagnostics.Findings, environment diagnostics.Environment) []doctor.Result {
	var results []doctor.Result
	for _, result := range findings.Results {
		if result.Passed() {
			results = append(results, doctor.Pass(result.Name, result.Summary()))
		} else {
			results = append(results, doctor.Warn(result.Name, result.Summary()))
		}
	}
	return append(results, checkSettingsSyntax(environment))
}

// checkSettingsSyntax explains a settings file the session hook could
// not evaluate. The hook stays silent about these; doctor does not.
func checkSettingsSyntax(environment diagnostics.Environment) doctor.Result {
	path := environment.SettingsFile
	if path == "" {
		path = settings.DefaultPath
	}
	if environment.FS == nil {
		return doctor.Skip(CheckSettingsSyntax, "no filesystem to inspect")
	}

	inspection := settings.Inspect(environment.FS, path)
	switch {
	case !inspection.Found:
		return doctor.Skip(CheckSettingsSyntax, "no settings file")
	case inspection.ReadError != nil:
		return doctor.Warn(CheckSettingsSyntax,
			fmt.Sprintf("%s could not be read (%v); the pull method check was skipped", path, inspection.ReadError))
	}

	switch inspection.Syntax {
	case settings.SyntaxJSONC:
		return doctor.Warn(CheckSettingsSyntax,
			path+" contains comments or trailing commas; the pull method check was skipped")
	case settings.SyntaxInvalid:
		return doctor.Warn(CheckSettingsSyntax,
			path+" is not valid JSON; the pull method check was skipped")
	}

	if inspection.PullMethod == settings.PullMethodSet {
		return doctor.Pass(CheckSettingsSyntax, "valid JSON, pull method "+inspection.PullMethodValue)
	}
	return doctor.Pass(CheckSettingsSyntax, "valid JSON")
}
