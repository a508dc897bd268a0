// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/haa-plugin/haa/lib/hassenv"
	"github.com/haa-plugin/haa/lib/settings"
)

// Check names, in execution order.
const (
	CheckGit        = "git repository"
	CheckConfigRoot = "config root"
	CheckToken      = hassenv.TokenVariable
	CheckServer     = hassenv.ServerVariable
	CheckSettings   = "settings file"
)

// DefaultConfigFile marks a Home Assistant config root.
const DefaultConfigFile = "configuration.yaml"

// WorkTreeProber reports whether a directory is inside a version
// control working tree. [git.Repository] satisfies it.
type WorkTreeProber interface {
	IsInsideWorkTree(ctx context.Context) error
}

// Environment is everything a diagnostics run reads. Nothing is taken
// from process state, so tests can supply fixtures.
type Environment struct {
	// Variables is the process environment as a map.
	Variables map[string]string

	// FS is the filesystem rooted at the working directory (for a real
	// run, afero.NewBasePathFs(afero.NewOsFs(), dir)).
	FS afero.Fs

	// Repository probes the working directory for a git working tree.
	// A nil Repository fails the check.
	Repository WorkTreeProber

	// ConfigFile is the config root marker, relative to FS.
	// Empty means DefaultConfigFile.
	ConfigFile string

	// SettingsFile is the plugin settings file, relative to FS.
	// Empty means settings.DefaultPath.
	SettingsFile string

	// Logger receives debug records about probe failures. Nil discards.
	Logger *slog.Logger
}

func (e Environment) configFile() string {
	if e.ConfigFile == "" {
		return DefaultConfigFile
	}
	return e.ConfigFile
}

func (e Environment) settingsFile() string {
	if e.SettingsFile == "" {
		return settings.DefaultPath
	}
	return e.SettingsFile
}

func (e Environment) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

// Run executes the five checks in order and returns their results. It
// never fails: every probe error becomes a warning or is dropped.
func Run(ctx context.Context, environment Environment) Findings {
	logger := environment.logger()

	// Parse cannot fail for plain string fields, but a failure must
	// still read as "unset" rather than abort the run.
	credentials, err := hassenv.Parse(environment.Variables)
	if err != nil {
		logger.Debug("parsing hass environment", "error", err)
	}

	return Findings{Results: []CheckResult{
		checkRepository(ctx, environment.Repository, logger),
		checkConfigRoot(environment.FS, environment.configFile()),
		checkToken(credentials),
		checkServer(credentials),
		checkSettings(environment.FS, environment.settingsFile(), logger),
	}}
}

func checkRepository(ctx context.Context, repository WorkTreeProber, logger *slog.Logger) CheckResult {
	result := CheckResult{Name: CheckGit}

	var err error
	if repository == nil {
		err = fmt.Errorf("no repository probe configured")
	} else {
		err = repository.IsInsideWorkTree(ctx)
	}
	if err != nil {
		logger.Debug("git probe failed", "error", err)
		result.Warning = &Warning{
			Reason: ReasonNotRepository,
			Text:   "Current directory is not a git repository. The deploy workflow requires git.",
		}
		return result
	}

	result.Detail = "inside a git working tree"
	return result
}

func checkConfigRoot(fsys afero.Fs, configFile string) CheckResult {
	result := CheckResult{Name: CheckConfigRoot}

	if !exists(fsys, configFile) {
		result.Warning = &Warning{
			Reason: ReasonMissingConfigRoot,
			Text: fmt.Sprintf("No %s found. This may not be a Home Assistant config directory. "+
				"Commands like /ha-deploy and /ha-validate expect to run from the HA config root.", configFile),
		}
		return result
	}

	result.Detail = configFile + " found"
	return result
}

func checkToken(credentials hassenv.Credentials) CheckResult {
	result := CheckResult{Name: CheckToken}

	if !credentials.HasToken() {
		result.Warning = &Warning{
			Reason: ReasonMissingToken,
			Text:   hassenv.TokenVariable + " is not set. hass-cli commands will fail.",
		}
		return result
	}

	result.Status = fmt.Sprintf("%s: set (%d chars)", hassenv.TokenVariable, credentials.TokenLength())
	return result
}

func checkServer(credentials hassenv.Credentials) CheckResult {
	result := CheckResult{Name: CheckServer}

	if !credentials.HasServer() {
		result.Warning = &Warning{
			Reason: ReasonMissingServer,
			Text:   hassenv.ServerVariable + " is not set. hass-cli commands will fail.",
		}
		return result
	}

	result.Status = hassenv.ServerVariable + ": " + credentials.Server
	return result
}

// checkSettings reports the onboarding state. A settings file that
// cannot be read or is not strict JSON produces the "found" status and
// nothing else: the pull-method lookup is skipped rather than reported
// as unconfigured.
func checkSettings(fsys afero.Fs, settingsFile string, logger *slog.Logger) CheckResult {
	result := CheckResult{Name: CheckSettings}

	var inspection settings.Inspection
	if fsys != nil {
		inspection = settings.Inspect(fsys, settingsFile)
	}
	if !inspection.Found {
		result.Warning = &Warning{
			Reason: ReasonMissingSettings,
			Text:   "No settings file found. If this is your first time, run /ha-onboard to get started.",
		}
		return result
	}

	result.Status = "Settings file: found"

	switch inspection.PullMethod {
	case settings.PullMethodUnset:
		result.Warning = &Warning{
			Reason: ReasonPullMethodUnset,
			Text:   "Deploy pull method not configured. Run /ha-onboard to set it up, or /ha-deploy will ask on first use.",
		}
	case settings.PullMethodUndetermined:
		logger.Debug("settings file not evaluated",
			"path", settingsFile,
			"syntax", inspection.Syntax.String(),
			"read_error", inspection.ReadError,
		)
	}
	return result
}

// exists reports whether anything (file or directory) is at name. Any
// stat failure counts as absent.
func exists(fsys afero.Fs, name string) bool {
	if fsys == nil {
		return false
	}
	_, err := fsys.Stat(name)
	return err == nil
}
