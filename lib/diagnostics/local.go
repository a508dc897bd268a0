// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/haa-plugin/haa/lib/config"
	"github.com/haa-plugin/haa/lib/git"
)

// LocalEnvironment returns the Environment for a real run in dir: the
// OS filesystem rooted at dir, the configured git binary, and the
// configured file names. variables is normally
// [hassenv.ProcessEnvironment].
func LocalEnvironment(dir string, cfg *config.Config, variables map[string]string, logger *slog.Logger) Environment {
	if cfg == nil {
		cfg = config.Default()
	}

	// BasePathFs only confines absolute bases. A directory that cannot
	// be made absolute falls back to the unconfined OS filesystem, where
	// relative names resolve against the working directory.
	var fsys afero.Fs = afero.NewOsFs()
	if absolute, err := filepath.Abs(dir); err == nil {
		dir = absolute
		fsys = afero.NewBasePathFs(fsys, dir)
	}

	return Environment{
		Variables:    variables,
		FS:           fsys,
		Repository:   git.NewRepository(dir).WithBinary(cfg.Git.Binary),
		ConfigFile:   cfg.Paths.ConfigFile,
		SettingsFile: cfg.Paths.SettingsFile,
		Logger:       logger,
	}
}
