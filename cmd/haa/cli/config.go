// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/haa-plugin/haa/lib/config"
)

// ConfigFlags is an embeddable struct that adds --config and
// --log-level to a command's parameter struct.
type ConfigFlags struct {
	ConfigPath string `json:"-" flag:"config" desc:"tool configuration file (default: $HAA_CONFIG, else built-in defaults)"`
	LogLevel   string `json:"-" flag:"log-level" desc:"override the configured log level: debug, info, warn, error"`
}

// LoadConfig loads the file named by --config, or falls back to
// [config.Load], then applies --log-level.
func (f *ConfigFlags) LoadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if f.ConfigPath != "" {
		cfg, err = config.LoadFile(f.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
	}
	return cfg, nil
}

// Logger returns a command logger at the level cfg selects, scoped
// with the command name.
func (f *ConfigFlags) Logger(cfg *config.Config, command string) *slog.Logger {
	return NewCommandLogger(cfg.SlogLevel()).With("command", command)
}
