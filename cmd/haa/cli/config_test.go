// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "haa.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFlagsLoadConfigFile(t *testing.T) {
	t.Parallel()

	flags := ConfigFlags{ConfigPath: writeConfig(t, "log_level: debug\ngit:\n  binary: /usr/bin/git\n")}
	cfg, err := flags.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Git.Binary != "/usr/bin/git" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Paths.ConfigFile != "configuration.yaml" {
		t.Errorf("defaults not merged: %+v", cfg.Paths)
	}
}

func TestConfigFlagsLogLevelOverride(t *testing.T) {
	t.Parallel()

	flags := ConfigFlags{
		ConfigPath: writeConfig(t, "log_level: error\n"),
		LogLevel:   "info",
	}
	cfg, err := flags.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}

	flags.LogLevel = "loud"
	if _, err := flags.LoadConfig(); err == nil || !strings.Contains(err.Error(), "--log-level") {
		t.Errorf("invalid --log-level error = %v", err)
	}
}

func TestConfigFlagsMissingFile(t *testing.T) {
	t.Parallel()

	flags := ConfigFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}
	if _, err := flags.LoadConfig(); err == nil {
		t.Error("expected error for a missing --config file")
	}
}
