// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/haa-plugin/haa/lib/config"
)

func TestLocalEnvironment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "configuration.yaml"), []byte("homeassistant:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, ".claude"), 0o755); err != nil {
		t.Fatal(err)
	}
	settingsJSON := []byte(`{"deploy": {"pull_method": "git_pull"}}`)
	if err := os.WriteFile(filepath.Join(dir, ".claude", "settings.local.json"), settingsJSON, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Git.Binary = "haa-test-no-such-git"
	environment := LocalEnvironment(dir, cfg, map[string]string{}, nil)

	findings := Run(context.Background(), environment)
	results := findings.Results

	if results[0].Name != CheckGit || results[0].Passed() {
		t.Errorf("git check with a missing binary = %+v, want a warning", results[0])
	}
	if !results[1].Passed() {
		t.Errorf("config root check = %+v, want pass", results[1])
	}
	if results[4].Status != "Settings file: found" || !results[4].Passed() {
		t.Errorf("settings check = %+v, want found with pull method set", results[4])
	}
}

func TestLocalEnvironmentNilConfig(t *testing.T) {
	t.Parallel()

	environment := LocalEnvironment(t.TempDir(), nil, nil, nil)
	if environment.ConfigFile != "configuration.yaml" || environment.SettingsFile != ".claude/settings.local.json" {
		t.Errorf("environment = %+v, want default file names", environment)
	}
	if environment.Repository == nil || environment.FS == nil {
		t.Error("environment should carry a filesystem and a repository")
	}
}
