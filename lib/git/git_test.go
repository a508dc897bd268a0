// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// requireGit skips the test when no git binary is available.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// initRepo creates a fresh git working tree in a temp directory and
// returns its path.
func initRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	command := exec.Command("git", "init", "--quiet", dir)
	if output, err := command.CombinedOutput(); err != nil {
		t.Fatalf("git init: %v\n%s", err, output)
	}
	return dir
}

func TestRepository_IsInsideWorkTree(t *testing.T) {
	t.Parallel()
	requireGit(t)

	dir := initRepo(t)
	if err := NewRepository(dir).IsInsideWorkTree(context.Background()); err != nil {
		t.Fatalf("IsInsideWorkTree(%s): %v", dir, err)
	}
}

func TestRepository_IsInsideWorkTree_Subdirectory(t *testing.T) {
	t.Parallel()
	requireGit(t)

	dir := initRepo(t)
	nested := filepath.Join(dir, "packages", "lights")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := NewRepository(nested).IsInsideWorkTree(context.Background()); err != nil {
		t.Fatalf("IsInsideWorkTree(%s): %v", nested, err)
	}
}

func TestRepository_IsInsideWorkTree_NotRepository(t *testing.T) {
	t.Parallel()
	requireGit(t)

	// GIT_CEILING_DIRECTORIES is process-wide, so rely on the temp dir
	// normally living outside any repository and skip if it does not.
	dir := t.TempDir()
	probe := exec.Command("git", "-C", dir, "rev-parse", "--is-inside-work-tree")
	if probe.Run() == nil {
		t.Skip("temp directory is inside a git working tree")
	}

	err := NewRepository(dir).IsInsideWorkTree(context.Background())
	if err == nil {
		t.Fatal("expected error outside a repository")
	}
	if !strings.Contains(err.Error(), "rev-parse --is-inside-work-tree") {
		t.Errorf("error should name the command, got: %v", err)
	}
}

func TestRepository_IsInsideWorkTree_MissingBinary(t *testing.T) {
	t.Parallel()

	repository := NewRepository(t.TempDir()).WithBinary(filepath.Join(t.TempDir(), "no-such-git"))
	if err := repository.IsInsideWorkTree(context.Background()); err == nil {
		t.Fatal("expected error for missing git binary")
	}
}

func TestRepository_Run(t *testing.T) {
	t.Parallel()
	requireGit(t)

	dir := initRepo(t)
	output, err := NewRepository(dir).Run(context.Background(), "rev-parse", "--is-inside-work-tree")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(output) != "true" {
		t.Errorf("Run output = %q, want %q", output, "true")
	}
}

func TestRepository_Run_InvalidSubcommand(t *testing.T) {
	t.Parallel()
	requireGit(t)

	dir := initRepo(t)
	_, err := NewRepository(dir).Run(context.Background(), "not-a-real-subcommand")
	if err == nil {
		t.Fatal("expected error for invalid subcommand")
	}
	if !strings.Contains(err.Error(), "stderr:") {
		t.Errorf("error should include stderr, got: %v", err)
	}
}

func TestRepository_WithBinary(t *testing.T) {
	t.Parallel()

	original := NewRepository("/srv/homeassistant")
	if same := original.WithBinary(""); same != original {
		t.Error("WithBinary(\"\") should return the receiver")
	}

	custom := original.WithBinary("/opt/git/bin/git")
	if custom.binary != "/opt/git/bin/git" {
		t.Errorf("binary = %q, want /opt/git/bin/git", custom.binary)
	}
	if original.binary != DefaultBinary {
		t.Errorf("WithBinary mutated the original: %q", original.binary)
	}
	if custom.Dir() != "/srv/homeassistant" {
		t.Errorf("Dir() = %q, want /srv/homeassistant", custom.Dir())
	}

	command := custom.Command(context.Background(), "status")
	want := []string{"/opt/git/bin/git", "-C", "/srv/homeassistant", "status"}
	if strings.Join(command.Args, " ") != strings.Join(want, " ") {
		t.Errorf("Command args = %v, want %v", command.Args, want)
	}
}
