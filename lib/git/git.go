// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package git provides typed access to the git CLI. All commands target
// a specific directory via the -C flag, which every Repository method
// injects automatically.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBinary is the git executable looked up on PATH when a
// Repository is created without an explicit binary.
const DefaultBinary = "git"

// Repository represents a git working directory. There is no default
// directory: callers always say which one they mean.
type Repository struct {
	dir    string
	binary string
}

// NewRepository returns a Repository targeting dir, using the git
// binary found on PATH.
func NewRepository(dir string) *Repository {
	return &Repository{dir: dir, binary: DefaultBinary}
}

// WithBinary returns a copy of the repository that invokes the given
// git executable. An empty binary keeps the current one.
func (r *Repository) WithBinary(binary string) *Repository {
	if binary == "" {
		return r
	}
	copied := *r
	copied.binary = binary
	return &copied
}

// Dir returns the repository directory.
func (r *Repository) Dir() string {
	return r.dir
}

// Run executes a git command targeting this repository and returns
// stdout. Stderr is captured separately and included in error messages
// on failure.
func (r *Repository) Run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	command := r.Command(ctx, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("git %s in %s: %w (stderr: %s)",
			strings.Join(args, " "), r.dir, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// IsInsideWorkTree reports, via the returned error, whether the
// directory is inside a git working tree. Only the exit status of
// "git rev-parse --is-inside-work-tree" counts: a missing binary, a
// directory outside any repository, and a permission failure all
// return an error. Running inside a .git directory succeeds even
// though git prints "false" there.
func (r *Repository) IsInsideWorkTree(ctx context.Context) error {
	_, err := r.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err
}

// Command returns an *exec.Cmd for a git command without running it.
// The -C flag targeting this repository is prepended.
func (r *Repository) Command(ctx context.Context, args ...string) *exec.Cmd {
	fullArgs := append([]string{"-C", r.dir}, args...)
	return exec.CommandContext(ctx, r.binary, fullArgs...)
}
