// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides entrypoint helpers for the haa binary. It
// centralizes the raw stderr write that happens when a command fails
// before or outside the structured logger, and the exit code mapping
// for errors that carry their own code.
package process
