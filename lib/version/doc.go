// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the haa
// binary.
//
// Three package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// When they are not injected (go install, test runs), [Info] falls back
// to the module version and VCS revision recorded by the Go toolchain
// in the binary's build info.
package version
