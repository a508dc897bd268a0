// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for haa.
//
// Configuration comes from a single file named by either the HAA_CONFIG
// environment variable (via [Load]) or a --config flag (via
// [LoadFile]). There is no search path and no per-directory discovery.
// Unlike most tools that take a config file, haa runs fine without one:
// the session hook must work on a machine nobody has configured, so
// [Load] returns [Default] when HAA_CONFIG is unset.
//
// Variable expansion is performed on path and binary fields after
// loading: ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- log level, probed paths, git and hass-cli settings
//   - [Default] -- the configuration used when no file is given
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other haa packages.
package config
