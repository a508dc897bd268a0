// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package hassenv reads the Home Assistant connection settings that
// hass-cli expects from the environment. Parsing always works on an
// explicit variable map so callers and tests can supply fixtures
// without touching process state.
package hassenv

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf16"

	"github.com/caarlos0/env/v11"
)

// Variable names read by hass-cli.
const (
	TokenVariable  = "HASS_TOKEN"
	ServerVariable = "HASS_SERVER"
)

// Credentials holds the hass-cli connection settings. Token is a
// long-lived access token and must never be printed or logged; use
// [Credentials.TokenLength] when its presence needs reporting.
type Credentials struct {
	Token  string `env:"HASS_TOKEN"`
	Server string `env:"HASS_SERVER"`
}

// Parse extracts Credentials from the given environment map. Missing
// or empty variables leave the corresponding field empty. A nil map is
// an empty environment, never the process one.
func Parse(variables map[string]string) (Credentials, error) {
	if variables == nil {
		variables = map[string]string{}
	}
	var credentials Credentials
	if err := env.ParseWithOptions(&credentials, env.Options{Environment: variables}); err != nil {
		return Credentials{}, fmt.Errorf("parse hass environment: %w", err)
	}
	return credentials, nil
}

// ProcessEnvironment returns the current process environment as a map,
// the form [Parse] and the diagnostics runner consume.
func ProcessEnvironment() map[string]string {
	return env.ToMap(os.Environ())
}

// HasToken reports whether a non-empty token is configured.
func (c Credentials) HasToken() bool {
	return c.Token != ""
}

// HasServer reports whether a non-empty server address is configured.
func (c Credentials) HasServer() bool {
	return c.Server != ""
}

// TokenLength returns the token length in UTF-16 code units, the unit
// the plugin's other tooling reports. For the ASCII tokens Home
// Assistant issues this equals the byte length.
func (c Credentials) TokenLength() int {
	return len(utf16.Encode([]rune(c.Token)))
}

// ServerOrPlaceholder returns the server address, or "(not set)".
func (c Credentials) ServerOrPlaceholder() string {
	if c.Server == "" {
		return "(not set)"
	}
	return c.Server
}

// LogValue implements slog.LogValuer so that logging Credentials never
// leaks the token.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("token_set", c.HasToken()),
		slog.Int("token_length", c.TokenLength()),
		slog.String("server", c.Server),
	)
}

// String implements fmt.Stringer with the token redacted.
func (c Credentials) String() string {
	return fmt.Sprintf("server=%s token=<redacted %d chars>", c.ServerOrPlaceholder(), c.TokenLength())
}
