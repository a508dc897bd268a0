// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package hasscli wraps the hass-cli command-line client. Every call
// runs "hass-cli -o json <args>" and decodes the registry listing it
// prints. hass-cli reads HASS_SERVER and HASS_TOKEN itself; this
// package never handles the token.
package hasscli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the hass-cli executable looked up on PATH.
const DefaultBinary = "hass-cli"

// DefaultTimeout bounds a single hass-cli call.
const DefaultTimeout = 60 * time.Second

var (
	// ErrNotInstalled is returned when the hass-cli binary cannot be found.
	ErrNotInstalled = errors.New("hass-cli not found. Install: pip install homeassistant-cli")

	// ErrTimeout is returned when a call exceeds the client timeout.
	ErrTimeout = errors.New("timed out")

	// ErrCredentials is returned when hass-cli reports missing
	// connection settings.
	ErrCredentials = errors.New("HASS_SERVER or HASS_TOKEN not set. Run /ha-onboard to configure.")

	// ErrInvalidOutput is returned when hass-cli output is not the
	// expected JSON.
	ErrInvalidOutput = errors.New("could not parse hass-cli output as JSON")
)

// CommandError describes a hass-cli run that exited non-zero for a
// reason other than missing credentials.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	detail := e.Stderr
	if detail == "" {
		detail = "unknown error"
	}
	return "hass-cli failed: " + detail
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes binary with args and returns its stdout and stderr.
// The default runner uses os/exec; tests substitute canned output.
type Runner func(ctx context.Context, binary string, args []string) (stdout, stderr []byte, err error)

// execRunner runs the command with os/exec.
func execRunner(ctx context.Context, binary string, args []string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, binary, args...)
	command.Stdout = &stdout
	command.Stderr = &stderr
	err := command.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Client runs hass-cli commands.
type Client struct {
	binary  string
	timeout time.Duration
	server  string
	run     Runner
}

// ClientConfig configures a Client. Zero values select defaults.
type ClientConfig struct {
	// Binary is the hass-cli executable.
	Binary string

	// Timeout bounds each call.
	Timeout time.Duration

	// Server is the configured HASS_SERVER, used only to make timeout
	// errors actionable.
	Server string

	// Runner replaces the os/exec runner.
	Runner Runner
}

// NewClient returns a Client for config.
func NewClient(config ClientConfig) *Client {
	client := &Client{
		binary:  config.Binary,
		timeout: config.Timeout,
		server:  config.Server,
		run:     config.Runner,
	}
	if client.binary == "" {
		client.binary = DefaultBinary
	}
	if client.timeout <= 0 {
		client.timeout = DefaultTimeout
	}
	if client.run == nil {
		client.run = execRunner
	}
	return client
}

// ListJSON runs "hass-cli -o json <args>" and decodes stdout into out.
func (c *Client) ListJSON(ctx context.Context, out any, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fullArgs := append([]string{"-o", "json"}, args...)
	stdout, stderr, err := c.run(ctx, c.binary, fullArgs)
	if err != nil {
		return c.classify(ctx, args, stderr, err)
	}

	if err := json.Unmarshal(stdout, out); err != nil {
		return fmt.Errorf("hass-cli %s: %w: %v", strings.Join(args, " "), ErrInvalidOutput, err)
	}
	return nil
}

// classify maps a failed run to one of the package errors.
func (c *Client) classify(ctx context.Context, args []string, stderr []byte, err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ErrNotInstalled
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		server := c.server
		if server == "" {
			server = "(not set)"
		}
		return fmt.Errorf("%w. Server: %s", ErrTimeout, server)
	}

	message := strings.TrimSpace(string(stderr))
	if strings.Contains(message, "HASS_SERVER") || strings.Contains(message, "HASS_TOKEN") {
		return ErrCredentials
	}
	return &CommandError{Args: args, Stderr: message, Err: err}
}

// Areas lists the area registry.
func (c *Client) Areas(ctx context.Context) ([]Area, error) {
	var areas []Area
	if err := c.ListJSON(ctx, &areas, "area", "list"); err != nil {
		return nil, err
	}
	return areas, nil
}

// Entities lists the entity registry.
func (c *Client) Entities(ctx context.Context) ([]Entity, error) {
	var entities []Entity
	if err := c.ListJSON(ctx, &entities, "entity", "list"); err != nil {
		return nil, err
	}
	return entities, nil
}

// Devices lists the device registry.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	var devices []Device
	if err := c.ListJSON(ctx, &devices, "device", "list"); err != nil {
		return nil, err
	}
	return devices, nil
}
