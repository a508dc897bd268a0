// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file path variable read by [Load].
const EnvironmentVariable = "HAA_CONFIG"

// Config is the master configuration for haa.
type Config struct {
	// LogLevel is the minimum slog level: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`

	// Paths configures the files probed in the config root.
	Paths PathsConfig `yaml:"paths"`

	// Git configures the version-control probe.
	Git GitConfig `yaml:"git"`

	// HassCLI configures the hass-cli client used by the areas commands.
	HassCLI HassCLIConfig `yaml:"hass_cli"`
}

// PathsConfig configures file locations, relative to the Home
// Assistant config root (the working directory).
type PathsConfig struct {
	// ConfigFile is the file whose presence marks the config root.
	// Default: configuration.yaml
	ConfigFile string `yaml:"config_file"`

	// SettingsFile is the plugin's local settings file.
	// Default: .claude/settings.local.json
	SettingsFile string `yaml:"settings_file"`
}

// GitConfig configures the git probe.
type GitConfig struct {
	// Binary is the git executable. Default: git (found in PATH)
	Binary string `yaml:"binary"`

	// Timeout bounds the probe. Zero means no deadline, which is the
	// default: the probe is a local rev-parse.
	Timeout time.Duration `yaml:"timeout"`
}

// HassCLIConfig configures hass-cli invocations.
type HassCLIConfig struct {
	// Binary is the hass-cli executable. Default: hass-cli (found in PATH)
	Binary string `yaml:"binary"`

	// Timeout bounds each hass-cli call. Default: 60s
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is given. A
// loaded file is merged over these values.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Paths: PathsConfig{
			ConfigFile:   "configuration.yaml",
			SettingsFile: ".claude/settings.local.json",
		},
		Git: GitConfig{
			Binary: "git",
		},
		HassCLI: HassCLIConfig{
			Binary:  "hass-cli",
			Timeout: 60 * time.Second,
		},
	}
}

// Load loads configuration from the file named by HAA_CONFIG, or
// returns [Default] when the variable is unset or empty.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// [Default], then expands variables and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in path
// and binary fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Paths.ConfigFile = expandVars(c.Paths.ConfigFile, vars)
	c.Paths.SettingsFile = expandVars(c.Paths.SettingsFile, vars)
	c.Git.Binary = expandVars(c.Git.Binary, vars)
	c.HassCLI.Binary = expandVars(c.HassCLI.Binary, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns. Provided vars
// win over the process environment.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	for field, value := range map[string]string{
		"paths.config_file":   c.Paths.ConfigFile,
		"paths.settings_file": c.Paths.SettingsFile,
	} {
		if err := validateRelativePath(field, value); err != nil {
			errs = append(errs, err)
		}
	}

	if c.Git.Binary == "" {
		errs = append(errs, errors.New("git.binary is required"))
	}
	if c.Git.Timeout < 0 {
		errs = append(errs, fmt.Errorf("git.timeout must not be negative, got %s", c.Git.Timeout))
	}
	if c.HassCLI.Binary == "" {
		errs = append(errs, errors.New("hass_cli.binary is required"))
	}
	if c.HassCLI.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("hass_cli.timeout must be positive, got %s", c.HassCLI.Timeout))
	}

	return errors.Join(errs...)
}

// validateRelativePath requires a path that stays inside the config root.
func validateRelativePath(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if filepath.IsAbs(value) {
		return fmt.Errorf("%s must be relative to the config root, got %q", field, value)
	}
	cleaned := filepath.Clean(value)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s must stay inside the config root, got %q", field, value)
	}
	return nil
}

// SlogLevel returns the configured level. Invalid values (which
// Validate rejects) fall back to warn.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q (want debug, info, warn, or error)", value)
	}
}
