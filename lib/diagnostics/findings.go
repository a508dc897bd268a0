// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package diagnostics

// Reason identifies why a warning was raised.
type Reason int

const (
	// ReasonNotRepository: the working directory is not inside a git
	// working tree (or git could not be run).
	ReasonNotRepository Reason = iota + 1
	// ReasonMissingConfigRoot: configuration.yaml is absent.
	ReasonMissingConfigRoot
	// ReasonMissingToken: HASS_TOKEN is unset or empty.
	ReasonMissingToken
	// ReasonMissingServer: HASS_SERVER is unset or empty.
	ReasonMissingServer
	// ReasonMissingSettings: the local settings file is absent.
	ReasonMissingSettings
	// ReasonPullMethodUnset: the settings file parsed but has no
	// deploy pull method.
	ReasonPullMethodUnset
)

func (r Reason) String() string {
	switch r {
	case ReasonNotRepository:
		return "not_repository"
	case ReasonMissingConfigRoot:
		return "missing_config_root"
	case ReasonMissingToken:
		return "missing_token"
	case ReasonMissingServer:
		return "missing_server"
	case ReasonMissingSettings:
		return "missing_settings"
	case ReasonPullMethodUnset:
		return "pull_method_unset"
	default:
		return "unknown"
	}
}

// Warning is a rendered warning line tagged with its reason.
type Warning struct {
	Reason Reason `json:"reason"`
	Text   string `json:"text"`
}

// CheckResult is the outcome of one check. Status and Warning are
// independent: the settings check can produce both.
type CheckResult struct {
	// Name identifies the check (one of the Check* constants).
	Name string `json:"name"`

	// Status is the status line contributed to the report, or "".
	Status string `json:"status,omitempty"`

	// Warning is the warning contributed to the report, or nil.
	Warning *Warning `json:"warning,omitempty"`

	// Detail describes a passing check that has no status line. It is
	// never rendered into the session report.
	Detail string `json:"detail,omitempty"`
}

// Passed reports whether the check raised no warning.
func (r CheckResult) Passed() bool {
	return r.Warning == nil
}

// Summary returns the most specific human-readable line for the check:
// the warning text, else the status line, else the detail.
func (r CheckResult) Summary() string {
	switch {
	case r.Warning != nil:
		return r.Warning.Text
	case r.Status != "":
		return r.Status
	default:
		return r.Detail
	}
}

// Findings is the ordered result of a diagnostics run.
type Findings struct {
	Results []CheckResult `json:"results"`
}

// StatusLines returns the status lines in check order.
func (f Findings) StatusLines() []string {
	var lines []string
	for _, result := range f.Results {
		if result.Status != "" {
			lines = append(lines, result.Status)
		}
	}
	return lines
}

// Warnings returns the warnings in check order.
func (f Findings) Warnings() []Warning {
	var warnings []Warning
	for _, result := range f.Results {
		if result.Warning != nil {
			warnings = append(warnings, *result.Warning)
		}
	}
	return warnings
}

// has reports whether any warning carries one of the given reasons.
func (f Findings) has(reasons ...Reason) bool {
	for _, warning := range f.Warnings() {
		for _, reason := range reasons {
			if warning.Reason == reason {
				return true
			}
		}
	}
	return false
}

// Action is the directive appended after the warnings section.
type Action int

const (
	// ActionNone: no warnings; the environment is ready.
	ActionNone Action = iota
	// ActionMention: only non-critical warnings; mention them and
	// proceed with the user's request.
	ActionMention
	// ActionOnboardConfigRoot: not in a config root; onboarding must
	// run to find or create one.
	ActionOnboardConfigRoot
	// ActionOnboardSetup: credentials are missing; onboarding must run
	// before anything else.
	ActionOnboardSetup
)

func (a Action) String() string {
	switch a {
	case ActionMention:
		return "mention"
	case ActionOnboardConfigRoot:
		return "onboard_config_root"
	case ActionOnboardSetup:
		return "onboard_setup"
	default:
		return "none"
	}
}

// RequiresOnboarding reports whether the action forces onboarding
// before the user's request is handled.
func (a Action) RequiresOnboarding() bool {
	return a == ActionOnboardSetup || a == ActionOnboardConfigRoot
}

// Action classifies the warning set. Missing credentials outrank a
// missing config root, which outranks any other warning.
func (f Findings) Action() Action {
	switch {
	case f.has(ReasonMissingToken, ReasonMissingServer):
		return ActionOnboardSetup
	case f.has(ReasonMissingConfigRoot):
		return ActionOnboardConfigRoot
	case len(f.Warnings()) > 0:
		return ActionMention
	default:
		return ActionNone
	}
}
