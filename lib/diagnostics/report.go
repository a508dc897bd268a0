// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import "strings"

// Header is the first line of every report.
const Header = "=== Home Assistant Assistant: Session Diagnostics ==="

// Footer is the last line of every report.
const Footer = "====================================================="

// Route maps a kind of request to the plugin skill that handles it.
type Route struct {
	Purpose string
	Skills  string
}

// Routes is the skill routing guide appended to every report.
var Routes = []Route{
	{"Entity renaming/naming conventions", "/ha-naming"},
	{"Execute a naming plan", "/ha-apply-naming"},
	{"Deploy config changes", "/ha-deploy"},
	{"Validate config", "/ha-validate"},
	{"Analyze/improve setup", "/ha-analyze"},
	{"New device setup", "/ha-devices"},
	{"Create automations/scripts/scenes", "/ha-automations, /ha-scripts, /ha-scenes"},
}

// Directive texts, keyed by action.
const (
	directiveOnboardSetup = "ACTION REQUIRED: Setup is incomplete. Before handling the user's request, " +
		"you MUST invoke the /ha-onboard skill to walk them through setup. Acknowledge the user's request, " +
		"explain that setup needs to be completed first, then launch /ha-onboard."

	directiveOnboardConfigRoot = "ACTION REQUIRED: You are NOT in a Home Assistant config directory " +
		"(no configuration.yaml found). Before handling the user's request, you MUST invoke the /ha-onboard skill. " +
		"It will determine whether the user already has their config checked out locally or needs to set up git from scratch."

	directiveMention = "Note: Some non-critical warnings above. Briefly mention them to the user, " +
		"then proceed with their request normally."

	directiveReady = "All checks passed. Environment is ready."
)

// Directive returns the trailer text for an action.
func (a Action) Directive() string {
	switch a {
	case ActionOnboardSetup:
		return directiveOnboardSetup
	case ActionOnboardConfigRoot:
		return directiveOnboardConfigRoot
	case ActionMention:
		return directiveMention
	default:
		return directiveReady
	}
}

// Render builds the session report from findings.
func Render(findings Findings) string {
	var builder strings.Builder

	builder.WriteString(Header)
	builder.WriteString("\n")

	if statusLines := findings.StatusLines(); len(statusLines) > 0 {
		builder.WriteString(strings.Join(statusLines, "\n"))
		builder.WriteString("\n")
	}

	if warnings := findings.Warnings(); len(warnings) > 0 {
		builder.WriteString("\nWarnings:\n")
		for _, warning := range warnings {
			builder.WriteString("  - ")
			builder.WriteString(warning.Text)
			builder.WriteString("\n")
		}
	}

	builder.WriteString("\n")
	builder.WriteString(findings.Action().Directive())

	builder.WriteString("\n\nPlugin skill routing:")
	for _, route := range Routes {
		builder.WriteString("\n  - ")
		builder.WriteString(route.Purpose)
		builder.WriteString(" → ")
		builder.WriteString(route.Skills)
	}

	builder.WriteString("\n")
	builder.WriteString(Footer)
	return builder.String()
}
