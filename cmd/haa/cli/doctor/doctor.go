// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Warn creates a warning check result. Warnings only fail the command
// in strict mode.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// Skip creates a skipped check result. Checks are skipped when there is
// nothing to inspect (e.g., settings syntax without a settings file).
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// JSONOutput is the JSON output structure for doctor commands.
type JSONOutput struct {
	Checks   []Result `json:"checks"`
	OK       bool     `json:"ok"`
	Warnings int      `json:"warnings"`
	Strict   bool     `json:"strict,omitempty"`
}

// BuildJSON summarizes results. OK is false when any check failed, or,
// in strict mode, when any check warned.
func BuildJSON(results []Result, strict bool) JSONOutput {
	output := JSONOutput{Checks: results, OK: true, Strict: strict}
	for _, result := range results {
		switch result.Status {
		case StatusFail:
			output.OK = false
		case StatusWarn:
			output.Warnings++
			if strict {
				output.OK = false
			}
		}
	}
	return output
}
