// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package diagnostics

import (
	"encoding/json"
	"fmt"
	"io"
)

// HookEventSessionStart is the hook event name the envelope answers.
const HookEventSessionStart = "SessionStart"

// Envelope is the hook output shape the session host reads from stdout.
type Envelope struct {
	HookSpecificOutput HookSpecificOutput `json:"hookSpecificOutput"`
}

// HookSpecificOutput carries the report as additional context for the
// session.
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// NewEnvelope wraps a report in a SessionStart envelope.
func NewEnvelope(report string) Envelope {
	return Envelope{HookSpecificOutput: HookSpecificOutput{
		HookEventName:     HookEventSessionStart,
		AdditionalContext: report,
	}}
}

// WriteEnvelope writes envelope to w as a single line of compact JSON
// followed by a newline. HTML escaping is disabled so the report text
// reaches the host byte-for-byte.
func WriteEnvelope(w io.Writer, envelope Envelope) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(envelope); err != nil {
		return fmt.Errorf("writing hook envelope: %w", err)
	}
	return nil
}
