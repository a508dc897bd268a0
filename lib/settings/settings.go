// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package settings inspects the plugin's local settings file,
// .claude/settings.local.json in the Home Assistant config root. The
// file is written by the onboarding flow; this package only reads it.
//
// The file is parsed as strict JSON. A file that fails to parse is
// treated as "nothing to say" rather than as unconfigured, so callers
// can distinguish a missing deploy section from a corrupt file. The
// looser JSONC classification exists only to explain that situation
// to a human.
package settings

import (
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// DefaultPath is the settings file location relative to the config root.
const DefaultPath = ".claude/settings.local.json"

// Syntax classifies the settings file content.
type Syntax int

const (
	// SyntaxUnknown means the content was never read (file absent or
	// unreadable).
	SyntaxUnknown Syntax = iota
	// SyntaxJSON is strict JSON.
	SyntaxJSON
	// SyntaxJSONC is JSON with comments or trailing commas. Strict
	// parsers reject it.
	SyntaxJSONC
	// SyntaxInvalid is neither JSON nor JSONC.
	SyntaxInvalid
)

func (s Syntax) String() string {
	switch s {
	case SyntaxJSON:
		return "json"
	case SyntaxJSONC:
		return "jsonc"
	case SyntaxInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// PullMethodState is the outcome of looking for deploy.pull_method.
type PullMethodState int

const (
	// PullMethodUndetermined means the lookup never happened: the file
	// is absent, unreadable, not strict JSON, or the JSON literal null.
	PullMethodUndetermined PullMethodState = iota
	// PullMethodUnset means the file parsed but deploy or
	// deploy.pull_method is missing or falsy.
	PullMethodUnset
	// PullMethodSet means deploy.pull_method holds a truthy value.
	PullMethodSet
)

// Inspection is the result of reading the settings file.
type Inspection struct {
	// Path is the inspected path, relative to the filesystem root.
	Path string

	// Found is true when Path can be stat'ed (a directory counts).
	Found bool

	// ReadError is set when Path exists but could not be read.
	ReadError error

	// Syntax classifies the content. SyntaxUnknown unless read.
	Syntax Syntax

	// PullMethod is the outcome of the deploy.pull_method lookup.
	PullMethod PullMethodState

	// PullMethodValue is the raw pull method text when PullMethod is
	// PullMethodSet.
	PullMethodValue string
}

// Inspect reads the settings file at path on fsys. It never returns an
// error: every failure is recorded on the Inspection.
func Inspect(fsys afero.Fs, path string) Inspection {
	inspection := Inspection{Path: path}

	// Any stat failure (not found, permission, a file where a
	// directory should be) means "absent".
	if _, err := fsys.Stat(path); err != nil {
		return inspection
	}
	inspection.Found = true

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		inspection.ReadError = err
		return inspection
	}

	inspection.Syntax = classify(data)
	if inspection.Syntax != SyntaxJSON {
		return inspection
	}

	root := gjson.ParseBytes(data)
	if root.Type == gjson.Null {
		return inspection
	}

	deploy := root.Get("deploy")
	pullMethod := deploy.Get("pull_method")
	if truthy(deploy) && truthy(pullMethod) {
		inspection.PullMethod = PullMethodSet
		inspection.PullMethodValue = pullMethod.String()
	} else {
		inspection.PullMethod = PullMethodUnset
	}
	return inspection
}

// classify reports whether data is strict JSON, JSONC, or neither.
func classify(data []byte) Syntax {
	if gjson.ValidBytes(data) {
		return SyntaxJSON
	}
	if gjson.ValidBytes(jsonc.ToJSON(data)) {
		return SyntaxJSONC
	}
	return SyntaxInvalid
}

// truthy applies JavaScript truthiness to a JSON value, the semantics
// the onboarding flow uses when it reads the same file.
func truthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.True, gjson.JSON:
		return true
	case gjson.Number:
		return value.Num != 0
	case gjson.String:
		return value.Str != ""
	default:
		return false
	}
}
