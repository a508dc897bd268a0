// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctor provides shared infrastructure for haa's diagnostic
// output: a [Result] per check, constructors for each [Status],
// [PrintChecklist] for human-readable output and [BuildJSON] for
// machine-readable output.
//
// What to check lives in the doctor command's package. This package
// provides only the presentation.
package doctor
