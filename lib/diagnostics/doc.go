// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package diagnostics implements the session-start environment check
// for the Home Assistant Assistant plugin.
//
// [Run] executes five checks in a fixed order against an explicit
// [Environment] (working-directory filesystem, environment variables,
// git probe) and returns [Findings]: one [CheckResult] per check, each
// contributing at most one status line and at most one [Warning].
// Every check is isolated; none can abort the run.
//
// Each Warning carries a [Reason] assigned when it is created.
// [Findings.Action] decides whether onboarding must be forced by
// switching on reasons, never on rendered text, so the wording of a
// warning can change without changing which directive is chosen.
//
// [Render] turns Findings into the report consumed by the prompting
// layer, and [WriteEnvelope] wraps it in the SessionStart hook
// envelope. The report layout (header, two-space bullet prefix,
// section order, routing guide, footer) is a compatibility surface:
// downstream prompts depend on it verbatim.
package diagnostics
