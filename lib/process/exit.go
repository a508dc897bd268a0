// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// exitCoder is implemented by errors that carry a process exit code
// and whose command already wrote its own output.
type exitCoder interface {
	ExitCode() int
}

// Fatal writes "error: err" to stderr and exits with code 1. Errors
// implementing ExitCode() exit with that code and print nothing.
func Fatal(err error) {
	os.Exit(Report(os.Stderr, err))
}

// Report writes the error line for err to w and returns the exit code
// the process should use. It returns 0 for a nil error.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if coder, ok := err.(exitCoder); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return 1
}
