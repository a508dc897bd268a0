// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/haa-plugin/haa/cmd/haa/cli"
)

// Styles colours the status column of a checklist.
type Styles struct {
	status map[Status]lipgloss.Style
}

// NewStyles returns styles for output written to w. Colour is used
// only when w is a terminal and the environment allows it (NO_COLOR
// and friends, via termenv); otherwise output is plain text.
func NewStyles(w io.Writer) Styles {
	profile := termenv.Ascii
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		profile = termenv.NewOutput(w).EnvColorProfile()
	}
	return NewStylesWithProfile(w, profile)
}

// NewStylesWithProfile returns styles rendering with a fixed colour
// profile. Tests use termenv.Ascii for byte-stable output.
func NewStylesWithProfile(w io.Writer, profile termenv.Profile) Styles {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	base := renderer.NewStyle().Bold(true)
	return Styles{
		status: map[Status]lipgloss.Style{
			StatusPass: base.Foreground(lipgloss.Color("2")),
			StatusWarn: base.Foreground(lipgloss.Color("3")),
			StatusFail: base.Foreground(lipgloss.Color("1")),
			StatusSkip: renderer.NewStyle().Faint(true),
		},
	}
}

func (s Styles) label(status Status) string {
	text := fmt.Sprintf("[%-5s]", strings.ToUpper(string(status)))
	style, ok := s.status[status]
	if !ok {
		return text
	}
	return style.Render(text)
}

// PrintChecklist writes results to w as a checklist followed by a
// one-line verdict. It returns an [cli.ExitError] with code 1 when a
// check failed, or when strict is set and a check warned.
func PrintChecklist(w io.Writer, styles Styles, results []Result, strict bool) error {
	failed := 0
	warned := 0

	for _, result := range results {
		fmt.Fprintf(w, "%s  %-20s  %s\n", styles.label(result.Status), result.Name, result.Message)

		switch result.Status {
		case StatusFail:
			failed++
		case StatusWarn:
			warned++
		}
	}

	fmt.Fprintln(w)

	switch {
	case failed > 0:
		fmt.Fprintf(w, "%d check(s) failed.\n", failed)
		return &cli.ExitError{Code: 1}
	case warned > 0 && strict:
		fmt.Fprintf(w, "%d warning(s); failing because --strict is set.\n", warned)
		return &cli.ExitError{Code: 1}
	case warned > 0:
		fmt.Fprintf(w, "%d warning(s). See the messages above.\n", warned)
		return nil
	default:
		fmt.Fprintln(w, "All checks passed.")
		return nil
	}
}
