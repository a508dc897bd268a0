// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "ab", 1},
		{"ab", "abc", 1},
		{"abc", "bac", 2},
		{"kitten", "sitting", 3},
		{"doctor", "docotr", 2},
		{"areas", "area", 1},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			t.Parallel()
			if got := levenshtein(test.a, test.b); got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if reverse := levenshtein(test.b, test.a); reverse != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.b, test.a, reverse, test.want)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	t.Parallel()

	commands := []*Command{
		{Name: "session-check"},
		{Name: "doctor"},
		{Name: "areas"},
		{Name: "version"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"doctr", "doctor"},
		{"area", "areas"},
		{"verison", "version"},
		{"session-chek", "session-check"},
		{"deploy", ""},
	}
	for _, test := range tests {
		if got := suggestCommand(test.input, commands); got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	t.Parallel()

	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.Bool("json", false, "")
		flagSet.StringP("domain", "d", "", "")
		flagSet.Bool("strict", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"typo", []string{"--jsno"}, "--json"},
		{"typo with value", []string{"--domian=light"}, "--domain"},
		{"known flags skipped", []string{"--json", "--stritc"}, "--strict"},
		{"known shorthand skipped", []string{"-d", "light", "--jsn"}, "--json"},
		{"nothing close", []string{"--completely-different"}, ""},
		{"positional only", []string{"kitchen"}, ""},
		{"after terminator", []string{"--", "--jsno"}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := suggestFlag(test.args, newFlagSet()); got != test.want {
				t.Errorf("suggestFlag(%q) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
