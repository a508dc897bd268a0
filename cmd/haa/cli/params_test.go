// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

type testParams struct {
	JSONOutput
	ConfigFlags
	Domain  string        `flag:"domain,d" desc:"entity domain"`
	Strict  bool          `flag:"strict" desc:"fail on warnings"`
	Limit   int           `flag:"limit" default:"10" desc:"maximum rows"`
	Timeout time.Duration `flag:"timeout" default:"30s" desc:"deadline"`
}

func TestFlagsFromParams(t *testing.T) {
	t.Parallel()

	var params testParams
	flagSet := FlagsFromParams("test", &params)

	for _, name := range []string{"json", "config", "log-level", "domain", "strict", "limit", "timeout"} {
		if flagSet.Lookup(name) == nil {
			t.Errorf("flag --%s not bound", name)
		}
	}
	if flagSet.ShorthandLookup("d") == nil {
		t.Error("shorthand -d not bound")
	}
	if params.Limit != 10 || params.Timeout != 30*time.Second {
		t.Errorf("defaults not applied: limit=%d timeout=%s", params.Limit, params.Timeout)
	}

	err := flagSet.Parse([]string{"--json", "-d", "light", "--strict", "--limit=3", "--timeout", "5s", "--config", "haa.yaml"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !params.OutputJSON || params.Domain != "light" || !params.Strict || params.Limit != 3 ||
		params.Timeout != 5*time.Second || params.ConfigPath != "haa.yaml" {
		t.Errorf("parsed params = %+v", params)
	}
}

func TestBindFlagsRejectsNonPointer(t *testing.T) {
	t.Parallel()

	err := BindFlags(testParams{}, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil || !strings.Contains(err.Error(), "pointer to a struct") {
		t.Errorf("BindFlags(struct) error = %v", err)
	}
}

func TestBindFlagsRejectsUnsupportedType(t *testing.T) {
	t.Parallel()

	var params struct {
		Ratio float64 `flag:"ratio"`
	}
	err := BindFlags(&params, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("BindFlags error = %v", err)
	}
}

func TestBindFlagsBadDefault(t *testing.T) {
	t.Parallel()

	var params struct {
		Count int `flag:"count" default:"many"`
	}
	err := BindFlags(&params, pflag.NewFlagSet("test", pflag.ContinueOnError))
	if err == nil || !strings.Contains(err.Error(), "default for --count") {
		t.Errorf("BindFlags error = %v", err)
	}
}

type customBinder struct {
	Value string
}

func (c *customBinder) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.Value, "custom", "preset", "bound by AddFlags")
}

func TestBindFlagsUsesFlagBinder(t *testing.T) {
	t.Parallel()

	var params struct {
		Custom customBinder
	}
	flagSet := FlagsFromParams("test", &params)
	if flagSet.Lookup("custom") == nil {
		t.Fatal("FlagBinder flags not bound")
	}
	if params.Custom.Value != "preset" {
		t.Errorf("Value = %q, want preset", params.Custom.Value)
	}
}
