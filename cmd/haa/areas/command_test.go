// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package areas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/haa-plugin/haa/cmd/haa/cli"
	"github.com/haa-plugin/haa/lib/hasscli"
)

const (
	areasJSON = `[
		{"area_id": "living_room", "name": "Living Room"},
		{"area_id": "kitchen", "name": "Kitchen"}
	]`
	entitiesJSON = `[
		{"entity_id": "light.kitchen_ceiling", "name": "Ceiling", "area_id": "kitchen"},
		{"entity_id": "light.kitchen_strip", "name": null, "original_name": "Hue Strip", "device_id": "dev-hue"},
		{"entity_id": "sensor.kitchen_temperature", "device_id": "dev-hue"},
		{"entity_id": "switch.kitchen_fan", "area_id": "kitchen", "disabled_by": "user"}
	]`
	devicesJSON = `[{"id": "dev-hue", "area_id": "kitchen"}]`
)

// fakeClient returns a client whose hass-cli answers from the fixtures
// above, or fails every call with failure when it is non-nil.
func fakeClient(areas string, failure error) *hasscli.Client {
	responses := map[string]string{
		"area list":   areas,
		"entity list": entitiesJSON,
		"device list": devicesJSON,
	}
	return hasscli.NewClient(hasscli.ClientConfig{
		Runner: func(_ context.Context, _ string, args []string) ([]byte, []byte, error) {
			if failure != nil {
				return nil, []byte("HASS_TOKEN is required"), failure
			}
			key := strings.Join(args[2:], " ")
			response, ok := responses[key]
			if !ok {
				return nil, nil, fmt.Errorf("unexpected hass-cli call %q", key)
			}
			return []byte(response), nil, nil
		},
	})
}

func TestListText(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	if err := runList(context.Background(), &stdout, fakeClient(areasJSON, nil), listParams{}); err != nil {
		t.Fatalf("runList: %v", err)
	}

	want := "Areas (2):\n" +
		"  kitchen — Kitchen\n" +
		"  living_room — Living Room\n"
	if stdout.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestListEmpty(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	if err := runList(context.Background(), &stdout, fakeClient(`[]`, nil), listParams{}); err != nil {
		t.Fatalf("runList: %v", err)
	}
	if stdout.String() != "No areas found.\n" {
		t.Errorf("output = %q", stdout.String())
	}
}

func TestListJSON(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	params := listParams{JSONOutput: cli.JSONOutput{OutputJSON: true}}
	if err := runList(context.Background(), &stdout, fakeClient(areasJSON, nil), params); err != nil {
		t.Fatalf("runList: %v", err)
	}

	var areas []hasscli.Area
	if err := json.Unmarshal(stdout.Bytes(), &areas); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(areas) != 2 || areas[0].AreaID != "kitchen" {
		t.Errorf("areas = %+v", areas)
	}
}

func TestListCredentialError(t *testing.T) {
	t.Parallel()

	err := runList(context.Background(), &bytes.Buffer{}, fakeClient(areasJSON, errors.New("exit status 1")), listParams{})
	if !errors.Is(err, hasscli.ErrCredentials) {
		t.Errorf("error = %v, want ErrCredentials", err)
	}
}

func TestSearchText(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	if err := runSearch(context.Background(), &stdout, fakeClient(areasJSON, nil), "kitchen", searchParams{}); err != nil {
		t.Fatalf("runSearch: %v", err)
	}

	want := "## Entities in Kitchen (area_id: kitchen)\n" +
		"\n" +
		"light (2):\n" +
		"  light.kitchen_ceiling — Ceiling [direct]\n" +
		"  light.kitchen_strip — Hue Strip [via device]\n" +
		"\n" +
		"sensor (1):\n" +
		"  sensor.kitchen_temperature — sensor.kitchen_temperature [via device]\n" +
		"\n" +
		"Total: 3 entities in 2 domains\n"
	if stdout.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestSearchDomainWithoutEntities(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	params := searchParams{Domain: "climate"}
	if err := runSearch(context.Background(), &stdout, fakeClient(areasJSON, nil), "kitchen", params); err != nil {
		t.Fatalf("runSearch: %v", err)
	}

	want := "## Entities in Kitchen (area_id: kitchen)\n" +
		"\n" +
		"No entities found in \"Kitchen\" (domain: climate).\n"
	if stdout.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestSearchNoMatch(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	if err := runSearch(context.Background(), &stdout, fakeClient(areasJSON, nil), "garage", searchParams{}); err != nil {
		t.Fatalf("runSearch: %v", err)
	}

	want := "No area matching \"garage\" found.\n" +
		"\n" +
		"Available areas:\n" +
		"  kitchen — Kitchen\n" +
		"  living_room — Living Room\n"
	if stdout.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestSearchJSON(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	params := searchParams{JSONOutput: cli.JSONOutput{OutputJSON: true}}
	if err := runSearch(context.Background(), &stdout, fakeClient(areasJSON, nil), "garage", params); err != nil {
		t.Fatalf("runSearch: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	matches, ok := decoded["matches"].([]any)
	if !ok || len(matches) != 0 {
		t.Errorf("matches = %#v, want an empty array", decoded["matches"])
	}
	if available, _ := decoded["available"].([]any); len(available) != 2 {
		t.Errorf("available = %#v", decoded["available"])
	}
}

func TestSearchRequiresOneArgument(t *testing.T) {
	t.Parallel()

	err := Command().Execute(context.Background(), []string{"search"})
	var usage *cli.UsageError
	if !errors.As(err, &usage) {
		t.Errorf("Execute(search) = %v, want a usage error", err)
	}
}
