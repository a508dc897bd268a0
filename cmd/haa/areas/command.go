// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

// Package areas implements "haa areas", which lists Home Assistant
// areas and the entities assigned to them through hass-cli.
package areas

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/haa-plugin/haa/cmd/haa/cli"
	"github.com/haa-plugin/haa/lib/config"
	"github.com/haa-plugin/haa/lib/hasscli"
	"github.com/haa-plugin/haa/lib/hassenv"
)

// Command returns the "haa areas" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "areas",
		Summary: "List areas and the entities in them",
		Description: `Cross-reference the area, device and entity registries through
hass-cli. An entity belongs to its own area, or else to its device's
area. Requires hass-cli with HASS_SERVER and HASS_TOKEN set.`,
		Subcommands: []*cli.Command{
			listCommand(),
			searchCommand(),
		},
	}
}

type listParams struct {
	cli.JSONOutput
	cli.ConfigFlags
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List all areas",
		Usage:   "haa areas list [flags]",
		Examples: []cli.Example{
			{
				Description: "List areas sorted by name",
				Command:     "haa areas list",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Usage("unexpected argument: %s", args[0])
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			logger = params.Logger(cfg, "areas/list")
			return runList(ctx, os.Stdout, newClient(cfg, logger), params)
		},
	}
}

type searchParams struct {
	cli.JSONOutput
	cli.ConfigFlags
	Domain string `json:"domain" flag:"domain" desc:"only entities of this domain (e.g. light)"`
}

func searchCommand() *cli.Command {
	var params searchParams

	return &cli.Command{
		Name:    "search",
		Summary: "List the entities in an area",
		Description: `List the enabled entities in every area whose id or name matches the
query, grouped by domain. Matching is a case-insensitive substring test
in both directions, so "kitchen" and "kitchen lights" both find the
Kitchen area.`,
		Usage: "haa areas search <area> [flags]",
		Examples: []cli.Example{
			{
				Description: "Everything in the kitchen",
				Command:     "haa areas search kitchen",
			},
			{
				Description: "Only the lights in the living room",
				Command:     "haa areas search \"living room\" --domain light",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("search", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return cli.Usage("search requires exactly one area name, got %d arguments", len(args))
			}
			cfg, err := params.LoadConfig()
			if err != nil {
				return err
			}
			logger = params.Logger(cfg, "areas/search").With("area", args[0], "domain", params.Domain)
			return runSearch(ctx, os.Stdout, newClient(cfg, logger), args[0], params)
		},
	}
}

// newClient builds a hass-cli client from the tool configuration.
func newClient(cfg *config.Config, logger *slog.Logger) *hasscli.Client {
	credentials, err := hassenv.Parse(hassenv.ProcessEnvironment())
	if err != nil {
		logger.Debug("parsing hass environment", "error", err)
	}
	logger.Debug("hass-cli client", "binary", cfg.HassCLI.Binary, "timeout", cfg.HassCLI.Timeout, "credentials", credentials)

	return hasscli.NewClient(hasscli.ClientConfig{
		Binary:  cfg.HassCLI.Binary,
		Timeout: cfg.HassCLI.Timeout,
		Server:  credentials.Server,
	})
}

func runList(ctx context.Context, stdout io.Writer, client *hasscli.Client, params listParams) error {
	areas, err := client.Areas(ctx)
	if err != nil {
		return err
	}
	sorted := hasscli.SortAreasByName(areas)

	if done, err := params.EmitJSON(stdout, sorted); done {
		return err
	}

	if len(sorted) == 0 {
		fmt.Fprintln(stdout, "No areas found.")
		return nil
	}
	fmt.Fprintf(stdout, "Areas (%d):\n", len(sorted))
	for _, area := range sorted {
		fmt.Fprintf(stdout, "  %s — %s\n", area.AreaID, area.Name)
	}
	return nil
}

func runSearch(ctx context.Context, stdout io.Writer, client *hasscli.Client, query string, params searchParams) error {
	result, err := client.SearchAreas(ctx, query, params.Domain)
	if err != nil {
		return err
	}

	if params.OutputJSON {
		if result.Matches == nil {
			result.Matches = []hasscli.AreaEntities{}
		}
		return cli.WriteJSON(stdout, result)
	}

	printSearch(stdout, result)
	return nil
}

// printSearch writes result as the area report read by the assistant.
func printSearch(w io.Writer, result hasscli.SearchResult) {
	if len(result.Matches) == 0 {
		fmt.Fprintf(w, "No area matching \"%s\" found.\n\n", result.Query)
		fmt.Fprintln(w, "Available areas:")
		for _, area := range result.Available {
			fmt.Fprintf(w, "  %s — %s\n", area.AreaID, area.Name)
		}
		return
	}

	for _, match := range result.Matches {
		fmt.Fprintf(w, "## Entities in %s (area_id: %s)\n\n", match.Area.Name, match.Area.AreaID)

		if match.Total == 0 {
			filterNote := ""
			if result.Domain != "" {
				filterNote = fmt.Sprintf(" (domain: %s)", result.Domain)
			}
			fmt.Fprintf(w, "No entities found in \"%s\"%s.\n", match.Area.Name, filterNote)
			continue
		}

		for _, group := range match.Domains {
			fmt.Fprintf(w, "%s (%d):\n", group.Domain, len(group.Entities))
			for _, entity := range group.Entities {
				fmt.Fprintf(w, "  %s — %s [%s]\n", entity.EntityID, entity.Name, entity.Source)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Total: %d entities in %d domains\n", match.Total, len(match.Domains))
	}
}
