// Copyright 2026 The HAA Authors
// SPDX-License-Identifier: Apache-2.0

package hasscli

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Area is an entry of the Home Assistant area registry.
type Area struct {
	AreaID string `json:"area_id"`
	Name   string `json:"name"`
}

// Entity is an entry of the entity registry. Only the fields area
// resolution needs are decoded.
type Entity struct {
	EntityID     string `json:"entity_id"`
	Name         string `json:"name"`
	OriginalName string `json:"original_name"`
	AreaID       string `json:"area_id"`
	DeviceID     string `json:"device_id"`
	DisabledBy   string `json:"disabled_by"`
}

// Domain returns the part of the entity id before the first dot, or ""
// for an id without one.
func (e Entity) Domain() string {
	domain, _, found := strings.Cut(e.EntityID, ".")
	if !found {
		return ""
	}
	return domain
}

// DisplayName returns the entity's name, its original name, or its id,
// whichever is first non-empty.
func (e Entity) DisplayName() string {
	switch {
	case e.Name != "":
		return e.Name
	case e.OriginalName != "":
		return e.OriginalName
	default:
		return e.EntityID
	}
}

// Device is an entry of the device registry.
type Device struct {
	ID     string `json:"id"`
	AreaID string `json:"area_id"`
}

// How an entity was resolved to its area.
const (
	SourceDirect    = "direct"
	SourceViaDevice = "via device"
)

// EntityMatch is an entity found in an area.
type EntityMatch struct {
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
	Source   string `json:"source"`
}

// DomainEntities groups the matches of one domain.
type DomainEntities struct {
	Domain   string        `json:"domain"`
	Entities []EntityMatch `json:"entities"`
}

// AreaEntities is the search result for one matched area.
type AreaEntities struct {
	Area    Area             `json:"area"`
	Domains []DomainEntities `json:"domains"`
	Total   int              `json:"total"`
}

// SearchResult is the outcome of an area search.
type SearchResult struct {
	Query  string `json:"query"`
	Domain string `json:"domain,omitempty"`

	// Matches holds one entry per matching area, sorted by area id.
	Matches []AreaEntities `json:"matches"`

	// Available lists every area, sorted by id, when nothing matched.
	Available []Area `json:"available,omitempty"`
}

// AreaMatches reports whether query names the area: a case-insensitive
// substring match in either direction against the id and the name. An
// empty id or name is a substring of every query.
func AreaMatches(area Area, query string) bool {
	q := strings.ToLower(query)
	id := strings.ToLower(area.AreaID)
	name := strings.ToLower(area.Name)
	return strings.Contains(id, q) || strings.Contains(name, q) ||
		strings.Contains(q, id) || strings.Contains(q, name)
}

// SortAreasByName returns a copy of areas ordered by name.
func SortAreasByName(areas []Area) []Area {
	sorted := slices.Clone(areas)
	slices.SortStableFunc(sorted, func(a, b Area) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return sorted
}

// Search resolves entities to areas and returns those in areas
// matching query, optionally restricted to one entity domain. An
// entity's own area wins over its device's; disabled entities and
// entities with no resolvable area are skipped.
func Search(areas []Area, entities []Entity, devices []Device, query, domain string) SearchResult {
	result := SearchResult{Query: query, Domain: domain}

	// Later registry entries with the same id replace earlier ones.
	names := make(map[string]string, len(areas))
	for _, area := range areas {
		names[area.AreaID] = area.Name
	}

	var matched []Area
	for id, name := range names {
		if AreaMatches(Area{AreaID: id, Name: name}, query) {
			matched = append(matched, Area{AreaID: id, Name: name})
		}
	}
	slices.SortFunc(matched, func(a, b Area) int { return cmp.Compare(a.AreaID, b.AreaID) })

	if len(matched) == 0 {
		for id, name := range names {
			result.Available = append(result.Available, Area{AreaID: id, Name: name})
		}
		slices.SortFunc(result.Available, func(a, b Area) int { return cmp.Compare(a.AreaID, b.AreaID) })
		return result
	}

	deviceAreas := make(map[string]string, len(devices))
	for _, device := range devices {
		if device.ID != "" && device.AreaID != "" {
			deviceAreas[device.ID] = device.AreaID
		}
	}

	for _, area := range matched {
		byDomain := make(map[string][]EntityMatch)
		for _, entity := range entities {
			if entity.DisabledBy != "" {
				continue
			}

			var resolved, source string
			switch {
			case entity.AreaID != "":
				resolved, source = entity.AreaID, SourceDirect
			case entity.DeviceID != "" && deviceAreas[entity.DeviceID] != "":
				resolved, source = deviceAreas[entity.DeviceID], SourceViaDevice
			default:
				continue
			}
			if resolved != area.AreaID {
				continue
			}

			entityDomain := entity.Domain()
			if domain != "" && entityDomain != domain {
				continue
			}
			byDomain[entityDomain] = append(byDomain[entityDomain], EntityMatch{
				EntityID: entity.EntityID,
				Name:     entity.DisplayName(),
				Source:   source,
			})
		}

		areaResult := AreaEntities{Area: area}
		for _, domainName := range slices.Sorted(maps.Keys(byDomain)) {
			matches := byDomain[domainName]
			slices.SortFunc(matches, compareMatches)
			areaResult.Domains = append(areaResult.Domains, DomainEntities{Domain: domainName, Entities: matches})
			areaResult.Total += len(matches)
		}
		result.Matches = append(result.Matches, areaResult)
	}
	return result
}

func compareMatches(a, b EntityMatch) int {
	return cmp.Or(
		cmp.Compare(a.EntityID, b.EntityID),
		cmp.Compare(a.Name, b.Name),
		cmp.Compare(a.Source, b.Source),
	)
}

// SearchAreas fetches the three registries and runs [Search].
func (c *Client) SearchAreas(ctx context.Context, query, domain string) (SearchResult, error) {
	areas, err := c.Areas(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("listing areas: %w", err)
	}
	entities, err := c.Entities(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("listing entities: %w", err)
	}
	devices, err := c.Devices(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("listing devices: %w", err)
	}
	return Search(areas, entities, devices, query, domain), nil
}
