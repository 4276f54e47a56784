// Package gamedata loads the static registries shipped alongside the
// advisor: verified landmark coordinates from the pokefirered
// decompilation, and an optional type effectiveness chart override.
package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/firered-ai/tactician/domain/battle"
	"github.com/firered-ai/tactician/domain/nav"
	"github.com/firered-ai/tactician/infrastructure/logging"
)

// landmarkEntry is the on-disk shape of one landmark.
type landmarkEntry struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label"`
}

// mapEntry is the on-disk shape of one map record. Map ids are JSON
// object keys, so they arrive as strings.
type mapEntry struct {
	Name      string                   `json:"name"`
	Landmarks map[string]landmarkEntry `json:"landmarks"`
}

// LandmarkRegistry implements nav.Registry over the landmark data file.
type LandmarkRegistry struct {
	maps map[int]mapEntry
}

// LoadLandmarks reads the landmark registry from path. A missing file
// degrades to an empty registry with a warning: navigation targets just
// come back unknown.
func LoadLandmarks(path string) (*LandmarkRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Warn().
				Add(logging.Component("gamedata")).
				Add(logging.Path(path)).
				Msg("landmark file missing, navigation targets unavailable")
			return &LandmarkRegistry{maps: map[int]mapEntry{}}, nil
		}
		return nil, fmt.Errorf("failed to read landmark file: %w", err)
	}

	var raw map[string]mapEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode landmark file: %w", err)
	}

	maps := make(map[int]mapEntry, len(raw))
	for key, entry := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			logging.Warn().
				Add(logging.Component("gamedata")).
				Add(logging.Str("key", key)).
				Msg("skipping landmark entry with non-numeric map id")
			continue
		}
		maps[id] = entry
	}
	return &LandmarkRegistry{maps: maps}, nil
}

// Lookup returns the landmark stored under key on the given map.
func (r *LandmarkRegistry) Lookup(mapID int, key string) (nav.Landmark, bool) {
	entry, ok := r.maps[mapID]
	if !ok {
		return nav.Landmark{}, false
	}
	lm, ok := entry.Landmarks[key]
	if !ok {
		return nav.Landmark{}, false
	}
	label := lm.Label
	if label == "" {
		label = key
	}
	return nav.Landmark{X: lm.X, Y: lm.Y, Label: label}, true
}

// Keys returns the landmark keys available on a map.
func (r *LandmarkRegistry) Keys(mapID int) []string {
	entry, ok := r.maps[mapID]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(entry.Landmarks))
	for key := range entry.Landmarks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MapName returns the human-readable name of a map.
func (r *LandmarkRegistry) MapName(mapID int) (string, bool) {
	entry, ok := r.maps[mapID]
	if !ok {
		return "", false
	}
	return entry.Name, true
}

// LoadTypeChart reads a type effectiveness chart from path. An empty path
// or missing file falls back to the built-in chart.
func LoadTypeChart(path string) (battle.TypeChart, error) {
	if path == "" {
		return battle.DefaultChart(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Warn().
				Add(logging.Component("gamedata")).
				Add(logging.Path(path)).
				Msg("type chart file missing, using built-in chart")
			return battle.DefaultChart(), nil
		}
		return nil, fmt.Errorf("failed to read type chart: %w", err)
	}

	var chart battle.TypeChart
	if err := json.Unmarshal(data, &chart); err != nil {
		return nil, fmt.Errorf("failed to decode type chart: %w", err)
	}
	return chart, nil
}
