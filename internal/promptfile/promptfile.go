// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package promptfile reads and writes the YAML files the CLI exchanges
// with the user: saved rounds and prepared item lists.
package promptfile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/negation-engine/pkg/types"
)

// RoundFile is the on-disk representation of one generated round.
type RoundFile struct {
	Round   types.Round  `yaml:"round"`
	Summary RoundSummary `yaml:"summary"`
}

// RoundSummary stores list statistics and a save timestamp.
type RoundSummary struct {
	Items    int       `yaml:"items"`
	Combined int       `yaml:"combined"`
	Dropped  int       `yaml:"dropped"`
	SavedAt  time.Time `yaml:"saved_at"`
}

// ItemsFile is the on-disk shape of a prepared item list.
type ItemsFile struct {
	Items []string `yaml:"items"`
}

// WriteRound saves a round and its summary to a YAML file.
func WriteRound(path string, r types.Round) error {
	rf := RoundFile{
		Round: r,
		Summary: RoundSummary{
			Items:    len(r.Items),
			Combined: len(r.Combined),
			Dropped:  r.Dropped(),
			SavedAt:  time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling round file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadItems loads a prepared item list, trimming entries and dropping
// empty ones. An empty list is an error.
func ReadItems(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading items file: %w", err)
	}

	var f ItemsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing items file %s: %w", path, err)
	}

	var items []string
	for _, it := range f.Items {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items in %s", path)
	}
	return items, nil
}
