// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate builds the good/bad list pair for a round: negated
// copies of the input items, descriptor pairings drawn from a shuffled
// catalog, and a budget-gated combination of the two.
package generate

import (
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pdiddy/negation-engine/pkg/types"
)

// modifiers are prefixed to items to form the negated terms.
var modifiers = []string{"not", "no", "un-"}

// Generator produces rounds from a single random stream. Use one
// Generator per session so repeated rounds keep drawing from the same
// seeded stream.
type Generator struct {
	cfg     types.GenerateConfig
	catalog []string
	rng     *rand.Rand
	seed    int64
}

// New validates cfg and returns a Generator over the given descriptor
// catalog. A zero cfg.Seed is replaced with the current wall-clock
// time; the effective seed is available via Seed.
func New(cfg types.GenerateConfig, catalog []string) (*Generator, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:     cfg,
		catalog: append([]string(nil), catalog...),
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
	}, nil
}

// Seed returns the seed the random stream was initialized with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// NegatedList prefixes each item with a modifier drawn at random from
// the modifier set, preserving item order.
func (g *Generator) NegatedList(items []string) []string {
	negated := make([]string, 0, len(items))
	for _, item := range items {
		mod := modifiers[g.rng.Intn(len(modifiers))]
		negated = append(negated, mod+" "+item)
	}
	return negated
}

// BadDescriptorList pairs every descriptor in a shuffled copy of the
// catalog with an item, cycling through the items when there are more
// descriptors than items.
func (g *Generator) BadDescriptorList(items []string) []string {
	if len(items) == 0 {
		return nil
	}

	shuffled := append([]string(nil), g.catalog...)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	terms := make([]string, 0, len(shuffled))
	for i, desc := range shuffled {
		terms = append(terms, desc+" "+items[i%len(items)])
	}
	return terms
}

// Combine starts from the full negated list and greedily appends
// descriptor terms while the ", "-joined rendering stays within the
// character budget. The negated prefix is kept even when it alone
// exceeds the budget; the first rejected term ends the scan.
func (g *Generator) Combine(negated, bad []string) []string {
	combined := append([]string(nil), negated...)
	length := joinedRuneLen(combined)

	for _, term := range bad {
		next := length + utf8.RuneCountInString(term)
		if len(combined) > 0 {
			next += len(", ")
		}
		if next > g.cfg.Budget {
			break
		}
		combined = append(combined, term)
		length = next
	}
	return combined
}

// PositiveList cycles through items until it has target entries.
func (g *Generator) PositiveList(items []string, target int) []string {
	if len(items) == 0 {
		return nil
	}

	positive := make([]string, 0, target)
	for i := 0; i < target; i++ {
		positive = append(positive, items[i%len(items)])
	}
	return positive
}

// ShuffledItems returns a shuffled copy of items.
func (g *Generator) ShuffledItems(items []string) []string {
	shuffled := append([]string(nil), items...)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// BuildRound runs the full pipeline for one set of items and returns
// the assembled round.
func (g *Generator) BuildRound(items []string) (types.Round, error) {
	if len(items) == 0 {
		return types.Round{}, fmt.Errorf("no items to build a round from")
	}

	negated := g.NegatedList(items)
	bad := g.BadDescriptorList(items)
	combined := g.Combine(negated, bad)
	positive := g.PositiveList(items, len(combined))

	return types.Round{
		ID:             uuid.NewString(),
		Items:          append([]string(nil), items...),
		Negated:        negated,
		BadDescriptors: bad,
		Combined:       combined,
		Positive:       positive,
		Budget:         g.cfg.Budget,
		Seed:           g.seed,
		GeneratedAt:    time.Now().UTC(),
	}, nil
}

// joinedRuneLen is the rune length of strings.Join(terms, ", ")
// without building the string.
func joinedRuneLen(terms []string) int {
	n := 0
	for i, t := range terms {
		if i > 0 {
			n += len(", ")
		}
		n += utf8.RuneCountInString(t)
	}
	return n
}
