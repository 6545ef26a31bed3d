// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for negation-engine:
// generation configuration and the Round record produced by each run.
package types

import (
	"strings"
	"time"
)

// Round is one complete generation: the normalized input items and every
// list derived from them, with enough provenance (seed, budget) to reproduce
// the run. Rounds are ephemeral; they are recomputed from scratch each time
// and only leave memory through an explicit export.
type Round struct {
	// ID uniquely identifies the round (UUID string).
	ID string `json:"id" yaml:"id"`

	// Items are the normalized input items, in insertion order.
	Items []string `json:"items" yaml:"items"`

	// Negated holds one negated term per item, same order as Items.
	Negated []string `json:"negated" yaml:"negated"`

	// BadDescriptors is the full candidate pool of descriptor terms, one per
	// catalog entry, in shuffled order. The combiner admits a prefix of it.
	BadDescriptors []string `json:"bad_descriptors" yaml:"bad_descriptors"`

	// Combined is the bad list: all of Negated followed by the admitted
	// prefix of BadDescriptors.
	Combined []string `json:"combined" yaml:"combined"`

	// Positive mirrors Combined in length, cycling through Items.
	Positive []string `json:"positive" yaml:"positive"`

	// Budget is the character budget the combiner enforced.
	Budget int `json:"budget" yaml:"budget"`

	// Seed is the effective random seed, recorded so a time-seeded run can
	// still be reproduced.
	Seed int64 `json:"seed" yaml:"seed"`

	// GeneratedAt is the wall-clock time of generation.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// GoodString renders the positive list as a ", "-joined string.
func (r Round) GoodString() string {
	return strings.Join(r.Positive, ", ")
}

// BadString renders the combined bad list as a ", "-joined string.
func (r Round) BadString() string {
	return strings.Join(r.Combined, ", ")
}

// Dropped returns how many candidate bad-descriptor terms the budget
// excluded from the combined list.
func (r Round) Dropped() int {
	return len(r.BadDescriptors) - (len(r.Combined) - len(r.Negated))
}
