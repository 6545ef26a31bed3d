package types

import "fmt"

// DefaultBudget is the maximum character length of the rendered bad list.
// The value is fixed and not exposed through any external interface.
const DefaultBudget = 1000

// CombineMode selects how negated terms and bad-descriptor terms are merged
// into the combined bad list.
type CombineMode string

const (
	// ModeNegatedFirst starts from the full negated list and admits
	// bad-descriptor terms greedily until the budget would be exceeded.
	// It is the only implemented mode; Validate rejects anything else.
	ModeNegatedFirst CombineMode = "negated_first"
)

// GenerateConfig holds the settings for one generation run.
type GenerateConfig struct {
	// Budget is the maximum character length of the ", "-joined bad list.
	// The guaranteed negated prefix is exempt; see the combiner contract.
	Budget int `json:"budget" yaml:"budget"`

	// Seed seeds the random source for modifier draws, catalog shuffles,
	// and item reshuffles. Zero selects a time-derived seed.
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Mode selects the combination strategy. Empty means ModeNegatedFirst.
	Mode CombineMode `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// WithDefaults returns a copy of the config with zero-valued fields replaced
// by their defaults.
func (c GenerateConfig) WithDefaults() GenerateConfig {
	if c.Budget == 0 {
		c.Budget = DefaultBudget
	}
	if c.Mode == "" {
		c.Mode = ModeNegatedFirst
	}
	return c
}

// Validate checks that the config describes a runnable generation.
func (c GenerateConfig) Validate() error {
	if c.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %d", c.Budget)
	}
	if c.Mode != ModeNegatedFirst {
		return fmt.Errorf("unsupported combine mode %q: only %q is implemented", c.Mode, ModeNegatedFirst)
	}
	return nil
}
