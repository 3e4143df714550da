// SPDX-License-Identifier: MIT
// Package: lvbid/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • buyers      = 1, 2, 3, ...        (int identifiers)
//   • objects     = "O1", "O2", ...     (string identifiers)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn
//
// Int buyers and string objects are what auction.ByKind expects, so a fixture
// built with the defaults can be solved without a custom classifier.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
	// weightFn produces the valuation of each emitted buyer→object edge.
	weightFn WeightFn

	// objectPrefix labels objects as "<prefix><k>", k = 1..m.
	objectPrefix string
	// buyerBase is the first buyer identifier; buyers are buyerBase..buyerBase+n-1.
	buyerBase int
}

const (
	defaultObjectPrefix = "O"
	defaultBuyerBase    = 1
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn:     DefaultWeightFn,
		objectPrefix: defaultObjectPrefix,
		buyerBase:    defaultBuyerBase,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.objectPrefix == "" {
		cfg.objectPrefix = defaultObjectPrefix
	}

	return cfg
}

// buyerID returns the identifier of the i-th buyer (0-based index).
func (c builderConfig) buyerID(i int) any {
	return c.buyerBase + i
}

// objectID returns the identifier of the k-th object (0-based index).
func (c builderConfig) objectID(k int) any {
	return c.objectPrefix + strconv.Itoa(k+1)
}

// weight draws one valuation.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
