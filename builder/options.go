// SPDX-License-Identifier: MIT
// Package: lvbid/builder
//
// options.go - functional options for fixture constructors.
//
// Options mutate builderConfig before any constructor runs. Invalid values
// passed to option constructors are programmer errors and panic immediately,
// so a misconfigured fixture never reaches a test.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes fixture construction.
type BuilderOption func(*builderConfig)

// WithSeed makes stochastic constructors reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a caller-owned RNG. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("WithRand: rng must be non-nil")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn sets the valuation distribution. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("WithWeightFn: fn must be non-nil")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithObjectPrefix sets the label prefix of object identifiers.
// An empty prefix falls back to "O".
func WithObjectPrefix(prefix string) BuilderOption {
	return func(c *builderConfig) {
		c.objectPrefix = prefix
	}
}

// WithBuyerBase sets the first buyer identifier. Panics if base < 0.
func WithBuyerBase(base int) BuilderOption {
	if base < 0 {
		panic(fmt.Sprintf("WithBuyerBase: base must be ≥ 0, got %d", base))
	}

	return func(c *builderConfig) {
		c.buyerBase = base
	}
}
