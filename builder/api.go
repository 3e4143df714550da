// SPDX-License-Identifier: MIT
// Package: lvbid/builder
//
// api.go - public entry point for the builder package.
//
// Contract:
//   • One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order.
//   • Factories live in impl_*.go and only return Constructors.
//   • Determinism: same inputs, options, seed and constructor order give
//     identical graphs.
//   • Constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbid/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors.
type Constructor func(g *core.Graph[any], cfg builderConfig) error

// BuildGraph creates a new core.Graph[any] with graph options gopts, resolves
// the builder configuration from bopts, and applies each constructor in order.
//
// Errors are wrapped as "BuildGraph: %w"; a nil constructor yields
// ErrConstructFailed. On error the partially built graph is discarded.
//
// Complexity: O(sum of constructor costs).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[any], error) {
	g := core.NewGraph[any](gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
