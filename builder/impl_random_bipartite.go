// SPDX-License-Identifier: MIT
// Package: lvbid/builder
//
// impl_random_bipartite.go - RandomBipartite(buyers, objects, p) constructor.
//
// Contract:
//   • buyers ≥ 1 and objects ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be set via WithSeed or WithRand (else ErrNeedRandSource).
//   • Each buyer→object pair is kept independently with probability p; the
//     weight is drawn only for kept pairs, so the RNG stream is: one Float64
//     per pair, then the weight draw if kept.
//   • Vertices of both sides are always present, even when isolated.
//
// Complexity: O(buyers·objects) time, O(buyers+objects) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbid/core"
)

const (
	methodRandomBipartite = "RandomBipartite"
	minProbability        = 0.0
	maxProbability        = 1.0
)

// RandomBipartite returns a Constructor for an Erdős–Rényi style bipartite
// market G(buyers, objects, p).
func RandomBipartite(buyers, objects int, p float64) Constructor {
	return func(g *core.Graph[any], cfg builderConfig) error {
		if buyers < minPartitionSize || objects < minPartitionSize {
			return fmt.Errorf("%s: buyers=%d, objects=%d (each must be ≥ %d): %w",
				methodRandomBipartite, buyers, objects, minPartitionSize, ErrTooFewVertices)
		}
		if !(p >= minProbability && p <= maxProbability) {
			return fmt.Errorf("%s: p=%g: %w", methodRandomBipartite, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomBipartite, ErrNeedRandSource)
		}

		bs, os := addSides(g, cfg, buyers, objects)
		for _, b := range bs {
			for _, o := range os {
				if cfg.rng.Float64() < p {
					g.AddEdge(b, o, cfg.weight())
				}
			}
		}

		return nil
	}
}
