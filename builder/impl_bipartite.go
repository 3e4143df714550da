// SPDX-License-Identifier: MIT
// Package: lvbid/builder
//
// impl_bipartite.go - CompleteBipartite(buyers, objects) constructor.
//
// Contract:
//   • buyers ≥ 1 and objects ≥ 1 (else ErrTooFewVertices).
//   • Adds buyers first (cfg.buyerID), then objects (cfg.objectID), so graph
//     insertion order is the bidding order.
//   • Emits every buyer→object pair, buyer-major; the weight of each pair is
//     one draw from cfg.weightFn.
//   • In an undirected graph core mirrors each edge; in a directed graph only
//     the buyer→object valuation exists.
//
// Complexity: O(buyers·objects) time, O(buyers+objects) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvbid/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete market K_{buyers,objects}.
func CompleteBipartite(buyers, objects int) Constructor {
	return func(g *core.Graph[any], cfg builderConfig) error {
		if buyers < minPartitionSize || objects < minPartitionSize {
			return fmt.Errorf("%s: buyers=%d, objects=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, buyers, objects, minPartitionSize, ErrTooFewVertices)
		}

		bs, os := addSides(g, cfg, buyers, objects)
		for _, b := range bs {
			for _, o := range os {
				g.AddEdge(b, o, cfg.weight())
			}
		}

		return nil
	}
}

// addSides inserts buyers then objects and returns their identifiers.
func addSides(g *core.Graph[any], cfg builderConfig, buyers, objects int) ([]any, []any) {
	bs := make([]any, buyers)
	for i := range bs {
		bs[i] = cfg.buyerID(i)
		g.AddVertex(bs[i])
	}
	os := make([]any, objects)
	for k := range os {
		os[k] = cfg.objectID(k)
		g.AddVertex(os[k])
	}

	return bs, os
}
