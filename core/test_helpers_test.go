// SPDX-License-Identifier: MIT
// Package core_test contains fixtures and small helpers for lvbid/core.
//
// Purpose:
//   - Provide deterministic fixtures (named IDs and weights, no magic numbers).
//   - Keep graph construction in test bodies to one line per shape.

package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvbid/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight1   = 1.0
	Weight2   = 2.0
	Weight3   = 3.0
	Weight5   = 5.0
	Weight7   = 7.0
	WeightNeg = -4.5
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// cycleGraph returns an undirected cycle 0-1-...-(n-1)-0 on int IDs.
func cycleGraph(n int) *core.Graph[int] {
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n, Weight1)
	}

	return g
}

// pathGraph returns an undirected path 0-1-...-(n-1) on int IDs.
func pathGraph(n int) *core.Graph[int] {
	g := core.NewGraph[int]()
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1, Weight1)
	}

	return g
}

// completeBipartite returns K_{m,n} over string IDs "L<i>" and "R<j>".
func completeBipartite(m, n int) *core.Graph[string] {
	g := core.NewGraph[string]()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			g.AddEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", j), float64(i+j))
		}
	}

	return g
}

// neighborIDs projects a neighbour list onto its IDs, preserving order.
func neighborIDs[K comparable](ns []core.Neighbor[K]) []K {
	out := make([]K, 0, len(ns))
	for _, n := range ns {
		out = append(out, n.ID)
	}

	return out
}
