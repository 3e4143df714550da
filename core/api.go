// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only summary of a graph's configuration and sizes.
type GraphStats struct {
	// Directed is the construction-time directedness flag.
	Directed bool

	// VertexCount is the number of vertices.
	VertexCount int

	// EdgeCount is the number of logical edges (mirrors count once).
	EdgeCount int

	// AdjacencyCount is the number of directed adjacency entries, i.e. len(Edges()).
	AdjacencyCount int

	// SelfLoops is the number of vertices carrying an edge to themselves.
	SelfLoops int
}

// Directed reports whether the graph was constructed as directed.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The flag is immutable after construction; the read lock is taken only
//     for uniformity with the rest of the facade.
func (g *Graph[K]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Stats produces a deterministic snapshot of configuration and counts.
//
// Implementation:
//   - Stage 1: Acquire the read lock, copy the flag and counters.
//   - Stage 2: Scan adjacency once to count entries and self-loops.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph[K]) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:    g.directed,
		VertexCount: len(g.vertices),
		EdgeCount:   g.edges,
	}
	for id, v := range g.vertices {
		stats.AdjacencyCount += len(v.adj.entries)
		if v.adj.has(id) {
			stats.SelfLoops++
		}
	}

	return &stats
}
