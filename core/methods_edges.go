// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() walks vertices in insertion order and each adjacency in
//     first-insertion order.
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

// AddEdge records weight on the adjacency from→to, creating missing endpoints.
// On an undirected graph the same weight is mirrored onto to→from.
//
// Steps:
//  1. Lock; ensure both endpoints exist (idempotent).
//  2. Set from→to (last write wins, position kept).
//  3. If undirected and from != to, set to→from.
//  4. Count a new logical edge if step 2 inserted a new entry.
//
// AddEdge never fails: auto-creation removes the "vertex not found" path.
// A self-loop is stored once, even on an undirected graph.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K, weight float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.ensureVertex(from)
	dst := g.ensureVertex(to)

	inserted := src.adj.set(to, weight)
	if !g.directed && from != to {
		dst.adj.set(from, weight)
	}
	if inserted {
		g.edges++
	}
}

// HasEdge reports whether the adjacency from→to exists.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[from]

	return ok && v.adj.has(to)
}

// Weight returns the weight on from→to and whether that adjacency exists.
// Complexity: O(1).
func (g *Graph[K]) Weight(from, to K) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[from]
	if !ok {
		return 0, false
	}

	return v.adj.get(to)
}

// Edges returns one (From, To, Weight) triple per directed adjacency entry.
// For undirected graphs every logical edge yields both orientations; callers
// that need logical edges must deduplicate.
//
// Complexity: O(V+E) time and space.
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[K], 0, 2*g.edges)
	for _, id := range g.order {
		for _, n := range g.vertices[id].adj.entries {
			out = append(out, Edge[K]{From: id, To: n.ID, Weight: n.Weight})
		}
	}

	return out
}

// EdgeCount returns the number of logical edges: an undirected edge and its
// mirror count once; re-adding an existing edge does not count again.
// Complexity: O(1).
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
