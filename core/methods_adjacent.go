// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Ordered adjacency storage and neighbourhood queries.
//
// Determinism:
//   - Neighbors() lists entries in first-insertion order. Algorithms that break
//     ties by "first encountered" rely on this order being stable.
//
// Concurrency:
//   - adjacency itself is not synchronized; callers hold Graph.mu.
package core

import "fmt"

// adjacency is an insertion-ordered map from neighbour ID to weight.
//
// index[id] is the position of id in entries; entries never shrink because the
// graph has no removal operations.
type adjacency[K comparable] struct {
	index   map[K]int
	entries []Neighbor[K]
}

// set records weight for id. A new neighbour is appended; an existing one is
// overwritten in place (last write wins) and keeps its position.
// Returns true if id was not present before.
// Complexity: O(1) amortized.
func (a *adjacency[K]) set(id K, weight float64) bool {
	if a.index == nil {
		a.index = make(map[K]int)
	}
	if i, ok := a.index[id]; ok {
		a.entries[i].Weight = weight

		return false
	}
	a.index[id] = len(a.entries)
	a.entries = append(a.entries, Neighbor[K]{ID: id, Weight: weight})

	return true
}

// get returns the weight recorded for id.
// Complexity: O(1).
func (a *adjacency[K]) get(id K) (float64, bool) {
	i, ok := a.index[id]
	if !ok {
		return 0, false
	}

	return a.entries[i].Weight, true
}

// has reports whether id is a neighbour.
func (a *adjacency[K]) has(id K) bool {
	_, ok := a.index[id]

	return ok
}

// snapshot copies the entries so callers can hold them after the lock is released.
// Complexity: O(d).
func (a *adjacency[K]) snapshot() []Neighbor[K] {
	out := make([]Neighbor[K], len(a.entries))
	copy(out, a.entries)

	return out
}

// Neighbors returns the outgoing adjacency of id in first-insertion order.
//
// For undirected graphs the list includes every edge incident to id; for
// directed graphs only the edges leaving id.
//
// Errors:
//   - ErrVertexNotFound: if id is not in the graph.
//
// Complexity: O(d) time and space, d = out-degree of id.
func (g *Graph[K]) Neighbors(id K) ([]Neighbor[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", id, ErrVertexNotFound)
	}

	return v.adj.snapshot(), nil
}

// Degree returns the number of distinct outgoing neighbours of id.
// A self-loop counts once.
//
// Errors:
//   - ErrVertexNotFound: if id is not in the graph.
//
// Complexity: O(1).
func (g *Graph[K]) Degree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%v): %w", id, ErrVertexNotFound)
	}

	return len(v.adj.entries), nil
}

// EachNeighbor calls fn for every outgoing neighbour of id in adjacency order,
// stopping early when fn returns false. fn runs under the read lock and must
// not mutate the graph.
//
// Returns ErrVertexNotFound if id is not in the graph.
// Complexity: O(d) time, O(1) extra space.
func (g *Graph[K]) EachNeighbor(id K, fn func(n Neighbor[K]) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("EachNeighbor(%v): %w", id, ErrVertexNotFound)
	}
	for _, n := range v.adj.entries {
		if !fn(n) {
			break
		}
	}

	return nil
}
