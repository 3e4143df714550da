// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and IDs() enumerate in insertion order.
//
// Concurrency:
//   - AddVertex takes the write lock; queries take the read lock.
package core

// AddVertex inserts a vertex for id if missing (idempotent).
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: If id is already present, return; otherwise register a vertex
//     with empty adjacency and append id to the enumeration order.
//
// Behavior highlights:
//   - Total: never fails, and re-adding an existing id keeps its edges.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// ensureVertex returns the record for id, creating it on first reference.
// Caller must hold the write lock.
func (g *Graph[K]) ensureVertex(id K) *vertex[K] {
	if v, ok := g.vertices[id]; ok {
		return v // no-op for existing vertex
	}
	v := &vertex[K]{id: id}
	g.vertices[id] = v
	g.order = append(g.order, id)

	return v
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns a snapshot of every vertex with a copy of its adjacency.
//
// The snapshot is detached: later mutations of the graph are not reflected.
// Vertices come in insertion order, but callers should treat the sequence as
// unordered unless they own the insertion order.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph[K]) Vertices() []Vertex[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex[K], 0, len(g.order))
	for _, id := range g.order {
		out = append(out, Vertex[K]{ID: id, Neighbors: g.vertices[id].adj.snapshot()})
	}

	return out
}

// IDs returns vertex identifiers in insertion order.
// Complexity: O(V).
func (g *Graph[K]) IDs() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
