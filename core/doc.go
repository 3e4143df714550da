// Package core provides a generic, thread-safe, in-memory weighted Graph with
// a minimal additive API and a bipartite check.
//
// The Graph G = (V,E) is parameterised by its identifier type:
//
//   - Graph[string], Graph[int], ... for homogeneous identifiers
//   - Graph[any] for mixed identifier kinds (e.g. int buyers, string objects)
//
// Behaviour:
//
//   - Directed vs. undirected edges (WithDirected), fixed at construction.
//   - Weights are float64; the sign is domain-defined (value or cost).
//   - AddEdge auto-creates missing endpoints; both AddVertex and AddEdge are
//     total and never fail.
//   - One adjacency entry per (from, to); re-adding overwrites the weight
//     (last write wins) but keeps the neighbour's position.
//   - Undirected edges are mirrored; a self-loop is stored once.
//   - Adjacency and vertex enumeration follow first-insertion order, which
//     makes "first encountered" tie-breaks in downstream algorithms reproducible.
//   - No removal operations: vertices and edges live as long as the graph.
//
// Core Methods:
//
//	// Construction
//	NewGraph[K](opts ...GraphOption) *Graph[K]
//	AddVertex(id K)                            // O(1), idempotent
//	AddEdge(from, to K, weight float64)        // O(1), auto-creates endpoints
//
//	// Query
//	HasVertex(id K) bool                       // O(1)
//	HasEdge(from, to K) bool                   // O(1)
//	Weight(from, to K) (float64, bool)         // O(1)
//	Neighbors(id K) ([]Neighbor[K], error)     // O(d)
//	EachNeighbor(id K, fn) error               // O(d), no allocation
//	Vertices() []Vertex[K]                     // O(V+E) snapshot
//	IDs() []K                                  // O(V)
//	Edges() []Edge[K]                          // O(V+E), one triple per orientation
//	VertexCount(), EdgeCount() int             // O(1)
//	Stats() *GraphStats                        // O(V+E)
//
//	// Structure
//	TwoColoring() (map[K]Color, error)         // O(V+E), iterative
//	IsBipartite() bool                         // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound - missing vertex in Neighbors/Degree/EachNeighbor
//	ErrNotBipartite   - returned (wrapped) by TwoColoring
package core
