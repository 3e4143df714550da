// SPDX-License-Identifier: MIT
// Package core: type declarations.
//
// This file declares Graph, Vertex, Neighbor, Edge, Color, GraphOption,
// the sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNotBipartite   - the graph admits no proper two-colouring.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNotBipartite indicates that some edge joins two vertices of the same colour.
	ErrNotBipartite = errors.New("core: graph is not bipartite")
)

// Color is one of the two classes produced by TwoColoring.
type Color uint8

const (
	// Uncolored marks a vertex not yet reached by the colouring traversal.
	Uncolored Color = iota
	// Red is the colour given to every traversal root.
	Red
	// Blue is the colour opposite to Red.
	Blue
)

// opposite returns the other colour of a proper two-colouring.
func (c Color) opposite() Color {
	if c == Red {
		return Blue
	}

	return Red
}

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "uncolored"
	}
}

// Neighbor is one outgoing adjacency entry: the destination vertex and the edge weight.
type Neighbor[K comparable] struct {
	// ID is the destination vertex identifier.
	ID K

	// Weight is the value recorded on the adjacency entry.
	Weight float64
}

// Vertex is a read-only snapshot of a vertex and its outgoing adjacency.
//
// Neighbors are listed in first-insertion order; overwriting a weight keeps
// the neighbour in its original position.
type Vertex[K comparable] struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID K

	// Neighbors is a copy of the outgoing adjacency at snapshot time.
	Neighbors []Neighbor[K]
}

// Edge is a directed adjacency triple (From, To, Weight).
//
// An undirected graph reports every logical edge twice, once per orientation;
// a self-loop is reported once.
type Edge[K comparable] struct {
	// From is the source vertex ID.
	From K

	// To is the destination vertex ID.
	To K

	// Weight is the value of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

// graphOptions collects construction-time flags; kept separate from Graph
// so that options do not need to be generic over the identifier type.
type graphOptions struct {
	directed bool
}

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(o *graphOptions) { o.directed = directed }
}

// vertex is the internal record kept per identifier.
type vertex[K comparable] struct {
	id  K
	adj adjacency[K]
}

// Graph is a weighted, optionally directed graph over comparable identifiers.
//
// Identifiers are opaque: any comparable type works, and a Graph[any] may mix
// identifier kinds (e.g. int and string) as long as their dynamic types are
// comparable. Vertices are enumerated in insertion order.
//
// mu guards every field below it. Mutations take the write lock, queries the
// read lock, so several readers may share one finished graph.
type Graph[K comparable] struct {
	mu sync.RWMutex

	directed bool // fixed at construction

	vertices map[K]*vertex[K] // vertex ID -> vertex record
	order    []K              // vertex IDs in insertion order
	edges    int              // logical edge count (undirected mirrors count once)
}

// NewGraph creates an empty Graph with the given options.
// By default, the Graph is undirected.
// Complexity: O(1)
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[K]{
		directed: o.directed,
		vertices: make(map[K]*vertex[K]),
	}
}
