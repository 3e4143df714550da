// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in idempotent vertex insertion and total edge insertion.
//   - Lock in adjacency symmetry rules for directed and undirected graphs.
//   - Anchor the insertion-order guarantees that tie-breaking relies on.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbid/core"
)

// TestGraph_AddVertexIdempotent verifies that re-adding an ID creates no
// second vertex and does not drop edges recorded earlier.
func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex(VertexA)
	g.AddEdge(VertexA, VertexB, Weight5)

	g.AddVertex(VertexA)
	g.AddVertex(VertexB)

	require.Equal(t, 2, g.VertexCount())
	w, ok := g.Weight(VertexA, VertexB)
	require.True(t, ok, "edge A-B must survive duplicate AddVertex")
	require.Equal(t, Weight5, w)
}

// TestGraph_AddEdgeAutoCreates verifies that AddEdge creates missing endpoints.
func TestGraph_AddEdgeAutoCreates(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge(VertexA, VertexB, Weight1)

	require.True(t, g.HasVertex(VertexA))
	require.True(t, g.HasVertex(VertexB))
	require.False(t, g.HasVertex(VertexC))
	require.Equal(t, []string{VertexA, VertexB}, g.IDs())
}

// TestGraph_UndirectedSymmetry verifies that every undirected edge is mirrored
// with the same weight.
func TestGraph_UndirectedSymmetry(t *testing.T) {
	g := core.NewGraph[string]()
	edges := []core.Edge[string]{
		{From: VertexA, To: VertexB, Weight: Weight2},
		{From: VertexB, To: VertexC, Weight: WeightNeg},
		{From: VertexC, To: VertexD, Weight: Weight7},
	}
	for _, e := range edges {
		g.AddEdge(e.From, e.To, e.Weight)
	}

	for _, e := range edges {
		fw, ok := g.Weight(e.From, e.To)
		require.True(t, ok)
		require.Equal(t, e.Weight, fw)

		bw, ok := g.Weight(e.To, e.From)
		require.True(t, ok, "mirror %s→%s missing", e.To, e.From)
		require.Equal(t, e.Weight, bw)
	}
	require.Equal(t, len(edges), g.EdgeCount())
	require.Len(t, g.Edges(), 2*len(edges), "undirected edges are reported in both orientations")
}

// TestGraph_DirectedNoReverse verifies that a directed edge is not mirrored
// unless the reverse edge is inserted separately.
func TestGraph_DirectedNoReverse(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge(VertexA, VertexB, Weight3)

	require.True(t, g.Directed())
	require.True(t, g.HasEdge(VertexA, VertexB))
	require.False(t, g.HasEdge(VertexB, VertexA))
	require.Equal(t, []core.Edge[string]{{From: VertexA, To: VertexB, Weight: Weight3}}, g.Edges())

	g.AddEdge(VertexB, VertexA, Weight1)
	w, ok := g.Weight(VertexB, VertexA)
	require.True(t, ok)
	require.Equal(t, Weight1, w)
	require.Equal(t, 2, g.EdgeCount())
}

// TestGraph_LastWriteWins verifies that re-adding an edge overwrites the weight,
// keeps the neighbour's position and does not inflate the edge count.
func TestGraph_LastWriteWins(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge(VertexA, VertexB, Weight1)
	g.AddEdge(VertexA, VertexC, Weight2)
	g.AddEdge(VertexB, VertexA, Weight7) // same logical edge, reverse orientation

	ns, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Equal(t, []string{VertexB, VertexC}, neighborIDs(ns))
	require.Equal(t, Weight7, ns[0].Weight)
	require.Equal(t, 2, g.EdgeCount())
}

// TestGraph_NeighborOrder verifies first-insertion adjacency order.
func TestGraph_NeighborOrder(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	for _, to := range []string{VertexD, VertexB, VertexC, VertexB} {
		g.AddEdge(VertexA, to, Weight1)
	}

	ns, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	require.Equal(t, []string{VertexD, VertexB, VertexC}, neighborIDs(ns))

	var seen []string
	require.NoError(t, g.EachNeighbor(VertexA, func(n core.Neighbor[string]) bool {
		seen = append(seen, n.ID)
		return len(seen) < 2
	}))
	require.Equal(t, []string{VertexD, VertexB}, seen, "EachNeighbor must stop when fn returns false")
}

// TestGraph_MissingVertex verifies ErrVertexNotFound on vertex-scoped queries.
func TestGraph_MissingVertex(t *testing.T) {
	g := core.NewGraph[string]()

	_, err := g.Neighbors(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.ErrorIs(t, g.EachNeighbor(VertexX, func(core.Neighbor[string]) bool { return true }), core.ErrVertexNotFound)

	_, ok := g.Weight(VertexX, VertexA)
	require.False(t, ok)
	require.False(t, g.HasEdge(VertexX, VertexA))
}

// TestGraph_SelfLoop verifies that a self-loop is stored once, even undirected.
func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge(VertexA, VertexA, Weight1)

	d, err := g.Degree(VertexA)
	require.NoError(t, err)
	require.Equal(t, 1, d)
	require.Len(t, g.Edges(), 1)

	stats := g.Stats()
	require.Equal(t, 1, stats.SelfLoops)
	require.Equal(t, 1, stats.EdgeCount)
	require.Equal(t, 1, stats.AdjacencyCount)
}

// TestGraph_MixedIdentifiers verifies that Graph[any] accepts identifiers of
// several kinds and keeps them distinct.
func TestGraph_MixedIdentifiers(t *testing.T) {
	g := core.NewGraph[any]()
	g.AddEdge(1, "1", Weight1)
	g.AddEdge(1, "A", Weight2)

	require.Equal(t, 3, g.VertexCount())
	require.True(t, g.HasEdge("1", 1))
	require.False(t, g.HasEdge(1, 1), "int 1 and string \"1\" are different vertices")
	require.Equal(t, []any{1, "1", "A"}, g.IDs())
}

// TestGraph_VerticesSnapshot verifies that Vertices() is detached from later mutations.
func TestGraph_VerticesSnapshot(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge(VertexA, VertexB, Weight1)

	snap := g.Vertices()
	g.AddEdge(VertexA, VertexC, Weight2)

	require.Len(t, snap, 2)
	require.Equal(t, VertexA, snap[0].ID)
	require.Equal(t, []string{VertexB}, neighborIDs(snap[0].Neighbors))
}

// TestGraph_Stats verifies the summary counters.
func TestGraph_Stats(t *testing.T) {
	g := completeBipartite(2, 3)
	stats := g.Stats()

	require.False(t, stats.Directed)
	require.Equal(t, 5, stats.VertexCount)
	require.Equal(t, 6, stats.EdgeCount)
	require.Equal(t, 12, stats.AdjacencyCount)
	require.Zero(t, stats.SelfLoops)
}
