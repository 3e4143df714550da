// SPDX-License-Identifier: MIT
// Package core: two-colouring and bipartite detection.
//
// The traversal is an explicit work-list (stack) instead of recursion, so very
// deep or long path-like graphs cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the colour map and the stack (+ O(E) reverse index on directed graphs)
package core

import "fmt"

// TwoColoring assigns Red or Blue to every vertex so that each edge joins two
// different colours.
//
// Implementation:
//   - Stage 1: For directed graphs, build a reverse index so each vertex also
//     sees its in-neighbours; bipartiteness concerns the underlying undirected graph.
//   - Stage 2: For every uncoloured vertex in insertion order, colour it Red
//     and push it on a stack (one root per connected component).
//   - Stage 3: Pop a vertex; colour each uncoloured neighbour with the opposite
//     colour and push it; stop at the first neighbour sharing the vertex's colour.
//
// Behavior highlights:
//   - Disconnected graphs are handled by restarting from every uncoloured vertex.
//   - A self-loop always fails: its endpoint would need both colours.
//   - Empty and edgeless graphs are trivially two-colourable (all Red).
//
// Errors:
//   - ErrNotBipartite, wrapped with the first conflicting edge found.
//
// Determinism:
//   - Deterministic for a fixed insertion history.
func (g *Graph[K]) TwoColoring() (map[K]Color, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var reverse map[K][]K
	if g.directed {
		reverse = make(map[K][]K, len(g.vertices))
		for _, id := range g.order {
			for _, n := range g.vertices[id].adj.entries {
				reverse[n.ID] = append(reverse[n.ID], id)
			}
		}
	}

	colors := make(map[K]Color, len(g.vertices))
	stack := make([]K, 0, len(g.vertices))

	// visit colours nbr from cur, pushing newly reached vertices.
	visit := func(cur, nbr K) error {
		switch colors[nbr] {
		case Uncolored:
			colors[nbr] = colors[cur].opposite()
			stack = append(stack, nbr)
		case colors[cur]:
			return fmt.Errorf("%w: edge %v-%v joins two %s vertices",
				ErrNotBipartite, cur, nbr, colors[cur])
		}

		return nil
	}

	for _, root := range g.order {
		if colors[root] != Uncolored {
			continue
		}
		colors[root] = Red
		stack = append(stack[:0], root)

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, n := range g.vertices[cur].adj.entries {
				if err := visit(cur, n.ID); err != nil {
					return nil, err
				}
			}
			for _, in := range reverse[cur] {
				if err := visit(cur, in); err != nil {
					return nil, err
				}
			}
		}
	}

	return colors, nil
}

// IsBipartite reports whether the graph admits a proper two-colouring.
// It returns false as soon as an edge joins two same-coloured vertices,
// including any self-loop.
func (g *Graph[K]) IsBipartite() bool {
	_, err := g.TwoColoring()

	return err == nil
}
