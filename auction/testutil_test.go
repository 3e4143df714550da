// SPDX-License-Identifier: MIT
// Package auction_test contains fixtures and an exact reference solver used
// to check auction results.

package auction_test

import (
	"math"

	"github.com/katalvlaran/lvbid/core"
)

// Named objects used by the hand-checked markets.
const (
	ObjA = "A"
	ObjB = "B"
	ObjC = "C"
)

// tolerance absorbs float rounding when comparing totals.
const tolerance = 1e-9

// twoByTwo: buyers {1,2}, objects {A,B}; the unique optimum is {1→B, 2→A}.
func twoByTwo() *core.Graph[any] {
	g := core.NewGraph[any]()
	g.AddEdge(1, ObjA, 10)
	g.AddEdge(1, ObjB, 12)
	g.AddEdge(2, ObjA, 7)
	g.AddEdge(2, ObjB, 8)
	return g
}

// threeByThree: the unique optimum is {1→B, 2→C, 3→A} with value 32.
func threeByThree() *core.Graph[any] {
	g := core.NewGraph[any]()
	w := []struct {
		b int
		o string
		w float64
	}{
		{1, ObjA, 10}, {1, ObjB, 12}, {1, ObjC, 8},
		{2, ObjA, 7}, {2, ObjB, 8}, {2, ObjC, 9},
		{3, ObjA, 11}, {3, ObjB, 9}, {3, ObjC, 10},
	}
	for _, e := range w {
		g.AddEdge(e.b, e.o, e.w)
	}
	return g
}

// contention: two buyers, one object worth 5 to buyer 1 and 3 to buyer 2.
func contention() *core.Graph[any] {
	g := core.NewGraph[any]()
	g.AddEdge(1, ObjA, 5)
	g.AddEdge(2, ObjA, 3)
	return g
}

// valuationMatrix reads weight(b,o) for every buyer/object pair; missing
// adjacencies are reported through the second matrix.
func valuationMatrix(g *core.Graph[any], buyers, objects []any) ([][]float64, [][]bool) {
	w := make([][]float64, len(buyers))
	ok := make([][]bool, len(buyers))
	for i, b := range buyers {
		w[i] = make([]float64, len(objects))
		ok[i] = make([]bool, len(objects))
		for j, o := range objects {
			w[i][j], ok[i][j] = g.Weight(b, o)
		}
	}
	return w, ok
}

// optimum returns the value of a maximum-weight matching (not necessarily
// perfect): missing or negative entries contribute 0, so the problem reduces
// to a square min-cost assignment over profits max(0, w).
func optimum(w [][]float64, ok [][]bool) float64 {
	n := len(w)
	if n == 0 {
		return 0
	}
	m := len(w[0])
	dim := n
	if m > dim {
		dim = m
	}
	if dim == 0 {
		return 0
	}

	profit := make([][]float64, dim)
	for i := range profit {
		profit[i] = make([]float64, dim)
		for j := range profit[i] {
			if i < n && j < m && ok[i][j] && w[i][j] > 0 {
				profit[i][j] = w[i][j]
			}
		}
	}

	cols := hungarian(profit)
	total := 0.0
	for i, j := range cols {
		total += profit[i][j]
	}
	return total
}

// hungarian maximises Σ profit[i][cols[i]] over permutations of a square
// matrix (Kuhn-Munkres with potentials on negated profits).
func hungarian(profit [][]float64) []int {
	dim := len(profit)
	const inf = math.MaxFloat64 / 2

	u := make([]float64, dim+1)
	v := make([]float64, dim+1)
	p := make([]int, dim+1)
	way := make([]int, dim+1)
	minv := make([]float64, dim+1)
	used := make([]bool, dim+1)

	for i := 1; i <= dim; i++ {
		p[0] = i
		j0 := 0
		for j := 1; j <= dim; j++ {
			minv[j] = inf
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= dim; j++ {
				if used[j] {
					continue
				}
				cur := -profit[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				break
			}
			for j := 0; j <= dim; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	cols := make([]int, dim)
	for j := 1; j <= dim; j++ {
		cols[p[j]-1] = j - 1
	}
	return cols
}
