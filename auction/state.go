// SPDX-License-Identifier: MIT
// Package auction: per-run market state.
//
// A market is built fresh for every Run from the graph's current vertex set
// and discarded once the Result is extracted.
package auction

import (
	"math"

	"github.com/katalvlaran/lvbid/core"
)

// candidate is one object a buyer may bid on, with the buyer's valuation.
type candidate[K comparable] struct {
	object K
	weight float64
}

// market holds prices and the assignment for one run.
//
// Invariant (after every mutation): assigned and owner are inverse partial
// functions, so each object has at most one buyer and each buyer at most one
// object. Only assign mutates them.
type market[K comparable] struct {
	buyers  []K                  // bidding order: graph insertion order
	objects []K                  // graph insertion order
	wants   map[K][]candidate[K] // buyer -> adjacent objects, adjacency order

	prices   map[K]float64 // object -> price, starts at 0, never decreases
	assigned map[K]K       // buyer -> object
	owner    map[K]K       // object -> buyer
}

// newMarket classifies every vertex and collects each buyer's adjacent objects.
//
// Complexity: O(V+E) time and space.
func newMarket[K comparable](g *core.Graph[K], classify Classifier[K]) *market[K] {
	ids := g.IDs()
	sides := make(map[K]Side, len(ids))
	m := &market[K]{}
	for _, id := range ids {
		side := classify(id)
		sides[id] = side
		if side == Buyer {
			m.buyers = append(m.buyers, id)
		} else {
			m.objects = append(m.objects, id)
		}
	}

	m.wants = make(map[K][]candidate[K], len(m.buyers))
	for _, b := range m.buyers {
		var cs []candidate[K]
		// b comes from g.IDs(), so EachNeighbor cannot miss it.
		_ = g.EachNeighbor(b, func(n core.Neighbor[K]) bool {
			if sides[n.ID] == Object {
				cs = append(cs, candidate[K]{object: n.ID, weight: n.Weight})
			}
			return true
		})
		m.wants[b] = cs
	}

	m.prices = make(map[K]float64, len(m.objects))
	for _, o := range m.objects {
		m.prices[o] = 0
	}
	m.assigned = make(map[K]K, len(m.buyers))
	m.owner = make(map[K]K, len(m.objects))

	return m
}

// best returns the candidate with the strictly greatest net value
// weight - price; the first one encountered wins ties.
// ok is false when the buyer has no adjacent object.
func (m *market[K]) best(buyer K) (c candidate[K], value float64, ok bool) {
	for _, cand := range m.wants[buyer] {
		v := cand.weight - m.prices[cand.object]
		if !ok || v > value {
			c, value, ok = cand, v, true
		}
	}

	return c, value, ok
}

// floor returns the derived reserve minW - (maxW - minW) - epsilon over every
// buyer→object weight. With no valuation at all nobody bids, and 0 is returned.
func (m *market[K]) floor(epsilon float64) float64 {
	minW, maxW := math.Inf(1), math.Inf(-1)
	for _, b := range m.buyers {
		for _, c := range m.wants[b] {
			minW = math.Min(minW, c.weight)
			maxW = math.Max(maxW, c.weight)
		}
	}
	if minW > maxW {
		return 0
	}

	return minW - (maxW - minW) - epsilon
}

// dual returns Σ_b max(0, max_o(weight - price)) + Σ_o price, an upper bound
// on the maximum-weight matching over non-negative valuations for any prices.
func (m *market[K]) dual() float64 {
	total := 0.0
	for _, b := range m.buyers {
		if _, value, ok := m.best(b); ok && value > 0 {
			total += value
		}
	}
	for _, o := range m.objects {
		total += m.prices[o]
	}

	return total
}

// assign gives object to buyer, evicting the current holder if any.
// The buyer's previous object, if it had one, is released first.
func (m *market[K]) assign(buyer, object K) (displaced K, evicted bool) {
	if prev, ok := m.assigned[buyer]; ok {
		delete(m.owner, prev)
	}
	if holder, ok := m.owner[object]; ok {
		delete(m.assigned, holder)
		displaced, evicted = holder, true
	}
	m.owner[object] = buyer
	m.assigned[buyer] = object

	return displaced, evicted
}

// consistent reports whether assigned and owner are mutual inverses.
func (m *market[K]) consistent() bool {
	if len(m.assigned) != len(m.owner) {
		return false
	}
	for b, o := range m.assigned {
		if holder, ok := m.owner[o]; !ok || holder != b {
			return false
		}
	}

	return true
}
