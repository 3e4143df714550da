// SPDX-License-Identifier: MIT
// Package auction: solver construction and the bidding loop.
package auction

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvbid/core"
)

const (
	reasonRounds = "round budget"
	reasonTime   = "time limit"
)

// Solver computes an epsilon-optimal assignment on a bipartite core.Graph.
//
// A Solver never mutates its graph. Each Run builds fresh prices and a fresh
// assignment, so a Solver can be run repeatedly; it is not safe for
// concurrent use. Use one Solver per goroutine.
type Solver[K comparable] struct {
	graph    *core.Graph[K]
	epsilon  float64
	classify Classifier[K]
	opts     Options
	onBid    func(Bid[K])
}

// NewSolver validates g, epsilon and classify and returns a ready Solver.
//
// Validation order:
//  1. g must be non-nil and bipartite (ErrInvalidGraph). Nothing else is
//     inspected before this check passes.
//  2. Every edge weight must be finite (ErrInvalidGraph, all offenders listed).
//  3. epsilon must be finite and > 0, classify non-nil, options valid
//     (ErrInvalidParameter, all problems listed).
//  4. With WithStrictSides, every edge must join a buyer and an object
//     (ErrInvalidGraph).
//
// Aggregated problems are reported as one error; errors.Is matches the
// sentinel of every item.
func NewSolver[K comparable](g *core.Graph[K], epsilon float64, classify Classifier[K], opts ...Option) (*Solver[K], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidGraph)
	}
	if err := checkGraph(g); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	paramErr := o.err
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon <= 0 {
		paramErr = multierror.Append(paramErr,
			fmt.Errorf("%w: epsilon must be finite and > 0 (%g)", ErrInvalidParameter, epsilon))
	}
	if classify == nil {
		paramErr = multierror.Append(paramErr,
			fmt.Errorf("%w: classifier is nil", ErrInvalidParameter))
	}
	var onBid func(Bid[K])
	if o.onBid != nil {
		fn, ok := o.onBid.(func(Bid[K]))
		if !ok {
			paramErr = multierror.Append(paramErr,
				fmt.Errorf("%w: OnBid hook has type %T, want %T", ErrInvalidParameter, o.onBid, onBid))
		}
		onBid = fn
	}
	if paramErr != nil {
		return nil, paramErr
	}

	if o.StrictSides {
		if err := checkSides(g, classify); err != nil {
			return nil, err
		}
	}

	return &Solver[K]{
		graph:    g,
		epsilon:  epsilon,
		classify: classify,
		opts:     o,
		onBid:    onBid,
	}, nil
}

// checkGraph reports an odd cycle or any non-finite weight as ErrInvalidGraph.
// Non-finite weights are all listed.
func checkGraph[K comparable](g *core.Graph[K]) error {
	if _, err := g.TwoColoring(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	var graphErr error
	for _, e := range g.Edges() {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			graphErr = multierror.Append(graphErr,
				fmt.Errorf("%w: edge %v→%v has non-finite weight %g", ErrInvalidGraph, e.From, e.To, e.Weight))
		}
	}

	return graphErr
}

// checkSides reports every edge joining two vertices of the same side.
func checkSides[K comparable](g *core.Graph[K], classify Classifier[K]) error {
	var graphErr error
	for _, e := range g.Edges() {
		if classify(e.From) == classify(e.To) {
			graphErr = multierror.Append(graphErr,
				fmt.Errorf("%w: edge %v→%v joins two %s vertices", ErrInvalidGraph, e.From, e.To, classify(e.From)))
		}
	}

	return graphErr
}

// Epsilon returns the price increment.
func (s *Solver[K]) Epsilon() float64 { return s.epsilon }

// Buyers returns the vertices classified as buyers, in graph insertion order.
func (s *Solver[K]) Buyers() []K { return s.side(Buyer) }

// Objects returns the vertices classified as objects, in graph insertion order.
func (s *Solver[K]) Objects() []K { return s.side(Object) }

func (s *Solver[K]) side(want Side) []K {
	var out []K
	for _, id := range s.graph.IDs() {
		if s.classify(id) == want {
			out = append(out, id)
		}
	}

	return out
}

// Solve runs the auction and returns the (buyer, object) pairs.
// Buyers that end up without an object are omitted.
func (s *Solver[K]) Solve() ([]Pair[K], error) {
	res, err := s.Run()
	if err != nil {
		return nil, err
	}

	return res.Pairs, nil
}

// Run executes the bidding loop and returns the full Result.
//
// Steps:
//  1. Re-check the graph as NewSolver does; it may have been mutated in between.
//  2. Build a fresh market: classify vertices, collect each buyer's adjacent
//     objects (adjacency order), zero every price.
//  3. Resolve the reserve: the configured one, or minW - (maxW - minW) - epsilon.
//  4. Repeat passes. In each pass every unassigned buyer, in insertion order,
//     picks the object with the strictly greatest weight - price (first
//     encountered wins ties). If its value reaches the reserve, the buyer
//     evicts the holder, takes the object and raises its price by epsilon.
//  5. Stop after a pass with no bid. Before each pass check the context, the
//     round budget and the time limit.
//  6. Extract pairs in buyer order and certify GapBound from the final prices.
//
// Errors:
//   - ErrInvalidGraph when the graph became invalid after NewSolver.
//   - ctx.Err() when the context is cancelled.
//   - *NotConvergedError (errors.Is ErrNotConverged) when a budget runs out.
//
// Complexity:
//   - Time O(V+E) for the checks plus O(R·E) for R passes; Space O(V+E).
func (s *Solver[K]) Run() (*Result[K], error) {
	if err := checkGraph(s.graph); err != nil {
		return nil, err
	}
	if s.opts.StrictSides {
		if err := checkSides(s.graph, s.classify); err != nil {
			return nil, err
		}
	}

	m := newMarket(s.graph, s.classify)
	reserve := s.opts.Reserve
	if math.IsNaN(reserve) {
		reserve = m.floor(s.epsilon)
	}
	res := &Result[K]{RunID: uuid.New()}
	log := s.opts.Logger.WithFields(logrus.Fields{
		"run_id":  res.RunID.String(),
		"buyers":  len(m.buyers),
		"objects": len(m.objects),
		"epsilon": s.epsilon,
		"reserve": reserve,
	})

	start := s.opts.Clock.Now()
	for len(m.buyers) > 0 {
		if err := s.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		reason := ""
		switch {
		case s.opts.MaxRounds > 0 && res.Rounds >= s.opts.MaxRounds:
			reason = reasonRounds
		case s.opts.TimeLimit > 0 && s.opts.Clock.Now().Sub(start) >= s.opts.TimeLimit:
			reason = reasonTime
		}
		if reason != "" {
			err := &NotConvergedError{Reason: reason, Rounds: res.Rounds, Bids: res.Bids, Assigned: len(m.assigned)}
			log.WithError(err).Warn("auction stopped before convergence")
			return nil, err
		}

		res.Rounds++
		changes := s.pass(m, res.Rounds, reserve)
		res.Bids += changes
		s.opts.OnRound(res.Rounds, changes)
		log.WithFields(logrus.Fields{
			"round":    res.Rounds,
			"changes":  changes,
			"assigned": len(m.assigned),
		}).Debug("auction pass")

		if changes == 0 {
			break
		}
	}

	s.extract(m, res)
	log.WithFields(logrus.Fields{
		"rounds":      res.Rounds,
		"bids":        res.Bids,
		"assigned":    len(res.Pairs),
		"total_value": res.TotalValue,
		"gap_bound":   res.GapBound,
		"elapsed":     s.opts.Clock.Now().Sub(start).String(),
	}).Info("auction converged")

	return res, nil
}

// pass lets every unassigned buyer bid once and returns the number of bids.
// A buyer evicted during the pass bids again in the same pass if it comes
// later in the order, otherwise in the next pass.
func (s *Solver[K]) pass(m *market[K], round int, reserve float64) int {
	changes := 0
	for _, b := range m.buyers {
		if _, held := m.assigned[b]; held {
			continue
		}
		c, value, ok := m.best(b)
		if !ok || value < reserve {
			continue // nothing adjacent, or every object priced above the reserve
		}

		displaced, evicted := m.assign(b, c.object)
		m.prices[c.object] += s.epsilon
		changes++

		if s.onBid != nil {
			s.onBid(Bid[K]{
				Round:     round,
				Buyer:     b,
				Object:    c.object,
				Value:     value,
				Price:     m.prices[c.object],
				Evicted:   evicted,
				Displaced: displaced,
			})
		}
	}

	return changes
}

// extract copies the final assignment and prices into res and sets GapBound
// to the dual objective minus TotalValue.
func (s *Solver[K]) extract(m *market[K], res *Result[K]) {
	res.Pairs = make([]Pair[K], 0, len(m.assigned))
	for _, b := range m.buyers {
		o, ok := m.assigned[b]
		if !ok {
			res.Unassigned = append(res.Unassigned, b)
			continue
		}
		res.Pairs = append(res.Pairs, Pair[K]{Buyer: b, Object: o})
		for _, c := range m.wants[b] {
			if c.object == o {
				res.TotalValue += c.weight
				break
			}
		}
	}

	res.Prices = make(map[K]float64, len(m.prices))
	for o, p := range m.prices {
		res.Prices[o] = p
	}
	res.GapBound = math.Max(0, m.dual()-res.TotalValue)
}
