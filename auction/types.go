// SPDX-License-Identifier: MIT
// Package auction: result types, bid events and error definitions.
package auction

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for solver construction and execution.
var (
	// ErrInvalidGraph is returned by NewSolver when the graph is nil, not
	// bipartite, carries a non-finite weight, or (with WithStrictSides)
	// has an edge inside one side.
	ErrInvalidGraph = errors.New("auction: invalid graph")

	// ErrInvalidParameter is returned by NewSolver for a non-positive or
	// non-finite epsilon, a nil classifier, or an invalid Option.
	ErrInvalidParameter = errors.New("auction: invalid parameter")

	// ErrNotConverged is matched by *NotConvergedError when the round budget
	// or the time limit ran out before a quiet pass.
	ErrNotConverged = errors.New("auction: not converged")
)

// NotConvergedError reports how far the bidding got before the cutoff.
// errors.Is(err, ErrNotConverged) holds for every *NotConvergedError.
type NotConvergedError struct {
	// Reason names the exhausted budget ("round budget" or "time limit").
	Reason string

	// Rounds is the number of completed passes.
	Rounds int

	// Bids is the number of accepted bids.
	Bids int

	// Assigned is the number of buyers holding an object at the cutoff.
	Assigned int
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("auction: not converged: %s exhausted after %d rounds (%d bids, %d buyers assigned)",
		e.Reason, e.Rounds, e.Bids, e.Assigned)
}

// Unwrap lets errors.Is match ErrNotConverged.
func (e *NotConvergedError) Unwrap() error { return ErrNotConverged }

// Pair is one (buyer, object) assignment.
type Pair[K comparable] struct {
	Buyer  K
	Object K
}

// Bid describes one accepted bid, as passed to the WithOnBid hook.
type Bid[K comparable] struct {
	// Round is the 1-based pass in which the bid was placed.
	Round int

	// Buyer won Object with net value Value (weight - price before the bid).
	Buyer  K
	Object K
	Value  float64

	// Price is the object's price after the epsilon increment.
	Price float64

	// Evicted is set when Displaced held Object before this bid.
	Evicted   bool
	Displaced K
}

// Result is the full outcome of one Run.
type Result[K comparable] struct {
	// Pairs lists every assigned buyer with its object, in buyer order.
	Pairs []Pair[K]

	// Unassigned lists buyers left without an object, in buyer order.
	Unassigned []K

	// Prices holds the final price of every object.
	Prices map[K]float64

	// TotalValue is the sum of edge weights over Pairs.
	TotalValue float64

	// GapBound certifies the run: a maximum-weight matching over the
	// non-negative valuations is worth at most TotalValue + GapBound.
	// It is the dual objective at the final prices minus TotalValue, so it
	// holds for every reserve. Under WithReserve(0) it never exceeds
	// buyers × epsilon.
	GapBound float64

	// Rounds is the number of passes, including the final quiet one.
	Rounds int

	// Bids is the number of accepted bids (each raised one price by epsilon).
	Bids int

	// RunID tags the run in log entries.
	RunID uuid.UUID
}

// Assignment returns Pairs as a buyer → object map.
func (r *Result[K]) Assignment() map[K]K {
	out := make(map[K]K, len(r.Pairs))
	for _, p := range r.Pairs {
		out[p.Buyer] = p.Object
	}

	return out
}
