// Package auction solves the assignment problem on a bipartite *core.Graph
// with an epsilon-relaxed auction: buyers bid for objects, every accepted bid
// raises the object's price by epsilon, and bidding stops after a pass in
// which nobody bids.
//
// # Model
//
// A Classifier splits the vertices into buyers and objects. The weight of a
// buyer→object adjacency entry is the buyer's valuation of that object; higher
// is better. On a directed graph only buyer→object entries are read.
//
// # Algorithm
//
//	repeat
//	    for each unassigned buyer b (graph insertion order):
//	        pick the adjacent object o maximising weight(b,o) - price(o)
//	        (strict maximum; the first one in adjacency order wins ties)
//	        if no object is adjacent, or the best value is below the reserve: skip
//	        evict o's holder, assign b→o, price(o) += epsilon
//	until a full pass places no bid
//
// Prices never decrease. The assignment is a partial injection at every step:
// an explicit object→buyer index is updated together with buyer→object, so
// each object has at most one holder.
//
// # Guarantees
//
//   - Injectivity: no two buyers share an object.
//   - Termination: with a finite reserve a price stops rising once it exceeds
//     every valuation of its object by more than the reserve, so the number
//     of bids is bounded by Σ_o (max weight on o - reserve)/epsilon + |objects|.
//     The default reserve is derived per run as minW - (maxW - minW) - epsilon:
//     low enough that every buyer with an adjacent object bids, negative
//     valuations included.
//   - Gap: Result.GapBound certifies how far TotalValue can be from a
//     maximum-weight matching over non-negative valuations. With
//     WithReserve(0) it is at most buyers × epsilon; smaller epsilon means a
//     tighter result and more passes.
//
// # Budgets
//
// WithMaxRounds (default DefaultMaxRounds) and WithTimeLimit (measured with an
// injectable github.com/juju/clock Clock) turn a run that does not settle into
// a *NotConvergedError instead of a silent truncation. WithContext adds
// cancellation, checked once per pass.
//
// # Errors
//
//	ErrInvalidGraph     - nil graph, not bipartite, non-finite weight, or (strict) same-side edge;
//	                      checked by NewSolver and again by every Run
//	ErrInvalidParameter - epsilon ≤ 0 or non-finite, nil classifier, invalid option
//	ErrNotConverged     - round budget or time limit exhausted (*NotConvergedError)
//
// Validation problems are collected with github.com/hashicorp/go-multierror;
// errors.Is matches each collected sentinel.
//
// # Logging
//
// Runs log through a *logrus.Entry (WithLogger), tagged with a per-run UUID:
// Debug per pass, Info on convergence, Warn on cutoff. The default logger
// discards everything.
package auction
