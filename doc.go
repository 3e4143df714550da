// Package lvbid solves assignment problems on weighted bipartite graphs with
// an epsilon auction.
//
// What is inside:
//
//	core/     — thread-safe generic Graph[K]: insertion-ordered adjacency,
//	            snapshots, iterative two-colouring
//	auction/  — epsilon-auction Solver: injectable side classifier, price and
//	            assignment state, round/time budgets, bid hooks, logrus logging
//	builder/  — deterministic market fixtures (complete and random bipartite)
//	examples/ — runnable walkthrough
//
// Why an auction?
//
//   - Each bid is local: a buyer only looks at its own adjacency.
//   - epsilon trades accuracy for speed: the result is within
//     buyers × epsilon of the optimum.
//   - Prices only rise, so the loop terminates under a finite reserve.
//
// Quick example:
//
//	g := core.NewGraph[any]()
//	g.AddEdge(1, "A", 10)
//	g.AddEdge(1, "B", 12)
//	g.AddEdge(2, "A", 7)
//	g.AddEdge(2, "B", 8)
//
//	sv, _ := auction.NewSolver(g, 0.1, auction.ByKind[any]())
//	pairs, _ := sv.Solve() // [{1 B} {2 A}]
//
//	go get github.com/katalvlaran/lvbid
package lvbid
