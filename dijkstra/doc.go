// Package dijkstra provides the constrained minimum heat-loss search over a
// gridgraph.GridGraph under a movement.Policy.
//
// Overview:
//
//   - A query finds the cheapest route from a start cell to an end cell, where
//     entering a cell costs its digit and the start cell is free.
//   - Whether a move is legal depends on the previous heading and the length of
//     the current straight run, so the search runs over State values
//     (cell, heading, run) rather than over raw cells.
//   - States live in value-keyed tables (map[State]int64 for costs, map[State]State
//     for predecessors); no pointer-linked nodes are built.
//
// When to use:
//
//   - Routing a vehicle that must turn after a bounded number of straight moves
//     (movement.Regular), or that must keep going for a minimum distance before
//     it may turn (movement.Ultra).
//   - Any grid search where the legal successor set depends on recent history
//     that fits in a small comparable key.
//
// Key features:
//
//   - Functional options: WithStart, WithEnd, WithReturnPath, WithStrictArrival,
//     WithMaxExpansions, WithContext.
//   - Observation hooks (WithOnRelax, WithOnExpand, WithOnStale) for metrics and
//     invariant checks; they run synchronously inside the search loop.
//   - Result counters (Expanded, Stale, Pushed) on every return path.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = W×H×4×MaxRun states.
//   - Space: O(S).
//   - Lazy decrease-key: a state may sit in the heap several times; entries whose
//     cost exceeds the cost table are discarded when popped.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrNilPolicy, ErrOutOfBounds, ErrOptionViolation:
//     returned before any search work starts.
//   - ErrUnreachable:
//     the frontier emptied without a legal arrival at the destination.
//   - ErrExpansionLimit:
//     returned when WithMaxExpansions(n) is exceeded.
//   - Context errors are wrapped, so errors.Is(err, context.Canceled) holds.
//
// API reference:
//
//	func MinHeatLoss(
//	    g *gridgraph.GridGraph,
//	    p movement.Policy,
//	    opts ...Option,
//	) (Result, error)
//
//	func MinCost(g *gridgraph.GridGraph, p movement.Policy, start, end gridgraph.Point) (int64, error)
//
// Arrival rule:
//
//   - By default the first pop of any state located on the destination ends the
//     search, whatever its run length.
//   - WithStrictArrival additionally requires p.CanStop(run), which for Ultra
//     means the final straight run is at least four cells long.
//
// Thread safety:
//
//   - Each call owns its cost table, predecessor table and heap. The grid and the
//     policies are immutable, so any number of queries may run concurrently on
//     the same grid.
//
// Example usage:
//
//	g, err := gridgraph.ParseLines(lines)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := dijkstra.MinHeatLoss(g, movement.Ultra, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, len(res.Path))
package dijkstra
