// Package dijkstra implements the minimum heat-loss search: Dijkstra's
// algorithm over the augmented state space (cell × heading × run length)
// induced by a grid and a movement policy.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4×MaxRun reachable states.
//   - Each state may be pushed once per strict improvement of its cost.
//   - Each heap operation (Push/Pop) costs O(log N), N = entries in the heap.
//   - Space: O(S) for the cost table, predecessor table and heap.
//
// Notes on implementation choices:
//
//   - Legality of a move depends on the heading and run, so cells are revisited
//     as different states; only states are finalized, never raw cells.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose cost exceeds the cost table when popped.
//   - The first pop at the destination is optimal because cell costs are
//     non-negative and the heap always yields the globally minimal cost.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// ctxCheckInterval is how many pops pass between context checks.
const ctxCheckInterval = 1024

// MinHeatLoss computes the minimum heat loss from the start cell to the end
// cell of g under policy p. Entering a cell costs its value; the start cell is
// free.
//
// Preconditions and validation (in order):
//  1. Every option must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. p must be non-nil (ErrNilPolicy).
//  4. Start and end must lie on the grid (ErrOutOfBounds).
//
// Returns ErrUnreachable when no legal route exists, ErrExpansionLimit when
// WithMaxExpansions is exceeded and the wrapped context error on cancellation.
// Result counters are filled in on every return path.
func MinHeatLoss(g *gridgraph.GridGraph, p movement.Policy, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate collaborators
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if p == nil {
		return Result{}, ErrNilPolicy
	}

	// 3) Resolve and validate endpoints
	start, end := g.Corners()
	if cfg.hasStart {
		start = cfg.Start
	}
	if cfg.hasEnd {
		end = cfg.End
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %v on %dx%d grid", ErrOutOfBounds, start, g.Width(), g.Height())
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: end %v on %dx%d grid", ErrOutOfBounds, end, g.Width(), g.Height())
	}

	// 4) Run
	r := &runner{
		g:       g,
		policy:  p,
		options: cfg,
		start:   start,
		end:     end,
		dist:    make(map[State]int64, g.Width()*g.Height()),
		pq:      make(statePQ, 0, g.Width()*g.Height()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, g.Width()*g.Height())
	}
	r.init()

	return r.process()
}

// MinCost is the plain form of MinHeatLoss: explicit endpoints, default options.
func MinCost(g *gridgraph.GridGraph, p movement.Policy, start, end gridgraph.Point) (int64, error) {
	res, err := MinHeatLoss(g, p, WithStart(start), WithEnd(end))
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g          *gridgraph.GridGraph // read-only within the search
	policy     movement.Policy
	options    Options
	start, end gridgraph.Point
	dist       map[State]int64 // best known cost per state
	prev       map[State]State // predecessor per state; nil unless ReturnPath
	pq         statePQ         // min-heap with lazy decrease-key
	buf        []successor     // reused expansion buffer
	pops       int
	result     Result
}

// init seeds the cost table and heap with the synthetic start state.
func (r *runner) init() {
	s := State{Pos: r.start, Dir: gridgraph.None, Run: 0}
	r.dist[s] = 0
	heap.Init(&r.pq)
	r.push(s, 0)
}

// process is the main loop. It terminates when the destination is popped,
// the heap empties, the expansion cap is hit or the context is done.
func (r *runner) process() (Result, error) {
	cfg := r.options
	for r.pq.Len() > 0 {
		if r.pops%ctxCheckInterval == 0 {
			if err := cfg.Ctx.Err(); err != nil {
				return r.result, fmt.Errorf("dijkstra: search aborted after %d expansions: %w", r.result.Expanded, err)
			}
		}

		// 1) Pop the cheapest pending entry.
		item := heap.Pop(&r.pq).(stateItem)
		r.pops++

		// 2) Skip stale entries: a cheaper path to this state was recorded after the push.
		if item.cost > r.dist[item.state] {
			r.result.Stale++
			cfg.OnStale(item.state, item.cost)
			continue
		}

		// 3) Destination reached; the popped cost is final.
		if item.state.Pos == r.end && (!cfg.StrictArrival || r.policy.CanStop(item.state.Run)) {
			r.result.Cost = item.cost
			if r.prev != nil {
				r.result.Path = r.path(item.state)
			}
			return r.result, nil
		}

		// 4) Fail closed once the expansion budget is spent.
		if cfg.MaxExpansions > 0 && r.result.Expanded >= cfg.MaxExpansions {
			return r.result, fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, r.result.Expanded)
		}

		// 5) Expand and relax.
		r.result.Expanded++
		cfg.OnExpand(item.state, item.cost)
		r.relax(item)
	}

	return r.result, fmt.Errorf("%w: %v → %v under %s policy", ErrUnreachable, r.start, r.end, r.policy)
}

// relax pushes every successor of item whose tentative cost strictly improves
// the cost table.
func (r *runner) relax(item stateItem) {
	r.buf = expand(item.state, r.g, r.policy, r.buf[:0])
	for _, sc := range r.buf {
		tentative := item.cost + sc.cost
		if old, seen := r.dist[sc.state]; seen && tentative >= old {
			continue
		}
		r.dist[sc.state] = tentative
		if r.prev != nil {
			r.prev[sc.state] = item.state
		}
		r.options.OnRelax(sc.state, tentative)
		r.push(sc.state, tentative)
	}
}

func (r *runner) push(s State, cost int64) {
	heap.Push(&r.pq, stateItem{state: s, cost: cost})
	r.result.Pushed++
}

// path walks the predecessor table back to the start state.
func (r *runner) path(last State) []gridgraph.Point {
	var rev []gridgraph.Point
	for s := last; ; {
		rev = append(rev, s.Pos)
		p, ok := r.prev[s]
		if !ok {
			break
		}
		s = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// stateItem is a heap entry: a state and the cumulative cost it was pushed with.
type stateItem struct {
	state State
	cost  int64
}

// statePQ is a min-heap of stateItem ordered by cost ascending. Stale duplicates
// stay in the heap until popped.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
