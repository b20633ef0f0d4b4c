// Package dijkstra defines core types and configuration options
// for the constrained heat-loss search over a gridgraph.GridGraph.
//
// Options:
//
//	– Start / End:     query endpoints (default: top-left and bottom-right cells).
//	– ReturnPath:      if true, Result.Path holds the cells of one optimal route.
//	– StrictArrival:   accept the destination only where the policy may stop.
//	– MaxExpansions:   fail closed after this many expanded states (0 = no cap).
//	– Ctx:             cancellation, checked between queue pops.
//	– OnRelax / OnExpand / OnStale: observation hooks.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrNilPolicy       if no movement policy is supplied.
//	– ErrOutOfBounds     if start or end lies off the grid.
//	– ErrOptionViolation if an Option received an invalid argument.
//	– ErrUnreachable     if the frontier empties before reaching the end.
//	– ErrExpansionLimit  if MaxExpansions is exceeded.
package dijkstra

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilPolicy indicates that no movement policy was passed.
	ErrNilPolicy = errors.New("dijkstra: movement policy is nil")

	// ErrOutOfBounds indicates that the start or end point lies off the grid.
	ErrOutOfBounds = errors.New("dijkstra: point out of grid bounds")

	// ErrOptionViolation indicates an invalid functional option argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrUnreachable indicates the frontier was exhausted without reaching the end.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")

	// ErrExpansionLimit indicates the search expanded more states than permitted.
	ErrExpansionLimit = errors.New("dijkstra: expansion limit exceeded")
)

// Hook observes a state together with a cumulative cost.
type Hook func(s State, cost int64)

// Options configures a single search.
//
// Start, End    – endpoints; only honoured when hasStart / hasEnd are set.
// ReturnPath    – whether Result.Path is filled.
// StrictArrival – destination pops are accepted only if Policy.CanStop(run).
// MaxExpansions – 0 disables the cap.
type Options struct {
	Ctx           context.Context
	Start         gridgraph.Point
	End           gridgraph.Point
	ReturnPath    bool
	StrictArrival bool
	MaxExpansions int

	// OnRelax is called whenever the cost table receives a new or cheaper entry.
	OnRelax Hook
	// OnExpand is called for every state whose successors are generated.
	OnExpand Hook
	// OnStale is called for every popped entry discarded as stale.
	OnStale Hook

	hasStart, hasEnd bool
	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns an Options struct with:
//   - context.Background()
//   - corner endpoints (resolved against the grid at search time)
//   - no path, non-strict arrival, no expansion cap
//   - no-op hooks.
func DefaultOptions() Options {
	noop := func(State, int64) {}
	return Options{
		Ctx:      context.Background(),
		OnRelax:  noop,
		OnExpand: noop,
		OnStale:  noop,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart overrides the start cell.
func WithStart(p gridgraph.Point) Option {
	return func(o *Options) {
		o.Start, o.hasStart = p, true
	}
}

// WithEnd overrides the destination cell.
func WithEnd(p gridgraph.Point) Option {
	return func(o *Options) {
		o.End, o.hasEnd = p, true
	}
}

// WithReturnPath enables reconstruction of the optimal cell sequence.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithStrictArrival only accepts the destination when the policy allows the
// vehicle to stop there (Ultra: after at least MinTurnRun straight moves).
func WithStrictArrival() Option {
	return func(o *Options) {
		o.StrictArrival = true
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0: fail with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnRelax registers a callback for every cost-table write.
func WithOnRelax(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnExpand registers a callback for every expanded state.
func WithOnExpand(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnStale registers a callback for every discarded stale entry.
func WithOnStale(fn Hook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStale = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Cost: minimum heat loss from start to end.
//   - Path: cells from start to end inclusive (only with WithReturnPath).
//   - Expanded, Stale, Pushed: work counters for the query.
type Result struct {
	Cost     int64
	Path     []gridgraph.Point
	Expanded int
	Stale    int
	Pushed   int
}
