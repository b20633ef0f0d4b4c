// Package metrics exports heat-loss search activity as Prometheus series.
//
// A Recorder owns one set of collectors registered on a caller-supplied
// prometheus.Registerer. Recorder.Options turns it into dijkstra hooks for a
// single query; ObserveQuery records the outcome once the query returns.
// All methods are safe on a nil *Recorder and do nothing.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/crucible/dijkstra"
)

// Query results used for the "result" label.
const (
	ResultOK          = "ok"
	ResultUnreachable = "unreachable"
	ResultError       = "error"
)

// Recorder holds the search collectors.
type Recorder struct {
	expanded    *prometheus.CounterVec
	stale       *prometheus.CounterVec
	relaxations *prometheus.CounterVec
	queries     *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg.
// Registration errors (for example a second Recorder on the same registry)
// are returned unchanged.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, errors.New("metrics: registerer is nil")
	}
	r := &Recorder{
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crucible_search_expanded_states_total",
			Help: "States whose successors were generated, by policy",
		}, []string{"policy"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crucible_search_stale_pops_total",
			Help: "Heap entries discarded as stale, by policy",
		}, []string{"policy"}),
		relaxations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crucible_search_relaxations_total",
			Help: "Cost table writes, by policy",
		}, []string{"policy"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crucible_search_queries_total",
			Help: "Completed queries by policy and result",
		}, []string{"policy", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crucible_search_duration_seconds",
			Help:    "Query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}, []string{"policy"}),
	}
	for _, c := range []prometheus.Collector{r.expanded, r.stale, r.relaxations, r.queries, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: registering collector: %w", err)
		}
	}
	return r, nil
}

// Options returns dijkstra hooks that count expansions, stale pops and
// relaxations under the given policy label.
func (r *Recorder) Options(policy string) []dijkstra.Option {
	if r == nil {
		return nil
	}
	expanded := r.expanded.WithLabelValues(policy)
	stale := r.stale.WithLabelValues(policy)
	relax := r.relaxations.WithLabelValues(policy)
	return []dijkstra.Option{
		dijkstra.WithOnExpand(func(dijkstra.State, int64) { expanded.Inc() }),
		dijkstra.WithOnStale(func(dijkstra.State, int64) { stale.Inc() }),
		dijkstra.WithOnRelax(func(dijkstra.State, int64) { relax.Inc() }),
	}
}

// ObserveQuery records the outcome and duration of one query.
func (r *Recorder) ObserveQuery(policy string, err error, d time.Duration) {
	if r == nil {
		return
	}
	r.queries.WithLabelValues(policy, Classify(err)).Inc()
	r.duration.WithLabelValues(policy).Observe(d.Seconds())
}

// Classify maps a search error to its result label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, dijkstra.ErrUnreachable):
		return ResultUnreachable
	default:
		return ResultError
	}
}
