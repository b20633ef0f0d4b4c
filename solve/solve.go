// Package solve runs one heat-loss query per configured vehicle against a
// shared grid and collects the answers into a Report.
//
// Queries run concurrently: the grid and the policies are immutable and every
// query owns its search tables, so no locking is needed. The first failing
// query cancels the rest.
package solve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/metrics"
	"github.com/katalvlaran/crucible/movement"
)

// Answer is the outcome of one query.
type Answer struct {
	Policy   movement.Vehicle
	Cost     int64
	Path     []gridgraph.Point
	Expanded int
	Stale    int
	Duration time.Duration
}

// Report collects the answers of one run, ordered as the configured policies.
type Report struct {
	RunID   string
	Width   int
	Height  int
	Answers []Answer
}

// Solver holds the validated run settings.
type Solver struct {
	cfg      config.Config
	vehicles []movement.Vehicle
	logger   *slog.Logger
	recorder *metrics.Recorder
	withPath bool
}

// Option tweaks a Solver.
type Option func(*Solver)

// WithPaths asks every query to reconstruct its route.
func WithPaths() Option {
	return func(s *Solver) { s.withPath = true }
}

// New validates cfg and returns a Solver. A nil logger falls back to
// slog.Default(); a nil recorder disables metrics.
func New(cfg config.Config, logger *slog.Logger, rec *metrics.Recorder, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	vehicles, err := cfg.Vehicles()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Solver{
		cfg:      cfg,
		vehicles: vehicles,
		logger:   logger,
		recorder: rec,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SolveReader parses digit rows from r and solves them.
func (s *Solver) SolveReader(ctx context.Context, r io.Reader) (Report, error) {
	g, err := gridgraph.Parse(r)
	if err != nil {
		return Report{}, err
	}
	return s.Solve(ctx, g)
}

// SolveLines parses digit rows and solves them.
func (s *Solver) SolveLines(ctx context.Context, lines []string) (Report, error) {
	g, err := gridgraph.ParseLines(lines)
	if err != nil {
		return Report{}, err
	}
	return s.Solve(ctx, g)
}

// Solve runs every configured query against g.
func (s *Solver) Solve(ctx context.Context, g *gridgraph.GridGraph) (Report, error) {
	if g == nil {
		return Report{}, dijkstra.ErrNilGrid
	}
	runID := uuid.NewString()
	log := s.logger.With("run_id", runID)
	log.Info("solving grid", "width", g.Width(), "height", g.Height(), "policies", s.cfg.Policies)

	answers := make([]Answer, len(s.vehicles))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, v := range s.vehicles {
		eg.Go(func() error {
			a, err := s.query(egCtx, log, g, v)
			if err != nil {
				return fmt.Errorf("solve: %s policy: %w", v, err)
			}
			answers[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Error("run failed", "error", err)
		return Report{}, err
	}

	return Report{
		RunID:   runID,
		Width:   g.Width(),
		Height:  g.Height(),
		Answers: answers,
	}, nil
}

func (s *Solver) query(ctx context.Context, log *slog.Logger, g *gridgraph.GridGraph, v movement.Vehicle) (Answer, error) {
	opts := []dijkstra.Option{
		dijkstra.WithContext(ctx),
		dijkstra.WithMaxExpansions(s.cfg.MaxExpansions),
	}
	if p, ok := s.cfg.StartPoint(); ok {
		opts = append(opts, dijkstra.WithStart(p))
	}
	if p, ok := s.cfg.EndPoint(); ok {
		opts = append(opts, dijkstra.WithEnd(p))
	}
	if s.cfg.StrictArrival {
		opts = append(opts, dijkstra.WithStrictArrival())
	}
	if s.withPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	opts = append(opts, s.recorder.Options(v.String())...)

	start := time.Now()
	res, err := dijkstra.MinHeatLoss(g, v, opts...)
	elapsed := time.Since(start)
	s.recorder.ObserveQuery(v.String(), err, elapsed)

	attrs := []any{
		"policy", v.String(),
		"expanded", res.Expanded,
		"stale", res.Stale,
		"pushed", res.Pushed,
		"duration", elapsed,
	}
	if err != nil {
		log.Warn("query failed", append(attrs, "error", err)...)
		return Answer{}, err
	}
	log.Debug("query done", append(attrs, "cost", res.Cost)...)

	return Answer{
		Policy:   v,
		Cost:     res.Cost,
		Path:     res.Path,
		Expanded: res.Expanded,
		Stale:    res.Stale,
		Duration: elapsed,
	}, nil
}
