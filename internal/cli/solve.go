package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/metrics"
	"github.com/katalvlaran/crucible/solve"
)

type solveFlags struct {
	configPath    string
	policies      []string
	strict        bool
	maxExpansions int
	start         string
	end           string
	showMetrics   bool
	verbose       bool
	logLevel      string
	logFormat     string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Print the minimum heat loss for each vehicle",
		Long: `Parse a digit grid and print the minimum heat loss from the top-left to
the bottom-right block for every configured vehicle.

The input path comes from the argument, or from "input" in the config file.
Use "-" to read standard input. Flags override config file values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	fl.StringSliceVarP(&f.policies, "policy", "p", nil, "vehicles to run (regular, ultra)")
	fl.BoolVar(&f.strict, "strict", false, "only stop where the vehicle may stop (ultra: after 4 straight blocks)")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "fail after expanding this many states (0 = unlimited)")
	fl.StringVar(&f.start, "start", "", "start block as x,y (default top-left)")
	fl.StringVar(&f.end, "end", "", "end block as x,y (default bottom-right)")
	fl.BoolVar(&f.showMetrics, "metrics", false, "print search metrics in Prometheus text format to stderr")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "print route length and search work per vehicle")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", "", "log format (auto, text, json)")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string, f solveFlags) error {
	cfg, err := resolveConfig(cmd, args, f)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	var (
		reg *prometheus.Registry
		rec *metrics.Recorder
	)
	if f.showMetrics {
		reg = prometheus.NewRegistry()
		if rec, err = metrics.NewRecorder(reg); err != nil {
			return err
		}
	}

	var opts []solve.Option
	if f.verbose {
		opts = append(opts, solve.WithPaths())
	}
	s, err := solve.New(cfg, logger, rec, opts...)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd, cfg.Input)
	if err != nil {
		return err
	}
	defer closeInput()

	rep, err := s.SolveReader(cmd.Context(), in)
	if err != nil {
		return err
	}
	if err := printReport(cmd.OutOrStdout(), rep, f.verbose); err != nil {
		return err
	}
	if reg != nil {
		return writeMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

// resolveConfig layers defaults, the config file, flags and the positional input.
func resolveConfig(cmd *cobra.Command, args []string, f solveFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("policy") {
		cfg.Policies = f.policies
	}
	if fl.Changed("strict") {
		cfg.StrictArrival = f.strict
	}
	if fl.Changed("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	if fl.Changed("start") {
		p, err := parsePoint(f.start)
		if err != nil {
			return config.Config{}, fmt.Errorf("--start: %w", err)
		}
		cfg.Start = p
	}
	if fl.Changed("end") {
		p, err := parsePoint(f.end)
		if err != nil {
			return config.Config{}, fmt.Errorf("--end: %w", err)
		}
		cfg.End = p
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fl.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return config.Config{}, errors.New("no input: pass a file argument or set input in the config file")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// parsePoint reads "x,y".
func parsePoint(s string) ([]int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("%w: want x,y, got %q", config.ErrInvalidConfig, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return nil, fmt.Errorf("%w: bad x in %q", config.ErrInvalidConfig, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return nil, fmt.Errorf("%w: bad y in %q", config.ErrInvalidConfig, s)
	}
	return []int{x, y}, nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
