// Package config loads the TOML run configuration for crucible.
//
// Example file:
//
//	input = "day17.txt"
//	policies = ["regular", "ultra"]
//	strict_arrival = false
//	max_expansions = 0
//	start = [0, 0]
//	end = [140, 140]
//
//	[log]
//	level = "info"
//	format = "auto"
//
// Omitted keys keep the values from Default. start / end default to the
// top-left and bottom-right cells of the parsed grid.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

var (
	// ErrNotFound indicates the config file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates a value failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// Log formats accepted in [log].format.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full run configuration.
type Config struct {
	Input         string    `toml:"input"`
	Policies      []string  `toml:"policies"`
	StrictArrival bool      `toml:"strict_arrival"`
	MaxExpansions int       `toml:"max_expansions"`
	Start         []int     `toml:"start"`
	End           []int     `toml:"end"`
	Log           LogConfig `toml:"log"`
}

// LogConfig selects the slog handler built by the CLI.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is given:
// both vehicles, corner endpoints, no expansion cap, info-level auto logging.
func Default() Config {
	return Config{
		Policies: []string{movement.Regular.String(), movement.Ultra.String()},
		Log: LogConfig{
			Level:  "info",
			Format: FormatAuto,
		},
	}
}

// Load reads and validates a TOML configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the operator
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML content on top of Default and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if len(c.Policies) == 0 {
		return fmt.Errorf("%w: at least one policy is required", ErrInvalidConfig)
	}
	seen := make(map[movement.Vehicle]bool, len(c.Policies))
	for _, name := range c.Policies {
		v, err := movement.ParseVehicle(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if seen[v] {
			return fmt.Errorf("%w: policy %q listed twice", ErrInvalidConfig, name)
		}
		seen[v] = true
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must be non-negative, got %d", ErrInvalidConfig, c.MaxExpansions)
	}
	if err := validatePoint("start", c.Start); err != nil {
		return err
	}
	if err := validatePoint("end", c.End); err != nil {
		return err
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatAuto, FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q (want auto, text or json)", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func validatePoint(field string, xy []int) error {
	if xy == nil {
		return nil
	}
	if len(xy) != 2 {
		return fmt.Errorf("%w: %s must be [x, y], got %v", ErrInvalidConfig, field, xy)
	}
	if xy[0] < 0 || xy[1] < 0 {
		return fmt.Errorf("%w: %s must be non-negative, got %v", ErrInvalidConfig, field, xy)
	}
	return nil
}

// Vehicles returns the configured policies in order. Call after Validate.
func (c Config) Vehicles() ([]movement.Vehicle, error) {
	out := make([]movement.Vehicle, 0, len(c.Policies))
	for _, name := range c.Policies {
		v, err := movement.ParseVehicle(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// StartPoint returns the configured start cell, if any.
func (c Config) StartPoint() (gridgraph.Point, bool) {
	return toPoint(c.Start)
}

// EndPoint returns the configured end cell, if any.
func (c Config) EndPoint() (gridgraph.Point, bool) {
	return toPoint(c.End)
}

func toPoint(xy []int) (gridgraph.Point, bool) {
	if len(xy) != 2 {
		return gridgraph.Point{}, false
	}
	return gridgraph.Point{X: xy[0], Y: xy[1]}, true
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, name)
	}
	return lvl, nil
}
