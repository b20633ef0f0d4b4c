package movement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ErrUnknownVehicle is returned by ParseVehicle for unsupported names.
var ErrUnknownVehicle = errors.New("movement: unknown vehicle")

// Policy is the contract the search engine consults for every move.
type Policy interface {
	// NextRun returns the run length after moving in direction next, or
	// ok=false when the move is disallowed.
	NextRun(prev gridgraph.Direction, prevRun int, next gridgraph.Direction) (run int, ok bool)
	// CanStop reports whether the vehicle may come to rest after a run of the
	// given length. A run of 0 means it never moved.
	CanStop(run int) bool
	// Limits returns the thresholds behind the rules.
	Limits() Limits
	String() string
}

// Limits holds the two thresholds that distinguish vehicles.
//
// MinTurnRun – straight moves required before turning or stopping.
// MaxRun     – straight moves allowed before a turn is forced.
type Limits struct {
	MinTurnRun int
	MaxRun     int
}

// Vehicle is the closed set of movement policies.
type Vehicle int

const (
	// Regular may move at most 3 cells straight and may turn at any time.
	Regular Vehicle = iota
	// Ultra must move at least 4 cells straight before turning and at most 10.
	Ultra
)

var vehicleLimits = [...]Limits{
	Regular: {MinTurnRun: 1, MaxRun: 3},
	Ultra:   {MinTurnRun: 4, MaxRun: 10},
}

var vehicleNames = [...]string{
	Regular: "regular",
	Ultra:   "ultra",
}

// Vehicles lists every variant in declaration order.
var Vehicles = []Vehicle{Regular, Ultra}

// Limits returns the thresholds of v.
func (v Vehicle) Limits() Limits {
	return vehicleLimits[v]
}

// NextRun implements Policy.
func (v Vehicle) NextRun(prev gridgraph.Direction, prevRun int, next gridgraph.Direction) (int, bool) {
	if prev != gridgraph.None && next == prev.Reverse() {
		return 0, false
	}
	lim := v.Limits()
	if next == prev {
		if prevRun >= lim.MaxRun {
			return 0, false
		}
		return prevRun + 1, true
	}
	if prev != gridgraph.None && prevRun < lim.MinTurnRun {
		return 0, false
	}
	return 1, true
}

// CanStop implements Policy.
func (v Vehicle) CanStop(run int) bool {
	return run == 0 || run >= v.Limits().MinTurnRun
}

// String returns the lower-case vehicle name.
func (v Vehicle) String() string {
	if v < 0 || int(v) >= len(vehicleNames) {
		return fmt.Sprintf("vehicle(%d)", int(v))
	}
	return vehicleNames[v]
}

// ParseVehicle maps a case-insensitive name to its Vehicle.
func ParseVehicle(name string) (Vehicle, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, v := range Vehicles {
		if vehicleNames[v] == n {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want regular or ultra)", ErrUnknownVehicle, name)
}
