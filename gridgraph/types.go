// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/crucible.
package gridgraph

import "fmt"

// Cell value bounds accepted by NewGridGraph.
const (
	MinCellValue = 0
	MaxCellValue = 9
)

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is an orthogonal heading. The zero value None means "no move yet".
type Direction int8

const (
	// None is the heading of a search that has not moved.
	None Direction = iota
	// North decreases Y.
	North
	// East increases X.
	East
	// South increases Y.
	South
	// West decreases X.
	West
)

// Directions lists the four real headings in N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// offsets is indexed by Direction.
var offsets = [...][2]int{
	None:  {0, 0},
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

// Step returns the point one unit away from p in direction d.
// Stepping with None returns p unchanged.
func (d Direction) Step(p Point) Point {
	o := offsets[d]
	return Point{X: p.X + o[0], Y: p.Y + o[1]}
}

// Reverse returns the opposite heading. None reverses to None.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// GridGraph is an immutable rectangular cost grid.
// cells[y][x] holds the cost of entering cell (x,y).
type GridGraph struct {
	width, height int
	cells         [][]int
	minCost       int
}
