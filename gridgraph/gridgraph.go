// Package gridgraph provides an immutable weighted grid of digit cells.
// Cells are addressed by Point{X: column, Y: row}; moving between orthogonal
// neighbours costs the value of the cell being entered.
package gridgraph

import "fmt"

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrCellRange if a value lies outside [MinCellValue, MaxCellValue].
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	lowest := MaxCellValue
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		for x, v := range values[y] {
			if v < MinCellValue || v > MaxCellValue {
				return nil, fmt.Errorf("%w: cell %d,%d = %d", ErrCellRange, x, y, v)
			}
			if v < lowest {
				lowest = v
			}
			cells[y][x] = v
		}
	}

	return &GridGraph{
		width:   w,
		height:  h,
		cells:   cells,
		minCost: lowest,
	}, nil
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.width }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.width && p.Y >= 0 && p.Y < gg.height
}

// Cost returns the cost of entering p. The boolean is false when p is out of
// bounds, in which case the cost is meaningless.
// Complexity: O(1).
func (gg *GridGraph) Cost(p Point) (int, bool) {
	if !gg.InBounds(p) {
		return 0, false
	}
	return gg.cells[p.Y][p.X], true
}

// Corners returns the top-left and bottom-right cells.
func (gg *GridGraph) Corners() (start, end Point) {
	return Point{}, Point{X: gg.width - 1, Y: gg.height - 1}
}

// MinCellCost returns the smallest cell value in the grid.
func (gg *GridGraph) MinCellCost() int { return gg.minCost }

// String renders the grid back to digit rows separated by newlines.
func (gg *GridGraph) String() string {
	buf := make([]byte, 0, (gg.width+1)*gg.height)
	for y, row := range gg.cells {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, v := range row {
			buf = append(buf, byte('0'+v))
		}
	}
	return string(buf)
}
