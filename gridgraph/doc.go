// Package gridgraph treats a rectangular block of digit cells as a weighted
// grid, the terrain every heat-loss query runs on.
//
// What:
//
//   - GridGraph wraps a rectangular cost matrix with values in [0,9].
//   - Parse / ParseLines build it from puzzle text, one digit per cell.
//   - Cost reports a cell's value, or false when the point is off the grid.
//   - Direction and Point give the four orthogonal unit steps.
//
// Why:
//
//   - Searches need an immutable, bounds-checked cost lookup that can be shared
//     by several concurrent queries without locking.
//
// Complexity:
//
//   - NewGridGraph / ParseLines: O(W×H) time and memory.
//   - Cost, InBounds, Step:      O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellRange: a cell value lies outside [0,9].
//   - ErrBadDigit: a text cell is not a decimal digit.
//   - ErrMalformedGrid: wraps any of the above when parsing text.
package gridgraph
