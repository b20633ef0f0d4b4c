package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellRange indicates a cell cost outside [MinCellValue, MaxCellValue].
	ErrCellRange = errors.New("gridgraph: cell value out of range")
	// ErrBadDigit indicates a character other than '0'..'9' in puzzle text.
	ErrBadDigit = errors.New("gridgraph: cell is not a decimal digit")
	// ErrMalformedGrid is wrapped around every text parsing failure.
	ErrMalformedGrid = errors.New("gridgraph: malformed grid")
)
