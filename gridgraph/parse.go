package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseLines builds a GridGraph from digit rows: row index = line index,
// column index = character index. A trailing '\r' on each line is ignored.
// Every failure wraps ErrMalformedGrid together with its cause.
func ParseLines(lines []string) (*GridGraph, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrEmptyGrid)
	}
	values := make([][]int, len(lines))
	width := -1
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if width < 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				ErrMalformedGrid, ErrNonRectangular, y, len(line), width)
		}
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %w: %q at %d,%d", ErrMalformedGrid, ErrBadDigit, c, x, y)
			}
			row[x] = int(c - '0')
		}
		values[y] = row
	}

	gg, err := NewGridGraph(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, err)
	}
	return gg, nil
}

// Parse reads digit rows from r until EOF. Trailing blank lines are dropped;
// blank lines between rows are reported as ragged rows.
func Parse(r io.Reader) (*GridGraph, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return ParseLines(lines)
}
