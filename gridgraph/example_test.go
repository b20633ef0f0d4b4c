package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ExampleParseLines builds a grid from puzzle rows and reads back a few cells.
func ExampleParseLines() {
	gg, err := gridgraph.ParseLines([]string{
		"2413",
		"3215",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c, _ := gg.Cost(gridgraph.Point{X: 3, Y: 1})
	_, ok := gg.Cost(gridgraph.Point{X: 4, Y: 1})
	fmt.Printf("size=%dx%d cost(3,1)=%d inBounds(4,1)=%v\n", gg.Width(), gg.Height(), c, ok)
	// Output: size=4x2 cost(3,1)=5 inBounds(4,1)=false
}
