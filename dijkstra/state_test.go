package dijkstra

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

func mustGrid(t *testing.T, lines ...string) *gridgraph.GridGraph {
	t.Helper()
	g, err := gridgraph.ParseLines(lines)
	require.NoError(t, err)
	return g
}

// TestExpand_StartCorner checks that only on-grid headings are emitted from the start.
func TestExpand_StartCorner(t *testing.T) {
	g := mustGrid(t, "12", "34")
	got := expand(State{}, g, movement.Regular, nil)
	require.ElementsMatch(t, []successor{
		{state: State{Pos: gridgraph.Point{X: 1, Y: 0}, Dir: gridgraph.East, Run: 1}, cost: 2},
		{state: State{Pos: gridgraph.Point{X: 0, Y: 1}, Dir: gridgraph.South, Run: 1}, cost: 3},
	}, got)
}

// TestExpand_RespectsPolicy checks reversal, run caps and Ultra's turn minimum.
func TestExpand_RespectsPolicy(t *testing.T) {
	g := mustGrid(t, "11111", "11111", "11111")
	mid := gridgraph.Point{X: 2, Y: 1}

	// Regular heading east after 3 straight: must turn north or south.
	got := expand(State{Pos: mid, Dir: gridgraph.East, Run: 3}, g, movement.Regular, nil)
	dirs := make([]gridgraph.Direction, 0, len(got))
	for _, sc := range got {
		dirs = append(dirs, sc.state.Dir)
		require.Equal(t, 1, sc.state.Run)
	}
	require.ElementsMatch(t, []gridgraph.Direction{gridgraph.North, gridgraph.South}, dirs)

	// Ultra heading east after 2 straight: only straight on.
	got = expand(State{Pos: mid, Dir: gridgraph.East, Run: 2}, g, movement.Ultra, nil)
	require.Len(t, got, 1)
	require.Equal(t, State{Pos: gridgraph.Point{X: 3, Y: 1}, Dir: gridgraph.East, Run: 3}, got[0].state)
}

// TestExpand_ReusesBuffer ensures the returned slice is built on buf.
func TestExpand_ReusesBuffer(t *testing.T) {
	g := mustGrid(t, "111", "111", "111")
	buf := make([]successor, 0, 4)
	got := expand(State{Pos: gridgraph.Point{X: 1, Y: 1}}, g, movement.Regular, buf)
	require.Len(t, got, 4)
	require.Equal(t, cap(buf), cap(got))
}

// TestStatePQ_Order pops in ascending cost regardless of insertion order.
func TestStatePQ_Order(t *testing.T) {
	pq := &statePQ{}
	heap.Init(pq)
	for _, c := range []int64{5, 1, 4, 1, 3} {
		heap.Push(pq, stateItem{cost: c})
	}
	var got []int64
	for pq.Len() > 0 {
		got = append(got, heap.Pop(pq).(stateItem).cost)
	}
	require.Equal(t, []int64{1, 1, 3, 4, 5}, got)
}
