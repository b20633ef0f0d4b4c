package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/movement"
)

// benchGrid builds a deterministic random n×n grid with costs in [1,9].
func benchGrid(b *testing.B, n int) *gridgraph.GridGraph {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			values[y][x] = 1 + rng.Intn(9)
		}
	}
	g, err := gridgraph.NewGridGraph(values)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	return g
}

// BenchmarkMinHeatLoss_Regular measures a full-size (141×141) Regular query.
func BenchmarkMinHeatLoss_Regular(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.MinHeatLoss(g, movement.Regular); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMinHeatLoss_Ultra measures a full-size (141×141) Ultra query.
func BenchmarkMinHeatLoss_Ultra(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.MinHeatLoss(g, movement.Ultra); err != nil {
			b.Fatal(err)
		}
	}
}
