package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridsearch/dfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// BenchmarkSearch_OpenGrid300 measures DFS on an obstacle-free 300×300 grid,
// where the snake-like walk touches a large share of the cells.
func BenchmarkSearch_OpenGrid300(b *testing.B) {
	const n = 300
	terrain := make([][]gridgraph.Terrain, n)
	for r := range terrain {
		terrain[r] = make([]gridgraph.Terrain, n)
	}
	terrain[n-1][0] = gridgraph.Start
	terrain[0][n-1] = gridgraph.Goal
	g, err := gridgraph.NewGrid(terrain)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Search(g, g.Start(), g.Goal()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Pitted500 measures DFS on a 500×500 grid with ~20% pits.
func BenchmarkSearch_Pitted500(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(5))
	terrain := make([][]gridgraph.Terrain, n)
	for r := range terrain {
		terrain[r] = make([]gridgraph.Terrain, n)
		for c := range terrain[r] {
			if rng.Float64() < 0.2 {
				terrain[r][c] = gridgraph.Obstacle
			}
		}
	}
	terrain[n-1][0] = gridgraph.Start
	terrain[0][n-1] = gridgraph.Goal
	g, err := gridgraph.NewGrid(terrain)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Search(g, g.Start(), g.Goal()); err != nil {
			b.Fatal(err)
		}
	}
}
