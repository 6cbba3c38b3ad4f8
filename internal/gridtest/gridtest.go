// Package gridtest provides fixtures and independent oracles shared by the
// bfs, dfs, astar and compare test suites. Nothing here is used outside
// *_test.go files.
package gridtest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// -----------------------------------------------------------------------------
// Fixed scenarios
// -----------------------------------------------------------------------------

// Classroom is the 4×4 teaching grid: pits at (0,1) and (1,2),
// start (3,0), goal (0,3). Shortest route: 6 moves.
var Classroom = []string{
	".P.G",
	"..P.",
	"....",
	"A...",
}

// ClassroomRoute is the route BFS, DFS and A* all return on Classroom.
var ClassroomRoute = []gridgraph.Cell{
	{Row: 3, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	{Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 0, Col: 3},
}

// Walled has its goal boxed in by pits on all four sides.
// Reachable from start: (0,0) (0,1) (1,0) (2,0) (2,1).
var Walled = []string{
	"A.P.",
	".PGP",
	"..P.",
}

// WalledReachable lists the cells reachable from Walled's start.
var WalledReachable = []gridgraph.Cell{
	{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1},
}

// Split separates start and goal by a full column of pits.
var Split = []string{
	"A.P..",
	"..P..",
	"..P.G",
}

// Detour hides the goal inside a wall with one opening at the bottom.
// BFS reaches it in 4 moves; DFS walks the outer ring first.
var Detour = []string{
	".....",
	".PPP.",
	".P.P.",
	".PGP.",
	"...P.",
	"A....",
}

// Parse wraps gridgraph.Parse and fails the test on error.
func Parse(tb testing.TB, rows []string) *gridgraph.Grid {
	tb.Helper()
	g, err := gridgraph.Parse(rows)
	require.NoError(tb, err)
	return g
}

// -----------------------------------------------------------------------------
// Random fixtures
// -----------------------------------------------------------------------------

// Random returns count grids with sizes in [2, maxSide] and pit probability
// p, drawn from a fixed seed. Start and goal are placed at random distinct
// cells so that some grids are disconnected and some are not.
func Random(tb testing.TB, seed int64, count, maxSide int, p float64) []*gridgraph.Grid {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	out := make([]*gridgraph.Grid, 0, count)
	for len(out) < count {
		rows, cols := 1+rng.Intn(maxSide), 1+rng.Intn(maxSide)
		if rows*cols < 2 {
			continue
		}
		terrain := make([][]gridgraph.Terrain, rows)
		for r := range terrain {
			terrain[r] = make([]gridgraph.Terrain, cols)
			for c := range terrain[r] {
				if rng.Float64() < p {
					terrain[r][c] = gridgraph.Obstacle
				}
			}
		}
		s := rng.Intn(rows * cols)
		g := rng.Intn(rows*cols - 1)
		if g >= s {
			g++
		}
		terrain[s/cols][s%cols] = gridgraph.Start
		terrain[g/cols][g%cols] = gridgraph.Goal
		grid, err := gridgraph.NewGrid(terrain)
		require.NoError(tb, err)
		out = append(out, grid)
	}
	return out
}

// -----------------------------------------------------------------------------
// Oracles
// -----------------------------------------------------------------------------

// ExhaustiveDistance computes the true shortest move count from start to
// goal by repeated relaxation over every cell until a fixpoint. It shares
// no code with the search packages. Returns false if goal is unreachable.
// Complexity: O(N²); small grids only.
func ExhaustiveDistance(g *gridgraph.Grid, start, goal gridgraph.Cell) (int, bool) {
	const inf = 1 << 30
	dist := make(map[gridgraph.Cell]int, g.Len())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			dist[gridgraph.Cell{Row: r, Col: c}] = inf
		}
	}
	dist[start] = 0
	for changed := true; changed; {
		changed = false
		for u, du := range dist {
			if du == inf || !g.Passable(u) && u != start {
				continue
			}
			for _, d := range gridgraph.Directions {
				v := gridgraph.Cell{Row: u.Row + d.DRow, Col: u.Col + d.DCol}
				if !g.InBounds(v) || g.Terrain(v) == gridgraph.Obstacle {
					continue
				}
				if du+1 < dist[v] {
					dist[v] = du + 1
					changed = true
				}
			}
		}
	}
	if dist[goal] == inf {
		return 0, false
	}
	return dist[goal], true
}

// RequireValidPath asserts that path starts at start, ends at goal, moves
// one orthogonal step at a time, and never enters an obstacle.
func RequireValidPath(tb testing.TB, g *gridgraph.Grid, path []gridgraph.Cell, start, goal gridgraph.Cell) {
	tb.Helper()
	require.NotEmpty(tb, path)
	require.Equal(tb, start, path[0], "path must begin at start")
	require.Equal(tb, goal, path[len(path)-1], "path must end at goal")
	for i, c := range path {
		require.True(tb, g.InBounds(c), "step %d %v out of bounds", i, c)
		if i > 0 {
			require.NotEqual(tb, gridgraph.Obstacle, g.Terrain(c), "step %d %v is an obstacle", i, c)
			require.Equal(tb, 1, gridgraph.Manhattan(path[i-1], c), "step %d %v not adjacent to %v", i, c, path[i-1])
		}
	}
}

// RequireNoDuplicates asserts that every cell appears at most once.
func RequireNoDuplicates(tb testing.TB, cells []gridgraph.Cell) {
	tb.Helper()
	seen := make(map[gridgraph.Cell]struct{}, len(cells))
	for i, c := range cells {
		_, dup := seen[c]
		require.False(tb, dup, "cell %v repeated at position %d", c, i)
		seen[c] = struct{}{}
	}
}
