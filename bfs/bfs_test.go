package bfs_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/internal/gridtest"
	"github.com/katalvlaran/gridsearch/search"
)

func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }

// TestSearch_Errors verifies that invalid inputs are rejected before any work.
func TestSearch_Errors(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Classroom)

	res, err := bfs.Search(nil, cell(0, 0), cell(0, 1))
	assert.ErrorIs(t, err, search.ErrNilGrid)
	assert.Nil(t, res)

	res, err = bfs.Search(g, cell(4, 0), g.Goal())
	assert.ErrorIs(t, err, search.ErrInvalidCell)
	assert.Nil(t, res)

	res, err = bfs.Search(g, g.Start(), cell(0, -1))
	assert.ErrorIs(t, err, search.ErrInvalidCell)
	assert.Nil(t, res)
}

// TestSearch_Classroom checks the exact expansion log and route on the
// 4×4 teaching grid.
func TestSearch_Classroom(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Classroom)
	res, err := bfs.Search(g, g.Start(), g.Goal())
	require.NoError(t, err)

	wantExpanded := []gridgraph.Cell{
		cell(3, 0), cell(2, 0), cell(3, 1), cell(1, 0), cell(2, 1), cell(3, 2),
		cell(0, 0), cell(1, 1), cell(2, 2), cell(3, 3), cell(2, 3), cell(1, 3), cell(0, 3),
	}
	assert.Equal(t, wantExpanded, res.Expanded)
	assert.Equal(t, gridtest.ClassroomRoute, res.Path)
	assert.Equal(t, search.Summary{Cost: 6, Expansions: 13}, search.Summarize(res))
}

// TestSearch_StartIsGoal returns a one-cell path after a single expansion.
func TestSearch_StartIsGoal(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Classroom)
	res, err := bfs.Search(g, cell(2, 2), cell(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{cell(2, 2)}, res.Path)
	assert.Equal(t, []gridgraph.Cell{cell(2, 2)}, res.Expanded)
	assert.Equal(t, 0, search.Summarize(res).Cost)
}

// TestSearch_WalledGoal expands every reachable cell exactly once and
// reports absence without an error.
func TestSearch_WalledGoal(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Walled)
	res, err := bfs.Search(g, g.Start(), g.Goal())
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Nil(t, res.Path)
	assert.Equal(t, []gridgraph.Cell{cell(0, 0), cell(1, 0), cell(0, 1), cell(2, 0), cell(2, 1)}, res.Expanded)
	assert.ElementsMatch(t, gridtest.WalledReachable, res.Expanded)
	assert.Equal(t, search.Summary{Cost: 0, Expansions: 5}, search.Summarize(res))
}

// TestSearch_Split reports absence when a pit column separates the endpoints.
func TestSearch_Split(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Split)
	res, err := bfs.Search(g, g.Start(), g.Goal())
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.Len(t, res.Expanded, 6)
	gridtest.RequireNoDuplicates(t, res.Expanded)
}

// TestSearch_Detour finds the short route under the wall.
func TestSearch_Detour(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Detour)
	res, err := bfs.Search(g, g.Start(), g.Goal())
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{cell(5, 0), cell(4, 0), cell(4, 1), cell(4, 2), cell(3, 2)}, res.Path)
}

// TestSearch_Deterministic repeats the same search and compares every field.
func TestSearch_Deterministic(t *testing.T) {
	for _, g := range gridtest.Random(t, 7, 20, 12, 0.25) {
		first, err := bfs.Search(g, g.Start(), g.Goal())
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := bfs.Search(g, g.Start(), g.Goal())
			require.NoError(t, err)
			require.Equal(t, first, again)
		}
	}
}

// TestSearch_MatchesExhaustiveDistance compares path length with an
// independent relaxation oracle on random small grids.
func TestSearch_MatchesExhaustiveDistance(t *testing.T) {
	for i, g := range gridtest.Random(t, 42, 200, 8, 0.3) {
		res, err := bfs.Search(g, g.Start(), g.Goal())
		require.NoError(t, err, "grid %d", i)
		dist, ok := gridtest.ExhaustiveDistance(g, g.Start(), g.Goal())
		require.Equal(t, ok, res.Found(), "grid %d:\n%s", i, g)
		gridtest.RequireNoDuplicates(t, res.Expanded)
		if !ok {
			require.NotEmpty(t, res.Expanded)
			continue
		}
		gridtest.RequireValidPath(t, g, res.Path, g.Start(), g.Goal())
		require.Equal(t, dist, search.Summarize(res).Cost, "grid %d:\n%s", i, g)
	}
}

// TestSearch_ContextCancel returns the partial log with ctx.Err().
func TestSearch_ContextCancel(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Classroom)
	ctx, cancel := context.WithCancel(context.Background())
	pops := 0
	res, err := bfs.Search(g, g.Start(), g.Goal(),
		search.WithContext(ctx),
		search.WithOnExpand(func(gridgraph.Cell) error {
			pops++
			if pops == 3 {
				cancel()
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Len(t, res.Expanded, 3)
	assert.Nil(t, res.Path)
}

// TestSearch_OnExpandError aborts and wraps the hook error with the cell.
func TestSearch_OnExpandError(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Classroom)
	boom := errors.New("boom")
	res, err := bfs.Search(g, g.Start(), g.Goal(),
		search.WithOnExpand(func(c gridgraph.Cell) error {
			if c == cell(2, 1) {
				return boom
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "bfs: OnExpand at (2,1): boom")
	assert.Equal(t, cell(2, 1), res.Expanded[len(res.Expanded)-1])
}

// TestSearch_ConcurrentReaders runs many searches on one shared grid.
func TestSearch_ConcurrentReaders(t *testing.T) {
	g := gridtest.Parse(t, gridtest.Classroom)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := bfs.Search(g, g.Start(), g.Goal())
			if err == nil && search.Summarize(res).Cost != 6 {
				err = errors.New("unexpected cost")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
