package generator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/generator"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

func TestGenerate_Defaults(t *testing.T) {
	g, err := generator.NewSeeded(42).Generate(generator.Options{})
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultSize, g.Rows())
	assert.Equal(t, generator.DefaultSize, g.Cols())
	assert.Equal(t, gridgraph.Cell{Row: 19, Col: 0}, g.Start())
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 19}, g.Goal())
}

func TestGenerate_Rectangular(t *testing.T) {
	g, err := generator.NewSeeded(5).Generate(generator.Options{Rows: 3, Cols: 7, PitProbability: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 7, g.Cols())
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 0}, g.Start())
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 6}, g.Goal())
}

func TestGenerate_SameSeedSameGrid(t *testing.T) {
	opts := generator.Options{Rows: 15, Cols: 15, PitProbability: 0.3}
	a, err := generator.NewSeeded(7).Generate(opts)
	require.NoError(t, err)
	b, err := generator.NewSeeded(7).Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := generator.NewSeeded(8).Generate(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerate_ZeroSeedIsFixed(t *testing.T) {
	a, err := generator.NewSeeded(0).Generate(generator.Options{Rows: 10, Cols: 10})
	require.NoError(t, err)
	b, err := generator.New(nil).Generate(generator.Options{Rows: 10, Cols: 10})
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestGenerate_Probabilities(t *testing.T) {
	empty, err := generator.NewSeeded(1).Generate(generator.Options{Rows: 12, Cols: 12, NoPits: true})
	require.NoError(t, err)
	assert.Equal(t, 0, countPits(empty))

	full, err := generator.NewSeeded(1).Generate(generator.Options{Rows: 12, Cols: 12, PitProbability: 1})
	require.NoError(t, err)
	assert.Equal(t, 12*12-2, countPits(full))

	// 40k cells at p=0.25: the observed share stays well within ±0.02.
	big, err := generator.NewSeeded(3).Generate(generator.Options{Rows: 200, Cols: 200, PitProbability: 0.25})
	require.NoError(t, err)
	share := float64(countPits(big)) / float64(200*200-2)
	assert.InDelta(t, 0.25, share, 0.02)
}

func TestGenerate_EnsurePath(t *testing.T) {
	gen := generator.NewSeeded(11)
	for i := 0; i < 20; i++ {
		g, err := gen.Generate(generator.Options{Rows: 10, Cols: 10, PitProbability: 0.45, EnsurePath: true})
		require.NoError(t, err)
		require.True(t, g.Connected(), "grid %d not connected:\n%s", i, g)
	}
}

func TestGenerate_BadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts generator.Options
	}{
		{"negative rows", generator.Options{Rows: -1, Cols: 3}},
		{"negative cols", generator.Options{Rows: 3, Cols: -4}},
		{"single cell", generator.Options{Rows: 1, Cols: 1}},
		{"probability above one", generator.Options{PitProbability: 1.5}},
		{"negative probability", generator.Options{PitProbability: -0.1}},
		{"NaN probability", generator.Options{PitProbability: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := generator.NewSeeded(1).Generate(tt.opts)
			require.ErrorIs(t, err, generator.ErrBadOptions)
			assert.Nil(t, g)
		})
	}
}

func TestDerive_Independent(t *testing.T) {
	opts := generator.Options{Rows: 8, Cols: 8, PitProbability: 0.3}
	parentA, parentB := generator.NewSeeded(99), generator.NewSeeded(99)

	a0, err := parentA.Derive(0).Generate(opts)
	require.NoError(t, err)
	b0, err := parentB.Derive(0).Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, a0.String(), b0.String(), "same parent state and stream must match")

	a1, err := parentA.Derive(1).Generate(opts)
	require.NoError(t, err)
	assert.NotEqual(t, a0.String(), a1.String())
}

func TestClassroom(t *testing.T) {
	g := generator.Classroom()
	assert.Equal(t, ".P.G\n..P.\n....\nA...\n", g.String())
	assert.Equal(t, gridgraph.Cell{Row: 3, Col: 0}, g.Start())
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 3}, g.Goal())
}

func countPits(g *gridgraph.Grid) int {
	n := 0
	for i := 0; i < g.Len(); i++ {
		if g.Terrain(g.Coordinate(i)) == gridgraph.Obstacle {
			n++
		}
	}
	return n
}
