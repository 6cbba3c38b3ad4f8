package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Defaults used when Options fields are left zero.
const (
	DefaultSize           = 20
	DefaultPitProbability = 0.1
)

// ErrBadOptions is returned for dimensions or probabilities that cannot
// produce a valid grid.
var ErrBadOptions = errors.New("generator: invalid options")

// Options describes one random grid.
type Options struct {
	// Rows and Cols default to DefaultSize when zero.
	Rows, Cols int

	// PitProbability is the chance that a cell other than Start or Goal
	// becomes an Obstacle. Zero selects DefaultPitProbability; use NoPits
	// for an obstacle-free grid.
	PitProbability float64

	// NoPits forces PitProbability to 0.
	NoPits bool

	// EnsurePath clears the fewest pits needed to connect Start and Goal
	// after the random fill.
	EnsurePath bool
}

// normalize applies defaults and validates o.
func (o Options) normalize() (Options, error) {
	if o.Rows == 0 {
		o.Rows = DefaultSize
	}
	if o.Cols == 0 {
		o.Cols = DefaultSize
	}
	switch {
	case o.NoPits:
		o.PitProbability = 0
	case o.PitProbability == 0:
		o.PitProbability = DefaultPitProbability
	}
	if o.Rows < 1 || o.Cols < 1 {
		return o, fmt.Errorf("%w: size %dx%d", ErrBadOptions, o.Rows, o.Cols)
	}
	if o.Rows*o.Cols < 2 {
		return o, fmt.Errorf("%w: 1x1 grid cannot hold distinct start and goal", ErrBadOptions)
	}
	if o.PitProbability < 0 || o.PitProbability > 1 || math.IsNaN(o.PitProbability) {
		return o, fmt.Errorf("%w: pit probability %v not in [0,1]", ErrBadOptions, o.PitProbability)
	}
	return o, nil
}

// Generator draws random grids from an explicit random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New wraps rng. A nil rng falls back to the default seed.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		return NewSeeded(0)
	}
	return &Generator{rng: rng}
}

// NewSeeded returns a Generator seeded with seed (0 ⇒ fixed default).
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rngFromSeed(seed)}
}

// Derive returns an independent Generator for the given stream id. The
// child depends only on this generator's state and the id, so deriving
// streams 0..k in order is reproducible.
func (gen *Generator) Derive(stream uint64) *Generator {
	return NewSeeded(deriveSeed(gen.rng.Int63(), stream))
}

// Generate builds a Rows×Cols grid with Start at the bottom-left corner
// (Rows-1, 0) and Goal at the top-right corner (0, Cols-1). Every other
// cell becomes an Obstacle with probability PitProbability, drawn in
// row-major order.
//
// Complexity: O(R×C), plus O(R×C) for EnsurePath.
func (gen *Generator) Generate(opts Options) (*gridgraph.Grid, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}

	start := gridgraph.Cell{Row: o.Rows - 1, Col: 0}
	goal := gridgraph.Cell{Row: 0, Col: o.Cols - 1}
	terrain := make([][]gridgraph.Terrain, o.Rows)
	for r := range terrain {
		terrain[r] = make([]gridgraph.Terrain, o.Cols)
		for c := range terrain[r] {
			cell := gridgraph.Cell{Row: r, Col: c}
			switch {
			case cell == start:
				terrain[r][c] = gridgraph.Start
			case cell == goal:
				terrain[r][c] = gridgraph.Goal
			case gen.rng.Float64() < o.PitProbability:
				terrain[r][c] = gridgraph.Obstacle
			}
		}
	}

	g, err := gridgraph.NewGrid(terrain)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if !o.EnsurePath || g.Connected() {
		return g, nil
	}

	route, _ := g.MinPitCrossing()
	for _, c := range route {
		if terrain[c.Row][c.Col] == gridgraph.Obstacle {
			terrain[c.Row][c.Col] = gridgraph.Free
		}
	}
	return gridgraph.NewGrid(terrain)
}

// Classroom returns the fixed 4×4 teaching grid:
//
//	. P . G
//	. . P .
//	. . . .
//	A . . .
func Classroom() *gridgraph.Grid {
	return gridgraph.MustParse(
		".P.G",
		"..P.",
		"....",
		"A...",
	)
}
