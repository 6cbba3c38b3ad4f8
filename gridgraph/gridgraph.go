// Package gridgraph treats a rectangular terrain grid as an implicit,
// unweighted, 4-connected graph. It supports:
//
//   - Validated construction from a terrain matrix or a symbol map
//   - Bounds and terrain queries
//   - Lazy neighbor enumeration in a fixed direction order
//   - Reachability and minimum pit-crossing analysis
//
// Obstacle cells are impassable; Free, Start and Goal cells are passable.
package gridgraph

import (
	"fmt"
	"iter"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular terrain matrix.
// It deep-copies the input to ensure immutability.
// Returns an error wrapping ErrMalformedGrid when the matrix is empty or
// ragged, holds an unknown Terrain value, or does not contain exactly one
// Start and one Goal.
// Complexity: O(R×C) time and memory.
func NewGrid(terrain [][]Terrain) (*Grid, error) {
	if len(terrain) == 0 || len(terrain[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(terrain), len(terrain[0])
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Terrain, 0, rows*cols),
		start: NoCell,
		goal:  NoCell,
	}
	for r, row := range terrain {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, t := range row {
			if err := g.place(Cell{Row: r, Col: c}, t); err != nil {
				return nil, err
			}
		}
	}
	if g.start == NoCell {
		return nil, ErrMissingStart
	}
	if g.goal == NoCell {
		return nil, ErrMissingGoal
	}

	return g, nil
}

// Parse builds a Grid from rows of symbols: '.' free, 'P' obstacle,
// 'A' start, 'G' goal. Same validation rules as NewGrid.
func Parse(rows []string) (*Grid, error) {
	terrain := make([][]Terrain, len(rows))
	for r, line := range rows {
		symbols := []rune(line)
		terrain[r] = make([]Terrain, len(symbols))
		for c, s := range symbols {
			t, ok := terrainFromSymbol(s)
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownSymbol, s, r, c)
			}
			terrain[r][c] = t
		}
	}

	return NewGrid(terrain)
}

// MustParse is like Parse but panics on error. Intended for tests and
// fixed fixtures.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// place appends t for cell c and records Start/Goal positions.
func (g *Grid) place(c Cell, t Terrain) error {
	switch t {
	case Free, Obstacle:
	case Start:
		if g.start != NoCell {
			return fmt.Errorf("%w: %v and %v", ErrDuplicateStart, g.start, c)
		}
		g.start = c
	case Goal:
		if g.goal != NoCell {
			return fmt.Errorf("%w: %v and %v", ErrDuplicateGoal, g.goal, c)
		}
		g.goal = c
	default:
		return fmt.Errorf("%w %d at %v", ErrUnknownTerrain, uint8(t), c)
	}
	g.cells = append(g.cells, t)

	return nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Start returns the unique Start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the unique Goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Terrain returns the terrain at c. Out-of-bounds cells report Obstacle.
func (g *Grid) Terrain(c Cell) Terrain {
	if !g.InBounds(c) {
		return Obstacle
	}
	return g.cells[g.index(c)]
}

// Passable reports whether c is in bounds and not an Obstacle.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != Obstacle
}

// Neighbors lazily yields the passable cells adjacent to c in
// Directions order (down, up, right, left). At most four cells are
// yielded; out-of-bounds and Obstacle cells are skipped.
// Complexity: O(1) per call.
func (g *Grid) Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range Directions {
			n := c.Add(d)
			if !g.Passable(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Len returns the number of cells, R×C.
func (g *Grid) Len() int { return g.rows * g.cols }

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// String renders the grid in Parse's symbol alphabet, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.cells[r*g.cols+c].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
