// Package gridgraph defines core types, terrain markers and movement
// directions for the gridgraph subpackage of github.com/katalvlaran/gridsearch.
package gridgraph

import "fmt"

// Terrain marks what occupies a single grid cell.
type Terrain uint8

const (
	// Free is an empty, passable cell.
	Free Terrain = iota
	// Obstacle is an impassable cell (a pit).
	Obstacle
	// Start is the agent's starting cell. Exactly one per grid.
	Start
	// Goal is the target cell. Exactly one per grid.
	Goal
)

// Symbols used by Parse and (*Grid).String.
const (
	SymbolFree     = '.'
	SymbolObstacle = 'P'
	SymbolStart    = 'A'
	SymbolGoal     = 'G'
)

// Symbol returns the single-rune form of t, or '?' for an unknown value.
func (t Terrain) Symbol() rune {
	switch t {
	case Free:
		return SymbolFree
	case Obstacle:
		return SymbolObstacle
	case Start:
		return SymbolStart
	case Goal:
		return SymbolGoal
	default:
		return '?'
	}
}

// String returns a human-readable name for t.
func (t Terrain) String() string {
	switch t {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
}

// terrainFromSymbol is the inverse of Terrain.Symbol.
func terrainFromSymbol(r rune) (Terrain, bool) {
	switch r {
	case SymbolFree:
		return Free, true
	case SymbolObstacle:
		return Obstacle, true
	case SymbolStart:
		return Start, true
	case SymbolGoal:
		return Goal, true
	default:
		return 0, false
	}
}

// Cell is a (row, column) coordinate. Cells compare and hash by value,
// so they can be used directly as map keys.
type Cell struct {
	Row, Col int
}

// NoCell is the "none" marker: the parent of the start cell in a parent map.
var NoCell = Cell{Row: -1, Col: -1}

// String formats c as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Cell) Add(d Direction) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is a unit move on the grid.
type Direction struct {
	DRow, DCol int
}

// Unit moves under 4-connectivity.
var (
	Down  = Direction{DRow: 1, DCol: 0}
	Up    = Direction{DRow: -1, DCol: 0}
	Right = Direction{DRow: 0, DCol: 1}
	Left  = Direction{DRow: 0, DCol: -1}
)

// Directions is the fixed enumeration order of (*Grid).Neighbors:
// down, up, right, left. DFS and A* tie-breaking depend on this order.
var Directions = [4]Direction{Down, Up, Right, Left}

// Grid is a rectangular terrain matrix with exactly one Start and one Goal.
// It is immutable once built and safe for concurrent readers.
type Grid struct {
	rows, cols int
	cells      []Terrain // row-major: cells[r*cols + c]
	start      Cell
	goal       Cell
}
