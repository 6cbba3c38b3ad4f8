package search

import "github.com/katalvlaran/gridsearch/gridgraph"

// Parents maps each discovered cell to the cell it was reached from.
// The start cell maps to gridgraph.NoCell.
type Parents map[gridgraph.Cell]gridgraph.Cell

// NewParents returns a parent map seeded with {start: NoCell}.
func NewParents(start gridgraph.Cell, sizeHint int) Parents {
	p := make(Parents, sizeHint)
	p[start] = gridgraph.NoCell
	return p
}

// Reconstruct walks parent links back from goal to the NoCell marker and
// returns the route in Start→Goal order.
// Returns (nil, false) when goal was never discovered, or when the links
// do not terminate within len(parents) steps.
// Start == Goal yields a single-element path.
// Complexity: O(L) where L is the path length.
func Reconstruct(parents Parents, goal gridgraph.Cell) ([]gridgraph.Cell, bool) {
	if _, ok := parents[goal]; !ok {
		return nil, false
	}
	// build reversed path
	path := make([]gridgraph.Cell, 0, 16)
	for cur := goal; cur != gridgraph.NoCell; {
		if len(path) >= len(parents) {
			return nil, false
		}
		path = append(path, cur)
		prev, ok := parents[cur]
		if !ok {
			return nil, false
		}
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
