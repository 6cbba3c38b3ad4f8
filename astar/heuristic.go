package astar

import (
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Heuristic estimates the number of moves from a cell to the goal.
// It must never overestimate for Search to return shortest routes.
type Heuristic func(from, goal gridgraph.Cell) int

// Manhattan is |Δrow| + |Δcol|: admissible and consistent on a
// 4-connected grid with unit step costs.
func Manhattan(from, goal gridgraph.Cell) int {
	return gridgraph.Manhattan(from, goal)
}

// Zero always returns 0, which turns A* into uniform-cost search.
func Zero(gridgraph.Cell, gridgraph.Cell) int { return 0 }

// WithHeuristic replaces the default Manhattan estimate. A nil h is ignored.
// BFS and DFS accept and ignore this option.
func WithHeuristic(h Heuristic) search.Option {
	return func(o *search.Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
