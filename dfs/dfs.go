package dfs

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid    *gridgraph.Grid  // underlying grid, read-only
	opts    search.Options   // traversal options
	goal    gridgraph.Cell   // stop cell
	stack   []gridgraph.Cell // LIFO frontier
	parents search.Parents   // discovery links, also the "pushed" set
	nbrs    []gridgraph.Cell // scratch buffer for one cell's neighbors
	res     *search.Result   // result collector
}

// Search performs depth-first search on g from start to goal.
// Returns ErrNilGrid or ErrInvalidCell for invalid input; the partial
// Result together with ctx.Err() or a wrapped OnExpand error when aborted;
// a Result with nil Path and nil error when goal is unreachable.
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	// 1. Validate input
	if err := search.Validate(g, start, goal); err != nil {
		return nil, err
	}

	// 2. Initialize walker with capacity hints
	n := g.Len()
	w := &dfsWalker{
		grid:    g,
		opts:    search.Apply(opts...),
		goal:    goal,
		stack:   make([]gridgraph.Cell, 0, n),
		parents: search.NewParents(start, n),
		nbrs:    make([]gridgraph.Cell, 0, len(gridgraph.Directions)),
		res: &search.Result{
			Expanded: make([]gridgraph.Cell, 0, n),
		},
	}

	// 3. Seed the stack and traverse
	w.stack = append(w.stack, start)

	return w.res, w.traverse()
}

// traverse pops the stack until the goal is reached, the stack empties,
// the context is cancelled, or the hook fails.
func (w *dfsWalker) traverse() error {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		if err := w.opts.Canceled(); err != nil {
			return err
		}

		// 2. Pop and record
		top := len(w.stack) - 1
		current := w.stack[top]
		w.stack = w.stack[:top]
		w.res.Expanded = append(w.res.Expanded, current)
		if err := w.opts.OnExpand(current); err != nil {
			return fmt.Errorf("dfs: OnExpand at %v: %w", current, err)
		}

		// 3. Goal test
		if current == w.goal {
			w.res.Path, _ = search.Reconstruct(w.parents, w.goal)
			return nil
		}

		// 4. Push undiscovered neighbors
		w.push(current)
	}

	return nil
}

// push collects current's neighbors and pushes the undiscovered ones in
// reverse gridgraph.Directions order, so they pop down, up, right, left.
// The parent is recorded at push time: a cell enters the stack at most once.
func (w *dfsWalker) push(current gridgraph.Cell) {
	w.nbrs = w.nbrs[:0]
	for nbr := range w.grid.Neighbors(current) {
		w.nbrs = append(w.nbrs, nbr)
	}
	// reversal relies on Neighbors yielding in Directions order
	for i := len(w.nbrs) - 1; i >= 0; i-- {
		nbr := w.nbrs[i]
		if _, seen := w.parents[nbr]; seen {
			continue
		}
		w.parents[nbr] = current
		w.stack = append(w.stack, nbr)
	}
}
