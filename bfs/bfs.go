// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning a shortest (fewest-moves) route and the expansion order.
//
// BFS expands cells in non-decreasing distance from the start and stops
// as soon as the goal is popped.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// walker encapsulates mutable BFS state for a single call.
type walker struct {
	grid    *gridgraph.Grid
	opts    search.Options
	goal    gridgraph.Cell
	queue   []gridgraph.Cell
	parents search.Parents
	res     *search.Result
}

// Search runs breadth-first search on g from start to goal.
// Returns ErrNilGrid or ErrInvalidCell for invalid input, ctx.Err() when the
// context is cancelled, or a wrapped OnExpand hook error. In every non-input
// error case the partial Result (expansion log so far) is returned too.
// When the goal is unreachable the Result has a nil Path and err == nil.
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	if err := search.Validate(g, start, goal); err != nil {
		return nil, err
	}

	n := g.Len()
	w := &walker{
		grid:    g,
		opts:    search.Apply(opts...),
		goal:    goal,
		queue:   make([]gridgraph.Cell, 0, n),
		parents: search.NewParents(start, n),
		res: &search.Result{
			Expanded: make([]gridgraph.Cell, 0, n),
		},
	}

	// Seed queue with start
	w.queue = append(w.queue, start)
	// Main loop
	return w.res, w.loop()
}

// loop processes the queue until the goal is popped, the queue empties,
// an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per pop)
		if err := w.opts.Canceled(); err != nil {
			return err
		}

		current := w.dequeue()
		if err := w.visit(current); err != nil {
			return err
		}
		if current == w.goal {
			w.res.Path, _ = search.Reconstruct(w.parents, w.goal)
			return nil
		}
		w.enqueueNeighbors(current)
	}
	return nil
}

// dequeue pops the head of the FIFO.
func (w *walker) dequeue() gridgraph.Cell {
	c := w.queue[0]
	w.queue = w.queue[1:]
	return c
}

// visit records the cell in the expansion log and calls OnExpand.
func (w *walker) visit(c gridgraph.Cell) error {
	w.res.Expanded = append(w.res.Expanded, c)
	if err := w.opts.OnExpand(c); err != nil {
		return fmt.Errorf("bfs: OnExpand at %v: %w", c, err)
	}
	return nil
}

// enqueueNeighbors appends every undiscovered neighbor to the tail,
// recording current as its parent. First discovery wins.
func (w *walker) enqueueNeighbors(current gridgraph.Cell) {
	for nbr := range w.grid.Neighbors(current) {
		if _, seen := w.parents[nbr]; seen {
			continue
		}
		w.parents[nbr] = current
		w.queue = append(w.queue, nbr)
	}
}
