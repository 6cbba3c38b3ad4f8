package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Search computes a shortest route from start to goal on g, guided by the
// configured heuristic (Manhattan unless WithHeuristic says otherwise).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (search.ErrNilGrid).
//  2. start and goal must be in bounds (search.ErrInvalidCell).
//
// Returns the partial Result with ctx.Err() when cancelled, or with a
// wrapped error when the OnExpand hook fails. An unreachable goal yields a
// Result with nil Path and a nil error.
//
// Complexity:
//
//   - Time:  O(N log N), N = rows×cols
//   - Space: O(N)
func Search(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...search.Option) (*search.Result, error) {
	// 1) Validate inputs
	if err := search.Validate(g, start, goal); err != nil {
		return nil, err
	}

	// 2) Build options and pick the heuristic
	cfg := search.Apply(opts...)
	h := Heuristic(cfg.Heuristic)
	if h == nil {
		h = Manhattan
	}

	// 3) Prepare per-call state
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		h:       h,
		goal:    goal,
		gScore:  make(map[gridgraph.Cell]int, n),
		parents: search.NewParents(start, n),
		closed:  make(map[gridgraph.Cell]bool, n),
		pq:      make(nodePQ, 0, n),
		res: &search.Result{
			Expanded: make([]gridgraph.Cell, 0, n),
		},
	}

	// 4) Seed and run
	r.init(start)

	return r.res, r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g       *gridgraph.Grid        // read-only terrain
	options search.Options         // context, hooks, heuristic
	h       Heuristic              // resolved heuristic
	goal    gridgraph.Cell         // stop cell
	gScore  map[gridgraph.Cell]int // best known moves from start
	parents search.Parents         // predecessor on the best known route
	closed  map[gridgraph.Cell]bool
	pq      nodePQ // lazy min-heap on (f, seq)
	seq     uint64 // insertion counter for FIFO ties
	res     *search.Result
}

// init sets g(start)=0 and pushes start with f=0.
func (r *runner) init(start gridgraph.Cell) {
	r.gScore[start] = 0
	heap.Init(&r.pq)
	r.push(start, 0)
}

// push enqueues c with priority f and the next sequence number.
func (r *runner) push(c gridgraph.Cell, f int) {
	heap.Push(&r.pq, &nodeItem{cell: c, f: f, seq: r.seq})
	r.seq++
}

// process pops the lowest-f entry until the goal is expanded or the heap
// drains. Entries for already-expanded cells are stale and skipped without
// being logged.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Cancellation check
		if err := r.options.Canceled(); err != nil {
			return err
		}

		// 2) Pop, skip stale
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell
		if r.closed[u] {
			continue
		}
		r.closed[u] = true

		// 3) Record the expansion
		r.res.Expanded = append(r.res.Expanded, u)
		if err := r.options.OnExpand(u); err != nil {
			return fmt.Errorf("astar: OnExpand at %v: %w", u, err)
		}

		// 4) Goal test
		if u == r.goal {
			r.res.Path, _ = search.Reconstruct(r.parents, r.goal)
			return nil
		}

		// 5) Relax neighbors
		r.relax(u)
	}

	return nil
}

// relax offers u's neighbors a route through u. A neighbor is updated and
// re-pushed only when the tentative g-score is strictly better.
func (r *runner) relax(u gridgraph.Cell) {
	tentative := r.gScore[u] + 1
	for v := range r.g.Neighbors(u) {
		if best, seen := r.gScore[v]; seen && tentative >= best {
			continue
		}
		r.gScore[v] = tentative
		r.parents[v] = u
		r.push(v, tentative+r.h(v, r.goal))
	}
}
