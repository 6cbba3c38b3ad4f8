// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning a fewest-moves route from start to goal and the order in which
// cells were expanded.
//
// What
//
//   - FIFO frontier seeded with the start cell.
//   - Parent map seeded with {start: NoCell}; a neighbor is recorded the
//     first time it is discovered and never again (first discovery wins).
//   - Each popped cell is appended to Result.Expanded.
//   - The search stops the moment the goal is popped; the remaining
//     frontier is not drained.
//   - Exhausting the frontier yields Result.Path == nil with err == nil.
//
// Why
//
//   - FIFO order expands cells in non-decreasing distance from the start,
//     so the first time the goal is popped its path has the fewest moves.
//
// Determinism
//
//	Neighbors are enqueued in gridgraph.Directions order (down, up, right,
//	left), so the expansion log is fully reproducible.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)   (each cell enqueued and expanded at most once)
//   - Memory: O(N)   (queue, parent map, expansion log)
//
// Usage
//
//	res, err := bfs.Search(g, g.Start(), g.Goal())
//	if err != nil {
//		// ErrNilGrid, ErrInvalidCell, ctx.Err(), or an OnExpand error
//	}
//	if !res.Found() {
//		// no route; res.Expanded still lists what was explored
//	}
//
// Options (from package search)
//
//   - WithContext(ctx):  check ctx.Done() once per pop.
//   - WithOnExpand(fn):  hook after each pop; returning error aborts.
package bfs
