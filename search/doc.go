// Package search holds what the three grid search strategies share:
// the Result contract, the Path Reconstructor, the Result Reporter and the
// functional options.
//
// What
//
//   - Result{Path, Expanded}: the route (nil when none) and the pop order.
//   - Parents + Reconstruct: parent links walked back from the goal and
//     reversed into Start→Goal order.
//   - Summarize: Cost = len(Path)-1 (0 without a path), Expansions = len(Expanded).
//   - Options: WithContext for cooperative cancellation, WithOnExpand for
//     a per-pop hook.
//
// Contract
//
//	Every strategy (bfs.Search, dfs.Search, astar.Search) validates its
//	inputs with Validate, seeds Parents with {start: NoCell}, logs each pop
//	in Expanded, stops as soon as the goal is popped, and returns a nil Path
//	(not an error) when the frontier is exhausted. The Expanded log is
//	returned even when no path exists or the search is cancelled.
//
// Errors
//
//   - ErrNilGrid       if the grid pointer is nil.
//   - ErrInvalidCell   if start or goal is out of bounds.
//   - ctx.Err()        if the context passed via WithContext is done.
//   - Wrapped OnExpand hook errors.
package search
