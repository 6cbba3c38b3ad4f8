// Package dfs implements depth-first search from a start cell to a goal
// cell on a gridgraph.Grid.
//
// What:
//
//   - LIFO stack seeded with the start cell; parents seeded with
//     {start: NoCell}.
//   - Each popped cell is appended to Result.Expanded; the search stops as
//     soon as the goal is popped and reconstructs the route.
//   - Neighbors are collected, then pushed in reverse enumeration order so
//     they pop in down, up, right, left order.
//   - A neighbor's parent is recorded when it is pushed, so every cell is
//     pushed and expanded at most once.
//
// Why:
//
//   - Memory-light exploration that commits to one branch at a time.
//   - Useful as a baseline: the route it returns is valid but not
//     necessarily shortest, which makes the cost of greediness visible
//     next to BFS and A*.
//
// Complexity (N = rows×cols):
//
//   - Time:   O(N)
//   - Memory: O(N) for the stack, parent map and expansion log.
//
// Options (package search):
//
//   - WithContext(ctx)   cancellation, checked once per pop.
//   - WithOnExpand(fn)   per-pop hook; an error aborts traversal.
//
// Errors:
//
//   - search.ErrNilGrid       grid pointer is nil
//   - search.ErrInvalidCell   start or goal out of bounds
//   - context.Canceled        DFS canceled via context
//   - hook errors             wrapped as "dfs: OnExpand at (r,c): ..."
//
// An unreachable goal is not an error: Result.Path is nil.
package dfs
