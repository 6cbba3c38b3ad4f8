// Package astar implements A* search on a gridgraph.Grid.
//
// A* orders its frontier by f = g + h, where g counts the moves taken from
// the start and h estimates the moves still needed. With an admissible h it
// returns a route as short as the one BFS finds, usually after expanding
// fewer cells.
//
// Complexity:
//
//   - Time:  O(N log N) with N = rows×cols
//   - Each cell is expanded at most once.
//   - Each strict g improvement pushes one heap entry (at most 4 per expansion).
//   - Space: O(N) for g-scores, parents, the closed set and the heap.
//
// Notes on implementation choices:
//
//   - The frontier is a container/heap min-heap with lazy decrease-key:
//     an improved neighbor is pushed again and the older entry is ignored
//     when it surfaces, because its cell is already closed.
//   - Ties on f are broken by insertion order (FIFO), which makes the
//     expansion log reproducible.
//   - The start entry is seeded with f = 0.
//   - The heuristic defaults to Manhattan distance; WithHeuristic swaps it.
//
// Errors:
//
//   - search.ErrNilGrid, search.ErrInvalidCell for invalid inputs.
//   - ctx.Err() when the context passed through search.WithContext is done.
//   - hook errors, wrapped as "astar: OnExpand at (r,c): ...".
package astar
