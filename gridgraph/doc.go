// Package gridgraph models the pathfinding world: a rectangular grid of
// terrain cells viewed as an implicit unweighted graph.
//
// What:
//
//   - Grid wraps a rows×cols terrain matrix with exactly one Start and one Goal.
//   - Terrain is one of Free, Obstacle (a pit), Start, Goal.
//   - Neighbors enumerates passable 4-connected moves in a fixed order.
//   - Reachable lists the passable region around a cell.
//   - MinPitCrossing computes how many pits separate Start from Goal (0-1 BFS).
//
// Why:
//
//   - Single source of truth for bounds and passability shared by the
//     BFS, DFS and A* packages.
//   - Immutable after construction, so one Grid can serve concurrent searches.
//
// Neighbor order:
//
//	Directions = [Down, Up, Right, Left]
//
//	The order is part of the contract. BFS visit order, DFS push order and
//	A* tie-breaking are all derived from it.
//
// Complexity:
//
//   - NewGrid / Parse:  O(R×C), Memory: O(R×C).
//   - Neighbors:        O(1) per cell.
//   - Reachable:        O(R×C×4), Memory: O(R×C).
//   - MinPitCrossing:   O(R×C×4), Memory: O(R×C).
//
// Errors (all wrap ErrMalformedGrid):
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart / ErrDuplicateStart: not exactly one Start.
//   - ErrMissingGoal / ErrDuplicateGoal: not exactly one Goal.
//   - ErrUnknownTerrain / ErrUnknownSymbol: invalid cell content.
package gridgraph
