// Package gridsearch finds routes across a rectangular grid world with one
// Start, one Goal and impassable pits, using breadth-first search,
// depth-first search and A*, and compares how much of the grid each one
// explores on the way.
//
// 🚀 What is gridsearch?
//
//	A small, deterministic toolkit that brings together:
//		• Grid primitives: parse, validate, 4-connected neighbors
//		• Traversals: BFS (shortest by moves), DFS (first found)
//		• Informed search: A* with a pluggable heuristic
//		• Generators: seeded random pit fields, the 4×4 classroom grid
//		• Output: text overlays, PNG heatmaps, XLSX workbooks, Prometheus textfiles
//
// ✨ Guarantees
//
//   - Every search returns the path and the exact expansion order
//   - Neighbors are always enumerated down, up, right, left
//   - Repeated calls on one grid with the same options return identical results
//   - Grids are read-only after construction and safe to share
//
// Under the hood, everything is organized into subpackages:
//
//	gridgraph/  - Cell, Terrain, Grid, Neighbors, connectivity helpers
//	search/     - Result, Options, path reconstruction, Summary
//	bfs/        - FIFO frontier
//	dfs/        - LIFO frontier, reversed push order
//	astar/      - min-heap frontier, Manhattan and Zero heuristics
//	generator/  - seeded grid generation
//	render/     - text overlay and gg heatmaps
//	compare/    - concurrent multi-strategy runs with tracing
//	report/     - console listing, tables, excelize workbooks
//	cmd/gridsearch - configurable driver
//
// Quick example:
//
//	g := generator.Classroom()
//	res, _ := astar.Search(g, g.Start(), g.Goal())
//	fmt.Println(search.Summarize(res)) // cost=6 expanded=13
//
// See each subpackage's doc.go for complexity notes and error contracts.
package gridsearch
