package gridgraph

// Reachable returns every passable cell reachable from `from` under
// 4-connectivity, in BFS discovery order starting with `from` itself.
// An impassable or out-of-bounds `from` yields nil.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for the seen flags and output.
func (g *Grid) Reachable(from Cell) []Cell {
	if !g.Passable(from) {
		return nil
	}
	seen := make([]bool, g.Len())
	seen[g.index(from)] = true
	queue := []Cell{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for v := range g.Neighbors(u) {
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// Connected reports whether Start and Goal lie in the same passable region.
func (g *Grid) Connected() bool {
	for _, c := range g.Reachable(g.start) {
		if c == g.goal {
			return true
		}
	}
	return false
}
