package gridgraph

import (
	"container/list"
)

// MinPitCrossing finds a Start→Goal route that crosses the fewest Obstacle
// cells, treating pits as passable at cost 1 and every other cell at cost 0.
// It answers "how many pits would need filling to connect Start and Goal";
// a cost of 0 means the grid is already solvable.
// Returns the route (Start and Goal inclusive) and the number of pits on it.
//
// Behavior:
//  1. 0–1 BFS from Start over all in-bounds cells:
//     • Moving into a non-obstacle cell → cost 0 (push front)
//     • Moving into an obstacle cell    → cost 1 (push back)
//  2. Stop when Goal is popped.
//  3. Reconstruct the route via predecessors.
//
// Goal is always reached because every in-bounds cell is enterable.
//
// Complexity: O(R·C·4) time, O(R·C) memory for distance and predecessors.
func (g *Grid) MinPitCrossing() (route []Cell, pits int) {
	n := g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	src := g.index(g.start)
	dist[src] = 0
	dq.PushFront(src)
	target := g.index(g.goal)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			break
		}
		uc := g.Coordinate(u)
		for _, d := range Directions {
			vc := uc.Add(d)
			if !g.InBounds(vc) {
				continue
			}
			v := g.index(vc)
			step := 0
			if g.cells[v] == Obstacle {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := target; at >= 0; at = prev[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, dist[target]
}
