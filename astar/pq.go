package astar

import "github.com/katalvlaran/gridsearch/gridgraph"

// nodeItem is one frontier entry. Several entries may exist for the same
// cell; all but the best are discarded as stale when popped.
type nodeItem struct {
	cell gridgraph.Cell
	f    int    // g + h
	seq  uint64 // insertion order
}

// nodePQ is a min-heap of *nodeItem ordered by f, then seq, so equal-f
// entries pop in the order they were pushed.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f ascending, breaking ties by seq ascending.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
