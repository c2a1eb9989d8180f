package astar

// frontierItem is one heap entry: a state with the g-cost it was pushed with
// and its priority f = g + h.
type frontierItem[S comparable] struct {
	state S
	g     float64
	f     float64
	seq   uint64 // insertion order, last tie-break for deterministic output
}

// frontierPQ is a min-heap of frontier entries ordered by f ascending, then by
// g descending (deeper first on equal f), then by insertion order.
// Lazy decrease-key: an improved state is pushed again and the superseded
// entry is skipped when popped.
type frontierPQ[S comparable] []frontierItem[S]

// Len returns the number of items in the heap.
func (pq frontierPQ[S]) Len() int { return len(pq) }

// Less orders by (f asc, g desc, seq asc).
func (pq frontierPQ[S]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontierPQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a frontierItem[S].
func (pq *frontierPQ[S]) Push(x any) { *pq = append(*pq, x.(frontierItem[S])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontierPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	var zero frontierItem[S]
	old[n-1] = zero // drop the reference to the state
	*pq = old[:n-1]

	return item
}
