package astar

// openItem is one open-set entry. fScore and gScore are captured at push
// time, so ordering never reads a live score map.
type openItem struct {
	idx int     // city index
	f   float64 // gScore + heuristic at push time
	g   float64 // gScore at push time
	seq int     // push sequence, breaks fScore ties first-in-first-out
}

// openSet is a min-heap of openItem ordered by (f, seq) ascending.
// Superseded entries stay in the heap and are discarded on pop
// (lazy decrease-key).
type openSet []openItem

// Len returns the number of items in the heap.
func (pq openSet) Len() int { return len(pq) }

// Less orders by fScore, then by push sequence.
func (pq openSet) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *openSet) Push(x any) { *pq = append(*pq, x.(openItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
