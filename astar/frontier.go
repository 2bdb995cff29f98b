package astar

// frontierItem is a cell index waiting in the open set with its F-cost.
type frontierItem struct {
	idx int     // row-major cell index
	f   float64 // G + H at insertion or last decrease
}

// frontier is a min-heap of cells ordered by F ascending, implementing
// container/heap.Interface. pos maps a cell index to its heap position, or -1
// when the cell is not queued, so membership tests and decrease-key are O(1)
// lookups instead of queue scans.
type frontier struct {
	items []frontierItem
	pos   []int
}

// newFrontier returns an empty frontier able to index n cells.
func newFrontier(n int) *frontier {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &frontier{pos: pos}
}

// Len returns the number of queued cells.
func (q *frontier) Len() int { return len(q.items) }

// Less orders by F only; equal-F order is left to the heap.
func (q *frontier) Less(i, j int) bool { return q.items[i].f < q.items[j].f }

// Swap swaps two entries and keeps the position index in step.
func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i].idx] = i
	q.pos[q.items[j].idx] = j
}

// Push appends x, which must be a frontierItem. Called by heap.Push.
func (q *frontier) Push(x interface{}) {
	it := x.(frontierItem)
	q.pos[it.idx] = len(q.items)
	q.items = append(q.items, it)
}

// Pop removes the last entry. Called by heap.Pop.
func (q *frontier) Pop() interface{} {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	q.pos[it.idx] = -1

	return it
}

// contains reports whether cell idx is queued.
func (q *frontier) contains(idx int) bool { return q.pos[idx] >= 0 }
