package halfedge

import "container/heap"

// edgeHeapItem is one entry in the collapse-cost priority queue: the edge
// index it represents, and its position in the backing slice so that
// decrease-key style updates can locate it without a linear scan.
type edgeHeapItem struct {
	edge int
	pos  int
}

// edgeHeap is a binary min-heap over edge collapse cost, ordered through
// the owning Mesh so that heap.Fix can be invoked after mutating an item's
// cost in place. This mirrors the indirection-table approach spec.md
// §4.4/§9 calls out as one acceptable mergeable-heap implementation, and
// is grounded in container/heap usage the way
// katalvlaran-lvlath/dijkstra/dijkstra.go uses it for its own lazy
// decrease-key priority queue (there: stale entries re-pushed and skipped
// on pop; here: a single persistent handle is updated in place instead).
type edgeHeap struct {
	items []*edgeHeapItem
	mesh  *Mesh
}

func (h *edgeHeap) Len() int { return len(h.items) }

func (h *edgeHeap) Less(i, j int) bool {
	return h.mesh.Edges[h.items[i].edge].Cost < h.mesh.Edges[h.items[j].edge].Cost
}

func (h *edgeHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].pos = i
	h.items[j].pos = j
}

func (h *edgeHeap) Push(x any) {
	item := x.(*edgeHeapItem)
	item.pos = len(h.items)
	h.items = append(h.items, item)
}

func (h *edgeHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.pos = -1
	h.items = old[:n-1]
	return item
}

// push inserts edge e into the heap and records its handle on the Edge
// itself so update can find it again in O(1).
func (h *edgeHeap) push(e int) {
	item := &edgeHeapItem{edge: e}
	h.mesh.Edges[e].handle = item
	heap.Push(h, item)
}

// top returns the edge index with the smallest current cost.
func (h *edgeHeap) top() int {
	return h.items[0].edge
}

// pop removes and returns the edge index with the smallest current cost.
func (h *edgeHeap) pop() int {
	return heap.Pop(h).(*edgeHeapItem).edge
}

// update re-heapifies after the cost of edge e's handle has changed.
func (h *edgeHeap) update(e int) {
	heap.Fix(h, h.mesh.Edges[e].handle.pos)
}
