package search

// heap is an addressable binary min-heap over one direction's open nodes.
// Every node stores its slot index, so a relaxation can decrease a key in
// place instead of pushing duplicates and skipping stale entries later.
// It does not implement container/heap to avoid the interface overhead.
//
// Ordering is total: ties on f break on (x, y, z), which makes pop order,
// and therefore node-visit statistics, deterministic across runs.
type heap struct {
	dir   Dir
	nodes []*BiNode
}

func newHeap(dir Dir) *heap {
	return &heap{
		dir:   dir,
		nodes: make([]*BiNode, 0, 1024),
	}
}

// Len returns the number of open nodes.
func (h *heap) Len() int {
	return len(h.nodes)
}

// Push inserts a node and records its slot index.
func (h *heap) Push(n *BiNode) {
	h.nodes = append(h.nodes, n)
	n.states[h.dir].heapIdx = len(h.nodes) - 1
	h.siftUp(len(h.nodes) - 1)
}

// Pop removes and returns the minimum node, or nil when empty.
func (h *heap) Pop() *BiNode {
	if len(h.nodes) == 0 {
		return nil
	}
	top := h.nodes[0]
	last := len(h.nodes) - 1
	h.nodes[0] = h.nodes[last]
	h.nodes[0].states[h.dir].heapIdx = 0
	h.nodes = h.nodes[:last]
	if len(h.nodes) > 0 {
		h.siftDown(0)
	}
	top.states[h.dir].heapIdx = -1
	return top
}

// DecreaseKey restores the heap invariant after n's f was lowered in place.
// n must currently be on the heap.
func (h *heap) DecreaseKey(n *BiNode) {
	h.siftUp(n.states[h.dir].heapIdx)
}

// Contains reports whether n currently sits on this heap.
func (h *heap) Contains(n *BiNode) bool {
	return n.states[h.dir].heapIdx >= 0
}

func (h *heap) less(i, j int) bool {
	a, b := h.nodes[i], h.nodes[j]
	fa, fb := a.states[h.dir].f, b.states[h.dir].f
	if fa != fb {
		return fa < fb
	}
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func (h *heap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].states[h.dir].heapIdx = i
	h.nodes[j].states[h.dir].heapIdx = j
}

func (h *heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *heap) siftDown(i int) {
	n := len(h.nodes)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.less(right, left) {
			child = right
		}
		if !h.less(child, i) {
			break
		}
		h.swap(i, child)
		i = child
	}
}
