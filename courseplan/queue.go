package courseplan

import "container/heap"

// nodeQueue is a container/heap.Interface over *Node, ordered by ascending
// Cost with a stable arena-index tie-break (spec section 9, Open Question
// (b)). Each Node's heapIndex is kept in sync so the relaxed-Dijkstra main
// loop (spec 4.3.2) can Fix an already-queued node in place when a cheaper
// predecessor is found, rather than needing to search the heap for it — the
// same shape used by the soniakeys/graph and gonum A* implementations this
// search is grounded on.
type nodeQueue []*Node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].index < q[j].index
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIndex = i
	q[j].heapIndex = j
}

func (q *nodeQueue) Push(x interface{}) {
	n := x.(*Node)
	n.heapIndex = len(*q)
	*q = append(*q, n)
}

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.heapIndex = -1
	*q = old[:n-1]
	return node
}

// openSet wraps nodeQueue with the insert/update/extract-min operations the
// main loop actually needs, so callers never touch container/heap directly.
type openSet struct {
	q nodeQueue
}

func newOpenSet() *openSet {
	os := &openSet{}
	heap.Init(&os.q)
	return os
}

func (os *openSet) empty() bool {
	return len(os.q) == 0
}

// insert pushes n if it isn't already queued, or fixes its position if it
// is. This is the "remove if present, then insert" operation spec 4.3.2
// describes, expressed as an idempotent upsert since heap.Fix subsumes
// removal+reinsertion for an already-present element.
func (os *openSet) insert(n *Node) {
	if n.heapIndex < 0 {
		heap.Push(&os.q, n)
		return
	}
	heap.Fix(&os.q, n.heapIndex)
}

// extractMin removes and returns the minimum-cost node.
func (os *openSet) extractMin() *Node {
	return heap.Pop(&os.q).(*Node)
}
