// Package courseplan implements the cost-minimising graph search over the
// course's segment/transition network and the trajectory reconstruction
// that stitches segment stretches, transition arcs, and turning maneuvers
// into a dense pose sequence (spec sections 4.3 and 4.4).
package courseplan

import (
	"math"

	"github.com/jfrascon/gerona/course"
)

// Node is one directed traversal of a Transition: forward (source->target)
// or backward (target->source). Nodes are the vertices of the search space;
// SearchState looks them up by transition pointer (spec section 3's
// transition identity). Each Node also carries a stable index into its
// owning SearchState's arena, used as the heap's tie-break key; its
// position in the heap, for Fix, is kept separately in heapIndex.
type Node struct {
	index int // stable arena index, spec section 9's "arena index"

	Transition   *course.Transition
	CurveForward bool
	NextSegment  *course.Segment

	cost float64
	prev *Node
	next *Node

	heapIndex int // position in the open-set heap, -1 when not queued
}

// newNode builds a Node for transition t traversed in the given direction,
// with cost initialised to +inf and prev/next unset, per spec 4.3.1.
func newNode(index int, t *course.Transition, curveForward bool) *Node {
	next := t.Source
	if curveForward {
		next = t.Target
	}
	return &Node{
		index:        index,
		Transition:   t,
		CurveForward: curveForward,
		NextSegment:  next,
		cost:         math.Inf(1),
		heapIndex:    -1,
	}
}

// Cost returns the node's best-known cumulative cost from the search start.
func (n *Node) Cost() float64 {
	return n.cost
}

// Prev returns the predecessor node on the best path chain, or nil.
func (n *Node) Prev() *Node {
	return n.prev
}

// Next returns the successor node on the best path chain, or nil.
func (n *Node) Next() *Node {
	return n.next
}

