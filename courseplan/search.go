package courseplan

import "github.com/jfrascon/gerona/geometry"

// enqueueStartingNodes seeds the open set with every node reachable directly
// off start_segment, costed as the straight-segment stretch from start_pt to
// each node's entry point (spec 4.3.1).
func (s *SearchState) enqueueStartingNodes(open *openSet) {
	for _, n := range s.outgoingNodes(s.startSegment) {
		entry := entryPointOf(n.Transition, n.CurveForward)
		segForward := isSegmentForward(s.startSegment, s.startPt, entry)
		n.cost = s.cfg.straightCost(s.startSegment, s.startPt, entry, segForward, n.CurveForward)
		open.insert(n)
	}
}

// run executes the relaxed-Dijkstra main loop (spec 4.3.2) and returns the
// best reconstructed path found, or nil if the queue emptied without any
// node reaching end_segment.
func (s *SearchState) run() []geometry.Pose {
	open := newOpenSet()
	s.enqueueStartingNodes(open)

	for !open.empty() {
		u := open.extractMin()

		if u.NextSegment == s.endSegment {
			s.finalize(u)
			continue
		}

		for _, v := range s.outgoingNodes(u.NextSegment) {
			startOnNext := s.findStartPointOnNextSegment(u)
			endOnNext := findEndPointOnSegment(v, v.Transition)
			prevForward := s.isPreviousSegmentForward(u)

			newCost := u.cost + s.cfg.curveCost(u) +
				s.cfg.straightCost(u.NextSegment, startOnNext, endOnNext, prevForward, u.CurveForward)

			if newCost < v.cost {
				v.prev = u
				u.next = v
				v.cost = newCost
				open.insert(v)
			}
		}
	}

	return s.bestPath
}

// finalize implements candidate finalisation (spec 4.3.4): complete u's own
// curve and the final straight run into end_pt, and if that beats the
// current best, reconstruct and remember it. u is not expanded further.
func (s *SearchState) finalize(u *Node) {
	startOnNext := s.findStartPointOnNextSegment(u)
	prevForward := s.isPreviousSegmentForward(u)

	total := u.cost + s.cfg.curveCost(u) +
		s.cfg.straightCost(s.endSegment, startOnNext, s.endPt, prevForward, u.CurveForward)

	if total >= s.minCost {
		return
	}
	s.minCost = total

	chain := make([]*Node, 0, 8)
	for n := u; n != nil; n = n.prev {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	for i := 0; i < len(chain)-1; i++ {
		chain[i].next = chain[i+1]
	}
	if len(chain) > 0 {
		chain[len(chain)-1].next = nil
	}

	s.bestPath = reconstruct(s, chain)
}
