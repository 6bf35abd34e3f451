package courseplan

import (
	"github.com/jfrascon/gerona/course"
	"github.com/jfrascon/gerona/geometry"
)

// costConfig is the subset of planconfig.Config the cost functions need,
// copied out so this file has no dependency on the config package's JSON
// shape.
type costConfig struct {
	backwardPenaltyFactor float64
	turnPenalty           float64
	turningStraight       float64
}

// shortDisplacementThreshold is spec 4.3.6's "|Δ| < 0.1 m" diagnostic
// threshold for ill-defined directionality.
const shortDisplacementThreshold = 0.1

// curveCost is the cost of traversing n's transition arc (spec 4.3.3):
// arc_length if forward, backwardPenaltyFactor*arc_length if backward.
func (cfg costConfig) curveCost(n *Node) float64 {
	al := n.Transition.ArcLength()
	if n.CurveForward {
		return al
	}
	return cfg.backwardPenaltyFactor * al
}

// isSegmentForward implements spec 4.3.6's
// is_segment_forward(segment, from, to) = (end-start)·(to-from) >= 0, a
// non-strict comparison: the zero dot-product tie resolves as forward.
// Directionality is ill-defined below shortDisplacementThreshold, but a
// definite answer is still required, so callers get the dot-product sign
// regardless.
func isSegmentForward(seg *course.Segment, from, to geometry.Point) bool {
	disp := to.Sub(from)
	dir := seg.Line.Direction()
	return dir.Dot(disp) >= 0
}

// entryPointOf returns where the vehicle enters transition t when traversed
// with the given direction: t.Path.Front() if forward, t.Path.Back() if
// backward (spec 4.3.1's "entry point on start_segment", generalised to any
// transition).
func entryPointOf(t *course.Transition, curveForward bool) geometry.Point {
	if curveForward {
		return t.Path.Front()
	}
	return t.Path.Back()
}

// exitPointOf returns where the arc deposits the vehicle: the opposite end
// from entryPointOf.
func exitPointOf(t *course.Transition, curveForward bool) geometry.Point {
	if curveForward {
		return t.Path.Back()
	}
	return t.Path.Front()
}

// findStartPointOnNextSegment is spec 4.3.5's
// find_start_point_on_next_segment(u): start_pt if u.next_segment is the
// search's start_segment, else wherever u's arc deposits the vehicle.
func (s *SearchState) findStartPointOnNextSegment(u *Node) geometry.Point {
	if u.NextSegment == s.startSegment {
		return s.startPt
	}
	return exitPointOf(u.Transition, u.CurveForward)
}

// findEndPointOnSegment is spec 4.3.5's find_end_point_on_segment(node, t):
// where the vehicle must arrive to enter arc t, given node's curve
// direction (which determines, via node.NextSegment, which end of t sits on
// that segment).
func findEndPointOnSegment(node *Node, t *course.Transition) geometry.Point {
	if node.CurveForward {
		return t.Path.Front()
	}
	return t.Path.Back()
}

// findEndPointOnNextSegment is spec 4.3.5's
// find_end_point_on_next_segment(u).
func (s *SearchState) findEndPointOnNextSegment(u *Node) geometry.Point {
	if u.NextSegment == s.endSegment {
		return s.endPt
	}
	if u.next == nil {
		if u.CurveForward {
			return u.NextSegment.Line.End()
		}
		return u.NextSegment.Line.Start()
	}
	return findEndPointOnSegment(u.next, u.next.Transition)
}

// isStartSegmentForward is spec 4.3.6's is_start_segment_forward(n).
func (s *SearchState) isStartSegmentForward(n *Node) bool {
	return isSegmentForward(s.startSegment, s.startPt, findEndPointOnSegment(n, n.Transition))
}

// isPreviousSegmentForward is spec 4.3.6's is_previous_segment_forward(n).
func (s *SearchState) isPreviousSegmentForward(n *Node) bool {
	if n.prev != nil {
		return s.isNextSegmentForward(n.prev)
	}
	return s.isStartSegmentForward(n)
}

// isNextSegmentForward is spec 4.3.6's is_next_segment_forward(n).
func (s *SearchState) isNextSegmentForward(n *Node) bool {
	return isSegmentForward(n.NextSegment, s.findStartPointOnNextSegment(n), s.findEndPointOnNextSegment(n))
}

// straightCost computes spec 4.3.3's straight-line cost along u.NextSegment
// from s to e, including the direction-change term. prevForward is the
// effective direction of the preceding segment traversal (spec 4.3.3's
// "direction of the preceding segment traversal").
func (cfg costConfig) straightCost(segment *course.Segment, from, to geometry.Point, prevForward, curveForward bool) float64 {
	segmentForward := isSegmentForward(segment, from, to)

	dist := geometry.Dist(from, to)
	base := dist
	if !segmentForward {
		base = cfg.backwardPenaltyFactor * dist
	}

	turningCost := cfg.turningStraight + cfg.turnPenalty
	switch {
	case prevForward != segmentForward:
		// Single turn.
		return base + turningCost
	case curveForward != segmentForward:
		// Double turn: same effective direction as before, but the arc is
		// traversed counter to it, forcing two pivots.
		return base + 2*turningCost
	default:
		return base
	}
}
