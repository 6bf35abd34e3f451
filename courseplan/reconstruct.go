package courseplan

import (
	"math"

	"github.com/jfrascon/gerona/geometry"
)

// machineEpsilon is the effective-segment-length threshold used to decide
// whether a hop's straight stretch is long enough to emit on its own (spec
// section 9's numeric tolerances).
const machineEpsilon = 2.220446049250313e-16

// reconstruct turns a head-to-tail node chain into a dense pose sequence
// (spec 4.4). chain[0] is the first transition taken off start_segment;
// chain[len-1].next_segment == end_segment.
func reconstruct(s *SearchState, chain []*Node) []geometry.Pose {
	out := make([]geometry.Pose, 0, len(chain)*4+2)

	startTangent := geometry.Heading(s.startSegment.Line.Start(), s.startSegment.Line.End())
	out = append(out, geometry.NewPose(s.startPt, startTangent))

	segmentForward := s.isStartSegmentForward(chain[0])

	for _, u := range chain {
		startOnNext := s.findStartPointOnNextSegment(u)
		endOnNext := s.findEndPointOnNextSegment(u)

		if geometry.Dist(startOnNext, endOnNext) < machineEpsilon {
			out = insertCurveSegment(out, u)
			continue
		}

		nextForward := s.isNextSegmentForward(u)

		if nextForward == segmentForward {
			if u.CurveForward == nextForward {
				out = insertCurveSegment(out, u)
			} else {
				target := u.Transition.Path.Front()
				if !u.CurveForward {
					target = u.Transition.Path.Back()
				}
				out = extendWithStraightTurningSegment(out, target, s.cfg.turningStraight)
				out = insertCurveSegment(out, u)
				if u.CurveForward {
					out = extendAlongTarget(out, u, s.cfg.turningStraight)
				} else {
					out = extendAlongSource(out, u, s.cfg.turningStraight)
				}
			}
		} else {
			switch {
			case segmentForward && u.CurveForward:
				out = insertCurveSegment(out, u)
				out = extendAlongTarget(out, u, s.cfg.turningStraight)
			case segmentForward && !u.CurveForward:
				out = extendAlongTarget(out, u, s.cfg.turningStraight)
				out = insertCurveSegment(out, u)
			case !segmentForward && u.CurveForward:
				out = extendAlongSource(out, u, s.cfg.turningStraight)
				out = insertCurveSegment(out, u)
			default:
				out = insertCurveSegment(out, u)
				out = extendAlongSource(out, u, s.cfg.turningStraight)
			}
		}

		segmentForward = nextForward
	}

	endTangent := geometry.Heading(s.endSegment.Line.Start(), s.endSegment.Line.End())
	out = append(out, geometry.NewPose(s.endPt, endTangent))

	return out
}

// insertCurveSegment emits u's transition arc: forward nodes walk path[1:]
// with the tangent to the previous sample, backward nodes walk the path in
// reverse with the tangent to the next sample (spec 4.4's arc emission).
func insertCurveSegment(out []geometry.Pose, u *Node) []geometry.Pose {
	path := u.Transition.Path
	if u.CurveForward {
		for j := 1; j < path.Len(); j++ {
			heading := geometry.Heading(path.At(j-1), path.At(j))
			out = append(out, geometry.NewPose(path.At(j), heading))
		}
		return out
	}
	for j := path.Len() - 2; j >= 0; j-- {
		heading := geometry.Heading(path.At(j+1), path.At(j))
		out = append(out, geometry.NewPose(path.At(j), heading))
	}
	return out
}

// extendAlongTarget offsets from the transition path's last point
// (Path.Back(), the arc's exit for a forward node) along the target
// segment's own tangent direction, by stub metres (spec 4.4's
// extend-along-target).
func extendAlongTarget(out []geometry.Pose, u *Node, stub float64) []geometry.Pose {
	target := u.Transition.Target
	tangent := geometry.Heading(target.Line.Start(), target.Line.End())
	pt := offsetAlong(u.Transition.Path.Back(), tangent, stub)
	return append(out, geometry.NewPose(pt, tangent))
}

// extendAlongSource offsets from the transition path's first point
// (Path.Front(), the arc's entry for a forward node) along the reversed
// source segment tangent, by stub metres (spec 4.4's extend-along-source).
func extendAlongSource(out []geometry.Pose, u *Node, stub float64) []geometry.Pose {
	source := u.Transition.Source
	tangent := geometry.Heading(source.Line.Start(), source.Line.End()) + math.Pi
	pt := offsetAlong(u.Transition.Path.Front(), tangent, stub)
	return append(out, geometry.NewPose(pt, tangent))
}

// extendWithStraightTurningSegment emits the short pivot stub of spec 4.4's
// extend_with_straight_turning_segment: the point stub metres beyond target,
// along the heading from the last emitted pose to target, oriented along
// that heading.
func extendWithStraightTurningSegment(out []geometry.Pose, target geometry.Point, stub float64) []geometry.Pose {
	prev := out[len(out)-1].Point
	heading := geometry.Heading(prev, target)
	pt := offsetAlong(target, heading, stub)
	return append(out, geometry.NewPose(pt, heading))
}

// offsetAlong returns from shifted by dist metres along the direction
// heading (radians).
func offsetAlong(from geometry.Point, heading, dist float64) geometry.Point {
	return from.Add(geometry.NewPoint(math.Cos(heading), math.Sin(heading)).Mul(dist))
}
