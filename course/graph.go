package course

import (
	"math"

	"go.viam.com/rdk/spatialmath"

	"github.com/jfrascon/gerona/geometry"
)

// Generator is the external collaborator that builds the course network:
// segment/transition construction and course-wide nearest-segment lookup.
// Construction of the graph itself is out of scope for this package; Graph
// only consumes the result.
type Generator interface {
	// Segments returns every segment of the course network.
	Segments() []*Segment
	// FindClosestSegment returns the segment nearest pose, within the given
	// angular and distance tolerances, or ok==false if none qualifies.
	FindClosestSegment(pose spatialmath.Pose, angularTolerance, distanceTolerance float64) (seg *Segment, ok bool)
}

// Graph is the immutable network of segments and transitions read from a
// Generator. It is safe for concurrent read-only use by multiple planner
// calls.
type Graph struct {
	segments []*Segment
}

// NewGraph wraps an already-built slice of segments (the common case: the
// caller already ran the external CourseGenerator and has its output).
func NewGraph(segments []*Segment) *Graph {
	return &Graph{segments: segments}
}

// FromGenerator builds a Graph by pulling every segment from gen.
func FromGenerator(gen Generator) *Graph {
	return NewGraph(gen.Segments())
}

// Segments returns every segment of the network, in the order supplied at
// construction.
func (g *Graph) Segments() []*Segment {
	return g.segments
}

// DefaultAngularTolerance and DefaultDistanceTolerance match spec section 6's
// course_generator.find_closest_segment(pose, π/8, 0.5) call.
const (
	DefaultAngularTolerance  = math.Pi / 8
	DefaultDistanceTolerance = 0.5
)

// FindClosestSegment returns the segment whose line lies nearest pose,
// subject to angularTolerance (radians, between pose's heading and the
// segment's tangent in either direction, so a pose facing against the
// segment also qualifies) and distanceTolerance (metres, from pose to the
// segment's nearest point). ok is false if no segment qualifies.
func (g *Graph) FindClosestSegment(pose geometry.Pose, angularTolerance, distanceTolerance float64) (seg *Segment, ok bool) {
	bestDist := math.Inf(1)
	for _, s := range g.segments {
		nearest := s.Line.NearestPointTo(pose.Point)
		dist := geometry.Dist(pose.Point, nearest)
		if dist > distanceTolerance {
			continue
		}
		tangent := geometry.Heading(s.Line.Start(), s.Line.End())
		if angularDelta(tangent, pose.Heading) > angularTolerance &&
			angularDelta(tangent+math.Pi, pose.Heading) > angularTolerance {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			seg = s
		}
	}
	return seg, seg != nil
}

// angularDelta returns the absolute difference between two angles, wrapped
// into [0, π].
func angularDelta(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
