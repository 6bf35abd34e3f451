package course

import (
	"testing"

	"go.viam.com/test"

	"github.com/jfrascon/gerona/geometry"
)

func TestFindClosestSegment(t *testing.T) {
	s1 := NewSegment(geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(10, 0)))
	s2 := NewSegment(geometry.NewLine(geometry.NewPoint(0, 5), geometry.NewPoint(10, 5)))
	g := NewGraph([]*Segment{s1, s2})

	seg, ok := g.FindClosestSegment(geometry.NewPose(geometry.NewPoint(3, 0.1), 0), DefaultAngularTolerance, DefaultDistanceTolerance)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, seg, test.ShouldEqual, s1)

	_, ok = g.FindClosestSegment(geometry.NewPose(geometry.NewPoint(3, 3), 0), DefaultAngularTolerance, DefaultDistanceTolerance)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestSegmentTransitionLists(t *testing.T) {
	s1 := NewSegment(geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(5, 0)))
	s2 := NewSegment(geometry.NewLine(geometry.NewPoint(5, 1), geometry.NewPoint(10, 1)))
	tr := NewTransition(s1, s2, geometry.NewPolyline([]geometry.Point{
		geometry.NewPoint(5, 0), geometry.NewPoint(5, 0.5), geometry.NewPoint(5, 1),
	}))
	s1.AddForwardTransition(tr)

	test.That(t, len(s1.ForwardTransitions()), test.ShouldEqual, 1)
	test.That(t, s1.ForwardTransitions()[0], test.ShouldEqual, tr)
	test.That(t, tr.ArcLength(), test.ShouldAlmostEqual, 1.0)
}
