package courseplan

import (
	"testing"

	"go.viam.com/test"

	"github.com/jfrascon/gerona/course"
	"github.com/jfrascon/gerona/geometry"
	"github.com/jfrascon/gerona/planconfig"
)

func twoSegmentGraph() (s1, s2 *course.Segment, t *course.Transition) {
	s1 = course.NewSegment(geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(5, 0)))
	s2 = course.NewSegment(geometry.NewLine(geometry.NewPoint(5, 1), geometry.NewPoint(10, 1)))
	path := geometry.NewPolyline([]geometry.Point{
		geometry.NewPoint(5, 0),
		geometry.NewPoint(5, 0.5),
		geometry.NewPoint(5, 1),
	})
	t = course.NewTransition(s1, s2, path)
	s1.AddForwardTransition(t)
	return s1, s2, t
}

func TestSearchTwoSegmentForward(t *testing.T) {
	s1, s2, _ := twoSegmentGraph()
	graph := course.NewGraph([]*course.Segment{s1, s2})
	cfg := planconfig.Default()

	state := newSearchState(graph, cfg, s1, s2, geometry.NewPoint(1, 0), geometry.NewPoint(9, 1), nil, nil)
	path := state.run()

	test.That(t, path, test.ShouldNotBeNil)
	test.That(t, state.minCost, test.ShouldAlmostEqual, 9.0)
	test.That(t, len(path), test.ShouldEqual, 4)
	test.That(t, path[0].Point.X, test.ShouldAlmostEqual, 1.0)
	test.That(t, path[0].Point.Y, test.ShouldAlmostEqual, 0.0)
	test.That(t, path[len(path)-1].Point.X, test.ShouldAlmostEqual, 9.0)
	test.That(t, path[len(path)-1].Point.Y, test.ShouldAlmostEqual, 1.0)
	test.That(t, path[1].Point.Y, test.ShouldAlmostEqual, 0.5)
	test.That(t, path[2].Point.Y, test.ShouldAlmostEqual, 1.0)
}

func TestSearchBackwardPenalty(t *testing.T) {
	// Both segments' Lines run high-x to low-x, so the same physical start
	// (1,0), curve, and end (9,1) points are all traversed backward relative
	// to each segment's own Start->End direction, and the curve itself is
	// traversed backward to match — no direction-change penalty applies
	// (spec §8 scenario 3), only the backward-motion penalty, charged three
	// times: the start stretch, the curve, and the end stretch.
	s1 := course.NewSegment(geometry.NewLine(geometry.NewPoint(5, 0), geometry.NewPoint(0, 0)))
	s2 := course.NewSegment(geometry.NewLine(geometry.NewPoint(10, 1), geometry.NewPoint(5, 1)))
	reversedPath := geometry.NewPolyline([]geometry.Point{
		geometry.NewPoint(5, 1),
		geometry.NewPoint(5, 0.5),
		geometry.NewPoint(5, 0),
	})
	tBack := course.NewTransition(s2, s1, reversedPath)
	s1.AddBackwardTransition(tBack)

	graph := course.NewGraph([]*course.Segment{s1, s2})
	cfg := planconfig.Default()

	state := newSearchState(graph, cfg, s1, s2, geometry.NewPoint(1, 0), geometry.NewPoint(9, 1), nil, nil)
	path := state.run()

	test.That(t, path, test.ShouldNotBeNil)
	wantCost := 2*cfg.Course.Penalty.Backwards*4.0 + cfg.Course.Penalty.Backwards*tBack.ArcLength()
	test.That(t, state.minCost, test.ShouldAlmostEqual, wantCost)
}

func TestSearchInfeasible(t *testing.T) {
	s1 := course.NewSegment(geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(5, 0)))
	s2 := course.NewSegment(geometry.NewLine(geometry.NewPoint(20, 20), geometry.NewPoint(25, 20)))
	graph := course.NewGraph([]*course.Segment{s1, s2})
	cfg := planconfig.Default()

	state := newSearchState(graph, cfg, s1, s2, geometry.NewPoint(1, 0), geometry.NewPoint(21, 20), nil, nil)
	path := state.run()

	test.That(t, path, test.ShouldBeNil)
}

func TestSameSegmentShortcut(t *testing.T) {
	seg := course.NewSegment(geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(10, 0)))
	middle := sameSegmentShortcut(seg, geometry.NewPoint(2, 0), geometry.NewPoint(7, 0))

	test.That(t, len(middle), test.ShouldEqual, 2)
	test.That(t, middle[0].Point.X, test.ShouldAlmostEqual, 2.0)
	test.That(t, middle[1].Point.X, test.ShouldAlmostEqual, 7.0)
	test.That(t, middle[0].Heading, test.ShouldAlmostEqual, 0.0)
}
