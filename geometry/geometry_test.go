package geometry

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestLineNearestPointTo(t *testing.T) {
	line := NewLine(NewPoint(0, 0), NewPoint(10, 0))
	nearest := line.NearestPointTo(NewPoint(4, 3))
	test.That(t, nearest.X, test.ShouldAlmostEqual, 4.0)
	test.That(t, nearest.Y, test.ShouldAlmostEqual, 0.0)
}

func TestLineDegenerate(t *testing.T) {
	line := NewLine(NewPoint(2, 2), NewPoint(2, 2))
	nearest := line.NearestPointTo(NewPoint(9, 9))
	test.That(t, nearest, test.ShouldResemble, NewPoint(2, 2))
}

func TestPolylineArcLength(t *testing.T) {
	pl := NewPolyline([]Point{NewPoint(0, 0), NewPoint(3, 4), NewPoint(3, 0)})
	test.That(t, pl.ArcLength(), test.ShouldAlmostEqual, 5.0+4.0)
	test.That(t, pl.Front(), test.ShouldResemble, NewPoint(0, 0))
	test.That(t, pl.Back(), test.ShouldResemble, NewPoint(3, 0))
}

func TestHeading(t *testing.T) {
	h := Heading(NewPoint(0, 0), NewPoint(1, 1))
	test.That(t, h, test.ShouldAlmostEqual, math.Pi/4)
}

func TestPoseSpatialMathRoundTrip(t *testing.T) {
	p := NewPose(NewPoint(3, 4), math.Pi/2)
	sp := p.ToSpatialMath()
	back := FromSpatialMath(sp)
	test.That(t, back.Point.X, test.ShouldAlmostEqual, 3.0)
	test.That(t, back.Point.Y, test.ShouldAlmostEqual, 4.0)
	test.That(t, back.Heading, test.ShouldAlmostEqual, math.Pi/2)
}
