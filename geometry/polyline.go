package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Polyline is a non-empty ordered sequence of planar points, used to carry
// the precomputed samples of a transition arc.
type Polyline struct {
	points []Point
}

// NewPolyline builds a Polyline from points. It panics if points is empty;
// transitions are never constructed with an empty path.
func NewPolyline(points []Point) Polyline {
	if len(points) == 0 {
		panic("geometry: polyline must not be empty")
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return Polyline{points: cp}
}

// Len returns the number of points in the polyline.
func (pl Polyline) Len() int {
	return len(pl.points)
}

// At returns the point at index i.
func (pl Polyline) At(i int) Point {
	return pl.points[i]
}

// Front returns the first point.
func (pl Polyline) Front() Point {
	return pl.points[0]
}

// Back returns the last point.
func (pl Polyline) Back() Point {
	return pl.points[len(pl.points)-1]
}

// ArcLength returns the Euclidean sum of the polyline's consecutive segment
// lengths, using gonum's floats.Sum reduction over the per-edge distances
// rather than a hand-rolled accumulator.
func (pl Polyline) ArcLength() float64 {
	if len(pl.points) < 2 {
		return 0
	}
	lens := make([]float64, 0, len(pl.points)-1)
	for i := 1; i < len(pl.points); i++ {
		lens = append(lens, Dist(pl.points[i-1], pl.points[i]))
	}
	return floats.Sum(lens)
}

// String implements fmt.Stringer for debug logging of arc samples.
func (pl Polyline) String() string {
	return fmt.Sprintf("Polyline[%d pts, front=%v, back=%v]", pl.Len(), pl.Front(), pl.Back())
}
