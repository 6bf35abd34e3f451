// Package geometry provides the planar primitives the course planner is built
// on: points, oriented poses, straight lines with nearest-point projection,
// and the polylines used to represent transition arcs.
package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Point is a planar location in world coordinates, metres. It is carried as
// an r3.Vector with Z held at zero, the same convention the rdk ecosystem
// uses for ground-plane positions (see spatialmath.NewPoseFromPoint calls
// against r3.Vector{Z: 0} throughout rdk's motion planning tests).
type Point = r3.Vector

// NewPoint constructs a planar Point from x, y.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Z: 0}
}

// Sub returns a-b.
func Sub(a, b Point) Point {
	return a.Sub(b)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// Dot returns the dot product of a and b.
func Dot(a, b Point) float64 {
	return a.Dot(b)
}

// Heading returns the angle of the vector from-to, in radians, per
// atan2(dy, dx).
func Heading(from, to Point) float64 {
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X)
}
