package geometry

import (
	"go.viam.com/rdk/spatialmath"
)

// Pose is a planar pose: a position plus a heading (radians), the vehicle's
// orientation about the ground-plane normal.
type Pose struct {
	Point   Point
	Heading float64
}

// NewPose constructs a Pose at p with the given heading.
func NewPose(p Point, heading float64) Pose {
	return Pose{Point: p, Heading: heading}
}

// ToSpatialMath converts a planar Pose to a full spatialmath.Pose, the type
// used at every package boundary that exchanges world-frame poses elsewhere
// in the rdk ecosystem. Heading becomes an OrientationVector about +Z, the
// same representation a ground-plane base reports its yaw with.
func (p Pose) ToSpatialMath() spatialmath.Pose {
	return spatialmath.NewPose(p.Point, &spatialmath.OrientationVector{OZ: 1, Theta: p.Heading})
}

// FromSpatialMath recovers a planar Pose from a spatialmath.Pose, discarding
// any out-of-plane component. It is the inverse of ToSpatialMath for poses
// that were constructed on the ground plane.
func FromSpatialMath(p spatialmath.Pose) Pose {
	ov := p.Orientation().OrientationVectorRadians()
	return Pose{Point: NewPoint(p.Point().X, p.Point().Y), Heading: ov.Theta}
}
