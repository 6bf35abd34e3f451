package appendix

import (
	"context"

	"go.viam.com/rdk/spatialmath"

	"github.com/jfrascon/gerona/geometry"
	"github.com/jfrascon/gerona/occupancy"
)

// StraightLineResolver is a stand-in Resolver: it interpolates directly from
// pose to anchor with no footprint or collision check. It is not a
// replacement for the real footprint-aware grid search (out of scope here);
// it exists only so the planner can be exercised end-to-end against
// fixtures that don't wire in a real AStarPatsy-equivalent.
type StraightLineResolver struct {
	Anchor    geometry.Pose
	StepCount int
}

// NewStraightLineResolver builds a resolver that walks from the supplied
// pose straight to anchor in stepCount segments.
func NewStraightLineResolver(anchor geometry.Pose, stepCount int) *StraightLineResolver {
	if stepCount < 1 {
		stepCount = 1
	}
	return &StraightLineResolver{Anchor: anchor, StepCount: stepCount}
}

// Resolve linearly interpolates position and heading from pose to the
// configured anchor, ignoring grid and role entirely.
func (r *StraightLineResolver) Resolve(
	_ context.Context,
	_ *occupancy.Grid,
	pose spatialmath.Pose,
	_ Role,
) ([]spatialmath.Pose, error) {
	from := geometry.FromSpatialMath(pose)
	out := make([]spatialmath.Pose, 0, r.StepCount)
	for i := 1; i <= r.StepCount; i++ {
		frac := float64(i) / float64(r.StepCount)
		interp := geometry.Pose{
			Point:   from.Point.Add(r.Anchor.Point.Sub(from.Point).Mul(frac)),
			Heading: interpolateAngle(from.Heading, r.Anchor.Heading, frac),
		}
		out = append(out, interp.ToSpatialMath())
	}
	return out, nil
}

func interpolateAngle(a, b, frac float64) float64 {
	return a + frac*(b-a)
}
