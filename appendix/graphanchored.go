package appendix

import (
	"context"

	"github.com/pkg/errors"
	"go.viam.com/rdk/spatialmath"

	"github.com/jfrascon/gerona/course"
	"github.com/jfrascon/gerona/geometry"
	"github.com/jfrascon/gerona/occupancy"
)

// ErrNoAnchor is returned when no segment lies within tolerance of the given
// pose, so no anchor can be chosen.
var ErrNoAnchor = errors.New("appendix: no segment within tolerance of pose")

// GraphAnchoredResolver is a StraightLineResolver that picks its anchor at
// resolve time, as the nearest point on the course segment closest to pose,
// rather than a fixed point baked in at construction. It is the Resolver
// the gerona-plan command wires into its Planner, which has no
// footprint-aware search available.
type GraphAnchoredResolver struct {
	graph             *course.Graph
	angularTolerance  float64
	distanceTolerance float64
	stepCount         int
}

// NewGraphAnchoredResolver builds a resolver over graph using the course
// package's default closest-segment tolerances.
func NewGraphAnchoredResolver(graph *course.Graph, stepCount int) *GraphAnchoredResolver {
	if stepCount < 1 {
		stepCount = 1
	}
	return &GraphAnchoredResolver{
		graph:             graph,
		angularTolerance:  course.DefaultAngularTolerance,
		distanceTolerance: course.DefaultDistanceTolerance,
		stepCount:         stepCount,
	}
}

// Resolve finds the segment nearest pose and straight-line-interpolates from
// pose to the orthogonal projection of pose onto that segment's line.
func (r *GraphAnchoredResolver) Resolve(
	ctx context.Context,
	grid *occupancy.Grid,
	pose spatialmath.Pose,
	role Role,
) ([]spatialmath.Pose, error) {
	from := geometry.FromSpatialMath(pose)

	seg, ok := r.graph.FindClosestSegment(from, r.angularTolerance, r.distanceTolerance)
	if !ok {
		return nil, ErrNoAnchor
	}

	anchorPt := seg.Line.NearestPointTo(from.Point)
	tangent := geometry.Heading(seg.Line.Start(), seg.Line.End())
	anchor := geometry.NewPose(anchorPt, tangent)

	straight := NewStraightLineResolver(anchor, r.stepCount)
	return straight.Resolve(ctx, grid, pose, role)
}
