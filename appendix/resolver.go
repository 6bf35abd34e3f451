// Package appendix models the short, footprint-aware grid maneuvers that
// bridge a free-form start/end pose to its nearest course-segment anchor
// (spec section 4's "appendix", produced in the original system by
// AStarPatsy* variants). The footprint-aware grid search itself is out of
// scope; this package states the interface the planner consumes and
// supplies a default, non-footprint-aware implementation so the planner is
// exercisable without a real grid search wired in.
package appendix

import (
	"context"

	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/spatialmath"

	"github.com/jfrascon/gerona/occupancy"
)

// Role identifies which end of the path an appendix bridges.
type Role string

// The two roles named in spec section 6.
const (
	RoleStart Role = "start"
	RoleEnd   Role = "end"
)

// Resolver is a single footprint-aware grid-search strategy: given a map and
// a free pose, it returns an ordered pose sequence from pose to a pose lying
// on (or very near) a course segment. An empty, nil-error result means "no
// path found by this strategy."
type Resolver interface {
	Resolve(ctx context.Context, grid *occupancy.Grid, pose spatialmath.Pose, role Role) ([]spatialmath.Pose, error)
}

// OrderedResolver tries a list of Resolvers in order and returns the first
// non-empty result, matching spec section 6's "two strategies are tried in
// order: forward-only then forward-with-turning." For RoleEnd, the winning
// result is reversed before being returned, so that concatenation with the
// reconstructed middle reads in traversal order (spec section 3,
// "end_appendix is stored reversed").
type OrderedResolver struct {
	logger     logging.Logger
	strategies []Resolver
}

// NewOrderedResolver builds an OrderedResolver that tries strategies in the
// given order.
func NewOrderedResolver(logger logging.Logger, strategies ...Resolver) *OrderedResolver {
	return &OrderedResolver{logger: logger, strategies: strategies}
}

// Resolve runs each strategy in order, returning the first non-empty result.
func (r *OrderedResolver) Resolve(
	ctx context.Context,
	grid *occupancy.Grid,
	pose spatialmath.Pose,
	role Role,
) ([]spatialmath.Pose, error) {
	for i, strat := range r.strategies {
		poses, err := strat.Resolve(ctx, grid, pose, role)
		if err != nil {
			r.logger.CDebugf(ctx, "appendix strategy %d failed for role %s: %v", i, role, err)
			continue
		}
		if len(poses) == 0 {
			continue
		}
		if role == RoleEnd {
			poses = reversed(poses)
		}
		return poses, nil
	}
	return nil, nil
}

func reversed(poses []spatialmath.Pose) []spatialmath.Pose {
	out := make([]spatialmath.Pose, len(poses))
	for i, p := range poses {
		out[len(poses)-1-i] = p
	}
	return out
}
