package appendix

import (
	"context"
	"testing"

	"go.viam.com/rdk/logging"
	"go.viam.com/test"

	"github.com/jfrascon/gerona/geometry"
)

func TestOrderedResolverPicksFirstNonEmpty(t *testing.T) {
	anchor := geometry.NewPose(geometry.NewPoint(5, 0), 0)
	start := geometry.NewPose(geometry.NewPoint(0, 0), 0)
	r := NewOrderedResolver(logging.NewTestLogger(t), NewStraightLineResolver(anchor, 3))

	poses, err := r.Resolve(context.Background(), nil, start.ToSpatialMath(), RoleStart)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(poses), test.ShouldEqual, 3)

	last := geometry.FromSpatialMath(poses[len(poses)-1])
	test.That(t, last.Point.X, test.ShouldAlmostEqual, 5.0)
}

func TestOrderedResolverReversesEndRole(t *testing.T) {
	anchor := geometry.NewPose(geometry.NewPoint(5, 0), 0)
	start := geometry.NewPose(geometry.NewPoint(0, 0), 0)
	r := NewOrderedResolver(logging.NewTestLogger(t), NewStraightLineResolver(anchor, 4))

	poses, err := r.Resolve(context.Background(), nil, start.ToSpatialMath(), RoleEnd)
	test.That(t, err, test.ShouldBeNil)
	first := geometry.FromSpatialMath(poses[0])
	test.That(t, first.Point.X, test.ShouldAlmostEqual, 5.0)
}
