package courseplan

import (
	"context"

	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/spatialmath"

	"github.com/jfrascon/gerona/appendix"
	"github.com/jfrascon/gerona/course"
	"github.com/jfrascon/gerona/geometry"
	"github.com/jfrascon/gerona/occupancy"
	"github.com/jfrascon/gerona/planconfig"
)

// The error kinds of spec section 7, in order of locality. Each one is
// surfaced to the caller as an empty path plus its sentinel (wrapped with
// the collaborator's error message when a collaborator returned one),
// after being logged at error severity.
var (
	ErrMapUnavailable      = errors.New("courseplan: map unavailable")
	ErrAppendixUnreachable = errors.New("courseplan: appendix unreachable")
	ErrNoClosestSegment    = errors.New("courseplan: no closest segment")
)

// Planner is the public entry point: one findPath call per Go call,
// single-threaded and blocking (spec section 5). A Planner is safe for
// concurrent FindPath calls — each call builds its own SearchState — but the
// collaborators it wraps must tolerate concurrent reads.
type Planner struct {
	logger      logging.Logger
	graph       *course.Graph
	mapProvider occupancy.Provider
	resolver    appendix.Resolver
	cfg         planconfig.Config
}

// NewPlanner builds a Planner over an already-constructed course graph, the
// map and appendix collaborators, and the scalar configuration table (spec
// section 6).
func NewPlanner(logger logging.Logger, graph *course.Graph, mapProvider occupancy.Provider, resolver appendix.Resolver, cfg planconfig.Config) *Planner {
	return &Planner{
		logger:      logger,
		graph:       graph,
		mapProvider: mapProvider,
		resolver:    resolver,
		cfg:         cfg,
	}
}

// FindPath plans from start to end in world coordinates (spec section 6's
// find_path). An empty result (with a non-nil error for the first three
// failure kinds of spec section 7) signals failure; a non-empty result is an
// ordered pose sequence. The fourth kind — search exhaustion without
// reaching end_segment — is treated as non-fatal: FindPath returns the
// concatenated appendices with a nil error, per the source's documented
// (if debatable) behaviour.
func (p *Planner) FindPath(ctx context.Context, start, end spatialmath.Pose) ([]spatialmath.Pose, error) {
	grid, err := p.mapProvider.Get(ctx)
	if err != nil {
		p.logger.CErrorf(ctx, "map unavailable: %v", err)
		return nil, errors.Wrap(ErrMapUnavailable, err.Error())
	}

	startAppendix, err := p.resolver.Resolve(ctx, grid, start, appendix.RoleStart)
	if err != nil {
		p.logger.CErrorf(ctx, "start appendix resolution failed: %v", err)
		return nil, errors.Wrap(ErrAppendixUnreachable, err.Error())
	}
	if len(startAppendix) == 0 {
		p.logger.CErrorf(ctx, "start appendix unreachable from %v", start)
		return nil, ErrAppendixUnreachable
	}

	endAppendix, err := p.resolver.Resolve(ctx, grid, end, appendix.RoleEnd)
	if err != nil {
		p.logger.CErrorf(ctx, "end appendix resolution failed: %v", err)
		return nil, errors.Wrap(ErrAppendixUnreachable, err.Error())
	}
	if len(endAppendix) == 0 {
		p.logger.CErrorf(ctx, "end appendix unreachable from %v", end)
		return nil, ErrAppendixUnreachable
	}

	startAnchor := geometry.FromSpatialMath(startAppendix[len(startAppendix)-1])
	endAnchor := geometry.FromSpatialMath(endAppendix[0])

	startSegment, ok := p.graph.FindClosestSegment(startAnchor, course.DefaultAngularTolerance, course.DefaultDistanceTolerance)
	if !ok {
		p.logger.CErrorf(ctx, "no closest segment to start anchor %v", startAnchor)
		return nil, ErrNoClosestSegment
	}
	endSegment, ok := p.graph.FindClosestSegment(endAnchor, course.DefaultAngularTolerance, course.DefaultDistanceTolerance)
	if !ok {
		p.logger.CErrorf(ctx, "no closest segment to end anchor %v", endAnchor)
		return nil, ErrNoClosestSegment
	}

	startPt := startSegment.Line.NearestPointTo(startAnchor.Point)
	endPt := endSegment.Line.NearestPointTo(endAnchor.Point)

	var middle []geometry.Pose
	if startSegment == endSegment {
		middle = sameSegmentShortcut(startSegment, startPt, endPt)
	} else {
		state := newSearchState(p.graph, p.cfg, startSegment, endSegment, startPt, endPt, startAppendix, endAppendix)
		middle = state.run()
		if middle == nil {
			p.logger.CWarnf(ctx, "no candidate path found from %v to %v", start, end)
		}
	}

	return concatenate(startAppendix, middle, endAppendix), nil
}

// sameSegmentShortcut implements spec 4.3.7: when both anchors lie on the
// same segment, the middle is just the two anchor poses, oriented along the
// segment's tangent.
func sameSegmentShortcut(segment *course.Segment, startPt, endPt geometry.Point) []geometry.Pose {
	tangent := geometry.Heading(segment.Line.Start(), segment.Line.End())
	return []geometry.Pose{
		geometry.NewPose(startPt, tangent),
		geometry.NewPose(endPt, tangent),
	}
}

// concatenate implements spec 4.5: start_appendix ⊕ middle ⊕ end_appendix.
func concatenate(startAppendix []spatialmath.Pose, middle []geometry.Pose, endAppendix []spatialmath.Pose) []spatialmath.Pose {
	out := make([]spatialmath.Pose, 0, len(startAppendix)+len(middle)+len(endAppendix))
	out = append(out, startAppendix...)
	for _, p := range middle {
		out = append(out, p.ToSpatialMath())
	}
	out = append(out, endAppendix...)
	return out
}
