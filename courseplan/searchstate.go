package courseplan

import (
	"math"

	"go.viam.com/rdk/spatialmath"

	"github.com/jfrascon/gerona/course"
	"github.com/jfrascon/gerona/geometry"
	"github.com/jfrascon/gerona/planconfig"
)

// SearchState holds all the mutable state for a single findPath call (spec
// section 3). It owns every Node exclusively; nothing here outlives the
// call.
type SearchState struct {
	graph *course.Graph
	cfg   costConfig

	startSegment *course.Segment
	endSegment   *course.Segment
	startPt      geometry.Point
	endPt        geometry.Point

	startAppendix []spatialmath.Pose
	endAppendix   []spatialmath.Pose // stored reversed, per spec section 3

	nodes   []*Node // the arena; index i is the Node with arena index i
	byTrans map[*course.Transition][2]*Node

	bestPath []geometry.Pose
	minCost  float64
}

func newCostConfig(cfg planconfig.Config) costConfig {
	return costConfig{
		backwardPenaltyFactor: cfg.Course.Penalty.Backwards,
		turnPenalty:           cfg.Course.Penalty.Turn,
		turningStraight:       cfg.Course.Turning.Straight,
	}
}

// newSearchState builds a fresh SearchState for one findPath call and
// populates its node arena (spec 4.3.1's init_nodes).
func newSearchState(graph *course.Graph, cfg planconfig.Config, startSegment, endSegment *course.Segment, startPt, endPt geometry.Point, startAppendix, endAppendix []spatialmath.Pose) *SearchState {
	s := &SearchState{
		graph:         graph,
		cfg:           newCostConfig(cfg),
		startSegment:  startSegment,
		endSegment:    endSegment,
		startPt:       startPt,
		endPt:         endPt,
		startAppendix: startAppendix,
		endAppendix:   endAppendix,
		byTrans:       make(map[*course.Transition][2]*Node),
		minCost:       math.Inf(1),
	}
	s.initNodes()
	return s
}

// initNodes enumerates every transition of every segment twice, once as a
// forward node and once as a backward node (spec 4.3.1).
func (s *SearchState) initNodes() {
	for _, seg := range s.graph.Segments() {
		for _, t := range seg.AllTransitions() {
			if _, seen := s.byTrans[t]; seen {
				continue
			}
			fwd := newNode(len(s.nodes), t, true)
			s.nodes = append(s.nodes, fwd)
			bwd := newNode(len(s.nodes), t, false)
			s.nodes = append(s.nodes, bwd)
			s.byTrans[t] = [2]*Node{fwd, bwd}
		}
	}
}

// nodeFor returns the node for transition t traversed in the given
// direction.
func (s *SearchState) nodeFor(t *course.Transition, curveForward bool) *Node {
	pair := s.byTrans[t]
	if curveForward {
		return pair[0]
	}
	return pair[1]
}

// outgoingNodes returns the nodes reachable by leaving seg: the forward node
// of every transition in seg's forward list, then the backward node of
// every transition in its backward list. Which list a transition came from
// fixes the traversal direction, per the data model's curve_forward
// definition — it is not a free choice at the call site.
func (s *SearchState) outgoingNodes(seg *course.Segment) []*Node {
	out := make([]*Node, 0, len(seg.ForwardTransitions())+len(seg.BackwardTransitions()))
	for _, t := range seg.ForwardTransitions() {
		out = append(out, s.nodeFor(t, true))
	}
	for _, t := range seg.BackwardTransitions() {
		out = append(out, s.nodeFor(t, false))
	}
	return out
}
