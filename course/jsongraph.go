package course

import (
	"encoding/json"
	"fmt"

	"github.com/jfrascon/gerona/geometry"
)

// jsonPoint mirrors a planar point in the on-disk course description.
type jsonPoint [2]float64

func (p jsonPoint) toPoint() geometry.Point {
	return geometry.NewPoint(p[0], p[1])
}

type jsonSegment struct {
	Start jsonPoint `json:"start"`
	End   jsonPoint `json:"end"`
}

// jsonTransition describes one precomputed connector. List selects which of
// owner's two transition lists it is appended to; owner need not equal
// source — a transition registered on owner's backward list with
// source != owner is exactly how a course generator expresses "leaving
// owner in reverse lands you on source", per course.Segment's data model.
type jsonTransition struct {
	Owner  int         `json:"owner"`
	Source int         `json:"source"`
	Target int         `json:"target"`
	List   string      `json:"list"`
	Path   []jsonPoint `json:"path"`
}

type jsonCourse struct {
	Segments    []jsonSegment    `json:"segments"`
	Transitions []jsonTransition `json:"transitions"`
}

// LoadGraphJSON builds a Graph from the course network description data, the
// JSON shape a real CourseGenerator's export would take (spec section 4.2's
// external collaborator, stood in here as a static file for the CLI and for
// tests that need a full network rather than a hand-built fixture).
func LoadGraphJSON(data []byte) (*Graph, error) {
	var doc jsonCourse
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("course: decoding graph: %w", err)
	}

	segments := make([]*Segment, len(doc.Segments))
	for i, s := range doc.Segments {
		segments[i] = NewSegment(geometry.NewLine(s.Start.toPoint(), s.End.toPoint()))
	}

	for i, tr := range doc.Transitions {
		if tr.Owner < 0 || tr.Owner >= len(segments) || tr.Source < 0 || tr.Source >= len(segments) || tr.Target < 0 || tr.Target >= len(segments) {
			return nil, fmt.Errorf("course: transition %d references an out-of-range segment", i)
		}
		points := make([]geometry.Point, len(tr.Path))
		for j, p := range tr.Path {
			points[j] = p.toPoint()
		}
		transition := NewTransition(segments[tr.Source], segments[tr.Target], geometry.NewPolyline(points))

		switch tr.List {
		case "forward":
			segments[tr.Owner].AddForwardTransition(transition)
		case "backward":
			segments[tr.Owner].AddBackwardTransition(transition)
		default:
			return nil, fmt.Errorf("course: transition %d has unknown list %q", i, tr.List)
		}
	}

	return NewGraph(segments), nil
}
