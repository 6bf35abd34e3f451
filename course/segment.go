// Package course models the immutable, pre-computed course network: straight
// drivable Segments connected by curved Transitions. The network itself is
// produced by an external CourseGenerator; this package only reads it.
package course

import "github.com/jfrascon/gerona/geometry"

// Segment is a straight drivable line in the course network, together with
// the Transitions that leave it in either nominal direction of travel.
type Segment struct {
	Line geometry.Line

	forwardTransitions  []*Transition
	backwardTransitions []*Transition
}

// NewSegment builds a Segment from its line. Transitions are attached
// afterwards with AddForwardTransition/AddBackwardTransition, mirroring how
// a CourseGenerator wires the network up after all segments exist.
func NewSegment(line geometry.Line) *Segment {
	return &Segment{Line: line}
}

// AddForwardTransition appends t to the segment's forward transition list.
func (s *Segment) AddForwardTransition(t *Transition) {
	s.forwardTransitions = append(s.forwardTransitions, t)
}

// AddBackwardTransition appends t to the segment's backward transition list.
func (s *Segment) AddBackwardTransition(t *Transition) {
	s.backwardTransitions = append(s.backwardTransitions, t)
}

// ForwardTransitions returns the transitions leaving this segment in its
// nominal forward direction.
func (s *Segment) ForwardTransitions() []*Transition {
	return s.forwardTransitions
}

// BackwardTransitions returns the transitions leaving this segment in its
// nominal backward (reverse) direction.
func (s *Segment) BackwardTransitions() []*Transition {
	return s.backwardTransitions
}

// AllTransitions returns the forward and backward transitions concatenated,
// forward first, for callers that don't care about direction.
func (s *Segment) AllTransitions() []*Transition {
	all := make([]*Transition, 0, len(s.forwardTransitions)+len(s.backwardTransitions))
	all = append(all, s.forwardTransitions...)
	all = append(all, s.backwardTransitions...)
	return all
}
