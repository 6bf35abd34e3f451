package course

import "github.com/jfrascon/gerona/geometry"

// Transition is a precomputed curved connector between two segments: a
// non-empty ordered polyline whose endpoints lie on Source and Target
// respectively.
type Transition struct {
	Source *Segment
	Target *Segment
	Path   geometry.Polyline

	arcLength float64
}

// NewTransition builds a Transition. ArcLength is computed once from path,
// as the Euclidean sum along it (spec 4.1).
func NewTransition(source, target *Segment, path geometry.Polyline) *Transition {
	return &Transition{
		Source:    source,
		Target:    target,
		Path:      path,
		arcLength: path.ArcLength(),
	}
}

// ArcLength returns the transition's precomputed path length.
func (t *Transition) ArcLength() float64 {
	return t.arcLength
}
