// Package occupancy models the external occupancy-grid collaborator: map
// loading and the flat probability cell array are owned elsewhere (the
// footprint-aware grid A*, "AStarPatsy" in the original system, is entirely
// out of scope); this package only states the shape the planner's
// appendix resolver consumes.
package occupancy

import (
	"context"

	"github.com/pkg/errors"
	"go.viam.com/rdk/spatialmath"
)

// Unknown is the cell value for unmapped space; valid occupancy
// probabilities are otherwise in [0, 100].
const Unknown int8 = -1

// Grid is a 2-D occupancy map: width x height cells of resolution metres per
// cell, anchored at Origin in world coordinates.
type Grid struct {
	Width      int
	Height     int
	Resolution float64
	Origin     spatialmath.Pose
	Cells      []int8
}

// ErrOutOfBounds is returned by CellAt for an out-of-range cell.
var ErrOutOfBounds = errors.New("occupancy: cell out of bounds")

// CellAt returns the cell value at grid coordinates (x, y).
func (g *Grid) CellAt(x, y int) (int8, error) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0, ErrOutOfBounds
	}
	return g.Cells[y*g.Width+x], nil
}

// IsFree reports whether the cell at (x, y) is known and below occThreshold.
// There is no default threshold. An out-of-bounds or unknown cell is never
// free.
func (g *Grid) IsFree(x, y int, occThreshold int8) bool {
	v, err := g.CellAt(x, y)
	if err != nil || v == Unknown {
		return false
	}
	return v < occThreshold
}

// Provider is the external collaborator that retrieves the current
// occupancy grid, spec section 6's map_provider.get().
type Provider interface {
	Get(ctx context.Context) (*Grid, error)
}

// StaticProvider serves a single, already-loaded Grid. It stands in for the
// real map_provider collaborator (out of scope) wherever one is needed to
// exercise the planner — a CLI invocation, a test fixture.
type StaticProvider struct {
	Grid *Grid
}

// NewStaticProvider wraps grid as a Provider.
func NewStaticProvider(grid *Grid) StaticProvider {
	return StaticProvider{Grid: grid}
}

// Get returns the wrapped grid unconditionally.
func (p StaticProvider) Get(ctx context.Context) (*Grid, error) {
	return p.Grid, nil
}
