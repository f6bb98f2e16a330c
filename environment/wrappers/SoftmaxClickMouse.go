package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gouniverse/environment"
	"github.com/samuelfneumann/gouniverse/spaces"
	"gonum.org/v1/gonum/mat"
)

// SoftmaxClickMouse wraps an environment and replaces its action space
// with a ClickGrid, so that an agent picks one cell to click per
// timestep, for example with a softmax policy.
type SoftmaxClickMouse struct {
	environment.Vectorized

	grid *ClickGrid
}

// NewSoftmaxClickMouse returns a new SoftmaxClickMouse. The number of
// cells removed by noclick regions is logged to logger, or to the
// standard logger if logger is nil.
func NewSoftmaxClickMouse(env environment.Vectorized, active ActiveRegion,
	discreteMouseStep int, noclick []Region,
	logger environment.Logger) (*SoftmaxClickMouse, error) {
	grid, err := NewClickGrid(active, discreteMouseStep, noclick)
	if err != nil {
		return nil, fmt.Errorf("newSoftmaxClickMouse: %v", err)
	}

	environment.LoggerOrDefault(logger).Printf(
		"noclick regions removed %d of %d actions", grid.Removed(),
		grid.Considered())

	return &SoftmaxClickMouse{
		Vectorized: env,
		grid:       grid,
	}, nil
}

// ActionSpace returns the click grid
func (s *SoftmaxClickMouse) ActionSpace() spaces.Space {
	return s.grid
}

// Grid returns the click grid
func (s *SoftmaxClickMouse) Grid() *ClickGrid {
	return s.grid
}

// Action converts one action index per environment instance to the
// corresponding clicks. Action panics if an index is out of range.
func (s *SoftmaxClickMouse) Action(indices []int) []spaces.Action {
	return translate(s.grid.Hardcoded, indices)
}

// StepIndices takes one environmental step given one action index per
// environment instance
func (s *SoftmaxClickMouse) StepIndices(indices []int) ([]mat.Vector,
	[]float64, []bool, error) {
	return s.Step(s.Action(indices))
}
