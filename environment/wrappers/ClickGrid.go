package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gouniverse/spaces"
)

// ClickGrid is a discrete point-and-click action space. The active
// region is tiled into square cells and each cell becomes a click at
// its center, unless that center falls in a noclick region.
type ClickGrid struct {
	*spaces.Hardcoded

	active  ActiveRegion
	step    int
	noclick []Region
	points  [][2]int
	removed int
}

// NewClickGrid returns a new ClickGrid over active, with cells of size
// step x step. Cells are enumerated column by column: the outer loop
// runs over x and the inner loop over y. Every action releases the
// mouse, presses the left button, and releases it again, all at the
// center of the cell. Cell centers are clipped so they never exceed
// (XHigh-1, YHigh-1).
//
// Grid origins run from the low to the high coordinate, excluding the
// high one, in increments of step. A negative step counts downwards,
// so it yields no cells unless the low coordinate is above the high
// one. A grid with no cells, or whose cells are all excluded, is legal
// but has no actions. A zero step is an error.
func NewClickGrid(active ActiveRegion, step int,
	noclick []Region) (*ClickGrid, error) {
	if step == 0 {
		return nil, fmt.Errorf("newClickGrid: step must not be zero")
	}

	var actions []spaces.Action
	var points [][2]int
	removed := 0
	for _, x := range stepRange(active.XLow, active.XHigh, step) {
		for _, y := range stepRange(active.YLow, active.YHigh, step) {
			xc := min(x+step/2, active.XHigh-1)
			yc := min(y+step/2, active.YHigh-1)
			if excluded(xc, yc, noclick) {
				removed++
				continue
			}

			actions = append(actions, spaces.Action{
				spaces.PointerEvent{X: xc, Y: yc, ButtonMask: 0},
				spaces.PointerEvent{X: xc, Y: yc, ButtonMask: 1},
				spaces.PointerEvent{X: xc, Y: yc, ButtonMask: 0},
			})
			points = append(points, [2]int{xc, yc})
		}
	}

	return &ClickGrid{
		Hardcoded: spaces.NewHardcoded(actions),
		active:    active,
		step:      step,
		noclick:   append([]Region(nil), noclick...),
		points:    points,
		removed:   removed,
	}, nil
}

// Removed returns the number of cells dropped because their centers
// were in a noclick region
func (c *ClickGrid) Removed() int {
	return c.removed
}

// Considered returns the total number of cells in the grid, including
// removed cells
func (c *ClickGrid) Considered() int {
	return c.removed + c.Len()
}

// Point returns the click coordinates of action i
func (c *ClickGrid) Point(i int) (x, y int) {
	if i < 0 || i >= len(c.points) {
		panic(fmt.Sprintf("point: action index %v ∉ [0, %v)", i,
			len(c.points)))
	}
	return c.points[i][0], c.points[i][1]
}

// stepRange returns start, start+step, ... stopping before stop. For a
// negative step the values decrease and stop before falling to stop.
func stepRange(start, stop, step int) []int {
	var values []int
	for v := start; ; v += step {
		if (step > 0 && v >= stop) || (step < 0 && v <= stop) {
			return values
		}
		values = append(values, v)
	}
}

func excluded(x, y int, regions []Region) bool {
	for _, r := range regions {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
