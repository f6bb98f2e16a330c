package spaces

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// VNCEvent is the raw action space of a Universe environment. Any
// sequence of key events on whitelisted keys and pointer events on
// the screen is a legal action.
//
// VNCEvent implements the Space interface
type VNCEvent struct {
	keys   map[string]bool
	width  int
	height int
}

// NewVNCEvent returns a new raw VNC action space. If keys is empty,
// all keys are allowed. Pointer events must lie on a screen of size
// width x height.
func NewVNCEvent(keys []string, width, height int) *VNCEvent {
	var allowed map[string]bool
	if len(keys) > 0 {
		allowed = make(map[string]bool, len(keys))
		for _, key := range keys {
			allowed[KeyEventByName(key, false).Key] = true
		}
	}
	return &VNCEvent{keys: allowed, width: width, height: height}
}

// Contains returns whether x is an Action whose events are all legal
func (v *VNCEvent) Contains(x interface{}) bool {
	action, ok := x.(Action)
	if !ok {
		return false
	}
	for _, event := range action {
		switch e := event.(type) {
		case KeyEvent:
			if v.keys != nil && !v.keys[e.Key] {
				return false
			}
		case PointerEvent:
			if e.X < 0 || e.X >= v.width || e.Y < 0 || e.Y >= v.height {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Spec returns the action specification of the space. Only the
// pointer coordinates have bounds, so the spec is the continuous
// screen area.
func (v *VNCEvent) Spec() Spec {
	shape := mat.NewVecDense(2, nil)
	lowerBound := mat.NewVecDense(2, nil)
	upperBound := mat.NewVecDense(2, []float64{float64(v.width - 1),
		float64(v.height - 1)})

	return NewSpec(shape, lowerBound, upperBound, Continuous)
}

func (v *VNCEvent) String() string {
	return fmt.Sprintf("VNCEvent(%vx%v)", v.width, v.height)
}
