package spaces

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Hardcoded is a discrete action space consisting of a fixed list of
// actions. Actions are referred to by their index in the list. The
// index to action mapping is fixed when the space is constructed and
// never changes afterwards.
//
// Hardcoded implements the Space interface
type Hardcoded struct {
	actions []Action

	rngLock sync.Mutex
	rng     *rand.Rand
}

// NewHardcoded returns a new Hardcoded action space over actions. The
// actions are copied, so later changes to the argument do not affect
// the space.
func NewHardcoded(actions []Action) *Hardcoded {
	copied := make([]Action, len(actions))
	for i := range actions {
		copied[i] = append(Action(nil), actions[i]...)
	}

	return &Hardcoded{
		actions: copied,
		rng:     rand.New(rand.NewSource(0)),
	}
}

// Len returns the number of actions in the space
func (h *Hardcoded) Len() int {
	return len(h.actions)
}

// At returns the action at index i. At panics if i is not in
// [0, h.Len()).
func (h *Hardcoded) At(i int) Action {
	if i < 0 || i >= len(h.actions) {
		panic(fmt.Sprintf("at: action index %v ∉ [0, %v)", i,
			len(h.actions)))
	}
	return append(Action(nil), h.actions[i]...)
}

// Actions returns all actions in the space in index order
func (h *Hardcoded) Actions() []Action {
	actions := make([]Action, len(h.actions))
	for i := range h.actions {
		actions[i] = h.At(i)
	}
	return actions
}

// Contains returns whether x is a legal action index in the space.
// Integer indices of type int, int64, and float64 are accepted.
func (h *Hardcoded) Contains(x interface{}) bool {
	var index int
	switch i := x.(type) {
	case int:
		index = i
	case int64:
		index = int(i)
	case float64:
		if i != float64(int(i)) {
			return false
		}
		index = int(i)
	default:
		return false
	}
	return index >= 0 && index < len(h.actions)
}

// Seed seeds the sampler for the space
func (h *Hardcoded) Seed(seed uint64) {
	h.rngLock.Lock()
	defer h.rngLock.Unlock()
	h.rng.Seed(seed)
}

// Sample returns a uniformly random action index. Sample panics if the
// space is empty.
func (h *Hardcoded) Sample() int {
	if len(h.actions) == 0 {
		panic("sample: cannot sample from an empty action space")
	}
	h.rngLock.Lock()
	defer h.rngLock.Unlock()
	return h.rng.Intn(len(h.actions))
}

// Spec returns the action specification of the space, a single
// discrete dimension with bounds [0, h.Len()-1]. The spec of an empty
// space has bounds [0, -1] and reports Empty.
func (h *Hardcoded) Spec() Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, nil)
	upperBound := mat.NewVecDense(1, []float64{float64(len(h.actions) - 1)})

	return NewSpec(shape, lowerBound, upperBound, Discrete)
}

func (h *Hardcoded) String() string {
	return fmt.Sprintf("Hardcoded(%v)", len(h.actions))
}
