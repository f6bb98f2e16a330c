package wrappers_test

import (
	"fmt"

	"github.com/samuelfneumann/gouniverse/environment"
	"github.com/samuelfneumann/gouniverse/spaces"
	"gonum.org/v1/gonum/mat"
)

// fakeEnv is a Vectorized environment that records the actions it is
// stepped with
type fakeEnv struct {
	spec        *environment.EnvSpec
	actionSpace spaces.Space
	stepped     [][]spaces.Action
}

func newFakeEnv(spec *environment.EnvSpec) *fakeEnv {
	return &fakeEnv{
		spec:        spec,
		actionSpace: spaces.NewVNCEvent(nil, 1024, 768),
	}
}

func (f *fakeEnv) Spec() *environment.EnvSpec { return f.spec }

func (f *fakeEnv) ActionSpace() spaces.Space { return f.actionSpace }

func (f *fakeEnv) Reset() ([]mat.Vector, error) {
	return []mat.Vector{mat.NewVecDense(1, nil)}, nil
}

func (f *fakeEnv) Step(actions []spaces.Action) ([]mat.Vector, []float64,
	[]bool, error) {
	f.stepped = append(f.stepped, actions)
	n := len(actions)
	obs := make([]mat.Vector, n)
	for i := range obs {
		obs[i] = mat.NewVecDense(1, nil)
	}
	return obs, make([]float64, n), make([]bool, n), nil
}

func (f *fakeEnv) Close() error { return nil }

// recordingLogger stores every message logged to it
type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Printf(format string, v ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, v...))
}
