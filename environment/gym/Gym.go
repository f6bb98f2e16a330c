// Package gym resolves gym-core environments through OpenAI's Gym.
//
// Environments are created through GoGym, found at
// https://github.com/samuelfneumann/GoGym, so a Python interpreter with
// gym installed must be available at run time. Use gymcore.Static
// when no Python runtime is available.
package gym

import (
	"fmt"

	python "github.com/DataDog/go-python3"
	"github.com/samuelfneumann/gogym"
	"github.com/samuelfneumann/gouniverse/environment/gymcore"
)

// Lookup implements the gymcore.Lookup interface by querying gym's
// registry through the embedded Python interpreter
type Lookup struct {
	gymModule *python.PyObject
}

// NewLookup returns a new Lookup
func NewLookup() (*Lookup, error) {
	gymModule := python.PyImport_ImportModule("gym")
	if gymModule == nil {
		printPythonError()
		return nil, fmt.Errorf("newLookup: could not import gym")
	}
	return &Lookup{gymModule: gymModule}, nil
}

// Spec returns the gym registration of the environment with the given
// ID
func (l *Lookup) Spec(id string) (*gymcore.Spec, error) {
	pyID := python.PyUnicode_FromString(id)
	defer pyID.DecRef()

	spec := l.gymModule.CallMethodArgs("spec", pyID)
	if spec == nil {
		printPythonError()
		return nil, fmt.Errorf("spec: no gym environment with id %v", id)
	}
	defer spec.DecRef()

	entryPoint, err := stringAttr(spec, "entry_point", "_entry_point")
	if err != nil {
		return nil, fmt.Errorf("spec: could not get entry point of %v: %v",
			id, err)
	}

	return &gymcore.Spec{
		ID:         id,
		EntryPoint: entryPoint,
		Make: func() (gymcore.Env, error) {
			env, err := newEnv(id)
			if err != nil {
				return nil, err
			}
			return env, nil
		},
	}, nil
}

// Close releases the gym module
func (l *Lookup) Close() error {
	l.gymModule.DecRef()
	return nil
}

// Env is a GoGym environment whose action meanings can be queried
type Env struct {
	gogym.Environment
}

func newEnv(id string) (*Env, error) {
	goGymEnv, err := gogym.Make(id)
	if err != nil {
		return nil, fmt.Errorf("newEnv: could not create environment: %v",
			err)
	}
	return &Env{Environment: goGymEnv}, nil
}

// ActionMeanings returns the result of calling
// env.unwrapped.get_action_meanings() on the Python environment
func (e *Env) ActionMeanings() ([]string, error) {
	unwrapped := e.Env().GetAttrString("unwrapped")
	if unwrapped == nil {
		printPythonError()
		return nil, fmt.Errorf("actionMeanings: could not unwrap %v",
			e.Name())
	}
	defer unwrapped.DecRef()

	meanings := unwrapped.CallMethodArgs("get_action_meanings")
	if meanings == nil {
		printPythonError()
		return nil, fmt.Errorf("actionMeanings: %v has no action meanings",
			e.Name())
	}
	defer meanings.DecRef()

	if !python.PyList_Check(meanings) {
		return nil, fmt.Errorf("actionMeanings: expected list but got %v",
			meanings.Type())
	}
	n := python.PyList_Size(meanings)
	names := make([]string, n)
	for i := 0; i < n; i++ {
		// PyList_GetItem returns a borrowed reference
		name, err := goString(python.PyList_GetItem(meanings, i))
		if err != nil {
			return nil, fmt.Errorf("actionMeanings: meaning %v of %v: %v", i,
				e.Name(), err)
		}
		names[i] = name
	}
	return names, nil
}

// Close performs resource cleanup after the environment is no longer
// needed
func (e *Env) Close() error {
	e.Environment.Close()
	return nil
}

// stringAttr returns the first of the named attributes that obj has,
// as a string
func stringAttr(obj *python.PyObject, names ...string) (string, error) {
	for _, name := range names {
		if !obj.HasAttrString(name) {
			continue
		}
		attr := obj.GetAttrString(name)
		if attr == nil {
			printPythonError()
			return "", fmt.Errorf("stringAttr: could not get %v", name)
		}
		defer attr.DecRef()

		value, err := goString(attr)
		if err != nil {
			return "", fmt.Errorf("stringAttr: %v: %v", name, err)
		}
		return value, nil
	}
	return "", fmt.Errorf("stringAttr: object has none of %v", names)
}

// goString converts a Python str to a Go string. Objects of any other
// type, such as callable entry points, are an error rather than "".
func goString(obj *python.PyObject) (string, error) {
	if obj == nil {
		return "", fmt.Errorf("goString: nil object")
	}
	if !python.PyUnicode_Check(obj) {
		return "", fmt.Errorf("goString: expected str but got %v", obj.Type())
	}

	value := python.PyUnicode_AsUTF8(obj)
	if python.PyErr_Occurred() != nil {
		printPythonError()
		return "", fmt.Errorf("goString: could not decode str")
	}
	return value, nil
}

func printPythonError() {
	if python.PyErr_Occurred() != nil {
		fmt.Println()
		fmt.Println("========== Python Error ==========")
		python.PyErr_Print()
		fmt.Println("==================================")
		fmt.Println()
	}
}
