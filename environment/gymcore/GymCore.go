// Package gymcore describes the OpenAI Gym environments that Universe
// runs through its gym-core runtime. A Lookup resolves a gym ID to its
// entry point and can create instances of the environment so that
// their action meanings can be queried.
package gymcore

import "strings"

// Entry point prefixes of gym environment families
const (
	AtariEntryPoint          = "gym.envs.atari:"
	ClassicControlEntryPoint = "gym.envs.classic_control:"
)

// Env is an instance of a gym environment
type Env interface {
	// ActionMeanings returns the names of the environment's native
	// discrete actions, in action index order
	ActionMeanings() ([]string, error)

	Close() error
}

// Spec is the gym registration of an environment
type Spec struct {
	ID         string
	EntryPoint string

	// Make creates a new instance of the environment
	Make func() (Env, error)
}

// IsAtari returns whether the environment is emulated by the Arcade
// Learning Environment
func (s *Spec) IsAtari() bool {
	return strings.HasPrefix(s.EntryPoint, AtariEntryPoint)
}

// Lookup resolves gym IDs to their specifications
type Lookup interface {
	Spec(id string) (*Spec, error)
}
