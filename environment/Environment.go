// Package environment outlines the interfaces and structs needed to
// describe and wrap Universe environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gouniverse/spaces"
)

// Vectorized is a Universe environment that runs one or more remote
// instances in parallel. Each call to Step takes one action per
// instance and returns one observation, reward, and done flag per
// instance, in instance order.
type Vectorized interface {
	// Spec returns the registered specification of the environment,
	// or nil if the environment was not created from a registry
	Spec() *EnvSpec

	// ActionSpace returns the space of legal actions
	ActionSpace() spaces.Space

	Reset() ([]mat.Vector, error)
	Step(actions []spaces.Action) (obs []mat.Vector, rewards []float64,
		done []bool, err error)
	Close() error
}
