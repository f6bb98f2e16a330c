package wrappers

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gouniverse/environment/gymcore"
	"github.com/samuelfneumann/gouniverse/spaces"
)

// PoleBalancingID is the gym ID of the pole balancing task, which is
// controlled by holding or releasing a single key
const PoleBalancingID = "CartPole-v0"

// UnsupportedEnvError is returned when a gym-core environment has no
// known reduced action space
type UnsupportedEnvError struct {
	ID string
}

func (u *UnsupportedEnvError) Error() string {
	return fmt.Sprintf("unsupported env type: %v", u.ID)
}

// GymCoreKind classifies gym environments by how their reduced action
// space is built
type GymCoreKind int

const (
	// UnsupportedGymCore environments have no reduced action space
	UnsupportedGymCore GymCoreKind = iota

	// PoleBalancing is the CartPole task
	PoleBalancing

	// ArcadeVocabulary environments report Atari action meanings that
	// are translated to controller key states
	ArcadeVocabulary
)

func (g GymCoreKind) String() string {
	switch g {
	case PoleBalancing:
		return "PoleBalancing"
	case ArcadeVocabulary:
		return "ArcadeVocabulary"
	default:
		return "Unsupported"
	}
}

// ClassifyGymCore returns the kind of the gym environment described by
// spec
func ClassifyGymCore(spec *gymcore.Spec) GymCoreKind {
	switch {
	case spec.ID == PoleBalancingID:
		return PoleBalancing
	case spec.IsAtari():
		return ArcadeVocabulary
	default:
		return UnsupportedGymCore
	}
}

// GymCoreActionSpace returns the reduced action space of the gym
// environment gymCoreID. Atari environments are instantiated through
// lookup to read their action meanings. If the environment has no
// reduced action space, the returned error is an *UnsupportedEnvError.
func GymCoreActionSpace(gymCoreID string,
	lookup gymcore.Lookup) (*spaces.Hardcoded, error) {
	spec, err := lookup.Spec(gymCoreID)
	if err != nil {
		return nil, fmt.Errorf("gymCoreActionSpace: %v", err)
	}

	switch ClassifyGymCore(spec) {
	case PoleBalancing:
		return spaces.NewHardcoded([]spaces.Action{
			{spaces.KeyEventByName("left", true)},
			{spaces.KeyEventByName("left", false)},
		}), nil

	case ArcadeVocabulary:
		env, err := spec.Make()
		if err != nil {
			return nil, fmt.Errorf("gymCoreActionSpace: could not create "+
				"%v: %v", spec.ID, err)
		}
		defer env.Close()

		meanings, err := env.ActionMeanings()
		if err != nil {
			return nil, fmt.Errorf("gymCoreActionSpace: could not get "+
				"action meanings of %v: %v", spec.ID, err)
		}
		return spaces.NewHardcoded(TranslateActionMeanings(meanings)), nil

	case UnsupportedGymCore:
		return nil, &UnsupportedEnvError{ID: spec.ID}
	}
	panic(fmt.Sprintf("gymCoreActionSpace: unhandled kind %v",
		ClassifyGymCore(spec)))
}

// TranslateActionMeanings converts Atari action meanings to controller
// key states, one action per meaning. A button is held when its name
// appears anywhere in the meaning, so "UPRIGHTFIRE" holds up, right,
// and z.
func TranslateActionMeanings(meanings []string) []spaces.Action {
	actions := make([]spaces.Action, len(meanings))
	for i, meaning := range meanings {
		actions[i] = AtariVNC(
			strings.Contains(meaning, "UP"),
			strings.Contains(meaning, "DOWN"),
			strings.Contains(meaning, "LEFT"),
			strings.Contains(meaning, "RIGHT"),
			strings.Contains(meaning, "FIRE"),
		)
	}
	return actions
}
