package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gouniverse/environment"
	"github.com/samuelfneumann/gouniverse/environment/gymcore"
	"github.com/samuelfneumann/gouniverse/spaces"
	"gonum.org/v1/gonum/mat"
)

// EnvKind classifies Universe environments by where their reduced
// action space comes from
type EnvKind int

const (
	// Unrecognized environments keep their raw action space
	Unrecognized EnvKind = iota

	// GymCoreEnv environments run a gym environment, whose reduced
	// action space is given by GymCoreActionSpace
	GymCoreEnv

	// CuratedGame environments have a hand-picked action space
	CuratedGame
)

func (e EnvKind) String() string {
	switch e {
	case GymCoreEnv:
		return "GymCore"
	case CuratedGame:
		return "CuratedGame"
	default:
		return "Unrecognized"
	}
}

// curatedGames maps environment IDs to their hand-picked action
// spaces
var curatedGames = map[string]func() []spaces.Action{
	"internet.SlitherIO-v0":                   slitherActions,
	"internet.SlitherIOErmiyaEskandaryBot-v0": slitherActions,
	"internet.SlitherIOEasy-v0":               slitherActions,
	"flashgames.DuskDrive-v0":                 racingActions,
	"flashgames.RedBeard-v0":                  platformActions,
}

func slitherActions() []spaces.Action {
	return []spaces.Action{
		SlitherVNC(false, true, false),
		SlitherVNC(false, false, true),
		SlitherVNC(true, false, false),
		SlitherVNC(true, true, false),
		SlitherVNC(true, false, true),
	}
}

func racingActions() []spaces.Action {
	return []spaces.Action{
		RacingVNC(true, false, false),
		RacingVNC(false, true, false),
		RacingVNC(false, false, true),
	}
}

func platformActions() []spaces.Action {
	return []spaces.Action{
		PlatformVNC(true, false, false, false),
		PlatformVNC(false, true, false, false),
		PlatformVNC(false, false, true, false),
		PlatformVNC(false, false, false, true),
	}
}

// ClassifyEnv returns the kind of the environment described by spec.
// A nil spec is Unrecognized.
func ClassifyEnv(spec *environment.EnvSpec) EnvKind {
	if spec == nil {
		return Unrecognized
	}
	if spec.Runtime() == environment.GymCore {
		return GymCoreEnv
	}
	if _, ok := curatedGames[spec.ID]; ok {
		return CuratedGame
	}
	return Unrecognized
}

// SafeActions returns the reduced action space of the environment
// described by spec, or nil if the environment has none and should
// keep its raw action space. gym-core environments are resolved
// through lookup; a gym-core environment without a reduced action
// space is an error.
func SafeActions(spec *environment.EnvSpec,
	lookup gymcore.Lookup) (*spaces.Hardcoded, error) {
	switch kind := ClassifyEnv(spec); kind {
	case GymCoreEnv:
		id, err := spec.GymCoreID()
		if err != nil {
			return nil, fmt.Errorf("safeActions: %v", err)
		}
		space, err := GymCoreActionSpace(id, lookup)
		if err != nil {
			return nil, fmt.Errorf("safeActions: %w", err)
		}
		return space, nil

	case CuratedGame:
		return spaces.NewHardcoded(curatedGames[spec.ID]()), nil

	case Unrecognized:
		return nil, nil

	default:
		panic(fmt.Sprintf("safeActions: unhandled kind %v", kind))
	}
}

const safeActionSpaceDeprecation = "DEPRECATION WARNING: " +
	"wrappers.SafeActionSpace is deprecated. Build reduced action " +
	"spaces with wrappers.SafeActions and step them explicitly. " +
	"wrappers.SafeActionSpace will soon be removed"

// SafeActionSpace wraps an environment and replaces its action space
// with the reduced action space of the environment, if one is known.
// Environments with no known reduced action space keep their own.
//
// Deprecated: use SafeActions.
type SafeActionSpace struct {
	environment.Vectorized

	hardcoded *spaces.Hardcoded
}

// NewSafeActionSpace returns a new SafeActionSpace. Constructing a
// SafeActionSpace logs a deprecation warning to logger, or to the
// standard logger if logger is nil. It is an error to wrap a gym-core
// environment without a reduced action space; the returned error then
// wraps an *UnsupportedEnvError.
func NewSafeActionSpace(env environment.Vectorized, lookup gymcore.Lookup,
	logger environment.Logger) (*SafeActionSpace, error) {
	environment.LoggerOrDefault(logger).Printf(safeActionSpaceDeprecation)

	hardcoded, err := SafeActions(env.Spec(), lookup)
	if err != nil {
		return nil, fmt.Errorf("newSafeActionSpace: %w", err)
	}

	return &SafeActionSpace{
		Vectorized: env,
		hardcoded:  hardcoded,
	}, nil
}

// ActionSpace returns the reduced action space, or the wrapped
// environment's action space if there is no reduced action space
func (s *SafeActionSpace) ActionSpace() spaces.Space {
	if s.hardcoded == nil {
		return s.Vectorized.ActionSpace()
	}
	return s.hardcoded
}

// Hardcoded returns the reduced action space and whether there is one
func (s *SafeActionSpace) Hardcoded() (*spaces.Hardcoded, bool) {
	return s.hardcoded, s.hardcoded != nil
}

// Action converts one action index per environment instance to the
// corresponding actions. Action panics if there is no reduced action
// space or if an index is out of range.
func (s *SafeActionSpace) Action(indices []int) []spaces.Action {
	if s.hardcoded == nil {
		panic("action: environment has no reduced action space")
	}
	return translate(s.hardcoded, indices)
}

// StepIndices takes one environmental step given one action index per
// environment instance
func (s *SafeActionSpace) StepIndices(indices []int) ([]mat.Vector,
	[]float64, []bool, error) {
	if s.hardcoded == nil {
		return nil, nil, nil, fmt.Errorf("stepIndices: environment has no " +
			"reduced action space")
	}
	return s.Step(translate(s.hardcoded, indices))
}

// translate looks up the action of each index in space, preserving
// the order of indices
func translate(space *spaces.Hardcoded, indices []int) []spaces.Action {
	actions := make([]spaces.Action, len(indices))
	for i, index := range indices {
		actions[i] = space.At(index)
	}
	return actions
}
