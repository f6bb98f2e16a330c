package gymcore

import (
	"fmt"
	"sort"
)

// Static is a Lookup backed by a fixed table of specifications. It
// needs no Python runtime.
type Static map[string]*Spec

// Spec implements the Lookup interface
func (s Static) Spec(id string) (*Spec, error) {
	spec, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("spec: no gym environment with id %v", id)
	}
	return spec, nil
}

// IDs returns the IDs in the table in sorted order
func (s Static) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NewStaticSpec returns a Spec whose instances report the given
// action meanings
func NewStaticSpec(id, entryPoint string, meanings []string) *Spec {
	meanings = append([]string(nil), meanings...)
	return &Spec{
		ID:         id,
		EntryPoint: entryPoint,
		Make: func() (Env, error) {
			return staticEnv(meanings), nil
		},
	}
}

type staticEnv []string

func (s staticEnv) ActionMeanings() ([]string, error) {
	return append([]string(nil), s...), nil
}

func (s staticEnv) Close() error { return nil }

// Action meanings reported by the Arcade Learning Environment
var (
	pongMeanings = []string{"NOOP", "FIRE", "RIGHT", "LEFT", "RIGHTFIRE",
		"LEFTFIRE"}
	breakoutMeanings      = []string{"NOOP", "FIRE", "RIGHT", "LEFT"}
	spaceInvadersMeanings = []string{"NOOP", "FIRE", "RIGHT", "LEFT",
		"RIGHTFIRE", "LEFTFIRE"}
)

// Known holds the gym environments run by the default Universe
// registry, with their recorded action meanings
var Known = Static{
	"CartPole-v0": NewStaticSpec("CartPole-v0",
		ClassicControlEntryPoint+"CartPoleEnv", nil),
	"MountainCar-v0": NewStaticSpec("MountainCar-v0",
		ClassicControlEntryPoint+"MountainCarEnv", nil),
	"PongDeterministic-v3": NewStaticSpec("PongDeterministic-v3",
		AtariEntryPoint+"AtariEnv", pongMeanings),
	"BreakoutDeterministic-v3": NewStaticSpec("BreakoutDeterministic-v3",
		AtariEntryPoint+"AtariEnv", breakoutMeanings),
	"SpaceInvadersDeterministic-v3": NewStaticSpec(
		"SpaceInvadersDeterministic-v3", AtariEntryPoint+"AtariEnv",
		spaceInvadersMeanings),
}
