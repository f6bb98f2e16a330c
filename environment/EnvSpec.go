package environment

import (
	"fmt"
	"sort"
	"sync"
)

// Tags and keyword arguments with special meaning in an EnvSpec
const (
	RuntimeTag  = "runtime"
	GymCoreID   = "gym_core_id"
	GymCore     = "gym-core"
	FlashGames  = "vnc-flashgames"
	Internet    = "vnc-internet"
	WorldOfBits = "world-of-bits"
)

// EnvSpec is the registered specification of a Universe environment
type EnvSpec struct {
	ID     string
	Tags   map[string]string
	Kwargs map[string]interface{}
}

// Runtime returns the runtime tag of the spec, or "" if it has none
func (e *EnvSpec) Runtime() string {
	if e == nil {
		return ""
	}
	return e.Tags[RuntimeTag]
}

// GymCoreID returns the ID of the gym environment that a gym-core
// environment runs
func (e *EnvSpec) GymCoreID() (string, error) {
	raw, ok := e.Kwargs[GymCoreID]
	if !ok {
		return "", fmt.Errorf("gymCoreID: spec %v has no %v", e.ID, GymCoreID)
	}
	id, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("gymCoreID: spec %v has %v of type %T, "+
			"expected string", e.ID, GymCoreID, raw)
	}
	return id, nil
}

// Registry maps environment IDs to their specifications
type Registry struct {
	lock  sync.RWMutex
	specs map[string]*EnvSpec
}

// NewRegistry returns a new, empty Registry
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*EnvSpec)}
}

// Register adds spec to the registry. It is an error to register the
// same ID twice.
func (r *Registry) Register(spec *EnvSpec) error {
	if spec == nil || spec.ID == "" {
		return fmt.Errorf("register: spec must have an ID")
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.specs[spec.ID]; ok {
		return fmt.Errorf("register: cannot re-register id %v", spec.ID)
	}
	r.specs[spec.ID] = spec
	return nil
}

// Spec returns the specification registered under id
func (r *Registry) Spec(id string) (*EnvSpec, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	spec, ok := r.specs[id]
	if !ok {
		return nil, fmt.Errorf("spec: no registered environment with id %v",
			id)
	}
	return spec, nil
}

// IDs returns the registered IDs in sorted order
func (r *Registry) IDs() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	ids := make([]string, 0, len(r.specs))
	for id := range r.specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Default holds the specifications of the Universe environments known
// to this package
var Default = newDefault()

func newDefault() *Registry {
	r := NewRegistry()

	gymCore := []string{
		"CartPole-v0",
		"PongDeterministic-v3",
		"BreakoutDeterministic-v3",
		"SpaceInvadersDeterministic-v3",
		"MountainCar-v0",
	}
	for _, id := range gymCore {
		r.mustRegister(&EnvSpec{
			ID:     "gym-core." + id,
			Tags:   map[string]string{RuntimeTag: GymCore},
			Kwargs: map[string]interface{}{GymCoreID: id},
		})
	}

	for _, id := range []string{
		"internet.SlitherIO-v0",
		"internet.SlitherIOErmiyaEskandaryBot-v0",
		"internet.SlitherIOEasy-v0",
	} {
		r.mustRegister(&EnvSpec{
			ID:   id,
			Tags: map[string]string{RuntimeTag: Internet},
		})
	}

	for _, id := range []string{
		"flashgames.DuskDrive-v0",
		"flashgames.RedBeard-v0",
		"flashgames.NeonRace-v0",
		"flashgames.CoasterRacer-v0",
	} {
		r.mustRegister(&EnvSpec{
			ID:   id,
			Tags: map[string]string{RuntimeTag: FlashGames},
		})
	}

	for _, id := range []string{
		"wob.mini.ClickButton-v0",
		"wob.mini.ClickTest-v0",
		"wob.mini.ClickDialog-v0",
	} {
		r.mustRegister(&EnvSpec{
			ID:   id,
			Tags: map[string]string{RuntimeTag: WorldOfBits},
		})
	}

	return r
}

func (r *Registry) mustRegister(spec *EnvSpec) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}
