package environment_test

import (
	"testing"

	"github.com/samuelfneumann/gouniverse/environment"
)

func TestRegistry(t *testing.T) {
	r := environment.NewRegistry()
	spec := &environment.EnvSpec{
		ID:   "flashgames.Test-v0",
		Tags: map[string]string{environment.RuntimeTag: environment.FlashGames},
	}
	if err := r.Register(spec); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := r.Register(spec); err == nil {
		t.Error("register: expected error registering id twice")
	}
	if err := r.Register(&environment.EnvSpec{}); err == nil {
		t.Error("register: expected error registering empty id")
	}

	got, err := r.Spec("flashgames.Test-v0")
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	if got != spec {
		t.Errorf("spec: expected %v got %v", spec, got)
	}
	if _, err := r.Spec("flashgames.Missing-v0"); err == nil {
		t.Error("spec: expected error for unregistered id")
	}
}

func TestDefaultRegistry(t *testing.T) {
	spec, err := environment.Default.Spec("gym-core.PongDeterministic-v3")
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	if spec.Runtime() != environment.GymCore {
		t.Errorf("runtime: expected %v got %v", environment.GymCore,
			spec.Runtime())
	}
	id, err := spec.GymCoreID()
	if err != nil {
		t.Fatalf("gymCoreID: %v", err)
	}
	if id != "PongDeterministic-v3" {
		t.Errorf("gymCoreID: expected PongDeterministic-v3 got %v", id)
	}

	ids := environment.Default.IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids: not sorted at %v: %v", i, ids)
		}
	}
}

func TestGymCoreIDMissing(t *testing.T) {
	spec := &environment.EnvSpec{ID: "gym-core.Broken-v0"}
	if _, err := spec.GymCoreID(); err == nil {
		t.Error("gymCoreID: expected error for missing kwarg")
	}

	spec.Kwargs = map[string]interface{}{environment.GymCoreID: 3}
	if _, err := spec.GymCoreID(); err == nil {
		t.Error("gymCoreID: expected error for non-string kwarg")
	}
}

func TestNilSpecRuntime(t *testing.T) {
	var spec *environment.EnvSpec
	if spec.Runtime() != "" {
		t.Error("runtime: nil spec should have no runtime")
	}
}
