package wrappers_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/samuelfneumann/gouniverse/environment"
	"github.com/samuelfneumann/gouniverse/environment/gymcore"
	"github.com/samuelfneumann/gouniverse/environment/wrappers"
	"github.com/samuelfneumann/gouniverse/spaces"
)

func newSafe(t *testing.T, id string) (*wrappers.SafeActionSpace,
	*fakeEnv, *recordingLogger) {
	t.Helper()
	spec, err := environment.Default.Spec(id)
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	env := newFakeEnv(spec)
	logger := &recordingLogger{}
	safe, err := wrappers.NewSafeActionSpace(env, gymcore.Known, logger)
	if err != nil {
		t.Fatalf("newSafeActionSpace %v: %v", id, err)
	}
	return safe, env, logger
}

func hardcodedActions(t *testing.T,
	safe *wrappers.SafeActionSpace) []spaces.Action {
	t.Helper()
	hardcoded, ok := safe.Hardcoded()
	if !ok {
		t.Fatal("hardcoded: expected a reduced action space")
	}
	if safe.ActionSpace() != spaces.Space(hardcoded) {
		t.Error("actionSpace: expected the reduced action space")
	}
	return hardcoded.Actions()
}

func TestSafeActionSpaceSlither(t *testing.T) {
	for _, id := range []string{
		"internet.SlitherIO-v0",
		"internet.SlitherIOErmiyaEskandaryBot-v0",
		"internet.SlitherIOEasy-v0",
	} {
		safe, _, _ := newSafe(t, id)
		actions := hardcodedActions(t, safe)

		down := [][]bool{
			{false, true, false},
			{false, false, true},
			{true, false, false},
			{true, true, false},
			{true, false, true},
		}
		if len(actions) != len(down) {
			t.Fatalf("%v: expected %v actions got %v", id, len(down),
				len(actions))
		}
		for i := range actions {
			checkKeys(t, actions[i], []string{"space", "left", "right"},
				down[i])
		}
	}
}

func TestSafeActionSpaceFlashGames(t *testing.T) {
	safe, _, _ := newSafe(t, "flashgames.DuskDrive-v0")
	expected := []spaces.Action{
		wrappers.RacingVNC(true, false, false),
		wrappers.RacingVNC(false, true, false),
		wrappers.RacingVNC(false, false, true),
	}
	if got := hardcodedActions(t, safe); !reflect.DeepEqual(got, expected) {
		t.Errorf("DuskDrive: expected %v got %v", expected, got)
	}

	safe, _, _ = newSafe(t, "flashgames.RedBeard-v0")
	expected = []spaces.Action{
		wrappers.PlatformVNC(true, false, false, false),
		wrappers.PlatformVNC(false, true, false, false),
		wrappers.PlatformVNC(false, false, true, false),
		wrappers.PlatformVNC(false, false, false, true),
	}
	if got := hardcodedActions(t, safe); !reflect.DeepEqual(got, expected) {
		t.Errorf("RedBeard: expected %v got %v", expected, got)
	}
}

func TestSafeActionSpaceGymCore(t *testing.T) {
	safe, _, _ := newSafe(t, "gym-core.PongDeterministic-v3")
	actions := hardcodedActions(t, safe)
	if len(actions) != 6 {
		t.Fatalf("pong: expected 6 actions got %v", len(actions))
	}
	if !reflect.DeepEqual(actions[4],
		wrappers.AtariVNC(false, false, false, true, true)) {
		t.Errorf("pong: RIGHTFIRE translated to %v", actions[4])
	}

	safe, _, _ = newSafe(t, "gym-core.CartPole-v0")
	if len(hardcodedActions(t, safe)) != 2 {
		t.Error("cartpole: expected 2 actions")
	}
}

func TestSafeActionSpaceUnsupportedGymCore(t *testing.T) {
	spec, _ := environment.Default.Spec("gym-core.MountainCar-v0")
	_, err := wrappers.NewSafeActionSpace(newFakeEnv(spec), gymcore.Known,
		&recordingLogger{})

	var unsupported *wrappers.UnsupportedEnvError
	if !errors.As(err, &unsupported) {
		t.Fatalf("newSafeActionSpace: expected UnsupportedEnvError but "+
			"got %v", err)
	}
	if unsupported.ID != "MountainCar-v0" {
		t.Errorf("newSafeActionSpace: expected id MountainCar-v0 got %v",
			unsupported.ID)
	}
}

func TestSafeActionSpaceFallback(t *testing.T) {
	specs := []*environment.EnvSpec{
		nil,
		{ID: "flashgames.NeonRace-v0"},
		{ID: "wob.mini.ClickTest-v0",
			Tags: map[string]string{environment.RuntimeTag: "world-of-bits"}},
	}
	for _, spec := range specs {
		env := newFakeEnv(spec)
		safe, err := wrappers.NewSafeActionSpace(env, gymcore.Known,
			&recordingLogger{})
		if err != nil {
			t.Fatalf("newSafeActionSpace %v: %v", spec, err)
		}
		if safe.ActionSpace() != env.actionSpace {
			t.Errorf("actionSpace %v: expected the default action space", spec)
		}
		if _, ok := safe.Hardcoded(); ok {
			t.Errorf("hardcoded %v: expected no reduced action space", spec)
		}
		if _, _, _, err := safe.StepIndices([]int{0}); err == nil {
			t.Errorf("stepIndices %v: expected error without reduced "+
				"action space", spec)
		}
	}
}

func TestSafeActionSpaceDeprecation(t *testing.T) {
	_, _, logger := newSafe(t, "internet.SlitherIO-v0")
	if len(logger.messages) != 1 {
		t.Fatalf("newSafeActionSpace: expected 1 message got %v",
			logger.messages)
	}
	if !strings.HasPrefix(logger.messages[0], "DEPRECATION WARNING") {
		t.Errorf("newSafeActionSpace: unexpected message %q",
			logger.messages[0])
	}
}

func TestSafeActionSpaceStepIndices(t *testing.T) {
	safe, env, _ := newSafe(t, "internet.SlitherIO-v0")
	hardcoded, _ := safe.Hardcoded()

	expected := []spaces.Action{hardcoded.At(3), hardcoded.At(0),
		hardcoded.At(3)}
	if got := safe.Action([]int{3, 0, 3}); !reflect.DeepEqual(got, expected) {
		t.Errorf("action: expected %v got %v", expected, got)
	}

	if _, _, _, err := safe.StepIndices([]int{3, 0, 3}); err != nil {
		t.Fatalf("stepIndices: %v", err)
	}
	if len(env.stepped) != 1 || !reflect.DeepEqual(env.stepped[0], expected) {
		t.Errorf("stepIndices: environment stepped with %v", env.stepped)
	}
}

func TestSafeActionsClassification(t *testing.T) {
	tests := []struct {
		id       string
		expected wrappers.EnvKind
	}{
		{"gym-core.CartPole-v0", wrappers.GymCoreEnv},
		{"internet.SlitherIOEasy-v0", wrappers.CuratedGame},
		{"flashgames.RedBeard-v0", wrappers.CuratedGame},
		{"flashgames.CoasterRacer-v0", wrappers.Unrecognized},
		{"wob.mini.ClickButton-v0", wrappers.Unrecognized},
	}
	for _, test := range tests {
		spec, err := environment.Default.Spec(test.id)
		if err != nil {
			t.Fatalf("spec: %v", err)
		}
		if got := wrappers.ClassifyEnv(spec); got != test.expected {
			t.Errorf("classifyEnv %v: expected %v got %v", test.id,
				test.expected, got)
		}
	}
	if wrappers.ClassifyEnv(nil) != wrappers.Unrecognized {
		t.Error("classifyEnv: nil spec should be unrecognized")
	}

	space, err := wrappers.SafeActions(nil, gymcore.Known)
	if space != nil || err != nil {
		t.Errorf("safeActions: expected nil, nil but got %v, %v", space, err)
	}
}

func TestSafeActionsMissingGymCoreID(t *testing.T) {
	spec := &environment.EnvSpec{
		ID:   "gym-core.Broken-v0",
		Tags: map[string]string{environment.RuntimeTag: environment.GymCore},
	}
	if _, err := wrappers.SafeActions(spec, gymcore.Known); err == nil {
		t.Error("safeActions: expected error for missing gym_core_id")
	}
}
