// Package wrappers implements wrappers that reduce the raw VNC action
// space of Universe environments to a small set of discrete actions.
// Reduced action spaces make random exploration far more effective,
// so they are convenient for research even though the raw VNC space
// is more general.
package wrappers

import "github.com/samuelfneumann/gouniverse/spaces"

// AtariVNC returns the key events of an Atari controller state. The
// events are always in the order up, left, right, down, z, where z is
// the fire button.
func AtariVNC(up, down, left, right, z bool) spaces.Action {
	return spaces.Action{
		spaces.KeyEventByName("up", up),
		spaces.KeyEventByName("left", left),
		spaces.KeyEventByName("right", right),
		spaces.KeyEventByName("down", down),
		spaces.KeyEventByName("z", z),
	}
}

// SlitherVNC returns the key events of a Slither.io controller state:
// space (boost), left, right
func SlitherVNC(space, left, right bool) spaces.Action {
	return spaces.Action{
		spaces.KeyEventByName("space", space),
		spaces.KeyEventByName("left", left),
		spaces.KeyEventByName("right", right),
	}
}

// RacingVNC returns the key events of a racing game controller state:
// up (accelerate), left, right
func RacingVNC(up, left, right bool) spaces.Action {
	return spaces.Action{
		spaces.KeyEventByName("up", up),
		spaces.KeyEventByName("left", left),
		spaces.KeyEventByName("right", right),
	}
}

// PlatformVNC returns the key events of a platformer controller state:
// up, left, right, space (jump)
func PlatformVNC(up, left, right, space bool) spaces.Action {
	return spaces.Action{
		spaces.KeyEventByName("up", up),
		spaces.KeyEventByName("left", left),
		spaces.KeyEventByName("right", right),
		spaces.KeyEventByName("space", space),
	}
}
