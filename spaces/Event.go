// Package spaces implements the VNC input events that drive Universe
// environments and the action spaces built from them.
package spaces

import (
	"fmt"
	"strings"
)

// Event is a single VNC input event. The only implementations are
// KeyEvent and PointerEvent.
type Event interface {
	fmt.Stringer

	// Compile converts the event to the tuple form consumed by the
	// remote stepping layer
	Compile() []interface{}

	isEvent()
}

// KeyEvent is a key press or release
type KeyEvent struct {
	Key    string
	KeySym uint32
	Down   bool
}

// KeyEventByName returns a KeyEvent for the named key. Key names are
// case insensitive. KeyEventByName panics if the key name is unknown.
func KeyEventByName(name string, down bool) KeyEvent {
	key := strings.ToLower(name)
	sym, ok := keySyms[key]
	if !ok {
		panic(fmt.Sprintf("keyEventByName: no such key %q", name))
	}
	return KeyEvent{Key: key, KeySym: sym, Down: down}
}

// Compile implements the Event interface
func (k KeyEvent) Compile() []interface{} {
	return []interface{}{"KeyEvent", k.Key, k.Down}
}

func (k KeyEvent) String() string {
	return fmt.Sprintf("KeyEvent<key=%v down=%v>", k.Key, k.Down)
}

func (KeyEvent) isEvent() {}

// PointerEvent moves the pointer to (X, Y) with the buttons in
// ButtonMask held. Bit 0 of the mask is the left button.
type PointerEvent struct {
	X          int
	Y          int
	ButtonMask int
}

// Compile implements the Event interface
func (p PointerEvent) Compile() []interface{} {
	return []interface{}{"PointerEvent", p.X, p.Y, p.ButtonMask}
}

func (p PointerEvent) String() string {
	return fmt.Sprintf("PointerEvent<x=%v y=%v buttonmask=%v>", p.X, p.Y,
		p.ButtonMask)
}

func (PointerEvent) isEvent() {}

// Action is a sequence of events applied in order during a single
// timestep
type Action []Event

// Compile compiles each event in the action
func (a Action) Compile() [][]interface{} {
	compiled := make([][]interface{}, len(a))
	for i, event := range a {
		compiled[i] = event.Compile()
	}
	return compiled
}

func (a Action) String() string {
	events := make([]string, len(a))
	for i, event := range a {
		events[i] = event.String()
	}
	return "[" + strings.Join(events, ", ") + "]"
}

// keySyms maps key names to X11 keysyms
var keySyms = func() map[string]uint32 {
	syms := map[string]uint32{
		"backspace": 0xff08,
		"tab":       0xff09,
		"return":    0xff0d,
		"enter":     0xff0d,
		"escape":    0xff1b,
		"esc":       0xff1b,
		"space":     0x0020,
		"home":      0xff50,
		"left":      0xff51,
		"up":        0xff52,
		"right":     0xff53,
		"down":      0xff54,
		"pageup":    0xff55,
		"pagedown":  0xff56,
		"end":       0xff57,
		"insert":    0xff63,
		"delete":    0xffff,
		"shift":     0xffe1,
		"ctrl":      0xffe3,
		"alt":       0xffe9,
	}
	for c := 'a'; c <= 'z'; c++ {
		syms[string(c)] = uint32(c)
	}
	for c := '0'; c <= '9'; c++ {
		syms[string(c)] = uint32(c)
	}
	for i := 1; i <= 12; i++ {
		syms[fmt.Sprintf("f%d", i)] = 0xffbe + uint32(i-1)
	}
	return syms
}()
