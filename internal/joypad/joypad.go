// Package joypad holds the button state published by an input
// collaborator and read by the I/O block once per update.
package joypad

import "sync/atomic"

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

// State is a snapshot of all eight buttons, one bit per Button. A set
// bit means the button is held. The low nibble holds the action
// buttons, the high nibble the directions, both in the order they
// appear in bits 0-3 of P1.
type State uint8

// FromPressed builds a State from eight flags indexed by Button.
func FromPressed(pressed [8]bool) State {
	var s State
	for b, p := range pressed {
		if p {
			s |= 1 << b
		}
	}
	return s
}

// Pressed reports whether b is held.
func (s State) Pressed(b Button) bool {
	return s&(1<<b) != 0
}

// Actions returns A, B, Select and Start in bits 0-3.
func (s State) Actions() uint8 {
	return uint8(s) & 0x0F
}

// Directions returns Right, Left, Up and Down in bits 0-3.
func (s State) Directions() uint8 {
	return uint8(s) >> 4
}

// Source supplies the current button state.
type Source interface {
	State() State
}

// Input is a Source written by one goroutine (the input poller) and read
// by another (the stepping loop). Every read sees a complete State.
type Input struct {
	state atomic.Uint32
}

// NewInput returns an Input with no buttons held.
func NewInput() *Input {
	return &Input{}
}

// State returns the most recently published state.
func (i *Input) State() State {
	return State(i.state.Load())
}

// Set publishes a complete state.
func (i *Input) Set(s State) {
	i.state.Store(uint32(s))
}

// Press marks b as held.
func (i *Input) Press(b Button) {
	i.update(func(s State) State { return s | 1<<b })
}

// Release marks b as released.
func (i *Input) Release(b Button) {
	i.update(func(s State) State { return s &^ (1 << b) })
}

func (i *Input) update(fn func(State) State) {
	for {
		old := i.state.Load()
		if i.state.CompareAndSwap(old, uint32(fn(State(old)))) {
			return
		}
	}
}

// None is a Source with nothing pressed.
var None Source = noInput{}

type noInput struct{}

func (noInput) State() State { return 0 }
