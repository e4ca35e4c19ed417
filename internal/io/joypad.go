package io

import (
	"github.com/thelolagemann/dmgcore/internal/types"
)

// updateJoypad copies the selected button group into the low nibble of
// P1 and requests the joypad interrupt when any line goes from high to
// low. Bit 4 low selects the directions, bit 5 low the action buttons.
func (r *Registers) updateJoypad() {
	previous := r.get(types.P1)
	state := r.input.State()

	lines := uint8(0x0F)
	if previous&types.Bit4 == 0 {
		lines &^= state.Directions()
	}
	if previous&types.Bit5 == 0 {
		lines &^= state.Actions()
	}

	r.set(types.P1, previous&0xF0|lines)

	if previous&^lines&0x0F != 0 {
		r.Request(types.JoypadInterrupt)
	}
}
