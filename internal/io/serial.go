package io

import (
	"github.com/thelolagemann/dmgcore/internal/types"
)

// ByteWriter receives every byte shifted out of the serial port.
type ByteWriter interface {
	WriteByte(c byte) error
}

// ConnectSerial attaches w to the serial port. With nothing connected
// transfers never complete, as on hardware without a link cable.
func (r *Registers) ConnectSerial(w ByteWriter) {
	r.serial = w
}

// updateSerial completes a transfer started with the internal clock
// (SC bits 7 and 0) in a single update. The byte in SB is handed to the
// connected writer and replaced by 0xFF, as nothing drives the input
// line.
func (r *Registers) updateSerial() {
	if r.serial == nil {
		return
	}
	sc := r.get(types.SC)
	if sc&(types.Bit7|types.Bit0) != types.Bit7|types.Bit0 {
		return
	}

	if err := r.serial.WriteByte(r.get(types.SB)); err != nil {
		r.log.Errorf("serial: %v", err)
	}
	r.set(types.SB, 0xFF)
	r.set(types.SC, sc&^types.Bit7)
	r.Request(types.SerialInterrupt)
}
