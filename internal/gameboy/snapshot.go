package gameboy

import (
	"encoding/binary"

	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/types"
)

// SnapshotSize is the length of an encoded Snapshot.
const SnapshotSize = 8 + 2 + 2 + 8 + 2 + 11 + types.OAMSize

// Snapshot is a point in time copy of the machine for debug viewers.
type Snapshot struct {
	Steps uint64
	CPU   cpu.Snapshot
	Video VideoState
}

// MarshalBinary encodes the snapshot in a fixed little-endian layout:
//
//	steps         uint64
//	PC, SP        uint16
//	A F B C D E H L
//	flags         bit 0 IME, bit 1 halted
//	state         cpu.State
//	LCDC STAT SCY SCX LY LYC BGP OBP0 OBP1 WY WX
//	OAM           160 bytes
func (s Snapshot) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, SnapshotSize)
	b = binary.LittleEndian.AppendUint64(b, s.Steps)
	b = binary.LittleEndian.AppendUint16(b, s.CPU.PC)
	b = binary.LittleEndian.AppendUint16(b, s.CPU.SP)

	c := s.CPU
	b = append(b, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L)

	var flags uint8
	if c.IME {
		flags |= types.Bit0
	}
	if c.Halted {
		flags |= types.Bit1
	}
	b = append(b, flags, uint8(c.State))

	v := s.Video
	b = append(b, v.LCDC, v.STAT, v.SCY, v.SCX, v.LY, v.LYC, v.BGP, v.OBP0, v.OBP1, v.WY, v.WX)
	b = append(b, v.OAM[:]...)

	return b, nil
}
