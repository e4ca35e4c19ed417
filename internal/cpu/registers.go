package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// Register is one of the 8-bit CPU registers.
type Register = uint8

// RegisterPair views two 8-bit registers as one 16-bit register, with
// High holding the most significant byte.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the pair.
func (r *RegisterPair) Uint16() uint16 {
	return bits.Join(*r.High, *r.Low)
}

// SetUint16 sets the value of the pair.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High, *r.Low = bits.Split(value)
}

// Registers holds the 8-bit registers and the pairs built from them.
// F only ever uses its upper nibble.
type Registers struct {
	A Register
	F Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

func (r *Registers) pair() {
	r.AF = &RegisterPair{&r.A, &r.F}
	r.BC = &RegisterPair{&r.B, &r.C}
	r.DE = &RegisterPair{&r.D, &r.E}
	r.HL = &RegisterPair{&r.H, &r.L}
}

// setAF writes AF, keeping the low nibble of F clear.
func (r *Registers) setAF(value uint16) {
	r.A, r.F = bits.Split(value)
	r.F &= 0xF0
}

// Snapshot is a copy of the CPU's architectural state.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	PC, SP                 uint16
	IME                    bool
	Halted                 bool
	State                  State
}
