package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// setFlag sets a flag.
func (c *CPU) setFlag(flag Flag) {
	c.F |= 1 << flag
}

// clearFlag clears a flag.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= 1 << flag
}

// setFlagTo sets or clears a flag.
func (c *CPU) setFlagTo(flag Flag, on bool) {
	if on {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// isFlagsSet returns true if all the given flags are set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// setFlags replaces all four flags at once and clears the unused
// low nibble of F.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = 0
	c.setFlagTo(FlagZero, zero)
	c.setFlagTo(FlagSubtract, subtract)
	c.setFlagTo(FlagHalfCarry, halfCarry)
	c.setFlagTo(FlagCarry, carry)
}

// carry returns the carry flag as 0 or 1.
func (c *CPU) carry() uint8 {
	return bits.FromBool(c.isFlagSet(FlagCarry))
}

// condition is a branch condition of JP, JR, CALL and RET.
type condition uint8

const (
	always condition = iota
	notZero
	zero
	notCarry
	isCarry
)

var conditionNames = [...]string{"", "NZ", "Z", "NC", "C"}

func (c *CPU) check(cond condition) bool {
	switch cond {
	case notZero:
		return !c.isFlagSet(FlagZero)
	case zero:
		return c.isFlagSet(FlagZero)
	case notCarry:
		return !c.isFlagSet(FlagCarry)
	case isCarry:
		return c.isFlagSet(FlagCarry)
	}
	return true
}
