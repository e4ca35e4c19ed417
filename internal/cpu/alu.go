package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// add8 adds b to a.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add8(a, b uint8) uint8 {
	result := a + b
	c.setFlags(result == 0, false, a&0xF+b&0xF > 0xF, uint16(a)+uint16(b) > 0xFF)
	return result
}

// adc8 adds b and the carry flag to a.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) adc8(a, b uint8) uint8 {
	carry := c.carry()
	result := a + b + carry
	c.setFlags(result == 0, false, a&0xF+b&0xF+carry > 0xF, uint16(a)+uint16(b)+uint16(carry) > 0xFF)
	return result
}

// sub8 subtracts b from a.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub8(a, b uint8) uint8 {
	return c.subtract(a, b, 0)
}

// sbc8 subtracts b and the carry flag from a.
func (c *CPU) sbc8(a, b uint8) uint8 {
	return c.subtract(a, b, c.carry())
}

// cp8 sets the flags of sub8 without keeping the result.
func (c *CPU) cp8(a, b uint8) {
	c.subtract(a, b, 0)
}

func (c *CPU) subtract(a, b, carry uint8) uint8 {
	result := a - b - carry
	c.setFlags(result == 0, true, a&0xF < b&0xF+carry, uint16(b)+uint16(carry) > uint16(a))
	return result
}

// and8 performs a bitwise AND.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and8(a, b uint8) uint8 {
	result := a & b
	c.setFlags(result == 0, false, true, false)
	return result
}

// or8 performs a bitwise OR. H and C are reset.
func (c *CPU) or8(a, b uint8) uint8 {
	result := a | b
	c.setFlags(result == 0, false, false, false)
	return result
}

// xor8 performs a bitwise XOR. H and C are reset.
func (c *CPU) xor8(a, b uint8) uint8 {
	result := a ^ b
	c.setFlags(result == 0, false, false, false)
	return result
}

// inc8 increments a.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) inc8(a uint8) uint8 {
	result := a + 1
	c.setFlagTo(FlagZero, result == 0)
	c.clearFlag(FlagSubtract)
	c.setFlagTo(FlagHalfCarry, a&0xF == 0xF)
	return result
}

// dec8 decrements a.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) dec8(a uint8) uint8 {
	result := a - 1
	c.setFlagTo(FlagZero, result == 0)
	c.setFlag(FlagSubtract)
	c.setFlagTo(FlagHalfCarry, a&0xF == 0)
	return result
}

// add16 adds two 16-bit values.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) add16(a, b uint16) uint16 {
	result := a + b
	c.setFlags(result == 0, false, a&0xFFF+b&0xFFF > 0xFFF, uint32(a)+uint32(b) > 0xFFFF)
	return result
}

// addHL is add16 for ADD HL,rr, which leaves Z alone.
func (c *CPU) addHL(a, b uint16) uint16 {
	zero := c.isFlagSet(FlagZero)
	result := c.add16(a, b)
	c.setFlagTo(FlagZero, zero)
	return result
}

// add16s adds a signed displacement to a 16-bit value, as used by
// ADD SP,d and LD HL,SP+d. Carries are taken from the low byte.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add16s(a uint16, d int8) uint16 {
	b := uint16(int16(d))
	c.setFlags(false, false, a&0xF+b&0xF > 0xF, a&0xFF+b&0xFF > 0xFF)
	return a + b
}

// rlc rotates a left, copying bit 7 into bit 0 and the carry flag.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7.
func (c *CPU) rlc(a uint8) uint8 {
	result := a<<1 | a>>7
	c.setFlags(result == 0, false, false, a&0x80 != 0)
	return result
}

// rrc rotates a right, copying bit 0 into bit 7 and the carry flag.
func (c *CPU) rrc(a uint8) uint8 {
	result := a>>1 | a<<7
	c.setFlags(result == 0, false, false, a&0x01 != 0)
	return result
}

// rl rotates a left through the carry flag.
func (c *CPU) rl(a uint8) uint8 {
	result := a<<1 | c.carry()
	c.setFlags(result == 0, false, false, a&0x80 != 0)
	return result
}

// rr rotates a right through the carry flag.
func (c *CPU) rr(a uint8) uint8 {
	result := a>>1 | c.carry()<<7
	c.setFlags(result == 0, false, false, a&0x01 != 0)
	return result
}

// rlcA, rrcA, rlA and rrA are the unprefixed accumulator rotates.
// They rotate exactly like their prefixed forms but always reset Z.
func (c *CPU) rlcA() {
	c.A = c.rlc(c.A)
	c.clearFlag(FlagZero)
}

func (c *CPU) rrcA() {
	c.A = c.rrc(c.A)
	c.clearFlag(FlagZero)
}

func (c *CPU) rlA() {
	c.A = c.rl(c.A)
	c.clearFlag(FlagZero)
}

func (c *CPU) rrA() {
	c.A = c.rr(c.A)
	c.clearFlag(FlagZero)
}

// sla shifts a left into the carry flag. Bit 0 is reset.
func (c *CPU) sla(a uint8) uint8 {
	result := a << 1
	c.setFlags(result == 0, false, false, a&0x80 != 0)
	return result
}

// sra shifts a right into the carry flag. Bit 7 is unchanged.
func (c *CPU) sra(a uint8) uint8 {
	result := a>>1 | a&0x80
	c.setFlags(result == 0, false, false, a&0x01 != 0)
	return result
}

// srl shifts a right into the carry flag. Bit 7 is reset.
func (c *CPU) srl(a uint8) uint8 {
	result := a >> 1
	c.setFlags(result == 0, false, false, a&0x01 != 0)
	return result
}

// swap exchanges the nibbles of a. N, H and C are reset.
func (c *CPU) swap(a uint8) uint8 {
	result := a<<4 | a>>4
	c.setFlags(result == 0, false, false, false)
	return result
}

// bit tests bit pos of a.
//
// Flags affected:
//
//	Z - Set if bit pos of a is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) bit(pos, a uint8) {
	c.setFlagTo(FlagZero, !bits.Test(a, pos))
	c.clearFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// daa adjusts A into binary coded decimal after an addition or
// subtraction, using N to tell which it was.
//
// Flags affected:
//
//	Z - Set if A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment carried.
func (c *CPU) daa() {
	if c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	}

	c.setFlagTo(FlagZero, c.A == 0)
	c.clearFlag(FlagHalfCarry)
}

// cpl complements A. N and H are set.
func (c *CPU) cpl() {
	c.A = ^c.A
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// ccf complements the carry flag. N and H are reset.
func (c *CPU) ccf() {
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlagTo(FlagCarry, !c.isFlagSet(FlagCarry))
}

// scf sets the carry flag. N and H are reset.
func (c *CPU) scf() {
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	c.setFlag(FlagCarry)
}
