package cpu

import "github.com/thelolagemann/dmgcore/pkg/bits"

// read reads the byte at addr from the bus.
func (c *CPU) read(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// write writes value to addr on the bus.
func (c *CPU) write(addr uint16, value uint8) {
	c.bus.Write(addr, value)
}

// read16 reads a little-endian word at addr.
func (c *CPU) read16(addr uint16) uint16 {
	return bits.Join(c.read(addr+1), c.read(addr))
}

// write16 writes value as a little-endian word at addr.
func (c *CPU) write16(addr uint16, value uint16) {
	high, low := bits.Split(value)
	c.write(addr, low)
	c.write(addr+1, high)
}

// arg1 returns the byte following the opcode.
func (c *CPU) arg1() uint8 {
	return c.read(c.PC + 1)
}

// arg2 returns the second byte following the opcode.
func (c *CPU) arg2() uint8 {
	return c.read(c.PC + 2)
}

// arg12 returns the two bytes following the opcode as a little-endian
// word.
func (c *CPU) arg12() uint16 {
	return bits.Join(c.arg2(), c.arg1())
}

// push16 pushes value onto the stack, high byte first, leaving SP
// pointing at the low byte.
func (c *CPU) push16(value uint16) {
	high, low := bits.Split(value)
	c.SP--
	c.write(c.SP, high)
	c.SP--
	c.write(c.SP, low)
}

// pop16 pops a word pushed by push16.
func (c *CPU) pop16() uint16 {
	low := c.read(c.SP)
	c.SP++
	high := c.read(c.SP)
	c.SP++
	return bits.Join(high, low)
}
