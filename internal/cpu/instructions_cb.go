package cpu

import "fmt"

// shiftOps are the rotate, shift and swap operations of 0xCB 0x00 - 0x3F,
// selected by bits 3-5.
var shiftOps = [8]struct {
	name string
	fn   func(c *CPU, v uint8) uint8
}{
	{"RLC", (*CPU).rlc},
	{"RRC", (*CPU).rrc},
	{"RL", (*CPU).rl},
	{"RR", (*CPU).rr},
	{"SLA", (*CPU).sla},
	{"SRA", (*CPU).sra},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).srl},
}

func init() {
	for r := uint8(0); r < 8; r++ {
		reg := operands[r]

		// 0x00 - 0x3F - RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL
		for op := uint8(0); op < 8; op++ {
			shift := shiftOps[op]
			defineCB(op<<3|r, shift.name+" "+reg.name, func(c *CPU) {
				reg.set(c, shift.fn(c, reg.get(c)))
			})
		}

		for b := uint8(0); b < 8; b++ {
			pos := b

			// 0x40 - 0x7F - BIT b, r
			defineCB(0x40|b<<3|r, fmt.Sprintf("BIT %d,%s", b, reg.name), func(c *CPU) {
				c.bit(pos, reg.get(c))
			})
			// 0x80 - 0xBF - RES b, r
			defineCB(0x80|b<<3|r, fmt.Sprintf("RES %d,%s", b, reg.name), func(c *CPU) {
				reg.set(c, reg.get(c)&^(1<<pos))
			})
			// 0xC0 - 0xFF - SET b, r
			defineCB(0xC0|b<<3|r, fmt.Sprintf("SET %d,%s", b, reg.name), func(c *CPU) {
				reg.set(c, reg.get(c)|1<<pos)
			})
		}
	}
}
