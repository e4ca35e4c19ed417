package cpu

import (
	"fmt"

	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// alu8 is one of the eight accumulator operations selected by bits 3-5
// of opcodes 0x80 - 0xBF and 0xC6 - 0xFE.
type alu8 struct {
	name string
	fn   func(c *CPU, v uint8)
}

var aluOps = [8]alu8{
	{"ADD A,", func(c *CPU, v uint8) { c.A = c.add8(c.A, v) }},
	{"ADC A,", func(c *CPU, v uint8) { c.A = c.adc8(c.A, v) }},
	{"SUB ", func(c *CPU, v uint8) { c.A = c.sub8(c.A, v) }},
	{"SBC A,", func(c *CPU, v uint8) { c.A = c.sbc8(c.A, v) }},
	{"AND ", func(c *CPU, v uint8) { c.A = c.and8(c.A, v) }},
	{"XOR ", func(c *CPU, v uint8) { c.A = c.xor8(c.A, v) }},
	{"OR ", func(c *CPU, v uint8) { c.A = c.or8(c.A, v) }},
	{"CP ", func(c *CPU, v uint8) { c.cp8(c.A, v) }},
}

func init() {
	generateLoadInstructions()
	generateArithmeticInstructions()
	generateJumpInstructions()
	generateStackInstructions()
	generateControlInstructions()
}

func generateLoadInstructions() {
	// 0x40 - 0x7F - LD r, r' (0x76 is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			if dst == 6 && src == 6 {
				continue
			}
			to, from := operands[dst], operands[src]
			define(0x40|dst<<3|src, fmt.Sprintf("LD %s,%s", to.name, from.name), 1, func(c *CPU) {
				to.set(c, from.get(c))
			})
		}
	}

	// 0x06, 0x0E ... 0x3E - LD r, d8
	for dst := uint8(0); dst < 8; dst++ {
		to := operands[dst]
		define(0x06|dst<<3, fmt.Sprintf("LD %s,n", to.name), 2, func(c *CPU) {
			to.set(c, c.arg1())
		})
	}

	// 0x01, 0x11, 0x21, 0x31 - LD rr, d16
	for i, p := range pairs {
		p := p
		define(0x01|uint8(i)<<4, fmt.Sprintf("LD %s,nn", p.name), 3, func(c *CPU) {
			p.set(c, c.arg12())
		})
	}

	define(0x02, "LD (BC),A", 1, func(c *CPU) { c.write(c.BC.Uint16(), c.A) })
	define(0x0A, "LD A,(BC)", 1, func(c *CPU) { c.A = c.read(c.BC.Uint16()) })
	define(0x12, "LD (DE),A", 1, func(c *CPU) { c.write(c.DE.Uint16(), c.A) })
	define(0x1A, "LD A,(DE)", 1, func(c *CPU) { c.A = c.read(c.DE.Uint16()) })
	define(0x22, "LD (HL+),A", 1, func(c *CPU) {
		c.write(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	define(0x2A, "LD A,(HL+)", 1, func(c *CPU) {
		c.A = c.read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	define(0x32, "LD (HL-),A", 1, func(c *CPU) {
		c.write(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	define(0x3A, "LD A,(HL-)", 1, func(c *CPU) {
		c.A = c.read(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	define(0x08, "LD (nn),SP", 3, func(c *CPU) { c.write16(c.arg12(), c.SP) })
	define(0xE0, "LDH (n),A", 2, func(c *CPU) { c.write(0xFF00+uint16(c.arg1()), c.A) })
	define(0xF0, "LDH A,(n)", 2, func(c *CPU) { c.A = c.read(0xFF00 + uint16(c.arg1())) })
	define(0xE2, "LD (C),A", 1, func(c *CPU) { c.write(0xFF00+uint16(c.C), c.A) })
	define(0xF2, "LD A,(C)", 1, func(c *CPU) { c.A = c.read(0xFF00 + uint16(c.C)) })
	define(0xEA, "LD (nn),A", 3, func(c *CPU) { c.write(c.arg12(), c.A) })
	define(0xFA, "LD A,(nn)", 3, func(c *CPU) { c.A = c.read(c.arg12()) })
	define(0xF8, "LD HL,SP+d", 2, func(c *CPU) {
		c.HL.SetUint16(c.add16s(c.SP, bits.Signed(c.arg1())))
	})
	define(0xF9, "LD SP,HL", 1, func(c *CPU) { c.SP = c.HL.Uint16() })
}

func generateArithmeticInstructions() {
	// 0x80 - 0xBF - ALU A, r
	for op := uint8(0); op < 8; op++ {
		for src := uint8(0); src < 8; src++ {
			alu, from := aluOps[op], operands[src]
			define(0x80|op<<3|src, alu.name+from.name, 1, func(c *CPU) {
				alu.fn(c, from.get(c))
			})
		}
	}

	// 0xC6, 0xCE ... 0xFE - ALU A, d8
	for op := uint8(0); op < 8; op++ {
		alu := aluOps[op]
		define(0xC6|op<<3, alu.name+"n", 2, func(c *CPU) {
			alu.fn(c, c.arg1())
		})
	}

	// 0x04/0x05, 0x0C/0x0D ... 0x3C/0x3D - INC r, DEC r
	for r := uint8(0); r < 8; r++ {
		reg := operands[r]
		define(0x04|r<<3, "INC "+reg.name, 1, func(c *CPU) {
			reg.set(c, c.inc8(reg.get(c)))
		})
		define(0x05|r<<3, "DEC "+reg.name, 1, func(c *CPU) {
			reg.set(c, c.dec8(reg.get(c)))
		})
	}

	// 0x03/0x0B ... 0x33/0x3B - INC rr, DEC rr; 0x09 ... 0x39 - ADD HL, rr
	for i, p := range pairs {
		p := p
		define(0x03|uint8(i)<<4, "INC "+p.name, 1, func(c *CPU) { p.set(c, p.get(c)+1) })
		define(0x0B|uint8(i)<<4, "DEC "+p.name, 1, func(c *CPU) { p.set(c, p.get(c)-1) })
		define(0x09|uint8(i)<<4, "ADD HL,"+p.name, 1, func(c *CPU) {
			c.HL.SetUint16(c.addHL(c.HL.Uint16(), p.get(c)))
		})
	}

	define(0xE8, "ADD SP,d", 2, func(c *CPU) { c.SP = c.add16s(c.SP, bits.Signed(c.arg1())) })

	define(0x07, "RLCA", 1, (*CPU).rlcA)
	define(0x0F, "RRCA", 1, (*CPU).rrcA)
	define(0x17, "RLA", 1, (*CPU).rlA)
	define(0x1F, "RRA", 1, (*CPU).rrA)
	define(0x27, "DAA", 1, (*CPU).daa)
	define(0x2F, "CPL", 1, (*CPU).cpl)
	define(0x37, "SCF", 1, (*CPU).scf)
	define(0x3F, "CCF", 1, (*CPU).ccf)
}

// generateJumpInstructions defines the branches. All of them have a
// length of 0: they either set PC or step over themselves when the
// condition fails.
func generateJumpInstructions() {
	conds := []struct {
		cond   condition
		offset uint8
	}{
		{notZero, 0x00},
		{zero, 0x08},
		{notCarry, 0x10},
		{isCarry, 0x18},
	}

	define(0xC3, "JP nn", 0, func(c *CPU) { c.jp(always) })
	define(0x18, "JR d", 0, func(c *CPU) { c.jr(always) })
	define(0xCD, "CALL nn", 0, func(c *CPU) { c.call(always) })
	define(0xC9, "RET", 0, func(c *CPU) { c.ret(always) })
	define(0xE9, "JP (HL)", 0, func(c *CPU) { c.PC = c.HL.Uint16() })
	define(0xD9, "RETI", 0, func(c *CPU) {
		c.PC = c.pop16()
		c.ime = true
	})

	for _, cc := range conds {
		cond, name := cc.cond, conditionNames[cc.cond]
		define(0xC2+cc.offset, "JP "+name+",nn", 0, func(c *CPU) { c.jp(cond) })
		define(0x20+cc.offset, "JR "+name+",d", 0, func(c *CPU) { c.jr(cond) })
		define(0xC4+cc.offset, "CALL "+name+",nn", 0, func(c *CPU) { c.call(cond) })
		define(0xC0+cc.offset, "RET "+name, 0, func(c *CPU) { c.ret(cond) })
	}

	// 0xC7, 0xCF ... 0xFF - RST n
	for n := uint8(0); n < 8; n++ {
		vector := uint16(n) * 8
		define(0xC7|n<<3, fmt.Sprintf("RST %02XH", vector), 0, func(c *CPU) {
			c.push16(c.PC + 1)
			c.PC = vector
		})
	}
}

// jp jumps to the address following the opcode.
func (c *CPU) jp(cond condition) {
	if c.check(cond) {
		c.PC = c.arg12()
	} else {
		c.PC += 3
	}
}

// jr jumps relative to the address after the instruction.
func (c *CPU) jr(cond condition) {
	if c.check(cond) {
		c.PC = uint16(int32(c.PC) + int32(bits.Signed(c.arg1())) + 2)
	} else {
		c.PC += 2
	}
}

// call pushes the address after the instruction and jumps.
func (c *CPU) call(cond condition) {
	next := c.PC + 3
	if c.check(cond) {
		c.push16(next)
		c.PC = c.arg12()
	} else {
		c.PC = next
	}
}

// ret pops PC from the stack.
func (c *CPU) ret(cond condition) {
	if c.check(cond) {
		c.PC = c.pop16()
	} else {
		c.PC++
	}
}

func generateStackInstructions() {
	for i, p := range stackPairs {
		p := p
		define(0xC5|uint8(i)<<4, "PUSH "+p.name, 1, func(c *CPU) { c.push16(p.get(c)) })
		define(0xC1|uint8(i)<<4, "POP "+p.name, 1, func(c *CPU) { p.set(c, c.pop16()) })
	}
}

func generateControlInstructions() {
	define(0x00, "NOP", 1, func(c *CPU) {})
	define(0x10, "STOP", 1, func(c *CPU) { c.stopped = true })
	define(0x76, "HALT", 1, func(c *CPU) {
		// without IME there is nothing to wake up on
		if c.ime {
			c.halted = true
		}
	})
	define(0xF3, "DI", 1, func(c *CPU) { c.ime = false })
	define(0xFB, "EI", 0, func(c *CPU) {
		c.PC++
		c.step()
		if c.hookErr == nil {
			c.ime = true
		}
	})
}
