package cpu

// Prefix is the opcode that selects the extended instruction table.
const Prefix = 0xCB

// Instruction describes one opcode: its mnemonic, its encoded length in
// bytes and the effect it has on the CPU. Instructions with a length of
// 0 manage PC themselves.
type Instruction struct {
	name   string
	length uint8
	fn     func(c *CPU)
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Length returns the number of bytes step advances PC by after
// executing the instruction.
func (i Instruction) Length() uint8 {
	return i.length
}

func (i Instruction) defined() bool {
	return i.fn != nil
}

var (
	// instructions is indexed by opcode.
	instructions [256]Instruction
	// instructionsCB is indexed by the byte following Prefix.
	instructionsCB [256]Instruction
)

// Lookup returns the instruction for an unprefixed opcode.
func Lookup(opcode uint8) (Instruction, bool) {
	i := instructions[opcode]
	return i, i.defined()
}

// LookupCB returns the instruction for a byte following Prefix.
func LookupCB(opcode uint8) (Instruction, bool) {
	i := instructionsCB[opcode]
	return i, i.defined()
}

// define adds an instruction to the primary table.
func define(opcode uint8, name string, length uint8, fn func(c *CPU)) {
	instructions[opcode] = Instruction{name: name, length: length, fn: fn}
}

// defineCB adds an instruction to the extended table. Every extended
// instruction is 2 bytes long.
func defineCB(opcode uint8, name string, fn func(c *CPU)) {
	instructionsCB[opcode] = Instruction{name: name, length: 2, fn: fn}
}

// operand is an 8-bit source or destination selected by the 3-bit
// register field of an opcode: B, C, D, E, H, L, (HL), A.
type operand struct {
	name string
	get  func(c *CPU) uint8
	set  func(c *CPU, v uint8)
}

var operands = [8]operand{
	{"B", func(c *CPU) uint8 { return c.B }, func(c *CPU, v uint8) { c.B = v }},
	{"C", func(c *CPU) uint8 { return c.C }, func(c *CPU, v uint8) { c.C = v }},
	{"D", func(c *CPU) uint8 { return c.D }, func(c *CPU, v uint8) { c.D = v }},
	{"E", func(c *CPU) uint8 { return c.E }, func(c *CPU, v uint8) { c.E = v }},
	{"H", func(c *CPU) uint8 { return c.H }, func(c *CPU, v uint8) { c.H = v }},
	{"L", func(c *CPU) uint8 { return c.L }, func(c *CPU, v uint8) { c.L = v }},
	{"(HL)", func(c *CPU) uint8 { return c.read(c.HL.Uint16()) }, func(c *CPU, v uint8) { c.write(c.HL.Uint16(), v) }},
	{"A", func(c *CPU) uint8 { return c.A }, func(c *CPU, v uint8) { c.A = v }},
}

// pairOperand is a 16-bit register selected by bits 4-5 of an opcode.
type pairOperand struct {
	name string
	get  func(c *CPU) uint16
	set  func(c *CPU, v uint16)
}

// pairs is the BC, DE, HL, SP ordering used by loads and arithmetic.
var pairs = [4]pairOperand{
	{"BC", func(c *CPU) uint16 { return c.BC.Uint16() }, func(c *CPU, v uint16) { c.BC.SetUint16(v) }},
	{"DE", func(c *CPU) uint16 { return c.DE.Uint16() }, func(c *CPU, v uint16) { c.DE.SetUint16(v) }},
	{"HL", func(c *CPU) uint16 { return c.HL.Uint16() }, func(c *CPU, v uint16) { c.HL.SetUint16(v) }},
	{"SP", func(c *CPU) uint16 { return c.SP }, func(c *CPU, v uint16) { c.SP = v }},
}

// stackPairs is the BC, DE, HL, AF ordering used by PUSH and POP.
var stackPairs = [4]pairOperand{
	pairs[0],
	pairs[1],
	pairs[2],
	{"AF", func(c *CPU) uint16 { return c.AF.Uint16() }, func(c *CPU, v uint16) { c.setAF(v) }},
}
