// Package cpu implements the Sharp LR35902 instruction set: the
// register file, flag arithmetic, both opcode tables and interrupt
// dispatch. The CPU reaches memory only through a Bus.
package cpu

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// ErrUnknownOpcode is wrapped by the DecodeError returned when the CPU
// fetches an opcode that has no table entry.
var ErrUnknownOpcode = errors.New("cpu: unknown opcode")

// DecodeError describes an undefined opcode and where it was fetched.
type DecodeError struct {
	Opcode   uint8
	Prefixed bool
	PC       uint16
}

func (e *DecodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unknown opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// State is the run state of the CPU.
type State uint8

const (
	// Running executes one instruction per step.
	Running State = iota
	// Halted waits for an interrupt.
	Halted
	// Stopped has executed STOP. Steps keep executing instructions.
	Stopped
	// Faulted has fetched an undefined opcode and executes nothing.
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Bus is the memory the CPU executes from.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// CPU represents the Game Boy CPU. It is responsible for executing
// instructions and dispatching interrupts.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	ime     bool
	halted  bool
	stopped bool
	fault   error

	hook    ExecuteHook
	hookErr error

	bus Bus
	log log.Logger
}

// ExecuteHook is called with every instruction just before it executes,
// including the one EI runs in its own step. A returned error ends the
// step without executing the instruction.
type ExecuteHook func(pc uint16, instr Instruction) error

// New creates a CPU executing from bus. All registers start at zero.
func New(bus Bus, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	c := &CPU{
		bus: bus,
		log: logger.WithCategory("cpu"),
	}
	c.pair()
	return c
}

// Step services a pending interrupt or executes one instruction. Once an
// undefined opcode has been fetched every call returns the same
// *DecodeError and the CPU does nothing.
func (c *CPU) Step() error {
	if c.fault != nil {
		return c.fault
	}
	c.step()
	if err := c.hookErr; err != nil {
		c.hookErr = nil
		return err
	}
	return c.fault
}

// OnExecute sets the hook called before each instruction executes.
func (c *CPU) OnExecute(fn ExecuteHook) {
	c.hook = fn
}

func (c *CPU) step() {
	if c.ime && c.serviceInterrupts() {
		return
	}
	if c.halted {
		return
	}

	instr, ok := c.Decode(c.PC)
	if !ok {
		err := &DecodeError{Opcode: c.read(c.PC), PC: c.PC}
		if err.Opcode == Prefix {
			err.Opcode, err.Prefixed = c.read(c.PC+1), true
		}
		c.fault = err
		c.log.Errorf("%v", err)
		return
	}

	if c.hook != nil {
		if err := c.hook(c.PC, instr); err != nil {
			c.hookErr = err
			return
		}
	}

	instr.fn(c)
	c.PC += uint16(instr.length)
}

// serviceInterrupts dispatches the highest priority interrupt that is
// both enabled and requested, returning false if there is none.
func (c *CPU) serviceInterrupts() bool {
	pending := c.read(types.IE) & c.read(types.IF)
	if pending == 0 {
		return false
	}

	for _, irq := range types.Interrupts {
		if pending&irq == 0 {
			continue
		}
		c.halted = false
		c.ime = false
		c.write(types.IF, c.read(types.IF)&^irq)
		c.push16(c.PC)
		c.PC = types.Vector(irq)
		return true
	}
	return false
}

// Decode returns the instruction at pc without executing it.
func (c *CPU) Decode(pc uint16) (Instruction, bool) {
	opcode := c.read(pc)
	if opcode == Prefix {
		return LookupCB(c.read(pc + 1))
	}
	return Lookup(opcode)
}

// IME reports whether interrupts are enabled.
func (c *CPU) IME() bool {
	return c.ime
}

// Halted reports whether the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// Err returns the fault the CPU stopped on, if any.
func (c *CPU) Err() error {
	return c.fault
}

// State returns the run state of the CPU.
func (c *CPU) State() State {
	switch {
	case c.fault != nil:
		return Faulted
	case c.halted:
		return Halted
	case c.stopped:
		return Stopped
	}
	return Running
}

// Snapshot returns a copy of the architectural state.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		A: c.A, F: c.F, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		PC:     c.PC,
		SP:     c.SP,
		IME:    c.ime,
		Halted: c.halted,
		State:  c.State(),
	}
}
