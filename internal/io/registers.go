// Package io provides the memory mapped hardware registers of the Game Boy
// and the per step update that advances the timer, LCD status and joypad.
package io

import (
	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Bus is the memory used for OAM DMA transfers.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// mappedAddresses are the registers owned by the I/O block. Any other
// address in 0xFF00 - 0xFFFF belongs to general memory.
var mappedAddresses = []types.HardwareAddress{
	types.P1, types.SB, types.SC,
	types.DIV, types.TIMA, types.TMA, types.TAC,
	types.IF,
	types.NR10, types.NR11, types.NR12, types.NR13, types.NR14,
	types.NR21, types.NR22, types.NR23, types.NR24,
	types.NR30, types.NR31, types.NR32, types.NR33, types.NR34,
	types.NR41, types.NR42, types.NR43, types.NR44,
	types.NR50, types.NR51, types.NR52,
	types.LCDC, types.STAT, types.SCY, types.SCX, types.LY, types.LYC,
	types.DMA, types.BGP, types.OBP0, types.OBP1, types.WY, types.WX,
	types.PCM12, types.PCM34,
	types.IE,
}

// Registers is the I/O register file. Values are stored in a fixed array
// indexed by address - 0xFF00, so IE lives in the last slot.
type Registers struct {
	values [256]uint8
	mapped [256]bool

	tick uint64

	input  joypad.Source
	serial ByteWriter
	log    log.Logger
}

// New returns a register file that reads buttons from input.
func New(input joypad.Source, logger log.Logger) *Registers {
	if input == nil {
		input = joypad.None
	}
	if logger == nil {
		logger = log.NewNullLogger()
	}

	r := &Registers{
		input: input,
		log:   logger.WithCategory("io"),
	}
	for _, addr := range mappedAddresses {
		r.mapped[index(addr)] = true
	}
	for addr := types.WaveRAMStart; addr <= types.WaveRAMEnd; addr++ {
		r.mapped[index(addr)] = true
	}
	r.values[index(types.P1)] = 0x0F

	return r
}

func index(addr uint16) uint8 {
	return uint8(addr - 0xFF00)
}

// Has reports whether addr is one of the I/O registers.
func (r *Registers) Has(addr uint16) bool {
	return addr >= 0xFF00 && r.mapped[index(addr)]
}

// Read returns the value of the register at addr. Addresses that are not
// registers read as 0xFF.
func (r *Registers) Read(addr uint16) uint8 {
	if !r.Has(addr) {
		return 0xFF
	}
	return r.values[index(addr)]
}

// Write stores value in the register at addr. Writing any value to DIV
// resets it to 0. Writes to other addresses are dropped.
func (r *Registers) Write(addr uint16, value uint8) {
	if !r.Has(addr) {
		return
	}
	if addr == types.DIV {
		value = 0
	}
	r.values[index(addr)] = value
}

// Request raises the given interrupt in IF.
func (r *Registers) Request(irq types.Interrupt) {
	r.values[index(types.IF)] |= irq
}

// Ticks returns the number of updates performed so far.
func (r *Registers) Ticks() uint64 {
	return r.tick
}

func (r *Registers) get(addr types.HardwareAddress) uint8 {
	return r.values[index(addr)]
}

func (r *Registers) set(addr types.HardwareAddress, value uint8) {
	r.values[index(addr)] = value
}
