// Package mmu provides the memory bus of the Game Boy. It owns the boot
// ROM overlay, the cartridge ROM and its bank controller, the external RAM
// banks, general memory and the decoded tile cache, and delegates the
// hardware register window to the I/O block.
package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Registers is the hardware register window the MMU delegates to.
type Registers interface {
	Has(addr uint16) bool
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// MMU is the 64kB address space seen by the CPU.
//
//	0x0000 - 0x00FF  boot ROM, while booting
//	0x0000 - 0x3FFF  ROM bank 0
//	0x4000 - 0x7FFF  switchable ROM bank
//	0x8000 - 0x97FF  tile data, mirrored into the tile cache
//	0xA000 - 0xBFFF  switchable external RAM bank
//	0xFF00 - 0xFF7F  I/O registers (and 0xFFFF)
//
// Everything else is general memory.
type MMU struct {
	memory [0x10000]uint8

	bootROM *boot.ROM
	booting bool

	*banks
	tiles tileCache

	registers Registers
	log       log.Logger
}

// New returns an MMU that delegates the register window to registers.
func New(registers Registers, logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	return &MMU{
		banks:     newBanks(),
		registers: registers,
		log:       logger.WithCategory("mmu"),
	}
}

// LoadROM copies rom into the cartridge space, maps bank 0, detects the
// bank controller from the header and selects the initial banks.
func (m *MMU) LoadROM(rom []byte) cartridge.Header {
	n := copy(m.rom[:], rom)
	m.romLength = n
	copy(m.memory[:types.ROMBankNStart], m.rom[:types.ROMBankNStart])

	// the buffer always covers the header, so parsing cannot fail
	h, _ := cartridge.ParseHeader(m.rom[:])
	m.configure(h)
	m.log.Debugf("loaded %d bytes, %s", n, h)

	return h
}

// LoadBootROM overlays r on 0x0000 - 0x00FF until it is detached.
func (m *MMU) LoadBootROM(r *boot.ROM) {
	m.bootROM = r
	m.booting = r != nil
}

// Booting reports whether the boot ROM overlay is active.
func (m *MMU) Booting() bool {
	return m.booting
}

// Read returns the byte at addr.
func (m *MMU) Read(addr uint16) uint8 {
	if m.booting && addr <= types.BootROMEnd {
		return m.bootROM.Read(addr)
	}
	if addr >= types.ROMBankNStart && addr <= types.CartridgeWindowEnd {
		return m.ReadROMBank(addr)
	}
	if m.registers.Has(addr) {
		return m.registers.Read(addr)
	}
	if addr >= types.ExternalRAMStart && addr <= types.ExternalRAMEnd {
		return m.readRAM(addr)
	}
	return m.memory[addr]
}

// Write stores value at addr. Writes to the cartridge window are bank
// controller commands and never change ROM.
func (m *MMU) Write(addr uint16, value uint8) {
	if m.booting && addr == types.BDIS && value == 0x01 {
		m.booting = false
		m.log.Infof("booted")
	}
	if m.registers.Has(addr) {
		m.registers.Write(addr, value)
		return
	}
	if addr <= types.CartridgeWindowEnd {
		m.controllerWrite(addr, value)
		return
	}
	if addr >= types.ExternalRAMStart && addr <= types.ExternalRAMEnd {
		m.writeRAM(addr, value)
		return
	}

	m.memory[addr] = value
	if addr >= types.VRAMStart && addr <= types.TileDataEnd {
		m.tiles.update(&m.memory, addr-types.VRAMStart)
	}
}

// ReadTilePixel returns the palette index (0-3) of pixel x, y of a tile.
// Out of range tiles and coordinates read as 0.
func (m *MMU) ReadTilePixel(tile, x, y int) uint8 {
	return m.tiles.pixel(tile, x, y)
}

// OAM returns a copy of the sprite attribute table.
func (m *MMU) OAM() [types.OAMSize]uint8 {
	var oam [types.OAMSize]uint8
	copy(oam[:], m.memory[types.OAMStart:])
	return oam
}
