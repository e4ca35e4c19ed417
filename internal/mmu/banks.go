package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/types"
)

const (
	// MaxROMSize is the largest cartridge image that can be loaded.
	MaxROMSize = 0x800000
	// ROMBankSize is the size of a ROM bank.
	ROMBankSize = 0x4000
	// RAMBanks is the number of external RAM banks.
	RAMBanks = 16
	// RAMBankSize is the size of an external RAM bank.
	RAMBankSize = 0x2000
	// minBankedRAM is the smallest RAM size that supports bank switching.
	minBankedRAM = 8 * 1024
)

// banks holds the cartridge ROM, the external RAM and the controller
// state that selects which bank of each is visible.
type banks struct {
	rom       [MaxROMSize]uint8
	romLength int
	ram       [RAMBanks][RAMBankSize]uint8

	controller cartridge.Controller
	romSize    uint
	ramSize    uint

	// romBank is the bank number assembled from controller writes,
	// loadedBank the bank actually mapped into 0x4000 - 0x7FFF.
	romBank     uint16
	loadedBank  int
	ramBank     uint8
	ramEnabled  bool
	bankingMode uint8
}

func newBanks() *banks {
	return &banks{loadedBank: 1}
}

// configure resets the controller state for a freshly loaded cartridge.
func (b *banks) configure(h cartridge.Header) {
	b.controller = h.Controller()
	b.romSize = h.ROMSize
	b.ramSize = h.RAMSize
	b.romBank = 0
	b.loadedBank = 0
	b.ramEnabled = false
	b.bankingMode = 0

	b.switchRAMBank(0)
	b.switchROMBankLower(1)
}

// ReadROMBank reads addr (0x4000 - 0x7FFF) from the mapped ROM bank.
func (b *banks) ReadROMBank(addr uint16) uint8 {
	return b.rom[int(addr)+ROMBankSize*(b.loadedBank-1)]
}

// loadROMBank maps bank into the switchable window. Bank 0 can only be
// reached through 0x0000 - 0x3FFF, so it maps bank 1 instead.
func (b *banks) loadROMBank(bank uint16) {
	if bank == 0 {
		bank = 1
	}
	b.loadedBank = int(bank)
}

func (b *banks) readRAM(addr uint16) uint8 {
	if !b.ramEnabled {
		return 0
	}
	return b.ram[b.ramBank][addr-types.ExternalRAMStart]
}

func (b *banks) writeRAM(addr uint16, value uint8) {
	if !b.ramEnabled {
		return
	}
	b.ram[b.ramBank][addr-types.ExternalRAMStart] = value
}

// ROMBank returns the bank mapped into 0x4000 - 0x7FFF.
func (b *banks) ROMBank() int {
	return b.loadedBank
}

// RAMBank returns the selected external RAM bank.
func (b *banks) RAMBank() uint8 {
	return b.ramBank
}

// RAMEnabled reports whether external RAM is unlocked.
func (b *banks) RAMEnabled() bool {
	return b.ramEnabled
}

// Controller returns the detected bank controller.
func (b *banks) Controller() cartridge.Controller {
	return b.controller
}
