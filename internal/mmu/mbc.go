package mmu

import (
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

// controllerWrite decodes a write to 0x0000 - 0x7FFF according to the
// cartridge's bank controller.
func (b *banks) controllerWrite(addr uint16, value uint8) {
	switch b.controller {
	case cartridge.ControllerMBC1:
		switch {
		case addr < 0x2000:
			b.setRAMEnabled(value)
		case addr < 0x4000:
			b.switchROMBankLower(value)
		case addr < 0x6000:
			if b.bankingMode > 0 {
				b.switchRAMBank(value)
			} else {
				b.switchROMBankUpper(value)
			}
		default:
			b.bankingMode = bits.Val(value, 0)
		}
	case cartridge.ControllerMBC2:
		if addr >= 0x4000 {
			return
		}
		if bits.Test16(addr, 8) {
			b.switchROMBankLower(bits.Reset(value, 4))
		} else {
			b.setRAMEnabled(value)
		}
	case cartridge.ControllerMBC3:
		switch {
		case addr < 0x2000:
			b.setRAMEnabled(value)
		case addr < 0x4000:
			b.switchROMBankFull(bits.Reset(value, 7))
		case addr < 0x6000:
			if value <= 0x03 {
				b.switchRAMBank(value)
			}
		}
	case cartridge.ControllerMBC5:
		switch {
		case addr < 0x2000:
			b.setRAMEnabled(value)
		case addr < 0x3000:
			b.switchROMBankLow8(value)
		case addr < 0x4000:
			b.switchROMBankBit8(value)
		case addr < 0x6000:
			b.switchRAMBank(value)
		}
	}
}

// setRAMEnabled unlocks external RAM when the low nibble of value is 0xA
// and locks it for anything else.
func (b *banks) setRAMEnabled(value uint8) {
	b.ramEnabled = value<<4 == 0xA0
}

// switchRAMBank selects an external RAM bank. Cartridges with less than
// 8kB of RAM ignore it.
func (b *banks) switchRAMBank(bank uint8) {
	if b.ramSize >= minBankedRAM {
		b.ramBank = bank % RAMBanks
	}
}

// switchROMBankLower replaces bits 0-4 of the ROM bank.
func (b *banks) switchROMBankLower(value uint8) {
	b.romBank = b.romBank&^0x1F | uint16(value&0x1F)
	b.loadROMBank(b.romBank)
}

// switchROMBankUpper replaces bits 5-6 of the ROM bank.
func (b *banks) switchROMBankUpper(value uint8) {
	b.romBank = b.romBank&^0x60 | uint16(value&0x03)<<5
	b.loadROMBank(b.romBank)
}

// switchROMBankFull replaces the whole ROM bank number.
func (b *banks) switchROMBankFull(value uint8) {
	b.romBank = uint16(value)
	b.loadROMBank(b.romBank)
}

// switchROMBankLow8 replaces bits 0-7 of the ROM bank, keeping bit 8.
func (b *banks) switchROMBankLow8(value uint8) {
	b.romBank = b.romBank&0x100 | uint16(value)
	b.loadROMBank(b.romBank)
}

// switchROMBankBit8 sets bit 8 of the ROM bank from bit 0 of value,
// keeping bits 0-7.
func (b *banks) switchROMBankBit8(value uint8) {
	b.romBank = b.romBank&0xFF | uint16(bits.Val(value, 0))<<8
	b.loadROMBank(b.romBank)
}
