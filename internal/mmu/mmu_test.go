package mmu

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/io"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// buildROM returns a cartridge image where the first byte of every
// bank holds the bank number.
func buildROM(cartType cartridge.Type, banks int, ramCode uint8) []byte {
	rom := make([]byte, banks*ROMBankSize)
	for b := 0; b < banks; b++ {
		rom[b*ROMBankSize] = uint8(b)
		rom[b*ROMBankSize+1] = uint8(b >> 8)
	}
	rom[0x147] = uint8(cartType)
	rom[0x149] = ramCode
	return rom
}

func newMMU(rom []byte) *MMU {
	m := New(io.New(nil, nil), nil)
	if rom != nil {
		m.LoadROM(rom)
	}
	return m
}

// bank returns the bank number visible in 0x4000 - 0x7FFF.
func bank(m *MMU) int {
	return int(m.Read(0x4000)) | int(m.Read(0x4001))<<8
}

func TestMMU_LoadROM(t *testing.T) {
	rom := buildROM(cartridge.MBC1, 4, 0)
	rom[0x0100] = 0xC3
	rom[0x3FFF] = 0x99

	m := newMMU(rom)

	if m.Read(0x0100) != 0xC3 || m.Read(0x3FFF) != 0x99 {
		t.Errorf("Expected bank 0 to be mapped into 0x0000 - 0x3FFF")
	}
	if bank(m) != 1 {
		t.Errorf("Expected bank 1 to be mapped after loading, got %d", bank(m))
	}
	if m.Controller() != cartridge.ControllerMBC1 {
		t.Errorf("Expected MBC1, got %s", m.Controller())
	}
}

func TestMMU_UnknownController(t *testing.T) {
	m := newMMU(buildROM(0x22, 4, 0))
	if m.Controller() != cartridge.NoController {
		t.Errorf("Expected unknown controller to fall back to ROM, got %s", m.Controller())
	}

	m.Write(0x2000, 0x02)
	if bank(m) != 1 {
		t.Errorf("Expected bank writes to be ignored, got bank %d", bank(m))
	}
}

func TestMMU_ROMIsReadOnly(t *testing.T) {
	m := newMMU(buildROM(cartridge.ROM, 2, 0))
	m.Write(0x0150, 0xAA)
	m.Write(0x4010, 0xBB)

	if m.Read(0x0150) == 0xAA || m.Read(0x4010) == 0xBB {
		t.Errorf("Expected writes below 0x8000 to leave ROM untouched")
	}
}

func TestMMU_BootROM(t *testing.T) {
	img := make([]byte, boot.Size)
	img[0x00] = 0x31
	r, err := boot.Load(img)
	if err != nil {
		t.Fatal(err)
	}

	l, hook := test.NewNullLogger()
	m := New(io.New(nil, nil), log.FromLogrus(l))
	rom := buildROM(cartridge.ROM, 2, 0)
	rom[0x00] = 0xAA
	rom[0x100] = 0xBB
	m.LoadROM(rom)
	m.LoadBootROM(r)

	if !m.Booting() {
		t.Fatalf("Expected boot ROM to be mapped")
	}
	if m.Read(0x0000) != 0x31 {
		t.Errorf("Expected boot ROM at 0x0000, got 0x%02X", m.Read(0x0000))
	}
	if m.Read(0x0100) != 0xBB {
		t.Errorf("Expected cartridge at 0x0100, got 0x%02X", m.Read(0x0100))
	}

	m.Write(types.BDIS, 0x02)
	if !m.Booting() {
		t.Errorf("Expected only 0x01 to detach the boot ROM")
	}

	m.Write(types.BDIS, 0x01)
	if m.Booting() {
		t.Errorf("Expected boot ROM to be detached")
	}
	if m.Read(0x0000) != 0xAA {
		t.Errorf("Expected cartridge at 0x0000 after boot, got 0x%02X", m.Read(0x0000))
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Message != "booted" || entry.Level != logrus.InfoLevel {
		t.Errorf("Expected booted notification, got %v", entry)
	}
	if entry != nil && entry.Data[log.CategoryKey] != "mmu" {
		t.Errorf("Expected mmu category, got %v", entry.Data[log.CategoryKey])
	}

	m.Write(types.BDIS, 0x00)
	if m.Booting() {
		t.Errorf("Expected detach to be permanent")
	}
}

func TestMMU_IORegisters(t *testing.T) {
	regs := io.New(nil, nil)
	m := New(regs, nil)

	m.Write(types.LCDC, 0x91)
	if regs.Read(types.LCDC) != 0x91 {
		t.Errorf("Expected LCDC write to reach the register file")
	}
	m.Write(types.DIV, 0x55)
	if m.Read(types.DIV) != 0 {
		t.Errorf("Expected DIV to read 0 after write, got 0x%02X", m.Read(types.DIV))
	}

	// high RAM is general memory
	m.Write(0xFF80, 0x42)
	if m.Read(0xFF80) != 0x42 {
		t.Errorf("Expected 0xFF80 to hold 0x42, got 0x%02X", m.Read(0xFF80))
	}
}

func TestMMU_GeneralMemory(t *testing.T) {
	m := newMMU(nil)
	for _, addr := range []uint16{0x8000, 0x9FFF, 0xC000, 0xDFFF, 0xFE00, 0xFFFE} {
		m.Write(addr, 0x5A)
		if m.Read(addr) != 0x5A {
			t.Errorf("Expected 0x%04X to hold 0x5A, got 0x%02X", addr, m.Read(addr))
		}
	}
}

func TestMMU_OAM(t *testing.T) {
	m := newMMU(nil)
	m.Write(0xFE00, 0x10)
	m.Write(0xFE9F, 0x20)

	oam := m.OAM()
	if oam[0] != 0x10 || oam[159] != 0x20 {
		t.Errorf("Expected OAM snapshot to match memory, got 0x%02X 0x%02X", oam[0], oam[159])
	}
}
