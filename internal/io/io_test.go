package io

import (
	"testing"

	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/internal/types"
)

type flatBus [0x10000]uint8

func (f *flatBus) Read(addr uint16) uint8         { return f[addr] }
func (f *flatBus) Write(addr uint16, value uint8) { f[addr] = value }

func newRegisters() (*Registers, *joypad.Input) {
	in := joypad.NewInput()
	return New(in, nil), in
}

// run performs n updates.
func run(r *Registers, bus Bus, n int) {
	for i := 0; i < n; i++ {
		r.Update(bus)
	}
}

func TestRegisters_Has(t *testing.T) {
	r, _ := newRegisters()

	for _, addr := range []uint16{types.P1, types.DIV, types.IF, types.LCDC, types.WX, types.IE, 0xFF30, 0xFF3F, types.PCM34} {
		if !r.Has(addr) {
			t.Errorf("Expected 0x%04X to be mapped", addr)
		}
	}
	for _, addr := range []uint16{0xFF03, 0xFF08, 0xFF15, 0xFF27, 0xFF4C, types.BDIS, 0xFF80, 0xFFFE, 0xC000, 0x0000} {
		if r.Has(addr) {
			t.Errorf("Expected 0x%04X to be unmapped", addr)
		}
	}
}

func TestRegisters_ReadWrite(t *testing.T) {
	r, _ := newRegisters()

	if r.Read(types.P1) != 0x0F {
		t.Errorf("Expected P1 to start at 0x0F, got 0x%02X", r.Read(types.P1))
	}

	r.Write(types.LCDC, 0x91)
	if r.Read(types.LCDC) != 0x91 {
		t.Errorf("Expected LCDC to be 0x91, got 0x%02X", r.Read(types.LCDC))
	}

	r.Write(types.IE, 0x1F)
	if r.Read(types.IE) != 0x1F {
		t.Errorf("Expected IE to be 0x1F, got 0x%02X", r.Read(types.IE))
	}

	r.Write(0xFF80, 0x12)
	if r.Read(0xFF80) != 0xFF {
		t.Errorf("Expected unmapped read to be 0xFF, got 0x%02X", r.Read(0xFF80))
	}
}

func TestRegisters_DIVResetOnWrite(t *testing.T) {
	r, _ := newRegisters()
	bus := &flatBus{}

	run(r, bus, divPeriod*3)
	if r.Read(types.DIV) != 3 {
		t.Fatalf("Expected DIV to be 3, got %d", r.Read(types.DIV))
	}

	for _, v := range []uint8{0x00, 0x01, 0x7F, 0xFF} {
		r.Write(types.DIV, v)
		if r.Read(types.DIV) != 0 {
			t.Errorf("Expected DIV to reset after writing 0x%02X, got 0x%02X", v, r.Read(types.DIV))
		}
	}
}

func TestRegisters_Timer(t *testing.T) {
	tests := []struct {
		tac    uint8
		period int
	}{
		{0b100, 1024},
		{0b101, 16},
		{0b110, 64},
		{0b111, 256},
	}
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			r, _ := newRegisters()
			bus := &flatBus{}
			r.Write(types.TAC, tt.tac)

			run(r, bus, tt.period-1)
			if r.Read(types.TIMA) != 0 {
				t.Errorf("Expected TIMA to be 0 before the period, got %d", r.Read(types.TIMA))
			}
			run(r, bus, 1)
			if r.Read(types.TIMA) != 1 {
				t.Errorf("Expected TIMA to be 1 after %d updates, got %d", tt.period, r.Read(types.TIMA))
			}
		})
	}

	t.Run("Disabled", func(t *testing.T) {
		r, _ := newRegisters()
		r.Write(types.TAC, 0b011)
		run(r, &flatBus{}, 2048)
		if r.Read(types.TIMA) != 0 {
			t.Errorf("Expected TIMA to stay 0, got %d", r.Read(types.TIMA))
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		r, _ := newRegisters()
		r.Write(types.TAC, 0b101)
		r.Write(types.TIMA, 0xFF)
		r.Write(types.TMA, 0xAB)

		run(r, &flatBus{}, 16)
		if r.Read(types.TIMA) != 0xAB {
			t.Errorf("Expected TIMA to reload 0xAB, got 0x%02X", r.Read(types.TIMA))
		}
		if r.Read(types.IF)&types.TimerInterrupt == 0 {
			t.Errorf("Expected timer interrupt to be requested")
		}
	})
}

func TestRegisters_Scanline(t *testing.T) {
	r, _ := newRegisters()
	bus := &flatBus{}

	run(r, bus, lyPeriod)
	if r.Read(types.LY) != 1 {
		t.Fatalf("Expected LY to be 1, got %d", r.Read(types.LY))
	}
	if r.Read(types.IF)&types.VBlankInterrupt != 0 {
		t.Errorf("Expected no V-Blank before line 153")
	}

	run(r, bus, lyPeriod*152)
	if r.Read(types.LY) != 153 {
		t.Fatalf("Expected LY to be 153, got %d", r.Read(types.LY))
	}
	if r.Read(types.IF)&types.VBlankInterrupt == 0 {
		t.Errorf("Expected V-Blank to be requested on line 153")
	}

	run(r, bus, lyPeriod)
	if r.Read(types.LY) != 0 {
		t.Errorf("Expected LY to wrap to 0, got %d", r.Read(types.LY))
	}
}

func TestRegisters_DMA(t *testing.T) {
	r, _ := newRegisters()
	bus := &flatBus{}
	for i := 0; i < types.OAMSize; i++ {
		bus[0xC100+i] = uint8(i + 1)
	}
	bus[0xC100+types.OAMSize] = 0xEE

	r.Write(types.DMA, 0xC1)
	r.Update(bus)

	for i := 0; i < types.OAMSize; i++ {
		if bus[0xFE00+i] != uint8(i+1) {
			t.Fatalf("Expected OAM[%d] to be 0x%02X, got 0x%02X", i, i+1, bus[0xFE00+i])
		}
	}
	if bus[0xFE00+types.OAMSize] != 0 {
		t.Errorf("Expected DMA to stop after the sprite table")
	}
	if r.Read(types.DMA) != 0 {
		t.Errorf("Expected DMA trigger to be cleared, got 0x%02X", r.Read(types.DMA))
	}
}

func TestRegisters_Status(t *testing.T) {
	t.Run("Coincidence", func(t *testing.T) {
		r, _ := newRegisters()
		r.Write(types.LYC, 0)
		r.Update(&flatBus{})
		if r.Read(types.STAT)&types.Bit2 == 0 {
			t.Errorf("Expected LYC=LY flag to be set")
		}
		if r.Read(types.IF)&types.LCDInterrupt != 0 {
			t.Errorf("Expected no STAT interrupt without an enabled source")
		}

		r.Write(types.LYC, 10)
		r.Update(&flatBus{})
		if r.Read(types.STAT)&types.Bit2 != 0 {
			t.Errorf("Expected LYC=LY flag to be cleared")
		}
	})

	tests := []struct {
		name string
		stat uint8
		lyc  uint8
		mode uint8
	}{
		{"HBlank", types.Bit3, 0xFF, 0b00},
		{"VBlank", types.Bit4, 0xFF, 0b01},
		{"OAM", types.Bit5, 0xFF, 0b10},
		{"LYC", types.Bit6, 0x00, 0b11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRegisters()
			r.Write(types.STAT, tt.stat)
			r.Write(types.LYC, tt.lyc)
			r.Update(&flatBus{})

			if r.Read(types.STAT)&0b11 != tt.mode {
				t.Errorf("Expected mode %02b, got %02b", tt.mode, r.Read(types.STAT)&0b11)
			}
			if r.Read(types.IF)&types.LCDInterrupt == 0 {
				t.Errorf("Expected STAT interrupt to be requested")
			}
		})
	}
}

func TestRegisters_Joypad(t *testing.T) {
	t.Run("Directions", func(t *testing.T) {
		r, in := newRegisters()
		r.Write(types.P1, 0x20)
		r.Update(&flatBus{})
		if r.Read(types.IF)&types.JoypadInterrupt != 0 {
			t.Fatalf("Expected no joypad interrupt without input")
		}

		in.Press(joypad.ButtonDown)
		in.Press(joypad.ButtonA)
		r.Update(&flatBus{})

		if got := r.Read(types.P1); got != 0x27 {
			t.Errorf("Expected P1 to be 0x27, got 0x%02X", got)
		}
		if r.Read(types.IF)&types.JoypadInterrupt == 0 {
			t.Errorf("Expected joypad interrupt on press")
		}
	})

	t.Run("Actions", func(t *testing.T) {
		r, in := newRegisters()
		r.Write(types.P1, 0x10)
		in.Press(joypad.ButtonStart)
		in.Press(joypad.ButtonRight)
		r.Update(&flatBus{})

		if got := r.Read(types.P1); got != 0x17 {
			t.Errorf("Expected P1 to be 0x17, got 0x%02X", got)
		}
	})

	t.Run("NoneSelected", func(t *testing.T) {
		r, in := newRegisters()
		r.Write(types.P1, 0x30)
		in.Set(0xFF)
		r.Update(&flatBus{})

		if got := r.Read(types.P1); got != 0x3F {
			t.Errorf("Expected P1 to be 0x3F, got 0x%02X", got)
		}
		if r.Read(types.IF)&types.JoypadInterrupt != 0 {
			t.Errorf("Expected no joypad interrupt when nothing is selected")
		}
	})

	t.Run("HeldButton", func(t *testing.T) {
		r, in := newRegisters()
		r.Write(types.P1, 0x10)
		in.Press(joypad.ButtonB)
		r.Update(&flatBus{})
		r.Write(types.IF, 0)
		r.Update(&flatBus{})

		if r.Read(types.IF)&types.JoypadInterrupt != 0 {
			t.Errorf("Expected no second interrupt while the button is held")
		}
	})
}

type serialLog []byte

func (s *serialLog) WriteByte(c byte) error {
	*s = append(*s, c)
	return nil
}

func TestRegisters_Serial(t *testing.T) {
	r, _ := newRegisters()
	bus := &flatBus{}

	// nothing connected, the transfer stays pending
	r.Write(types.SB, 'P')
	r.Write(types.SC, 0x81)
	run(r, bus, 1)
	if r.Read(types.SC) != 0x81 {
		t.Errorf("Expected the transfer to stay pending, SC=0x%02X", r.Read(types.SC))
	}

	out := &serialLog{}
	r.ConnectSerial(out)
	run(r, bus, 1)
	if string(*out) != "P" {
		t.Errorf("Expected P to be sent, got %q", string(*out))
	}
	if r.Read(types.SC) != 0x01 || r.Read(types.SB) != 0xFF {
		t.Errorf("Expected SC=0x01 SB=0xFF, got SC=0x%02X SB=0x%02X", r.Read(types.SC), r.Read(types.SB))
	}
	if r.Read(types.IF)&types.SerialInterrupt == 0 {
		t.Error("Expected the serial interrupt to be requested")
	}

	// external clock transfers wait for the other side
	r.Write(types.SB, 'X')
	r.Write(types.SC, 0x80)
	run(r, bus, 1)
	if len(*out) != 1 {
		t.Errorf("Expected no byte for an externally clocked transfer, got %q", string(*out))
	}
}
