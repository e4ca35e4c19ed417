package io

import (
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/bits"
)

const (
	// CPUHz is the clock the update frequencies are derived from.
	CPUHz = 4190000
	// DivHz is the rate DIV is incremented at.
	DivHz = 16384
	// ScreenHz is the refresh rate used to spoof LY.
	ScreenHz = 60

	divPeriod = CPUHz / DivHz
	lyPeriod  = CPUHz / (ScreenHz * 144)

	// LinesPerFrame is the number of scanlines LY cycles through.
	LinesPerFrame = 154
	vblankLine    = LinesPerFrame - 1
)

// timerPeriods holds the number of updates between TIMA increments,
// indexed by the clock select bits of TAC.
var timerPeriods = [4]uint64{1024, 16, 64, 256}

// Update advances the registers by one step. It runs once for every
// executed instruction and uses bus for OAM DMA transfers.
func (r *Registers) Update(bus Bus) {
	r.tick++

	r.updateDivider()
	r.updateTimer()
	r.updateDMA(bus)
	r.updateSerial()
	r.updateScanline()
	r.updateJoypad()
	r.updateStatus()
}

func (r *Registers) updateDivider() {
	if r.tick%divPeriod == 0 {
		r.set(types.DIV, r.get(types.DIV)+1)
	}
}

func (r *Registers) updateTimer() {
	tac := r.get(types.TAC)
	if !bits.Test(tac, 2) {
		return
	}
	if r.tick%timerPeriods[tac&0b11] != 0 {
		return
	}

	tima := r.get(types.TIMA) + 1
	if tima == 0 {
		tima = r.get(types.TMA)
		r.Request(types.TimerInterrupt)
	}
	r.set(types.TIMA, tima)
}

func (r *Registers) updateDMA(bus Bus) {
	bank := r.get(types.DMA)
	if bank == 0 {
		return
	}

	source := uint16(bank) << 8
	for i := uint16(0); i < types.OAMSize; i++ {
		bus.Write(types.OAMStart+i, bus.Read(source+i))
	}
	r.set(types.DMA, 0)
	r.log.Debugf("OAM DMA from 0x%04X", source)
}

// updateScanline stands in for the PPU: LY advances at a fixed rate and
// V-Blank is requested while it sits on the last line.
func (r *Registers) updateScanline() {
	if r.tick%lyPeriod == 0 {
		ly := r.get(types.LY) + 1
		if ly >= LinesPerFrame {
			ly = 0
		}
		r.set(types.LY, ly)
	}

	if r.get(types.LY) == vblankLine {
		r.Request(types.VBlankInterrupt)
	}
}

// updateStatus refreshes the LYC=LY flag and raises the STAT interrupt
// for the first enabled source, reporting the matching mode.
func (r *Registers) updateStatus() {
	coincidence := r.get(types.LY) == r.get(types.LYC)
	stat := bits.SetTo(r.get(types.STAT), 2, coincidence)

	mode, raise := uint8(0), true
	switch {
	case bits.Test(stat, 3):
		mode = 0b00
	case bits.Test(stat, 4):
		mode = 0b01
	case bits.Test(stat, 5):
		mode = 0b10
	case bits.Test(stat, 6) && coincidence:
		mode = 0b11
	default:
		raise = false
	}

	if raise {
		stat = stat&^0b11 | mode
		r.Request(types.LCDInterrupt)
	}
	r.set(types.STAT, stat)
}
