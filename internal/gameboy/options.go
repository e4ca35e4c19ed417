package gameboy

import (
	"github.com/thelolagemann/dmgcore/internal/io"
	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// Opt is a function that configures a GameBoy before its components are
// built.
type Opt func(gb *GameBoy)

// WithLogger sets the logger handed to every component.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		if l != nil {
			gb.log = l
		}
	}
}

// WithBootROM sets the boot ROM for the emulator. If we have a boot
// ROM, execution starts at 0x0000 with every register cleared.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// WithInput sets where the joypad register reads buttons from.
func WithInput(src joypad.Source) Opt {
	return func(gb *GameBoy) {
		if src != nil {
			gb.input = src
		}
	}
}

// WithTracer traces every executed instruction to t.
func WithTracer(t Tracer) Opt {
	return func(gb *GameBoy) {
		gb.tracer = t
	}
}

// WithStepHook calls fn after every successful step.
func WithStepHook(fn func(gb *GameBoy)) Opt {
	return func(gb *GameBoy) {
		gb.hooks = append(gb.hooks, fn)
	}
}

// WithSerialOutput sends every byte transferred over the serial port to
// w, which is how test ROMs report their results.
func WithSerialOutput(w io.ByteWriter) Opt {
	return func(gb *GameBoy) {
		gb.serial = w
	}
}
