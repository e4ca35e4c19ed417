// Package gameboy wires the CPU, memory bus and I/O registers into a
// steppable Game Boy.
package gameboy

import (
	"context"
	"errors"
	"fmt"

	"github.com/thelolagemann/dmgcore/internal/boot"
	"github.com/thelolagemann/dmgcore/internal/cartridge"
	"github.com/thelolagemann/dmgcore/internal/cpu"
	"github.com/thelolagemann/dmgcore/internal/io"
	"github.com/thelolagemann/dmgcore/internal/joypad"
	"github.com/thelolagemann/dmgcore/internal/mmu"
	"github.com/thelolagemann/dmgcore/internal/types"
	"github.com/thelolagemann/dmgcore/pkg/log"
)

// ErrNoROM is returned by New when no ROM image is given.
var ErrNoROM = errors.New("gameboy: no rom")

// contextCheckInterval is the number of steps Run executes between
// checks for cancellation.
const contextCheckInterval = 1024

// Tracer is told about every instruction before it executes. Steps that
// only dispatch an interrupt trace nothing.
type Tracer interface {
	Trace(regs cpu.Snapshot, op []byte, name string) error
}

// GameBoy represents a Game Boy. It contains all the components of the
// Game Boy and is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	IO  *io.Registers

	// Cartridge describes the loaded ROM.
	Cartridge cartridge.Info

	log     log.Logger
	bootROM []byte
	input   joypad.Source
	tracer  Tracer
	serial  io.ByteWriter
	hooks   []func(gb *GameBoy)

	steps uint64
}

// New returns a GameBoy running rom. Without a boot ROM it starts in
// the state the boot ROM leaves behind.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	if len(rom) == 0 {
		return nil, ErrNoROM
	}
	info, err := cartridge.Inspect(rom)
	if err != nil {
		return nil, fmt.Errorf("gameboy: %w", err)
	}

	gb := &GameBoy{
		Cartridge: info,
		log:       log.NewNullLogger(),
		input:     joypad.None,
	}
	for _, opt := range opts {
		opt(gb)
	}

	gb.IO = io.New(gb.input, gb.log)
	if gb.serial != nil {
		gb.IO.ConnectSerial(gb.serial)
	}
	gb.MMU = mmu.New(gb.IO, gb.log)
	gb.MMU.LoadROM(rom)
	gb.CPU = cpu.New(gb.MMU, gb.log)
	if gb.tracer != nil {
		gb.CPU.OnExecute(gb.trace)
	}

	if gb.bootROM != nil {
		b, err := boot.Load(gb.bootROM)
		if err != nil {
			return nil, fmt.Errorf("gameboy: %w", err)
		}
		gb.MMU.LoadBootROM(b)
		gb.log.Debugf("boot rom %s (%s)", b.Checksum(), b.Model())
	} else {
		gb.skipBoot()
	}
	if len(rom) > mmu.MaxROMSize {
		gb.log.Errorf("rom is %d bytes, only the first %d are mapped", len(rom), mmu.MaxROMSize)
	}
	gb.log.Infof("loaded %s", info)

	return gb, nil
}

// skipBoot sets the registers to the values the DMG boot ROM leaves
// them in.
func (gb *GameBoy) skipBoot() {
	gb.CPU.PC = 0x0100
	gb.CPU.SP = 0xFFFE
	gb.CPU.AF.SetUint16(0x01B0)
	gb.CPU.BC.SetUint16(0x0013)
	gb.CPU.DE.SetUint16(0x00D8)
	gb.CPU.HL.SetUint16(0x014D)
}

// Step executes one instruction, or services one interrupt, and then
// updates the I/O registers. Once the CPU has faulted Step returns the
// fault and nothing is updated.
func (gb *GameBoy) Step() error {
	if err := gb.CPU.Step(); err != nil {
		return err
	}
	gb.IO.Update(gb.MMU)
	gb.steps++

	for _, hook := range gb.hooks {
		hook(gb)
	}
	return nil
}

func (gb *GameBoy) trace(pc uint16, instr cpu.Instruction) error {
	op := []byte{gb.MMU.Read(pc)}
	if op[0] == cpu.Prefix {
		op = append(op, gb.MMU.Read(pc+1))
	}
	if err := gb.tracer.Trace(gb.CPU.Snapshot(), op, instr.Name()); err != nil {
		return fmt.Errorf("gameboy: trace: %w", err)
	}
	return nil
}

// Run steps the GameBoy until steps instructions have executed, the
// context is cancelled or the CPU faults. A steps of 0 runs until
// cancelled.
func (gb *GameBoy) Run(ctx context.Context, steps uint64) error {
	for i := uint64(0); steps == 0 || i < steps; i++ {
		if i%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := gb.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Steps returns the number of completed steps.
func (gb *GameBoy) Steps() uint64 {
	return gb.steps
}

// ReadTilePixel returns the palette index of pixel x, y of a tile in
// 0x8000 - 0x97FF.
func (gb *GameBoy) ReadTilePixel(tile, x, y int) uint8 {
	return gb.MMU.ReadTilePixel(tile, x, y)
}

// VideoState holds the registers and sprite table a renderer reads.
type VideoState struct {
	LCDC, STAT uint8
	SCY, SCX   uint8
	LY, LYC    uint8
	BGP        uint8
	OBP0, OBP1 uint8
	WY, WX     uint8

	OAM [types.OAMSize]uint8
}

// Video returns the current VideoState.
func (gb *GameBoy) Video() VideoState {
	return VideoState{
		LCDC: gb.IO.Read(types.LCDC),
		STAT: gb.IO.Read(types.STAT),
		SCY:  gb.IO.Read(types.SCY),
		SCX:  gb.IO.Read(types.SCX),
		LY:   gb.IO.Read(types.LY),
		LYC:  gb.IO.Read(types.LYC),
		BGP:  gb.IO.Read(types.BGP),
		OBP0: gb.IO.Read(types.OBP0),
		OBP1: gb.IO.Read(types.OBP1),
		WY:   gb.IO.Read(types.WY),
		WX:   gb.IO.Read(types.WX),
		OAM:  gb.MMU.OAM(),
	}
}

// Snapshot returns the current CPU and video state.
func (gb *GameBoy) Snapshot() Snapshot {
	return Snapshot{
		Steps: gb.steps,
		CPU:   gb.CPU.Snapshot(),
		Video: gb.Video(),
	}
}
