package cartridge

import (
	"errors"
	"fmt"
	"strings"
)

// HeaderEnd is the first address after the cartridge header.
const HeaderEnd = 0x150

// ErrHeaderTooShort is returned when a ROM image ends before the header does.
var ErrHeaderTooShort = errors.New("cartridge: image shorter than header")

// Type is the cartridge type byte stored at 0x0147.
type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	MBC6              Type = 0x20
	MBC7              Type = 0x22
	POCKETCAMERA      Type = 0xFC
	HUDSONHUC1        Type = 0xFF
)

// SmallRAMSize is reported for RAM size code 0x01. Carts with this code
// have too little RAM to use bank switching.
const SmallRAMSize = 2 * 1024

var ramSizes = map[uint8]uint{
	0x00: 0,
	0x01: SmallRAMSize,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is the information stored in 0x0100 - 0x014F of every cartridge.
type Header struct {
	// 0x0134-0x0143
	Title string
	// 0x0147
	CartridgeType Type
	// 0x0148, 32kB << n
	ROMSize uint
	// 0x0149
	RAMSize uint
	// 0x014D
	HeaderChecksum uint8
	// ChecksumValid reports whether HeaderChecksum matches the bytes
	// in 0x0134 - 0x014C.
	ChecksumValid bool
}

// ParseHeader parses the header of the given ROM image.
func ParseHeader(rom []byte) (Header, error) {
	if len(rom) < HeaderEnd {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrHeaderTooShort, len(rom))
	}

	h := Header{
		Title:          strings.TrimRight(string(rom[0x134:0x144]), "\x00"),
		CartridgeType:  Type(rom[0x147]),
		ROMSize:        ROMSize(rom[0x148]),
		RAMSize:        RAMSize(rom[0x149]),
		HeaderChecksum: rom[0x14D],
	}

	var sum uint8
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	h.ChecksumValid = sum == h.HeaderChecksum

	return h, nil
}

// ROMSize returns the size in bytes described by the ROM size code.
func ROMSize(code uint8) uint {
	return 16384 << (uint(code) + 1)
}

// RAMSize returns the size in bytes described by the RAM size code.
// Unknown codes report no RAM.
func RAMSize(code uint8) uint {
	return ramSizes[code]
}

// Controller returns the memory bank controller family of the cartridge.
func (h Header) Controller() Controller {
	return ControllerFor(h.CartridgeType)
}

func (h Header) String() string {
	return fmt.Sprintf("%s | %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.Controller(), h.ROMSize/1024, h.RAMSize/1024)
}
