// Package boot holds the 256 byte boot ROM that is overlaid on 0x0000 -
// 0x00FF until the program writes 0x01 to the BDIS register.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the length of a DMG boot ROM.
const Size = 0x100

// ErrInvalidSize is returned for images that are not exactly Size bytes.
var ErrInvalidSize = errors.New("boot: invalid boot rom length")

// ROM is a validated boot ROM image.
type ROM struct {
	raw      [Size]byte
	checksum string
}

// Load validates b and returns it as a ROM. The image is copied.
func Load(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, len(b))
	}

	r := &ROM{}
	copy(r.raw[:], b)
	sum := md5.Sum(b)
	r.checksum = hex.EncodeToString(sum[:])

	return r, nil
}

// Read returns the byte at addr, which must be below Size.
func (r *ROM) Read(addr uint16) uint8 {
	return r.raw[addr]
}

// Checksum returns the MD5 checksum of the image.
func (r *ROM) Checksum() string {
	if r == nil {
		return ""
	}
	return r.checksum
}

// Model names the hardware the boot ROM was dumped from.
func (r *ROM) Model() string {
	if r == nil {
		return "none"
	}
	if model, ok := knownChecksums[r.checksum]; ok {
		return model
	}
	return "unknown"
}

// Known boot ROM dumps. The MGB and SGB2 images differ from their
// predecessors only in the value loaded into A.
const (
	DMG0        = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	DMG         = "32fbbd84168d3482956eb3c5051637f5"
	MGB         = "71a378e71ff30b2d8a1f02bf5c7896aa"
	SGB         = "d574d4f9c12f305074798f54c091a8b4"
	SGB2        = "e0430bca9925fb9882148fd2dc2418c1"
	Fortune     = "92ed4eca17d61fcd53f8a64c3ce84743"
	GameFighter = "6a7b8ee12a793f66a969c6a2b8926cc9"
	MaxStation  = "77a7021db824010a678791f6d062943d"
)

var knownChecksums = map[string]string{
	DMG0:        "Game Boy (DMG-0)",
	DMG:         "Game Boy (DMG-01)",
	MGB:         "Game Boy Pocket",
	SGB:         "Super Game Boy",
	SGB2:        "Super Game Boy 2",
	Fortune:     "Fortune/Bitman 3000B",
	GameFighter: "Game Fighter",
	MaxStation:  "Max Station",
}
