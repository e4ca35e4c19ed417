// Package cartridge parses game cartridge images: the header at
// 0x0100 - 0x014F and the memory bank controller it declares.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Info describes a loaded cartridge image.
type Info struct {
	Header
	// Fingerprint identifies the full ROM image.
	Fingerprint uint64
	// Size is the length of the image in bytes.
	Size int
}

// Inspect parses the header of rom and fingerprints the whole image.
func Inspect(rom []byte) (Info, error) {
	h, err := ParseHeader(rom)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Header:      h,
		Fingerprint: Fingerprint(rom),
		Size:        len(rom),
	}, nil
}

// Fingerprint returns a stable 64-bit hash of a ROM image.
func Fingerprint(rom []byte) uint64 {
	return xxhash.Sum64(rom)
}

func (i Info) String() string {
	return fmt.Sprintf("%s | %016x", i.Header, i.Fingerprint)
}
