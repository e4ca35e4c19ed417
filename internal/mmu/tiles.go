package mmu

// Tiles is the number of tiles in 0x8000 - 0x97FF.
const Tiles = 384

// tileCache holds every tile in tile data memory decoded into palette
// indices, laid out as [tile][row][column].
type tileCache [Tiles][8][8]uint8

// update re-decodes the row containing offset (relative to 0x8000).
// Each row is two bytes: the first holds the low bit of every pixel,
// the second the high bit, with the leftmost pixel in bit 7.
func (t *tileCache) update(memory *[0x10000]uint8, offset uint16) {
	base := 0x8000 + offset&^1
	low, high := memory[base], memory[base+1]

	tile, row := offset/16, offset%16/2
	for x := 0; x < 8; x++ {
		mask := uint8(1) << (7 - x)
		var color uint8
		if low&mask != 0 {
			color |= 1
		}
		if high&mask != 0 {
			color |= 2
		}
		t[tile][row][x] = color
	}
}

// pixel returns 0 for a tile or coordinate outside the cache.
func (t *tileCache) pixel(tile, x, y int) uint8 {
	if tile < 0 || tile >= Tiles || x < 0 || x >= 8 || y < 0 || y >= 8 {
		return 0
	}
	return t[tile][y][x]
}
