package mmu

import "testing"

func TestTileCache(t *testing.T) {
	m := newMMU(nil)

	// tile 0, row 0: low 0b1010_0000, high 0b1100_0000
	m.Write(0x8000, 0xA0)
	m.Write(0x8001, 0xC0)

	want := []uint8{3, 2, 1, 0, 0, 0, 0, 0}
	for x, w := range want {
		if got := m.ReadTilePixel(0, x, 0); got != w {
			t.Errorf("Expected pixel %d to be %d, got %d", x, w, got)
		}
	}

	// last row of the last tile
	m.Write(0x97FE, 0x01)
	m.Write(0x97FF, 0x01)
	if got := m.ReadTilePixel(Tiles-1, 7, 7); got != 3 {
		t.Errorf("Expected last pixel to be 3, got %d", got)
	}

	// tile 1, row 3
	m.Write(0x8010+6, 0xFF)
	if got := m.ReadTilePixel(1, 4, 3); got != 1 {
		t.Errorf("Expected tile 1 row 3 to decode, got %d", got)
	}
	m.Write(0x8010+6, 0x00)
	if got := m.ReadTilePixel(1, 4, 3); got != 0 {
		t.Errorf("Expected cache to follow the latest write, got %d", got)
	}
}

func TestTileCache_OutsideTileData(t *testing.T) {
	m := newMMU(nil)
	m.Write(0x9800, 0xFF)
	for tile := 0; tile < Tiles; tile++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if m.ReadTilePixel(tile, x, y) != 0 {
					t.Fatalf("Expected tile map writes to leave the cache alone")
				}
			}
		}
	}
}

func TestTileCache_OutOfRange(t *testing.T) {
	m := newMMU(nil)
	m.Write(0x8000, 0xFF)
	m.Write(0x8001, 0xFF)

	for _, p := range [][3]int{{Tiles, 0, 0}, {-1, 0, 0}, {0, 8, 0}, {0, 0, 8}, {0, -1, 0}} {
		if got := m.ReadTilePixel(p[0], p[1], p[2]); got != 0 {
			t.Errorf("Expected ReadTilePixel(%d, %d, %d) to be 0, got %d", p[0], p[1], p[2], got)
		}
	}
}
