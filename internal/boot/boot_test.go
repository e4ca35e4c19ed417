package boot

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	img := make([]byte, Size)
	img[0] = 0x31
	img[0xFF] = 0x50

	r, err := Load(img)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	img[0] = 0x00
	if r.Read(0) != 0x31 || r.Read(0xFF) != 0x50 {
		t.Errorf("Expected image to be copied, got 0x%02X 0x%02X", r.Read(0), r.Read(0xFF))
	}
	if len(r.Checksum()) != 32 {
		t.Errorf("Expected an MD5 checksum, got %q", r.Checksum())
	}
	if r.Model() != "unknown" {
		t.Errorf("Expected unknown model, got %q", r.Model())
	}
}

func TestLoad_InvalidSize(t *testing.T) {
	for _, n := range []int{0, 0xFF, 0x101, 0x900} {
		if _, err := Load(make([]byte, n)); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Expected ErrInvalidSize for %d bytes, got %v", n, err)
		}
	}
}

func TestROM_Nil(t *testing.T) {
	var r *ROM
	if r.Model() != "none" || r.Checksum() != "" {
		t.Errorf("Expected nil ROM to report no model")
	}
}
