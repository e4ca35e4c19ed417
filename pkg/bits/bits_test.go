package bits

import "testing"

func TestSetReset(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		b := Set(0, i)
		if b != 1<<i {
			t.Errorf("Expected 0x%02X, got 0x%02X", 1<<i, b)
		}
		if !Test(b, i) {
			t.Errorf("Expected bit %d to be set", i)
		}
		if Val(b, i) != 1 {
			t.Errorf("Expected value of bit %d to be 1, got %d", i, Val(b, i))
		}
		if Reset(0xFF, i) != 0xFF&^(1<<i) {
			t.Errorf("Expected bit %d to be reset, got 0b%08b", i, Reset(0xFF, i))
		}
	}
}

func TestSetTo(t *testing.T) {
	if SetTo(0x00, 3, true) != 0x08 {
		t.Errorf("Expected 0x08, got 0x%02X", SetTo(0x00, 3, true))
	}
	if SetTo(0xFF, 3, false) != 0xF7 {
		t.Errorf("Expected 0xF7, got 0x%02X", SetTo(0xFF, 3, false))
	}
}

func TestSigned(t *testing.T) {
	tests := map[uint8]int8{
		0x00: 0,
		0x7F: 127,
		0x80: -128,
		0xFE: -2,
		0xFF: -1,
	}
	for in, want := range tests {
		if got := Signed(in); got != want {
			t.Errorf("Signed(0x%02X): expected %d, got %d", in, want, got)
		}
	}
}

func TestJoinSplit(t *testing.T) {
	if v := Join(0x12, 0x34); v != 0x1234 {
		t.Errorf("Expected 0x1234, got 0x%04X", v)
	}
	hi, lo := Split(0xBEEF)
	if hi != 0xBE || lo != 0xEF {
		t.Errorf("Expected 0xBE 0xEF, got 0x%02X 0x%02X", hi, lo)
	}
	if !Test16(0x0100, 8) || Test16(0x0100, 7) {
		t.Errorf("Test16 returned the wrong bit")
	}
	if FromBool(true) != 1 || FromBool(false) != 0 {
		t.Errorf("FromBool returned the wrong value")
	}
}
