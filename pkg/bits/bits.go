// Package bits provides small helpers for working with individual bits
// and byte pairs.
package bits

// Val returns the value of the bit at the given index.
func Val(b uint8, i uint8) uint8 {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// SetTo sets or resets the bit at the given index depending on on.
func SetTo(b, i uint8, on bool) uint8 {
	if on {
		return Set(b, i)
	}
	return Reset(b, i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Test16 tests the bit at the given index of a 16-bit value.
func Test16(v uint16, i uint8) bool {
	return (v>>i)&1 != 0
}

// FromBool returns 1 if v is true, otherwise 0.
func FromBool(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// Signed interprets b as a two's complement 8-bit value.
func Signed(b uint8) int8 {
	return int8(b)
}

// Join combines a high and low byte into a 16-bit value.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split returns the high and low bytes of v.
func Split(v uint16) (high, low uint8) {
	return uint8(v >> 8), uint8(v)
}
