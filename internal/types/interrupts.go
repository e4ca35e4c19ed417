package types

// Interrupt identifies one of the five interrupt sources. Its value is
// the bit it occupies in IE and IF.
type Interrupt = uint8

const (
	VBlankInterrupt Interrupt = Bit0
	LCDInterrupt    Interrupt = Bit1
	TimerInterrupt  Interrupt = Bit2
	SerialInterrupt Interrupt = Bit3
	JoypadInterrupt Interrupt = Bit4
)

// Interrupts lists the sources in dispatch priority order.
var Interrupts = [5]Interrupt{
	VBlankInterrupt,
	LCDInterrupt,
	TimerInterrupt,
	SerialInterrupt,
	JoypadInterrupt,
}

// Vector returns the address the CPU jumps to when servicing i.
func Vector(i Interrupt) uint16 {
	switch i {
	case VBlankInterrupt:
		return 0x0040
	case LCDInterrupt:
		return 0x0048
	case TimerInterrupt:
		return 0x0050
	case SerialInterrupt:
		return 0x0058
	case JoypadInterrupt:
		return 0x0060
	}
	return 0
}
