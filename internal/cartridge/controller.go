package cartridge

import "fmt"

// Controller is a memory bank controller family. The numeric value
// matches the family number, so MBC5 is 5.
type Controller uint8

const (
	NoController   Controller = 0
	ControllerMBC1 Controller = 1
	ControllerMBC2 Controller = 2
	ControllerMBC3 Controller = 3
	ControllerMBC5 Controller = 5
)

// ControllerFor maps a cartridge type byte to its controller family.
// Types without a supported controller fall back to NoController.
func ControllerFor(t Type) Controller {
	switch t {
	case MBC1, MBC1RAM, MBC1RAMBATT:
		return ControllerMBC1
	case MBC2, MBC2BATT:
		return ControllerMBC2
	case MBC3TIMERBATT, MBC3TIMERRAMBATT, MBC3, MBC3RAM, MBC3RAMBATT:
		return ControllerMBC3
	case MBC5, MBC5RAM, MBC5RAMBATT, MBC5RUMBLE, MBC5RUMBLERAM, MBC5RUMBLERAMBATT:
		return ControllerMBC5
	}
	return NoController
}

func (c Controller) String() string {
	if c == NoController {
		return "ROM"
	}
	return fmt.Sprintf("MBC%d", uint8(c))
}
