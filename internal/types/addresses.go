// Package types holds the hardware constants shared by the emulator core:
// register addresses, memory regions and interrupt vectors.
package types

// HardwareAddress is the address of a memory mapped hardware register.
// The registers live in 0xFF00 - 0xFF7F and at 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 selects which half of the joypad is visible in its low nibble.
	//
	//  Bit 5: Select buttons   (0=Select)
	//  Bit 4: Select d-pad     (0=Select)
	//  Bit 3: Down  or Start   (0=Pressed)
	//  Bit 2: Up    or Select  (0=Pressed)
	//  Bit 1: Left  or B       (0=Pressed)
	//  Bit 0: Right or A       (0=Pressed)
	P1 HardwareAddress = 0xFF00
	// SB holds the next byte to be shifted out of the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	SC HardwareAddress = 0xFF02
	// DIV is incremented at 16384Hz. Writing any value resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the rate selected by TAC. When it
	// overflows it is reloaded from TMA and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	//
	//  Bit 2:    Timer enable
	//  Bits 1-0: Clock select (00: 4096Hz, 01: 262144Hz, 10: 65536Hz, 11: 16384Hz)
	TAC HardwareAddress = 0xFF07
	// IF requests interrupts.
	//
	//  Bit 0: V-Blank  (INT 40h)
	//  Bit 1: LCD STAT (INT 48h)
	//  Bit 2: Timer    (INT 50h)
	//  Bit 3: Serial   (INT 58h)
	//  Bit 4: Joypad   (INT 60h)
	IF HardwareAddress = 0xFF0F

	// Sound registers are stored but never acted on.
	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR13 HardwareAddress = 0xFF13
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26
	// WaveRAMStart and WaveRAMEnd bound the 16 bytes of wave pattern RAM.
	WaveRAMStart HardwareAddress = 0xFF30
	WaveRAMEnd   HardwareAddress = 0xFF3F

	// LCDC controls the LCD.
	LCDC HardwareAddress = 0xFF40
	// STAT reports the LCD mode and selects the STAT interrupt sources.
	//
	//  Bit 6: LYC=LY interrupt
	//  Bit 5: Mode 2 OAM interrupt
	//  Bit 4: Mode 1 V-Blank interrupt
	//  Bit 3: Mode 0 H-Blank interrupt
	//  Bit 2: LYC=LY flag
	//  Bits 1-0: Mode
	STAT HardwareAddress = 0xFF41
	SCY  HardwareAddress = 0xFF42
	SCX  HardwareAddress = 0xFF43
	// LY is the current scanline, 0 - 153.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY every update.
	LYC HardwareAddress = 0xFF45
	// DMA starts a transfer from DMA*0x100 into OAM when written.
	DMA  HardwareAddress = 0xFF46
	BGP  HardwareAddress = 0xFF47
	OBP0 HardwareAddress = 0xFF48
	OBP1 HardwareAddress = 0xFF49
	WY   HardwareAddress = 0xFF4A
	WX   HardwareAddress = 0xFF4B
	// BDIS detaches the boot ROM when 0x01 is written to it.
	BDIS HardwareAddress = 0xFF50

	PCM12 HardwareAddress = 0xFF76
	PCM34 HardwareAddress = 0xFF77

	// IE enables interrupts. Its bits match IF.
	IE HardwareAddress = 0xFFFF
)

// Memory regions.
const (
	ROMBank0Start      uint16 = 0x0000
	ROMBankNStart      uint16 = 0x4000
	VRAMStart          uint16 = 0x8000
	TileDataEnd        uint16 = 0x97FF
	ExternalRAMStart   uint16 = 0xA000
	ExternalRAMEnd     uint16 = 0xBFFF
	OAMStart           uint16 = 0xFE00
	OAMSize                   = 0xA0
	BootROMEnd         uint16 = 0x00FF
	CartridgeWindowEnd uint16 = 0x7FFF
)
