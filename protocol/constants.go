package protocol

// Instruction opcodes per the Microchip 25xx datasheet (Table 2-1,
// "Instruction Set").
const (
	// OpRead reads data from memory starting at the selected address
	OpRead = 0x03

	// OpWrite writes data to memory starting at the selected address
	OpWrite = 0x02

	// OpWriteEnable sets the write-enable latch (WREN)
	OpWriteEnable = 0x06

	// OpWriteDisable resets the write-enable latch (WRDI)
	OpWriteDisable = 0x04

	// OpReadStatus reads the STATUS register (RDSR)
	OpReadStatus = 0x05

	// OpWriteStatus writes the STATUS register (WRSR)
	OpWriteStatus = 0x01

	// OpPageErase erases one page (25xx512/25xx1024 only)
	OpPageErase = 0x42

	// OpSectorErase erases one sector (25xx512/25xx1024 only)
	OpSectorErase = 0xD8

	// OpChipErase erases the entire array (25xx512/25xx1024 only)
	OpChipErase = 0xC7

	// OpReleasePowerDown releases the chip from deep power-down and
	// clocks out the manufacturer ID (25xx512/25xx1024 only)
	OpReleasePowerDown = 0xAB

	// OpDeepPowerDown enters deep power-down mode (25xx512/25xx1024 only)
	OpDeepPowerDown = 0xB9
)

// ManufacturerID is the Microchip manufacturer ID byte echoed by the
// Release from Deep Power-Down instruction.
const ManufacturerID = 0x29

// STATUS register bit positions.
const (
	// StatusWIP is the Write-In-Progress bit (read-only)
	StatusWIP = 1 << 0

	// StatusWEL is the Write-Enable-Latch bit (read-only)
	StatusWEL = 1 << 1

	// StatusBP0 and StatusBP1 select the protected block range
	StatusBP0 = 1 << 2
	StatusBP1 = 1 << 3

	// StatusWPEN makes the WP pin effective; when clear the pin is ignored
	StatusWPEN = 1 << 7
)

// Erase identifies the scope of an erase instruction.
type Erase byte

// Erase scopes, mapped directly to their opcodes.
const (
	ErasePage   Erase = OpPageErase
	EraseSector Erase = OpSectorErase
	EraseChip   Erase = OpChipErase
)

// String returns a human-readable name for the erase scope.
func (e Erase) String() string {
	switch e {
	case ErasePage:
		return "page erase"
	case EraseSector:
		return "sector erase"
	case EraseChip:
		return "chip erase"
	default:
		return "unknown erase"
	}
}

// WriteProtection is the array protection level selected by the BP bits.
// Protection always covers the upper portion of the array.
type WriteProtection byte

// Protection levels per datasheet Table 4-1.
const (
	// ProtectNone leaves the whole array writable
	ProtectNone WriteProtection = 0b00

	// ProtectQuarter protects the upper quarter of the array
	ProtectQuarter WriteProtection = 0b01

	// ProtectHalf protects the upper half of the array
	ProtectHalf WriteProtection = 0b10

	// ProtectAll protects the entire array
	ProtectAll WriteProtection = 0b11
)

// String returns a human-readable name for the protection level.
func (w WriteProtection) String() string {
	switch w {
	case ProtectNone:
		return "none"
	case ProtectQuarter:
		return "upper quarter"
	case ProtectHalf:
		return "upper half"
	case ProtectAll:
		return "all"
	default:
		return "unknown"
	}
}
