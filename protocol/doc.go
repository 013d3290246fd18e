// Package protocol implements the Microchip 25xx serial EEPROM command set.
//
// This package provides functions to build instruction frames and decode the
// STATUS register per the 25xx datasheet, parameterized over the ten
// supported chip models.
//
// # Protocol Overview
//
// Every transaction is one full-duplex SPI exchange framed by chip select:
//
//	Addressed:  [OPCODE][ADDR (1-3 bytes, big-endian)][DATA...]
//	Simple:     [OPCODE]
//	Status:     [RDSR][don't-care] -> STATUS in the second received byte
//
// Address width (8, 16 or 24 bits) and page size are fixed per model and
// described by a ChipProfile; the chip offers no way to query them, so the
// caller must select the profile matching the attached part.
//
// # Frame Builders
//
// Use the Build* functions to create instruction frames:
//
//	frame, err := protocol.BuildReadFrame(profile, addr, length)
//	frame, err := protocol.BuildWriteFrame(profile, addr, data)
//	frame := protocol.BuildSimpleCommand(protocol.OpWriteEnable)
//	// ... etc
//
// Write frames are validated against the profile's page boundary: a single
// WRITE must never cross a page, or the chip wraps within the page and
// corrupts data.
//
// # Status Register
//
// Decode RDSR responses with the Status type:
//
//	st := protocol.Status{Value: frame[1]}
//	for st.WriteInProgress() {
//	    // poll again
//	}
//
// # Error Handling
//
// Validation failures return structured error types:
//
//	AddressRangeError — address or range exceeds the configured density
//	PageCrossingError — a write frame would straddle a page boundary
//	ProfileError      — internally inconsistent ChipProfile
//
// # Reference
//
// Microchip 25AA/25LC datasheets, Instruction Set tables. Exact opcode
// values are common to the whole family.
package protocol
