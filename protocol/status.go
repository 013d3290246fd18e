package protocol

// Status is a decoded STATUS register byte.
//
// The register is read fresh per poll and never cached: WIP and WEL change
// underneath the host as the chip's internal write cycle progresses.
type Status struct {
	// Value is the raw register byte
	Value byte
}

// WriteInProgress reports the WIP bit: an internal write or erase cycle is
// still running and the chip will ignore everything except RDSR.
func (s Status) WriteInProgress() bool {
	return s.Value&StatusWIP != 0
}

// WriteLatchEnabled reports the WEL bit: the write-enable latch is armed.
// The chip clears the latch itself when a write or erase cycle completes.
func (s Status) WriteLatchEnabled() bool {
	return s.Value&StatusWEL != 0
}

// ProtectionLevel returns the array protection level selected by the BP
// bits.
func (s Status) ProtectionLevel() WriteProtection {
	return WriteProtection(s.Value >> 2 & 0b11)
}

// SetProtectionLevel sets the BP bits.
func (s *Status) SetProtectionLevel(level WriteProtection) {
	s.Value = s.Value&^(StatusBP1|StatusBP0) | byte(level&0b11)<<2
}

// WriteProtectEnabled reports the WPEN bit. When clear, the WP pin is
// ignored and the STATUS register stays writable regardless of the pin.
func (s Status) WriteProtectEnabled() bool {
	return s.Value&StatusWPEN != 0
}

// SetWriteProtectEnabled sets or clears the WPEN bit.
func (s *Status) SetWriteProtectEnabled(enabled bool) {
	if enabled {
		s.Value |= StatusWPEN
	} else {
		s.Value &^= StatusWPEN
	}
}
