package protocol

import (
	"errors"
	"fmt"
)

// AddressRangeError indicates that a requested address or address+length
// range does not fit the configured chip.
// It is detected before any bus transaction takes place.
type AddressRangeError struct {
	// Addr is the requested start address
	Addr uint32

	// Length is the requested transfer length in bytes
	Length int

	// Capacity is the highest valid address plus one
	Capacity uint32
}

func (e *AddressRangeError) Error() string {
	return fmt.Sprintf("address range 0x%06X+%d exceeds capacity %d bytes",
		e.Addr, e.Length, e.Capacity)
}

// PageCrossingError indicates that a single write frame would advance past
// a page boundary. The paged transfer planner splits writes so this never
// happens; seeing it means a caller bypassed the planner.
type PageCrossingError struct {
	// Addr is the frame's start address
	Addr uint32

	// Length is the frame's payload length
	Length int

	// PageSize is the page size in bytes
	PageSize int
}

func (e *PageCrossingError) Error() string {
	return fmt.Sprintf("write of %d bytes at 0x%06X crosses a %d-byte page boundary",
		e.Length, e.Addr, e.PageSize)
}

// ProfileError indicates an internally inconsistent ChipProfile.
// This is a configuration defect, surfaced once at construction.
type ProfileError struct {
	// Field is the offending profile field
	Field string

	// Reason describes the constraint that was violated
	Reason string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("invalid chip profile: %s %s", e.Field, e.Reason)
}

// IsAddressRange returns true if the error is an AddressRangeError.
func IsAddressRange(err error) bool {
	var e *AddressRangeError
	return errors.As(err, &e)
}

// IsPageCrossing returns true if the error is a PageCrossingError.
func IsPageCrossing(err error) bool {
	var e *PageCrossingError
	return errors.As(err, &e)
}
