package eeprom

import (
	"errors"
	"fmt"
	"time"
)

// TimeoutError indicates that the chip's write-in-progress bit never
// cleared within the configured polling budget.
type TimeoutError struct {
	// Attempts is the number of status polls issued
	Attempts int

	// Interval is the pause between polls
	Interval time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("chip still busy after %d status polls %v apart",
		e.Attempts, e.Interval)
}

// WrongIDError indicates that the manufacturer ID echoed during wake-up
// does not match the expected value, i.e. the attached part is not the
// configured chip (or is wired incorrectly).
type WrongIDError struct {
	Expected byte
	Actual   byte
}

func (e *WrongIDError) Error() string {
	return fmt.Sprintf("manufacturer ID mismatch: expected 0x%02X, got 0x%02X",
		e.Expected, e.Actual)
}

// BusyError indicates that an operation was attempted while the chip
// reported a write cycle in progress.
type BusyError struct{}

func (e *BusyError) Error() string {
	return "chip is busy with an internal write cycle"
}

// UnsupportedError indicates an instruction the configured chip model does
// not implement.
type UnsupportedError struct {
	// Op names the rejected operation
	Op string

	// Model is the configured part number
	Model string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported by the %s", e.Op, e.Model)
}

// IsTimeout returns true if the error is a TimeoutError.
func IsTimeout(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}
