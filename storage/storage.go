package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/moffa90/go-eeprom25x/eeprom"
	"github.com/moffa90/go-eeprom25x/protocol"
)

// Storage presents an EEPROM as a flat byte store with the standard io
// interfaces: ReaderAt, WriterAt and ReadWriteSeeker. Paging, latching and
// busy-waiting stay inside the driver; this layer only maps stream
// semantics (offsets, EOF) onto the array.
//
// Like the driver it wraps, a Storage is not safe for concurrent use.
type Storage struct {
	drv    *eeprom.Driver
	offset int64
}

// New wraps a driver. The Storage borrows the driver; callers must not use
// the driver concurrently with it.
func New(drv *eeprom.Driver) *Storage {
	return &Storage{drv: drv}
}

// Capacity returns the array size in bytes.
func (s *Storage) Capacity() int64 {
	return int64(s.drv.Profile().Capacity())
}

// ReadAt reads len(p) bytes starting at off. Reads truncated by the end of
// the array return the bytes read and io.EOF.
func (s *Storage) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset %d", off)
	}
	capacity := s.Capacity()
	if off >= capacity {
		return 0, io.EOF
	}

	n := len(p)
	if int64(n) > capacity-off {
		n = int(capacity - off)
	}

	data, err := s.drv.Read(context.Background(), uint32(off), n)
	if err != nil {
		return 0, err
	}
	copy(p, data)

	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt writes len(p) bytes starting at off. Writes that would run past
// the end of the array are rejected whole; the hardware offers no partial
// success worth reporting.
func (s *Storage) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset %d", off)
	}
	if off+int64(len(p)) > s.Capacity() {
		return 0, &protocol.AddressRangeError{
			Addr:     uint32(off),
			Length:   len(p),
			Capacity: s.drv.Profile().Capacity(),
		}
	}

	if err := s.drv.Write(context.Background(), uint32(off), p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read reads from the current offset, advancing it.
func (s *Storage) Read(p []byte) (int, error) {
	n, err := s.ReadAt(p, s.offset)
	s.offset += int64(n)
	return n, err
}

// Write writes at the current offset, advancing it.
func (s *Storage) Write(p []byte) (int, error) {
	n, err := s.WriteAt(p, s.offset)
	s.offset += int64(n)
	return n, err
}

// Seek sets the offset for the next Read or Write. Seeking past the end of
// the array is allowed; the following operation reports the EOF or range
// error.
func (s *Storage) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = s.offset + offset
	case io.SeekEnd:
		next = s.Capacity() + offset
	default:
		return s.offset, fmt.Errorf("invalid whence %d", whence)
	}

	if next < 0 {
		return s.offset, fmt.Errorf("seek before start of array")
	}
	s.offset = next
	return next, nil
}
