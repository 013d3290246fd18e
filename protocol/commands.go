package protocol

import "fmt"

// EncodeAddress emits addr as exactly addressBits/8 big-endian bytes.
// It returns an AddressRangeError if addr needs more bits than addressBits
// provides.
func EncodeAddress(addr uint32, addressBits int) ([]byte, error) {
	switch addressBits {
	case 8, 16, 24:
	default:
		return nil, fmt.Errorf("address width must be 8, 16 or 24 bits, got %d", addressBits)
	}

	if addressBits < 32 && addr>>uint(addressBits) != 0 {
		return nil, &AddressRangeError{Addr: addr, Capacity: 1 << uint(addressBits)}
	}

	n := addressBits / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(addr >> uint(8*(n-1-i)))
	}
	return out, nil
}

// checkRange validates that [addr, addr+length) lies inside the array.
func checkRange(p ChipProfile, addr uint32, length int) error {
	capacity := p.Capacity()
	if uint64(addr)+uint64(length) > uint64(capacity) {
		return &AddressRangeError{Addr: addr, Length: length, Capacity: capacity}
	}
	return nil
}

// BuildReadFrame constructs a READ instruction frame.
//
// Frame structure:
//
//	[READ][ADDR...][length don't-care bytes]
//
// The trailing bytes are placeholders clocked out while the chip shifts the
// requested data back; the transport overwrites them in place.
func BuildReadFrame(p ChipProfile, addr uint32, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("read length cannot be negative, got %d", length)
	}
	if err := checkRange(p, addr, length); err != nil {
		return nil, err
	}

	addrBytes, err := EncodeAddress(addr, p.AddressBits)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, 1+len(addrBytes)+length)
	frame = append(frame, OpRead)
	frame = append(frame, addrBytes...)
	frame = append(frame, make([]byte, length)...)
	return frame, nil
}

// BuildWriteFrame constructs a WRITE instruction frame.
//
// Frame structure:
//
//	[WRITE][ADDR...][DATA...]
//
// The data must fit between addr and the end of its page. The paged
// transfer planner guarantees this by construction; the check here catches
// callers that build frames directly.
func BuildWriteFrame(p ChipProfile, addr uint32, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("write data cannot be empty")
	}
	if err := checkRange(p, addr, len(data)); err != nil {
		return nil, err
	}

	page := uint32(p.PageSize)
	if (addr+uint32(len(data))-1)/page != addr/page {
		return nil, &PageCrossingError{Addr: addr, Length: len(data), PageSize: p.PageSize}
	}

	addrBytes, err := EncodeAddress(addr, p.AddressBits)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, 1+len(addrBytes)+len(data))
	frame = append(frame, OpWrite)
	frame = append(frame, addrBytes...)
	frame = append(frame, data...)
	return frame, nil
}

// BuildSimpleCommand constructs a single-byte frame for instructions that
// carry no address or data (WREN, WRDI, DPD, CE, ...).
func BuildSimpleCommand(opcode byte) []byte {
	return []byte{opcode}
}

// BuildReadStatusFrame constructs an RDSR frame.
//
// Frame structure:
//
//	[RDSR][don't-care]
//
// The chip shifts the STATUS register into the second byte.
func BuildReadStatusFrame() []byte {
	return []byte{OpReadStatus, 0}
}

// BuildWriteStatusFrame constructs a WRSR frame carrying the new STATUS
// register value.
func BuildWriteStatusFrame(value byte) []byte {
	return []byte{OpWriteStatus, value}
}

// BuildReleasePowerDownFrame constructs a Release from Deep Power-Down
// frame.
//
// Frame structure:
//
//	[RDID][dummy address bytes][don't-care]
//
// The chip shifts its manufacturer ID into the final byte; use
// ReleaseIDIndex to locate it in the exchanged frame.
func BuildReleasePowerDownFrame(p ChipProfile) []byte {
	frame := make([]byte, 2+p.AddressBytes())
	frame[0] = OpReleasePowerDown
	return frame
}

// ReleaseIDIndex returns the index of the manufacturer ID byte within an
// exchanged Release from Deep Power-Down frame.
func ReleaseIDIndex(p ChipProfile) int {
	return 1 + p.AddressBytes()
}

// BuildEraseFrame constructs a PE, SE or CE instruction frame.
//
// Page and sector erase address the region to clear; chip erase is a bare
// opcode and ignores addr.
func BuildEraseFrame(p ChipProfile, op Erase, addr uint32) ([]byte, error) {
	switch op {
	case ErasePage, EraseSector:
	case EraseChip:
		return []byte{byte(op)}, nil
	default:
		return nil, fmt.Errorf("unknown erase opcode 0x%02X", byte(op))
	}

	if err := checkRange(p, addr, 1); err != nil {
		return nil, err
	}

	addrBytes, err := EncodeAddress(addr, p.AddressBits)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, 0, 1+len(addrBytes))
	frame = append(frame, byte(op))
	frame = append(frame, addrBytes...)
	return frame, nil
}

// ReadCommandWord packs the READ opcode and a 24-bit address into one
// 32-bit command word, for advanced callers that manage their own transfer
// loop and shift the word out big-endian.
func ReadCommandWord(addr uint32) uint32 {
	return addr&0x00FFFFFF | uint32(OpRead)<<24
}

// WriteCommandWord packs the WRITE opcode and a 24-bit address into one
// 32-bit command word.
func WriteCommandWord(addr uint32) uint32 {
	return addr&0x00FFFFFF | uint32(OpWrite)<<24
}
