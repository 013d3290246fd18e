package protocol

// ChipProfile describes one 25xx model: its capacity, the number of address
// bytes every addressed instruction carries, the page size that bounds a
// single write, and which optional instructions the part implements.
//
// Address width and page size are fixed together per model. The chip offers
// no way to discover them over the bus, so correctness depends entirely on
// the caller selecting the profile matching the physical part. Validate
// catches mispaired values at construction time rather than at transfer time.
type ChipProfile struct {
	// Name is the part number, e.g. "25LC256"
	Name string

	// DensityBits is the total capacity in bits
	DensityBits uint32

	// PageSize is the maximum contiguous write unit in bytes.
	// A single write instruction must never cross a page boundary.
	PageSize int

	// AddressBits is the address width carried by addressed instructions:
	// 8, 16 or 24
	AddressBits int

	// SupportsErase reports whether the part implements the PE/SE/CE
	// instructions
	SupportsErase bool

	// SupportsDeepSleep reports whether the part implements the DPD and
	// Release from Deep Power-Down instructions
	SupportsDeepSleep bool
}

// Predefined profiles for the ten supported models.
var (
	Profile25LC080A = ChipProfile{Name: "25LC080A", DensityBits: 8 * 1024, PageSize: 16, AddressBits: 16}
	Profile25LC080B = ChipProfile{Name: "25LC080B", DensityBits: 8 * 1024, PageSize: 32, AddressBits: 16}
	Profile25LC160A = ChipProfile{Name: "25LC160A", DensityBits: 16 * 1024, PageSize: 16, AddressBits: 16}
	Profile25LC160B = ChipProfile{Name: "25LC160B", DensityBits: 16 * 1024, PageSize: 32, AddressBits: 16}
	Profile25LC320A = ChipProfile{Name: "25LC320A", DensityBits: 32 * 1024, PageSize: 32, AddressBits: 16}
	Profile25LC640A = ChipProfile{Name: "25LC640A", DensityBits: 64 * 1024, PageSize: 32, AddressBits: 16}
	Profile25LC128  = ChipProfile{Name: "25LC128", DensityBits: 128 * 1024, PageSize: 64, AddressBits: 16}
	Profile25LC256  = ChipProfile{Name: "25LC256", DensityBits: 256 * 1024, PageSize: 64, AddressBits: 16}
	Profile25LC512  = ChipProfile{Name: "25LC512", DensityBits: 512 * 1024, PageSize: 128, AddressBits: 16, SupportsErase: true, SupportsDeepSleep: true}
	Profile25LC1024 = ChipProfile{Name: "25LC1024", DensityBits: 1024 * 1024, PageSize: 256, AddressBits: 24, SupportsErase: true, SupportsDeepSleep: true}
)

// Profiles lists every predefined profile, keyed by part number.
var Profiles = map[string]ChipProfile{
	"25LC080A": Profile25LC080A,
	"25LC080B": Profile25LC080B,
	"25LC160A": Profile25LC160A,
	"25LC160B": Profile25LC160B,
	"25LC320A": Profile25LC320A,
	"25LC640A": Profile25LC640A,
	"25LC128":  Profile25LC128,
	"25LC256":  Profile25LC256,
	"25LC512":  Profile25LC512,
	"25LC1024": Profile25LC1024,
}

// Capacity returns the total capacity in bytes.
func (p ChipProfile) Capacity() uint32 {
	return p.DensityBits / 8
}

// AddressBytes returns the number of address bytes per addressed instruction.
func (p ChipProfile) AddressBytes() int {
	return p.AddressBits / 8
}

// Validate checks the profile's internal consistency.
// It returns a ProfileError describing the first problem found.
func (p ChipProfile) Validate() error {
	switch p.AddressBits {
	case 8, 16, 24:
	default:
		return &ProfileError{Field: "AddressBits", Reason: "must be 8, 16 or 24"}
	}

	switch p.PageSize {
	case 16, 32, 64, 128, 256:
	default:
		return &ProfileError{Field: "PageSize", Reason: "must be 16, 32, 64, 128 or 256"}
	}

	if p.DensityBits == 0 || p.DensityBits%8 != 0 {
		return &ProfileError{Field: "DensityBits", Reason: "must be a positive multiple of 8"}
	}

	capacity := p.Capacity()
	if capacity%uint32(p.PageSize) != 0 {
		return &ProfileError{Field: "PageSize", Reason: "must divide the capacity evenly"}
	}

	// The highest valid address must be representable in AddressBits.
	if p.AddressBits < 32 && capacity > 1<<uint(p.AddressBits) {
		return &ProfileError{Field: "AddressBits", Reason: "too narrow for the configured density"}
	}

	return nil
}
