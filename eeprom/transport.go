package eeprom

// Transport is the full-duplex exchange primitive the driver runs on.
// Implementations shift buf out on MOSI and overwrite it in place with the
// bytes received on MISO. Chip select is managed by the driver, not the
// transport: one Transfer call is exactly one select window's payload.
type Transport interface {
	Transfer(buf []byte) error
}

// Pin is a single digital output line: chip select, write protect or hold.
type Pin interface {
	SetHigh() error
	SetLow() error
}
