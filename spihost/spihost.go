package spihost

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/moffa90/go-eeprom25x/eeprom"
	"github.com/moffa90/go-eeprom25x/protocol"
)

// DefaultFrequency is a conservative SPI clock for the whole 25xx family.
// Every supported part tolerates 5 MHz across the full voltage range.
const DefaultFrequency = 5 * physic.MegaHertz

// Conn adapts a periph.io spi.Conn to the driver's Transport.
type Conn struct {
	conn spi.Conn
}

// NewConn wraps an established SPI connection.
func NewConn(conn spi.Conn) *Conn {
	return &Conn{conn: conn}
}

// Transfer performs one full-duplex exchange, overwriting buf in place with
// the received bytes.
func (c *Conn) Transfer(buf []byte) error {
	return c.conn.Tx(buf, buf)
}

// PinOut adapts a periph.io gpio.PinIO to the driver's Pin.
type PinOut struct {
	pin gpio.PinIO
}

// NewPinOut wraps a GPIO pin used as an output line.
func NewPinOut(pin gpio.PinIO) *PinOut {
	return &PinOut{pin: pin}
}

// SetHigh drives the line high.
func (p *PinOut) SetHigh() error {
	return p.pin.Out(gpio.High)
}

// SetLow drives the line low.
func (p *PinOut) SetLow() error {
	return p.pin.Out(gpio.Low)
}

// Open resolves the named SPI port and GPIO lines through the periph.io
// registries, connects at DefaultFrequency in mode 0, and returns a ready
// driver. The returned closer releases the SPI port.
//
// The host must be initialized first (periph.io/x/host/v3 host.Init), and
// the chip select must be a free GPIO rather than the port's hardware CS,
// since the driver times the select window itself.
//
// Example:
//
//	if _, err := host.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	drv, closer, err := spihost.Open("SPI0.0", "GPIO8", "GPIO23", "GPIO24",
//	    protocol.Profile25LC256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer closer.Close()
func Open(spiPort, csPin, wpPin, holdPin string, profile protocol.ChipProfile, opts ...eeprom.Option) (*eeprom.Driver, io.Closer, error) {
	port, err := spireg.Open(spiPort)
	if err != nil {
		return nil, nil, fmt.Errorf("open SPI port %q: %w", spiPort, err)
	}

	conn, err := port.Connect(DefaultFrequency, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, nil, fmt.Errorf("connect SPI port %q: %w", spiPort, err)
	}

	pins := make([]gpio.PinIO, 3)
	for i, name := range []string{csPin, wpPin, holdPin} {
		pin := gpioreg.ByName(name)
		if pin == nil {
			port.Close()
			return nil, nil, fmt.Errorf("unknown GPIO pin %q", name)
		}
		pins[i] = pin
	}

	drv, err := eeprom.New(NewConn(conn),
		NewPinOut(pins[0]), NewPinOut(pins[1]), NewPinOut(pins[2]),
		profile, opts...)
	if err != nil {
		port.Close()
		return nil, nil, err
	}

	return drv, port, nil
}
