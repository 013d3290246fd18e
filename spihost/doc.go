// Package spihost connects the EEPROM driver to real hardware through
// periph.io.
//
// It adapts periph.io's spi.Conn and gpio.PinIO to the eeprom package's
// Transport and Pin capabilities, and offers Open as a one-call path from
// registry names to a ready driver:
//
//	if _, err := host.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	drv, closer, err := spihost.Open("SPI0.0", "GPIO8", "GPIO23", "GPIO24",
//	    protocol.Profile25LC1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer closer.Close()
//
// Boards without a periph.io driver can skip this package entirely and
// implement the two small interfaces in the eeprom package directly.
package spihost
