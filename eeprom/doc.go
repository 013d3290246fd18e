// Package eeprom provides a high-level driver for Microchip 25xx SPI serial
// EEPROMs.
//
// # Overview
//
// This package sequences the chip's command protocol on top of a raw
// full-duplex transport:
//   - Arming the write-enable latch before every write and erase
//   - Splitting writes into page-bounded chunks
//   - Polling the STATUS register until each internal cycle completes
//   - Optional deep power-down handling and identity verification
//
// # Basic Usage
//
//	// User provides the SPI exchange primitive and three output pins
//	// (see the spihost package for a periph.io implementation).
//	drv, err := eeprom.New(spi, cs, wp, hold, protocol.Profile25LC256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = drv.Write(context.Background(), 0x0100, []byte("hello"))
//	data, err := drv.Read(context.Background(), 0x0100, 5)
//
// # Chip Profiles
//
// Address width and page size vary across the family and cannot be queried
// from the chip. Select the protocol.ChipProfile matching the attached
// part; New validates the profile's internal consistency once.
//
// # Progress Tracking
//
// Track multi-page writes with a callback:
//
//	drv, err := eeprom.New(spi, cs, wp, hold, profile,
//	    eeprom.WithProgressCallback(func(p eeprom.Progress) {
//	        fmt.Printf("%.1f%% - page %d/%d\n", p.Percentage, p.CurrentPage, p.TotalPages)
//	    }),
//	)
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	drv, err := eeprom.New(spi, cs, wp, hold, profile,
//	    eeprom.WithPollInterval(time.Millisecond),
//	    eeprom.WithMaxPollAttempts(20),
//	    eeprom.WithLogger(myLogger),
//	    eeprom.WithVerifyIdentity(false),
//	    eeprom.WithDeepSleepBetweenOps(true),
//	)
//
// # Concurrency
//
// The driver is single-threaded, synchronous and blocking. It owns its
// transport and pins exclusively; sharing a Driver between goroutines
// without external locking is undefined. The only suspension point is the
// bounded busy-wait after writes and erases, and a context cancels it.
//
// # Error Handling
//
// The package provides structured error types:
//   - TimeoutError: busy-wait exhausted its attempt budget
//   - WrongIDError: the attached part echoed an unexpected manufacturer ID
//   - BusyError: operation attempted during an internal write cycle
//   - UnsupportedError: instruction the chip model does not implement
//   - protocol.AddressRangeError / protocol.PageCrossingError: frame
//     validation failures, detected before any bus traffic
//
// Transport and pin errors pass through wrapped; the driver never retries
// them. A failed chunk aborts the remaining chunks of a write; chunks
// already committed stay written.
//
// # Hardware Independence
//
// This package does NOT implement hardware communication. Users provide a
// Transport (one full-duplex exchange per chip-select window) and three Pin
// implementations. This keeps the driver usable with memory-mapped SPI
// blocks, USB bridges, bit-banged GPIO or mock transports for testing.
package eeprom
