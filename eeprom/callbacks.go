package eeprom

import "time"

// Progress contains information about a multi-page write in flight.
// Passed to ProgressCallback after every completed page.
type Progress struct {
	// CurrentPage is the number of page writes completed so far
	CurrentPage int

	// TotalPages is the number of page writes the transfer needs
	TotalPages int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesWritten is the total number of bytes committed so far
	BytesWritten int

	// ElapsedTime is the time elapsed since the write started
	ElapsedTime time.Duration
}

// ProgressCallback is called after each committed page during a write.
// Implementations should return quickly: the callback runs between the
// busy-wait of one page and the latch arming of the next.
//
// Example:
//
//	drv, err := eeprom.New(spi, cs, wp, hold, profile,
//	    eeprom.WithProgressCallback(func(p eeprom.Progress) {
//	        fmt.Printf("%.1f%% - page %d/%d\n", p.Percentage, p.CurrentPage, p.TotalPages)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// driver. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	drv, err := eeprom.New(spi, cs, wp, hold, profile, eeprom.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
