package eeprom

import "time"

// Config holds the driver configuration.
type Config struct {
	// PollInterval is the pause between status polls while waiting for a
	// write cycle to finish
	PollInterval time.Duration

	// MaxPollAttempts bounds the busy-wait loop; exceeding it surfaces a
	// TimeoutError
	MaxPollAttempts int

	// CommandDelay is an optional settling pause after every frame
	CommandDelay time.Duration

	// ProgressCallback is called after each committed page (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// VerifyIdentity checks the echoed manufacturer ID during construction
	// on parts that implement the wake instruction
	VerifyIdentity bool

	// DeepSleepBetweenOps keeps the chip in deep power-down and brackets
	// every array operation with a wake/sleep pair (25xx512/25xx1024 only)
	DeepSleepBetweenOps bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		// Datasheet Twc is 5 ms max; 100 polls 500 µs apart give an
		// order-of-magnitude margin.
		PollInterval:    500 * time.Microsecond,
		MaxPollAttempts: 100,
		VerifyIdentity:  true,
	}
}

// Option is a functional option for configuring the Driver.
type Option func(*Config)

// WithPollInterval sets the pause between busy-wait status polls.
//
// Example:
//
//	drv, err := eeprom.New(spi, cs, wp, hold, profile,
//	    eeprom.WithPollInterval(time.Millisecond))
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval > 0 {
			c.PollInterval = interval
		}
	}
}

// WithMaxPollAttempts sets the busy-wait attempt budget.
//
// Example:
//
//	drv, err := eeprom.New(spi, cs, wp, hold, profile,
//	    eeprom.WithMaxPollAttempts(20))
func WithMaxPollAttempts(attempts int) Option {
	return func(c *Config) {
		if attempts > 0 {
			c.MaxPollAttempts = attempts
		}
	}
}

// WithCommandDelay adds a settling pause after every frame. Useful on slow
// level shifters or long wiring.
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}

// WithProgressCallback sets a callback to track multi-page writes.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the driver's operations.
//
// Example:
//
//	drv, err := eeprom.New(spi, cs, wp, hold, profile, eeprom.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithVerifyIdentity enables or disables the manufacturer ID check during
// construction. Default is true; it only applies to parts that implement
// the wake instruction.
func WithVerifyIdentity(verify bool) Option {
	return func(c *Config) {
		c.VerifyIdentity = verify
	}
}

// WithDeepSleepBetweenOps keeps the chip in deep power-down between array
// operations. Ignored on parts without the DPD instruction.
func WithDeepSleepBetweenOps(sleep bool) Option {
	return func(c *Config) {
		c.DeepSleepBetweenOps = sleep
	}
}
