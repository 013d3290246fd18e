package eeprom

import (
	"context"
	"fmt"
	"time"

	"github.com/moffa90/go-eeprom25x/protocol"
)

// Driver drives one Microchip 25xx serial EEPROM over a full-duplex
// transport and three control lines.
//
// The driver takes exclusive ownership of its transport and pins: the
// protocol has per-transaction state (chip select windows, the write-enable
// latch) that a second user would corrupt. A Driver is NOT safe for
// concurrent use; callers needing multiple goroutines must serialize access
// themselves.
type Driver struct {
	transport Transport
	cs        Pin
	wp        Pin
	hold      Pin
	profile   protocol.ChipProfile
	config    Config
}

// New creates a Driver for the given chip and takes the bus to a known
// state: chip deselected, hold released, write-protect asserted.
//
// On parts that implement the wake instruction the chip is released from
// deep power-down and its echoed manufacturer ID verified (returning a
// WrongIDError on mismatch) unless disabled via WithVerifyIdentity(false).
//
// Example:
//
//	drv, err := eeprom.New(spi, cs, wp, hold, protocol.Profile25LC1024,
//	    eeprom.WithPollInterval(time.Millisecond),
//	    eeprom.WithMaxPollAttempts(20),
//	)
func New(transport Transport, cs, wp, hold Pin, profile protocol.ChipProfile, opts ...Option) (*Driver, error) {
	if transport == nil {
		return nil, fmt.Errorf("transport cannot be nil")
	}
	if cs == nil || wp == nil || hold == nil {
		return nil, fmt.Errorf("chip-select, write-protect and hold pins cannot be nil")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Driver{
		transport: transport,
		cs:        cs,
		wp:        wp,
		hold:      hold,
		profile:   profile,
		config:    cfg,
	}

	if err := d.cs.SetHigh(); err != nil {
		return nil, fmt.Errorf("release chip select: %w", err)
	}
	if err := d.hold.SetHigh(); err != nil {
		return nil, fmt.Errorf("release hold: %w", err)
	}
	if err := d.wp.SetHigh(); err != nil {
		return nil, fmt.Errorf("release write protect: %w", err)
	}

	if profile.SupportsDeepSleep {
		if cfg.VerifyIdentity {
			id, err := d.ReleaseFromDeepSleepAndGetManufacturerID()
			if err != nil {
				return nil, fmt.Errorf("wake chip: %w", err)
			}
			if id != protocol.ManufacturerID {
				return nil, &WrongIDError{Expected: protocol.ManufacturerID, Actual: id}
			}
			d.logDebug("chip identified", "model", profile.Name, "id", fmt.Sprintf("0x%02X", id))
		}
		if cfg.DeepSleepBetweenOps {
			if err := d.DeepSleep(); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Profile returns the configured chip profile.
func (d *Driver) Profile() protocol.ChipProfile {
	return d.profile
}

// Read returns length bytes starting at addr.
//
// Reads are a single unpaged transaction: the chip streams the whole array
// sequentially with no page restriction. The range is validated before any
// bus traffic.
func (d *Driver) Read(ctx context.Context, addr uint32, length int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	frame, err := protocol.BuildReadFrame(d.profile, addr, length)
	if err != nil {
		return nil, err
	}

	wake, err := d.wakeForOp()
	if err != nil {
		return nil, err
	}
	defer wake()

	if err := d.transfer(frame); err != nil {
		return nil, fmt.Errorf("read 0x%06X: %w", addr, err)
	}

	d.logDebug("read", "addr", fmt.Sprintf("0x%06X", addr), "len", length)

	// Discard the opcode/address echo; the data phase follows it.
	return frame[1+d.profile.AddressBytes():], nil
}

// Write writes data starting at addr, splitting the transfer into
// page-bounded chunks. Each chunk is individually latched and busy-waited:
//
//	WREN -> [WRITE][ADDR][chunk] -> poll WIP until clear -> WRDI
//
// Chunks are strictly sequential; the chip cannot accept a command while a
// write cycle runs and clears the latch itself after each one. On failure
// the remaining chunks are abandoned but previously committed chunks stay
// written; the hardware has no multi-page transaction to roll back.
func (d *Driver) Write(ctx context.Context, addr uint32, data []byte) error {
	capacity := d.profile.Capacity()
	if uint64(addr)+uint64(len(data)) > uint64(capacity) {
		return &protocol.AddressRangeError{Addr: addr, Length: len(data), Capacity: capacity}
	}
	if len(data) == 0 {
		return nil
	}

	wake, err := d.wakeForOp()
	if err != nil {
		return err
	}
	defer wake()

	pageSize := uint32(d.profile.PageSize)
	totalPages := countChunks(addr, len(data), d.profile.PageSize)
	startTime := time.Now()
	written := 0

	for page := 0; len(data) > 0; page++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		// The first chunk may be partial so the frame stops at the page
		// boundary; all later chunks start page-aligned.
		chunk := int(pageSize - addr%pageSize)
		if chunk > len(data) {
			chunk = len(data)
		}

		if err := d.writePage(ctx, addr, data[:chunk]); err != nil {
			return fmt.Errorf("write page at 0x%06X: %w", addr, err)
		}

		addr += uint32(chunk)
		data = data[chunk:]
		written += chunk

		d.reportProgress(Progress{
			CurrentPage:  page + 1,
			TotalPages:   totalPages,
			Percentage:   float64(page+1) / float64(totalPages) * 100,
			BytesWritten: written,
			ElapsedTime:  time.Since(startTime),
		})
	}

	d.logInfo("write complete", "bytes", written, "pages", totalPages,
		"elapsed", time.Since(startTime).String())

	return nil
}

// writePage commits one page-bounded chunk.
func (d *Driver) writePage(ctx context.Context, addr uint32, chunk []byte) error {
	frame, err := protocol.BuildWriteFrame(d.profile, addr, chunk)
	if err != nil {
		return err
	}

	// The latch must be re-armed for every chunk: the chip clears it when
	// the previous cycle completes.
	if err := d.WriteEnable(); err != nil {
		return err
	}
	if err := d.transfer(frame); err != nil {
		return err
	}
	if err := d.WaitWhileBusy(ctx); err != nil {
		return err
	}
	return d.WriteDisable()
}

// countChunks returns the number of page-bounded chunks a write needs.
func countChunks(addr uint32, length, pageSize int) int {
	first := pageSize - int(addr)%pageSize
	if length <= first {
		return 1
	}
	rest := length - first
	return 1 + (rest+pageSize-1)/pageSize
}

// WriteEnable arms the write-enable latch (WREN). The chip requires this
// immediately before every write or erase and clears the latch itself when
// the cycle completes.
func (d *Driver) WriteEnable() error {
	return d.transfer(protocol.BuildSimpleCommand(protocol.OpWriteEnable))
}

// WriteDisable clears the write-enable latch (WRDI).
func (d *Driver) WriteDisable() error {
	return d.transfer(protocol.BuildSimpleCommand(protocol.OpWriteDisable))
}

// ReadStatus returns a freshly read STATUS register. The register is never
// cached: WIP and WEL change as the chip's internal cycle progresses.
func (d *Driver) ReadStatus() (protocol.Status, error) {
	frame := protocol.BuildReadStatusFrame()
	if err := d.transfer(frame); err != nil {
		return protocol.Status{}, err
	}
	return protocol.Status{Value: frame[1]}, nil
}

// WaitWhileBusy polls the STATUS register until the write-in-progress bit
// clears, pausing PollInterval between polls, for at most MaxPollAttempts
// polls. It returns a TimeoutError when the budget is exhausted.
//
// A transport error during a poll is fatal to the operation and surfaces
// immediately; only the busy bit is retried.
func (d *Driver) WaitWhileBusy(ctx context.Context) error {
	for attempt := 0; attempt < d.config.MaxPollAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("cancelled: %w", err)
		}

		status, err := d.ReadStatus()
		if err != nil {
			return err
		}
		if !status.WriteInProgress() {
			return nil
		}

		time.Sleep(d.config.PollInterval)
	}

	return &TimeoutError{Attempts: d.config.MaxPollAttempts, Interval: d.config.PollInterval}
}

// ReleaseFromDeepSleepAndGetManufacturerID wakes the chip from deep
// power-down and returns the manufacturer ID it echoes. Doubles as a
// presence/identity probe; Microchip parts answer protocol.ManufacturerID.
func (d *Driver) ReleaseFromDeepSleepAndGetManufacturerID() (byte, error) {
	if !d.profile.SupportsDeepSleep {
		return 0, &UnsupportedError{Op: "release from deep power-down", Model: d.profile.Name}
	}

	frame := protocol.BuildReleasePowerDownFrame(d.profile)
	if err := d.transfer(frame); err != nil {
		return 0, err
	}
	return frame[protocol.ReleaseIDIndex(d.profile)], nil
}

// DeepSleep puts the chip into deep power-down mode. Only RDID releases it.
func (d *Driver) DeepSleep() error {
	if !d.profile.SupportsDeepSleep {
		return &UnsupportedError{Op: "deep power-down", Model: d.profile.Name}
	}
	return d.transfer(protocol.BuildSimpleCommand(protocol.OpDeepPowerDown))
}

// Erase clears a page, a sector or the whole array. Like writes, an erase
// must be latched first and runs as an internal cycle that is busy-waited.
func (d *Driver) Erase(ctx context.Context, op protocol.Erase, addr uint32) error {
	if !d.profile.SupportsErase {
		return &UnsupportedError{Op: op.String(), Model: d.profile.Name}
	}

	frame, err := protocol.BuildEraseFrame(d.profile, op, addr)
	if err != nil {
		return err
	}

	status, err := d.ReadStatus()
	if err != nil {
		return err
	}
	if status.WriteInProgress() {
		return &BusyError{}
	}

	wake, err := d.wakeForOp()
	if err != nil {
		return err
	}
	defer wake()

	if err := d.WriteEnable(); err != nil {
		return err
	}
	if err := d.transfer(frame); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	d.logInfo("erase issued", "scope", op.String(), "addr", fmt.Sprintf("0x%06X", addr))

	return d.WaitWhileBusy(ctx)
}

// SetArrayWriteProtection selects which part of the array the BP bits
// protect: none, the upper quarter, the upper half or everything.
//
// The STATUS register write is bracketed by a WPEN unlock/lock sequence so
// it succeeds regardless of the WP pin, and the register is left protected
// again afterwards.
func (d *Driver) SetArrayWriteProtection(ctx context.Context, level protocol.WriteProtection) error {
	if err := d.enableStatusWrite(ctx); err != nil {
		return fmt.Errorf("unlock status register: %w", err)
	}

	status, err := d.ReadStatus()
	if err != nil {
		return err
	}
	status.SetProtectionLevel(level)

	if err := d.writeStatus(ctx, status); err != nil {
		return fmt.Errorf("set protection level: %w", err)
	}

	d.logInfo("array protection changed", "level", level.String())

	if err := d.disableStatusWrite(ctx); err != nil {
		return fmt.Errorf("lock status register: %w", err)
	}
	return nil
}

// enableStatusWrite clears WPEN so the STATUS register is writable
// regardless of the WP pin.
func (d *Driver) enableStatusWrite(ctx context.Context) error {
	if err := d.wp.SetHigh(); err != nil {
		return fmt.Errorf("release write protect: %w", err)
	}

	status, err := d.ReadStatus()
	if err != nil {
		return err
	}
	status.SetWriteProtectEnabled(false)
	return d.writeStatus(ctx, status)
}

// disableStatusWrite sets WPEN and asserts the WP pin, hardware-protecting
// the STATUS register.
func (d *Driver) disableStatusWrite(ctx context.Context) error {
	if err := d.wp.SetHigh(); err != nil {
		return fmt.Errorf("release write protect: %w", err)
	}

	status, err := d.ReadStatus()
	if err != nil {
		return err
	}
	status.SetWriteProtectEnabled(true)
	if err := d.writeStatus(ctx, status); err != nil {
		return err
	}

	return d.wp.SetLow()
}

// writeStatus performs one latched, busy-waited WRSR cycle.
func (d *Driver) writeStatus(ctx context.Context, status protocol.Status) error {
	if err := d.WriteEnable(); err != nil {
		return err
	}
	if err := d.transfer(protocol.BuildWriteStatusFrame(status.Value)); err != nil {
		return err
	}
	return d.WaitWhileBusy(ctx)
}

// HoldTransfer pauses or resumes the chip mid-transaction via the
// active-low HOLD line. While held the chip ignores the clock but keeps its
// internal state, so a paused transfer resumes where it stopped.
func (d *Driver) HoldTransfer(hold bool) error {
	if hold {
		return d.hold.SetLow()
	}
	return d.hold.SetHigh()
}

// wakeForOp brackets an array operation with a wake/sleep pair when the
// driver is configured to keep the chip in deep power-down. The returned
// function restores the sleep state and is safe to defer unconditionally.
func (d *Driver) wakeForOp() (func(), error) {
	if !d.config.DeepSleepBetweenOps || !d.profile.SupportsDeepSleep {
		return func() {}, nil
	}

	if _, err := d.ReleaseFromDeepSleepAndGetManufacturerID(); err != nil {
		return nil, fmt.Errorf("wake chip: %w", err)
	}
	return func() {
		if err := d.DeepSleep(); err != nil {
			d.logError("return to deep sleep", "error", err.Error())
		}
	}, nil
}

// transfer exchanges one frame inside a single chip-select window.
// Deasserting chip select mid-frame would abort the chip's interpretation
// of the command, so the select stays low for the whole exchange.
func (d *Driver) transfer(frame []byte) (err error) {
	if err = d.cs.SetLow(); err != nil {
		return fmt.Errorf("assert chip select: %w", err)
	}
	defer func() {
		if csErr := d.cs.SetHigh(); csErr != nil && err == nil {
			err = fmt.Errorf("release chip select: %w", csErr)
		}
	}()

	if err = d.transport.Transfer(frame); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}

	if d.config.CommandDelay > 0 {
		time.Sleep(d.config.CommandDelay)
	}
	return nil
}

// reportProgress calls the progress callback if configured.
func (d *Driver) reportProgress(progress Progress) {
	if d.config.ProgressCallback != nil {
		d.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (d *Driver) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (d *Driver) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (d *Driver) logError(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Error(msg, keysAndValues...)
	}
}
