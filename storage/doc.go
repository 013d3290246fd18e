// Package storage exposes an EEPROM as a flat byte store through the
// standard io interfaces.
//
// It wraps an eeprom.Driver with io.ReaderAt, io.WriterAt and
// io.ReadWriteSeeker semantics, so the chip plugs into anything that
// consumes those:
//
//	st := storage.New(drv)
//
//	if _, err := st.Seek(0x1000, io.SeekStart); err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := st.Write(configBlob); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Stream the whole array out.
//	if _, err := st.Seek(0, io.SeekStart); err != nil {
//	    log.Fatal(err)
//	}
//	img, err := io.ReadAll(io.LimitReader(st, st.Capacity()))
//
// Reads truncated by the end of the array return io.EOF; writes that would
// run past it are rejected whole, since the hardware offers no partial
// commit worth reporting.
package storage
