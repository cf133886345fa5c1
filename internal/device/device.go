// Package device defines a unified interface for byte-stream transports such
// as serial ports. The OI codec never opens ports itself; it consumes and
// produces byte slices, and implementations of Device move them.
package device

import (
	"errors"
	"time"
)

// ErrReadTimeout reports a ReadBytes call whose timeout elapsed with no data.
// Callers poll with errors.Is; a timeout is not a link failure.
var ErrReadTimeout = errors.New("device: read timeout")

// Device is an abstract byte sink/source for a robot link.
// Implementations provide chunked reads with optional timeout.
type Device interface {
	// ReadBytes reads whatever bytes are currently available, up to an
	// implementation-chosen chunk size. If timeout > 0 it must return
	// ErrReadTimeout once timeout elapses with no data.
	ReadBytes(timeout time.Duration) ([]byte, error)

	// WriteBytes transmits exactly these bytes, in order, with no framing
	// added.
	WriteBytes(p []byte) error

	// Close closes the device and releases underlying resources.
	Close() error
}
