// Package device implements the SerialDevice type using go.bug.st/serial,
// providing raw byte read and write operations for physical serial ports.
package device

import (
	"errors"
	"fmt"
	"time"

	serial "go.bug.st/serial"
)

// readChunkSize bounds a single ReadBytes result. The OI stream delivers
// frames of at most 258 bytes, so one chunk can always hold a whole frame.
const readChunkSize = 512

// SerialDevice implements Device using go.bug.st/serial.
type SerialDevice struct {
	port serial.Port
	dev  string
	baud int
}

// NewSerialDevice creates and opens a serial device with the given path and
// baudrate. The OI default is 115200 baud.
func NewSerialDevice(dev string, baud int) (*SerialDevice, error) {
	p, err := serial.Open(dev, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial %s: %w", dev, err)
	}
	return &SerialDevice{port: p, dev: dev, baud: baud}, nil
}

// Open ensures that the serial port is ready for use.
func (s *SerialDevice) Open() error {
	if s.port != nil {
		return nil
	}
	p, err := serial.Open(s.dev, &serial.Mode{BaudRate: s.baud})
	if err != nil {
		return fmt.Errorf("reopen serial %s failed: %w", s.dev, err)
	}
	s.port = p
	return nil
}

// ReadBytes reads the bytes currently available on the port, blocking until
// at least one byte arrives or the timeout elapses. A timeout surfaces as
// ErrReadTimeout so callers can poll without treating it as a link failure.
func (s *SerialDevice) ReadBytes(timeout time.Duration) ([]byte, error) {
	if s.port == nil {
		return nil, errors.New("serial port not open")
	}

	t := serial.NoTimeout
	if timeout > 0 {
		t = timeout
	}
	if err := s.port.SetReadTimeout(t); err != nil {
		return nil, err
	}

	buf := make([]byte, readChunkSize)
	n, err := s.port.Read(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrReadTimeout
	}
	return buf[:n], nil
}

// WriteBytes writes the bytes to the serial port with no added framing.
func (s *SerialDevice) WriteBytes(p []byte) error {
	if s.port == nil {
		return errors.New("serial port not open")
	}
	_, err := s.port.Write(p)
	return err
}

// Close closes the underlying serial connection.
func (s *SerialDevice) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	return err
}
