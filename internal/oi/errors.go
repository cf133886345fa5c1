package oi

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode reports a command code missing from the opcode catalog.
	ErrUnknownOpcode = errors.New("oi: unknown opcode")

	// ErrUnknownPacket reports a sensor packet id missing from the packet catalog.
	ErrUnknownPacket = errors.New("oi: unknown packet id")

	// ErrChecksumMismatch reports a streamed frame whose bytes do not sum to
	// zero mod 256. The frame is discarded; the stream itself stays usable.
	ErrChecksumMismatch = errors.New("oi: frame checksum mismatch")

	// ErrTruncatedFrame reports a frame payload that ends in the middle of a
	// packet's declared width. The frame is discarded.
	ErrTruncatedFrame = errors.New("oi: frame payload truncated mid-packet")
)

// ArgumentError reports a command argument that failed validation.
// It names the offending argument and the constraint it violated.
type ArgumentError struct {
	Command  string
	Argument string
	Value    int
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("oi: %s: argument %q = %d %s", e.Command, e.Argument, e.Value, e.Reason)
}

// LengthError reports a byte count that does not match a fixed-size opcode or
// packet descriptor.
type LengthError struct {
	What string
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("oi: %s: got %d, want %d", e.What, e.Got, e.Want)
}
