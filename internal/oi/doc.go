// Package oi implements the iRobot Open Interface (OI) serial protocol:
// encoding and validation of command frames, decoding of sensor packets, and
// parsing of the checksummed telemetry stream produced by the Stream and
// Query List commands.
//
// The package is a pure codec. It owns no transport: commands are returned as
// byte slices for the caller to transmit, and telemetry bytes are pushed into
// a StreamParser as they arrive, in whatever chunk sizes the serial layer
// delivers them.
//
// Command wire format (robot-bound, no framing):
//
//	[opcode][arg1]...[argN]
//
// 16-bit arguments are transmitted big-endian, two's-complement.
//
// Telemetry stream frame (host-bound):
//
//	[19][N][packet_id][packet_bytes...]...[checksum]
//
// where N counts every byte between the length field and the checksum, and
// the checksum is chosen so the 8-bit sum of the whole frame is zero.
//
// All catalogs are immutable after package initialization and safe for
// concurrent reads. A StreamParser instance is single-caller; use one parser
// per serial channel.
package oi
