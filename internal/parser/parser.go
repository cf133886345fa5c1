// Package parser converts console wire formats to structured types and
// vice-versa.
//
// CSV telemetry wire format (robot -> console clients):
//
//	ROBOT_ID,TIMESTAMP,ID:VALUE,ID:VALUE,...
//
// CSV command wire format (console -> robot):
//
//	ROBOT_ID,OPCODE,ARG1;ARG2;...
package parser

import (
	"RoombaLink/internal/model"
)

// Parser converts telemetry and command structures to and from a textual
// wire representation used by the console server.
type Parser interface {
	// EncodeTelemetry encodes a telemetry batch into a wire line.
	EncodeTelemetry(t model.Telemetry) (string, error)

	// DecodeTelemetry parses a wire line into a telemetry batch.
	DecodeTelemetry(s string) (model.Telemetry, error)

	// EncodeCommand encodes a command request into a wire line.
	EncodeCommand(c model.CommandRequest) (string, error)

	// DecodeCommand parses a wire line into a command request.
	DecodeCommand(s string) (model.CommandRequest, error)
}
