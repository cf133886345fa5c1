// Package parser implements the JSONParser which encodes and decodes
// telemetry and command data in JSON format.
package parser

import (
	"encoding/json"

	"RoombaLink/internal/model"
)

// JSONParser implements Parser interface using JSON serialization.
type JSONParser struct{}

// NewJSONParser creates a new JSON parser.
func NewJSONParser() *JSONParser { return &JSONParser{} }

// EncodeTelemetry encodes Telemetry into a JSON string.
func (p *JSONParser) EncodeTelemetry(t model.Telemetry) (string, error) {
	b, err := json.Marshal(t)
	return string(b), err
}

// DecodeTelemetry decodes a JSON string into Telemetry.
func (p *JSONParser) DecodeTelemetry(s string) (model.Telemetry, error) {
	var t model.Telemetry
	err := json.Unmarshal([]byte(s), &t)
	return t, err
}

// EncodeCommand encodes a CommandRequest into a JSON string.
func (p *JSONParser) EncodeCommand(c model.CommandRequest) (string, error) {
	b, err := json.Marshal(c)
	return string(b), err
}

// DecodeCommand decodes a JSON string into a CommandRequest.
func (p *JSONParser) DecodeCommand(s string) (model.CommandRequest, error) {
	var c model.CommandRequest
	err := json.Unmarshal([]byte(s), &c)
	return c, err
}
