// Package parser implements the CSVParser which handles encoding and decoding
// of telemetry and command data using comma-separated values format.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"RoombaLink/internal/model"
)

// CSVParser implements Parser interface using CSV format.
// Example telemetry CSV: R1,2026-08-26T10:00:00Z,29:537,13:0
type CSVParser struct{}

// NewCSVParser creates a new CSV parser instance.
func NewCSVParser() *CSVParser { return &CSVParser{} }

// EncodeTelemetry converts Telemetry into a CSV string. Reading names are
// not carried on the wire; DecodeTelemetry leaves them empty.
func (p *CSVParser) EncodeTelemetry(t model.Telemetry) (string, error) {
	fields := make([]string, 0, 2+len(t.Readings))
	fields = append(fields, t.RobotID, t.Timestamp)
	for _, r := range t.Readings {
		fields = append(fields, fmt.Sprintf("%d:%d", r.ID, r.Value))
	}
	return strings.Join(fields, ","), nil
}

// DecodeTelemetry parses a CSV telemetry line into a Telemetry struct.
func (p *CSVParser) DecodeTelemetry(line string) (model.Telemetry, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) < 2 {
		return model.Telemetry{}, fmt.Errorf("expected at least 2 fields, got %d", len(fields))
	}

	t := model.Telemetry{RobotID: fields[0], Timestamp: fields[1]}
	for _, f := range fields[2:] {
		id, value, ok := strings.Cut(f, ":")
		if !ok {
			return model.Telemetry{}, fmt.Errorf("invalid reading %q", f)
		}
		i, err := strconv.Atoi(id)
		if err != nil {
			return model.Telemetry{}, fmt.Errorf("invalid packet id %q", id)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			return model.Telemetry{}, fmt.Errorf("invalid value %q", value)
		}
		t.Readings = append(t.Readings, model.SensorValue{ID: i, Value: v})
	}
	return t, nil
}

// EncodeCommand converts a CommandRequest into a CSV string.
// Format: ROBOT_ID,OPCODE,ARG1;ARG2;...
func (p *CSVParser) EncodeCommand(c model.CommandRequest) (string, error) {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = strconv.Itoa(a)
	}
	return fmt.Sprintf("%s,%d,%s", c.RobotID, c.Opcode, strings.Join(args, ";")), nil
}

// DecodeCommand parses a CSV command line into a CommandRequest struct.
func (p *CSVParser) DecodeCommand(line string) (model.CommandRequest, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 3 {
		return model.CommandRequest{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	op, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.CommandRequest{}, fmt.Errorf("invalid opcode %q", fields[1])
	}
	c := model.CommandRequest{RobotID: fields[0], Opcode: op}
	if fields[2] != "" {
		for _, a := range strings.Split(fields[2], ";") {
			v, err := strconv.Atoi(a)
			if err != nil {
				return model.CommandRequest{}, fmt.Errorf("invalid argument %q", a)
			}
			c.Args = append(c.Args, v)
		}
	}
	return c, nil
}
