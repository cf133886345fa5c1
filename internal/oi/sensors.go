package oi

import "fmt"

// Reading is one decoded telemetry value: a packet id paired with its numeric
// value, already sign- or zero-extended per the packet descriptor.
type Reading struct {
	ID    byte
	Name  string
	Value int
}

// Decode reconstructs typed readings from a packet's raw bytes.
//
// For a single-value packet the result holds exactly one Reading. For a group
// packet the raw bytes are consumed in member order, each member's declared
// width sliced off the front, and the result holds one Reading per member.
// The supplied buffer must cover the packet exactly; a surplus or shortfall
// is a LengthError.
func Decode(id byte, raw []byte) ([]Reading, error) {
	if spec, ok := packets[id]; ok {
		r, err := decodeSingle(spec, raw)
		if err != nil {
			return nil, err
		}
		return []Reading{r}, nil
	}

	members, ok := groups[id]
	if !ok {
		return nil, ErrUnknownPacket
	}
	want, _ := PacketWidth(id)
	if len(raw) != want {
		return nil, &LengthError{What: "group packet", Got: len(raw), Want: want}
	}

	readings := make([]Reading, 0, len(members))
	for _, m := range members {
		spec := packets[m]
		r, err := decodeSingle(spec, raw[:spec.Width])
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
		raw = raw[spec.Width:]
	}
	return readings, nil
}

// decodeSingle reinterprets raw as the packet's value: one byte as signed or
// unsigned per the descriptor, two bytes as big-endian two's-complement.
func decodeSingle(spec PacketSpec, raw []byte) (Reading, error) {
	if len(raw) != spec.Width {
		return Reading{}, &LengthError{What: spec.Name, Got: len(raw), Want: spec.Width}
	}
	var v int
	if spec.Width == 2 {
		u := uint16(raw[0])<<8 | uint16(raw[1])
		if spec.Signed {
			v = int(int16(u))
		} else {
			v = int(u)
		}
	} else if spec.Signed {
		v = int(int8(raw[0]))
	} else {
		v = int(raw[0])
	}
	return Reading{ID: spec.ID, Name: spec.Name, Value: v}, nil
}

// EncodeValue is the inverse of Decode for one single-value packet: it
// serializes v using the packet's declared width, big-endian for two-byte
// packets. Values outside the packet's numeric domain are an error, never
// truncated. Used by tooling that synthesizes telemetry frames.
func EncodeValue(id byte, v int) ([]byte, error) {
	spec, ok := packets[id]
	if !ok {
		return nil, ErrUnknownPacket
	}
	min, max := packetDomain(spec)
	if v < min || v > max {
		return nil, &ArgumentError{
			Command:  spec.Name,
			Argument: "value",
			Value:    v,
			Reason:   fmt.Sprintf("outside [%d, %d]", min, max),
		}
	}
	if spec.Width == 2 {
		return []byte{byte(v >> 8), byte(v)}, nil
	}
	return []byte{byte(v)}, nil
}

// packetDomain returns the representable value range for a packet's width
// and signedness.
func packetDomain(spec PacketSpec) (min, max int) {
	switch {
	case spec.Width == 2 && spec.Signed:
		return -32768, 32767
	case spec.Width == 2:
		return 0, 65535
	case spec.Signed:
		return -128, 127
	default:
		return 0, 255
	}
}
