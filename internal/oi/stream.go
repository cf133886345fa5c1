package oi

// StreamHeader opens every telemetry frame sent by the robot.
const StreamHeader = 19

type streamState int

const (
	seekHeader streamState = iota
	readLength
	readPayload
	readChecksum
)

// StreamParser reassembles telemetry frames from the byte stream produced by
// the Stream and Query List commands. It is resumable across partial reads:
// bytes may arrive in any chunk sizes and the parser keeps its position
// between calls.
//
// A corrupted frame (bad checksum, payload ending mid-packet) is dropped in
// its entirety — none of its readings are delivered — and parsing resumes at
// the next header byte. Frame errors never halt the stream.
//
// A StreamParser is not safe for concurrent use; run one per serial channel.
type StreamParser struct {
	state   streamState
	length  int
	payload []byte
	sum     byte

	// OnError, when set, observes per-frame errors (ErrChecksumMismatch,
	// ErrTruncatedFrame) as frames are dropped.
	OnError func(error)
}

// NewStreamParser returns a parser waiting for the first frame header.
func NewStreamParser() *StreamParser {
	return &StreamParser{payload: make([]byte, 0, 255)}
}

// Feed pushes newly arrived bytes into the parser and returns the readings
// decoded from every frame completed by this call, in wire order. It returns
// an empty slice when no frame completed.
func (p *StreamParser) Feed(data []byte) []Reading {
	var out []Reading
	for _, b := range data {
		switch p.state {
		case seekHeader:
			if b == StreamHeader {
				p.sum = b
				p.state = readLength
			}
		case readLength:
			p.length = int(b)
			p.sum += b
			p.payload = p.payload[:0]
			if p.length == 0 {
				p.state = readChecksum
			} else {
				p.state = readPayload
			}
		case readPayload:
			p.payload = append(p.payload, b)
			p.sum += b
			if len(p.payload) == p.length {
				p.state = readChecksum
			}
		case readChecksum:
			p.sum += b
			if p.sum != 0 {
				p.fail(ErrChecksumMismatch)
			} else if readings, err := splitPayload(p.payload); err != nil {
				p.fail(err)
			} else {
				out = append(out, readings...)
			}
			p.state = seekHeader
		}
	}
	return out
}

// Reset discards any partially collected frame and waits for a new header.
func (p *StreamParser) Reset() {
	p.state = seekHeader
	p.payload = p.payload[:0]
}

func (p *StreamParser) fail(err error) {
	if p.OnError != nil {
		p.OnError(err)
	}
}

// splitPayload slices an accepted frame payload into (packet id, raw bytes)
// pairs left to right. Packets carry no per-packet length prefix: each
// packet's width comes from the packet catalog. A payload that ends before
// the last packet's declared width is satisfied fails as a whole.
func splitPayload(payload []byte) ([]Reading, error) {
	var readings []Reading
	for len(payload) > 0 {
		id := payload[0]
		width, ok := PacketWidth(id)
		if !ok {
			return nil, ErrUnknownPacket
		}
		if len(payload)-1 < width {
			return nil, ErrTruncatedFrame
		}
		decoded, err := Decode(id, payload[1:1+width])
		if err != nil {
			return nil, err
		}
		readings = append(readings, decoded...)
		payload = payload[1+width:]
	}
	return readings, nil
}
