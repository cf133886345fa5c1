package oi

import (
	"errors"
	"testing"
)

// Frame carrying cliff front left signal (29) = 537 and virtual wall (13) = 0.
// 19+5+29+2+25+13+0+163 = 256, so the whole frame sums to zero mod 256.
var streamFrame = []byte{19, 5, 29, 2, 25, 13, 0, 163}

func TestStreamParserFrame(t *testing.T) {
	p := NewStreamParser()
	got := p.Feed(streamFrame)

	want := []Reading{
		{ID: 29, Name: "cliff front left signal", Value: 537},
		{ID: 13, Name: "virtual wall", Value: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d readings, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reading %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStreamParserChunked(t *testing.T) {
	p := NewStreamParser()
	var got []Reading
	for _, b := range streamFrame {
		got = append(got, p.Feed([]byte{b})...)
	}

	whole := NewStreamParser().Feed(streamFrame)
	if len(got) != len(whole) {
		t.Fatalf("byte-at-a-time gave %d readings, whole frame gave %d", len(got), len(whole))
	}
	for i := range whole {
		if got[i] != whole[i] {
			t.Errorf("reading %d = %+v, want %+v", i, got[i], whole[i])
		}
	}
}

func TestStreamParserSeeksHeader(t *testing.T) {
	p := NewStreamParser()
	data := append([]byte{7, 42, 250}, streamFrame...)
	got := p.Feed(data)
	if len(got) != 2 {
		t.Fatalf("got %d readings, want 2", len(got))
	}
}

func TestStreamParserChecksumMismatch(t *testing.T) {
	var errs []error
	p := NewStreamParser()
	p.OnError = func(err error) { errs = append(errs, err) }

	bad := make([]byte, len(streamFrame))
	copy(bad, streamFrame)
	bad[len(bad)-1]++

	if got := p.Feed(bad); len(got) != 0 {
		t.Fatalf("corrupted frame yielded %d readings, want 0", len(got))
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrChecksumMismatch) {
		t.Fatalf("errs = %v, want one ErrChecksumMismatch", errs)
	}

	// The parser resumes on the next frame.
	if got := p.Feed(streamFrame); len(got) != 2 {
		t.Fatalf("frame after corruption yielded %d readings, want 2", len(got))
	}
}

func TestStreamParserTruncatedPayload(t *testing.T) {
	var errs []error
	p := NewStreamParser()
	p.OnError = func(err error) { errs = append(errs, err) }

	// Packet 29 needs two value bytes but the declared length leaves only one.
	// 19+2+29+2+204 = 256, so the checksum itself is valid.
	if got := p.Feed([]byte{19, 2, 29, 2, 204}); len(got) != 0 {
		t.Fatalf("truncated frame yielded %d readings, want 0", len(got))
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrTruncatedFrame) {
		t.Fatalf("errs = %v, want one ErrTruncatedFrame", errs)
	}
}

func TestStreamParserUnknownPacket(t *testing.T) {
	var errs []error
	p := NewStreamParser()
	p.OnError = func(err error) { errs = append(errs, err) }

	// 19+2+99+7+129 = 256; packet 99 is not in the catalog.
	if got := p.Feed([]byte{19, 2, 99, 7, 129}); len(got) != 0 {
		t.Fatalf("frame with unknown packet yielded %d readings, want 0", len(got))
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrUnknownPacket) {
		t.Fatalf("errs = %v, want one ErrUnknownPacket", errs)
	}
}

func TestStreamParserEmptyFrame(t *testing.T) {
	p := NewStreamParser()
	// 19+0+237 = 256.
	if got := p.Feed([]byte{19, 0, 237}); len(got) != 0 {
		t.Fatalf("empty frame yielded %d readings, want 0", len(got))
	}
	// Still in sync afterwards.
	if got := p.Feed(streamFrame); len(got) != 2 {
		t.Fatalf("frame after empty frame yielded %d readings, want 2", len(got))
	}
}

func TestStreamParserReset(t *testing.T) {
	p := NewStreamParser()
	p.Feed(streamFrame[:4]) // mid-payload
	p.Reset()
	if got := p.Feed(streamFrame); len(got) != 2 {
		t.Fatalf("frame after reset yielded %d readings, want 2", len(got))
	}
}
