package oi

import (
	"bytes"
	"errors"
	"testing"
)

// zeroArgOpcodes are all catalog opcodes that carry no data bytes.
var zeroArgOpcodes = []byte{
	OpReset, OpStart, OpControl, OpSafe, OpFull, OpPower,
	OpSpot, OpClean, OpMax, OpSeekDock, OpStop,
}

func TestValidateZeroArgOpcodes(t *testing.T) {
	for _, op := range zeroArgOpcodes {
		if !Validate([]byte{op}) {
			t.Errorf("Validate([%d]) = false, want true", op)
		}
		if Validate([]byte{op, 0}) {
			t.Errorf("Validate([%d, 0]) = true, want false", op)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  bool
	}{
		{
			name:  "reset",
			frame: []byte{OpReset},
			want:  true,
		},
		{
			name:  "empty frame",
			frame: nil,
			want:  false,
		},
		{
			name:  "unknown opcode",
			frame: []byte{200},
			want:  false,
		},
		{
			name:  "drive in range",
			frame: []byte{OpDrive, 0x00, 0xC8, 0x01, 0xF4}, // velocity 200, radius 500
			want:  true,
		},
		{
			name:  "drive velocity too high",
			frame: []byte{OpDrive, 0x01, 0xF5, 0x01, 0xF4}, // velocity 501
			want:  false,
		},
		{
			name:  "drive velocity too low",
			frame: []byte{OpDrive, 0xFE, 0x0B, 0x01, 0xF4}, // velocity -501
			want:  false,
		},
		{
			name:  "drive radius straight positive",
			frame: []byte{OpDrive, 0x00, 0xC8, 0x7F, 0xFF},
			want:  true,
		},
		{
			name:  "drive radius straight negative",
			frame: []byte{OpDrive, 0x00, 0xC8, 0x80, 0x00},
			want:  true,
		},
		{
			name:  "drive radius spin clockwise",
			frame: []byte{OpDrive, 0x00, 0xC8, 0xFF, 0xFF}, // radius -1
			want:  true,
		},
		{
			name:  "drive radius out of range",
			frame: []byte{OpDrive, 0x00, 0xC8, 0x07, 0xD1}, // radius 2001
			want:  false,
		},
		{
			name:  "drive truncated",
			frame: []byte{OpDrive, 0x00, 0xC8, 0x01},
			want:  false,
		},
		{
			name:  "drive trailing byte",
			frame: []byte{OpDrive, 0x00, 0xC8, 0x01, 0xF4, 0x00},
			want:  false,
		},
		{
			name:  "baud code in range",
			frame: []byte{OpBaud, 11},
			want:  true,
		},
		{
			name:  "baud code out of range",
			frame: []byte{OpBaud, 12},
			want:  false,
		},
		{
			name:  "song two notes",
			frame: []byte{OpSong, 0, 2, 60, 32, 62, 32},
			want:  true,
		},
		{
			name:  "song count mismatch",
			frame: []byte{OpSong, 0, 2, 60, 32},
			want:  false,
		},
		{
			name:  "song note out of range",
			frame: []byte{OpSong, 0, 1, 30, 32},
			want:  false,
		},
		{
			name:  "stream three packets",
			frame: []byte{OpStream, 3, PktDistance, PktAngle, PktVoltage},
			want:  true,
		},
		{
			name:  "stream count prefix mismatch",
			frame: []byte{OpStream, 3, PktDistance, PktAngle},
			want:  false,
		},
		{
			name:  "stream group id",
			frame: []byte{OpStream, 1, PktGroupAll},
			want:  true,
		},
		{
			name:  "stream id outside domain",
			frame: []byte{OpStream, 1, 99},
			want:  false,
		},
		{
			name:  "query list",
			frame: []byte{OpQueryList, 2, PktVoltage, PktCurrent},
			want:  true,
		},
		{
			name:  "pause stream boolean",
			frame: []byte{OpPauseResumeStream, 1},
			want:  true,
		},
		{
			name:  "pause stream out of range",
			frame: []byte{OpPauseResumeStream, 2},
			want:  false,
		},
		{
			name:  "set day time",
			frame: []byte{OpSetDayTime, 2, 14, 30},
			want:  true,
		},
		{
			name:  "set day time bad hour",
			frame: []byte{OpSetDayTime, 2, 24, 30},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.frame); got != tt.want {
				t.Errorf("Validate(% X) = %v, want %v", tt.frame, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		op   byte
		args []int
		want []byte
	}{
		{
			name: "start",
			op:   OpStart,
			want: []byte{128},
		},
		{
			name: "drive negative velocity",
			op:   OpDrive,
			args: []int{-200, 500},
			want: []byte{137, 0xFF, 0x38, 0x01, 0xF4},
		},
		{
			name: "drive straight sentinel",
			op:   OpDrive,
			args: []int{100, RadiusStraight},
			want: []byte{137, 0x00, 0x64, 0x7F, 0xFF},
		},
		{
			name: "drive direct",
			op:   OpDriveDirect,
			args: []int{-500, 500},
			want: []byte{145, 0xFE, 0x0C, 0x01, 0xF4},
		},
		{
			name: "baud",
			op:   OpBaud,
			args: []int{Baud115200},
			want: []byte{129, 11},
		},
		{
			name: "song with notes",
			op:   OpSong,
			args: []int{1, 2, 60, 32, 64, 16},
			want: []byte{140, 1, 2, 60, 32, 64, 16},
		},
		{
			name: "stream request",
			op:   OpStream,
			args: []int{2, PktDistance, PktVoltage},
			want: []byte{148, 2, 19, 22},
		},
		{
			name: "pwm motors signed bytes",
			op:   OpPWMMotors,
			args: []int{-127, 64, 127},
			want: []byte{144, 0x81, 0x40, 0x7F},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.op, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode = % X, want % X", got, tt.want)
			}
			if !Validate(got) {
				t.Errorf("Validate(% X) = false for encoded command", got)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Run("unknown opcode", func(t *testing.T) {
		_, err := Encode(200)
		if !errors.Is(err, ErrUnknownOpcode) {
			t.Fatalf("err = %v, want ErrUnknownOpcode", err)
		}
	})

	t.Run("argument out of range names the argument", func(t *testing.T) {
		_, err := Encode(OpDrive, 501, 0)
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("err = %v, want *ArgumentError", err)
		}
		if argErr.Argument != "velocity" {
			t.Errorf("Argument = %q, want %q", argErr.Argument, "velocity")
		}
		if argErr.Value != 501 {
			t.Errorf("Value = %d, want 501", argErr.Value)
		}
	})

	t.Run("radius outside range and sentinels", func(t *testing.T) {
		_, err := Encode(OpDrive, 0, 2001)
		var argErr *ArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("err = %v, want *ArgumentError", err)
		}
		if argErr.Argument != "radius" {
			t.Errorf("Argument = %q, want %q", argErr.Argument, "radius")
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := Encode(OpDrive, -200)
		var lenErr *LengthError
		if !errors.As(err, &lenErr) {
			t.Fatalf("err = %v, want *LengthError", err)
		}
	})

	t.Run("extra argument on zero-arg opcode", func(t *testing.T) {
		if _, err := Encode(OpClean, 1); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("song count prefix mismatch", func(t *testing.T) {
		if _, err := Encode(OpSong, 0, 2, 60, 32); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("song count out of range", func(t *testing.T) {
		var argErr *ArgumentError
		if _, err := Encode(OpSong, 0, 17); !errors.As(err, &argErr) {
			t.Fatalf("err = %v, want *ArgumentError", err)
		}
	})
}
