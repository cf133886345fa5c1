// Command sender: encodes a single OI command and writes it to the robot's
// serial port. Use this for one-off control when the full system isn't
// running, e.g. `roomba_ctl -dev /dev/ttyUSB0 drive -200 500`.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"RoombaLink/internal/device"
	"RoombaLink/internal/oi"
)

// commandNames maps CLI verbs to opcodes.
var commandNames = map[string]byte{
	"reset":        oi.OpReset,
	"start":        oi.OpStart,
	"safe":         oi.OpSafe,
	"full":         oi.OpFull,
	"power":        oi.OpPower,
	"spot":         oi.OpSpot,
	"clean":        oi.OpClean,
	"max":          oi.OpMax,
	"drive":        oi.OpDrive,
	"motors":       oi.OpMotors,
	"leds":         oi.OpLEDs,
	"song":         oi.OpSong,
	"play":         oi.OpPlay,
	"sensors":      oi.OpSensors,
	"dock":         oi.OpSeekDock,
	"drive-direct": oi.OpDriveDirect,
	"drive-pwm":    oi.OpDrivePWM,
	"stream":       oi.OpStream,
	"query-list":   oi.OpQueryList,
	"pause-stream": oi.OpPauseResumeStream,
	"buttons":      oi.OpButtons,
	"set-day-time": oi.OpSetDayTime,
	"stop":         oi.OpStop,
}

func main() {
	dev := flag.String("dev", "/dev/ttyUSB0", "robot serial device")
	baud := flag.Int("baud", 115200, "baud rate")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: roomba_ctl [flags] COMMAND [ARG...]")
		os.Exit(2)
	}

	op, ok := commandNames[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown command %q", flag.Arg(0))
	}

	args := make([]int, flag.NArg()-1)
	for i, a := range flag.Args()[1:] {
		v, err := strconv.Atoi(a)
		if err != nil {
			log.Fatalf("argument %q is not an integer", a)
		}
		args[i] = v
	}

	frame, err := oi.Encode(op, args...)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	port, err := device.NewSerialDevice(*dev, *baud)
	if err != nil {
		log.Fatalf("open serial: %v", err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			log.Printf("warning: close serial err: %v", cerr)
		}
	}()

	if err := port.WriteBytes(frame); err != nil {
		log.Fatalf("write err: %v", err)
	}
	log.Printf("sent %s: % X", flag.Arg(0), frame)
}
