// Robot simulator: acts as the robot side of an OI serial link, answering
// Stream/Query List commands with checksummed telemetry frames. Use this for
// local testing when you don't have real robot hardware; pair it with the
// main binary over a socat PTY pair.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"RoombaLink/internal/device"
	"RoombaLink/internal/oi"
	"RoombaLink/internal/util"
)

func main() {
	dev := flag.String("dev", "/tmp/ttyROBOT", "serial device to serve the robot side on")
	baud := flag.Int("baud", 115200, "baud rate")
	host := flag.String("host", "", "when set, create a socat PTY pair with this host-side link")
	interval := flag.Int("interval", 15, "ms between stream frames")
	flag.Parse()

	util.SetupLogger()

	if *host != "" {
		mgr := util.NewSocatManager()
		if err := mgr.CreatePair(*host, *dev); err != nil {
			log.Fatalf("create pty pair: %v", err)
		}
		defer mgr.Cleanup()
		// give socat a moment to create the links
		time.Sleep(300 * time.Millisecond)
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

	sim := &fakeRobot{
		packets: []byte{oi.PktDistance, oi.PktVoltage, oi.PktVirtualWall},
	}

	log.Printf("simulator serving %s, frame every %dms", *dev, *interval)

	// reader goroutine: host commands arrive whenever the host sends them
	cmds := make(chan []byte, 8)
	go func() {
		for {
			buf, err := port.ReadBytes(0)
			if err != nil {
				log.Printf("read err: %v", err)
				time.Sleep(100 * time.Millisecond)
				continue
			}
			if len(buf) > 0 {
				cmds <- buf
			}
		}
	}()

	tick := time.NewTicker(time.Duration(*interval) * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case buf := <-cmds:
			sim.handleCommands(buf)
		case <-tick.C:
			if !sim.streaming {
				continue
			}
			frame := sim.buildFrame()
			if err := port.WriteBytes(frame); err != nil {
				log.Printf("write err: %v", err)
			}
		}
	}
}

// fakeRobot tracks just enough OI state to answer stream requests.
type fakeRobot struct {
	packets   []byte
	streaming bool
}

// handleCommands scans the received bytes for the commands the simulator
// cares about: Stream replaces the packet list and starts streaming,
// Pause/Resume toggles it. Everything else is logged and ignored.
func (f *fakeRobot) handleCommands(buf []byte) {
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case oi.OpStream:
			if i+1 >= len(buf) {
				return
			}
			n := int(buf[i+1])
			if i+2+n > len(buf) {
				return
			}
			f.packets = append(f.packets[:0], buf[i+2:i+2+n]...)
			f.streaming = true
			log.Printf("stream requested: packets %v", f.packets)
			i += 1 + n
		case oi.OpPauseResumeStream:
			if i+1 >= len(buf) {
				return
			}
			f.streaming = buf[i+1] == 1
			log.Printf("streaming = %v", f.streaming)
			i++
		default:
			log.Printf("command 0x%02X ignored", buf[i])
		}
	}
}

// buildFrame synthesizes one telemetry frame for the current packet list,
// checksummed so the 8-bit sum of the whole frame is zero.
func (f *fakeRobot) buildFrame() []byte {
	payload := make([]byte, 0, 64)
	for _, id := range f.packets {
		raw, err := oi.EncodeValue(id, fakeValue(id))
		if err != nil {
			continue
		}
		payload = append(payload, id)
		payload = append(payload, raw...)
	}

	frame := make([]byte, 0, len(payload)+3)
	frame = append(frame, oi.StreamHeader, byte(len(payload)))
	frame = append(frame, payload...)

	var sum byte
	for _, b := range frame {
		sum += b
	}
	return append(frame, -sum)
}

// fakeValue invents a plausible reading for a packet id.
func fakeValue(id byte) int {
	spec, ok := oi.LookupPacket(id)
	if !ok {
		return 0
	}
	switch {
	case spec.ID == oi.PktVoltage:
		return 14000 + rand.Intn(2000)
	case spec.Width == 2 && spec.Signed:
		return rand.Intn(1001) - 500
	case spec.Width == 2:
		return rand.Intn(1024)
	default:
		return rand.Intn(2)
	}
}
