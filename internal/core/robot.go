package core

import (
	"errors"
	"sync"
	"time"

	"RoombaLink/internal/device"
	"RoombaLink/internal/model"
	"RoombaLink/internal/oi"
	"RoombaLink/internal/util"
)

// readTimeout bounds one serial read so the loop can observe stop requests.
const readTimeout = 500 * time.Millisecond

// Robot represents one robot serial link. It encodes outbound commands via
// the OI codec, feeds inbound bytes to a stream parser and publishes decoded
// telemetry batches through the OnTelemetry callback.
type Robot struct {
	ID     string
	Device device.Device

	// OnTelemetry receives one batch per accepted stream frame. Set before
	// Start; called from the read loop goroutine.
	OnTelemetry func(model.Telemetry)

	stream *oi.StreamParser
	stop   chan struct{}
	wg     sync.WaitGroup
	wmu    sync.Mutex // serializes command writes to the device
}

// NewRobot constructs a Robot over an already-open Device. Use
// device.NewSerialDevice for a physical link.
func NewRobot(id string, dev device.Device) *Robot {
	r := &Robot{
		ID:     id,
		Device: dev,
		stream: oi.NewStreamParser(),
		stop:   make(chan struct{}),
	}
	r.stream.OnError = func(err error) {
		util.Error("robot %s: dropped frame: %v", id, err)
	}
	return r
}

// Start begins the telemetry read loop in a background goroutine.
// Returns nil even if the underlying device is nil (no-op for testing).
func (r *Robot) Start() error {
	if r.Device == nil {
		// nothing to start (allow headless/testing)
		return nil
	}
	r.wg.Add(1)
	go r.loop()
	return nil
}

// loop continuously reads byte chunks from the Device, feeds them to the
// stream parser and publishes any completed readings.
func (r *Robot) loop() {
	defer r.wg.Done()
	for {
		select {
		case <-r.stop:
			return
		default:
		}
		buf, err := r.Device.ReadBytes(readTimeout)
		if err != nil {
			if errors.Is(err, device.ErrReadTimeout) {
				continue
			}
			// transient error: wait and continue
			time.Sleep(100 * time.Millisecond)
			continue
		}
		readings := r.stream.Feed(buf)
		if len(readings) == 0 || r.OnTelemetry == nil {
			continue
		}
		t := model.Telemetry{
			RobotID:   r.ID,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Readings:  make([]model.SensorValue, len(readings)),
		}
		for i, rd := range readings {
			t.Readings[i] = model.SensorValue{ID: int(rd.ID), Name: rd.Name, Value: rd.Value}
		}
		r.OnTelemetry(t)
	}
}

// Send validates, encodes and transmits one command.
func (r *Robot) Send(op byte, args ...int) error {
	if r.Device == nil {
		return errors.New("robot device not open")
	}
	frame, err := oi.Encode(op, args...)
	if err != nil {
		return err
	}
	r.wmu.Lock()
	defer r.wmu.Unlock()
	return r.Device.WriteBytes(frame)
}

// StartOI starts the Open Interface; required before any other command.
func (r *Robot) StartOI() error { return r.Send(oi.OpStart) }

// SafeMode puts the robot into Safe mode.
func (r *Robot) SafeMode() error { return r.Send(oi.OpSafe) }

// FullMode puts the robot into Full mode.
func (r *Robot) FullMode() error { return r.Send(oi.OpFull) }

// Clean starts the default cleaning cycle.
func (r *Robot) Clean() error { return r.Send(oi.OpClean) }

// Dock sends the robot to its charging dock.
func (r *Robot) Dock() error { return r.Send(oi.OpSeekDock) }

// Drive drives at velocity mm/s along a turn radius in mm. The radius
// sentinels oi.RadiusStraight and oi.RadiusSpinCW/CCW are accepted.
func (r *Robot) Drive(velocity, radius int) error {
	return r.Send(oi.OpDrive, velocity, radius)
}

// DriveDirect drives the right and left wheels at independent velocities.
func (r *Robot) DriveDirect(right, left int) error {
	return r.Send(oi.OpDriveDirect, right, left)
}

// Song stores a song under number; notes alternate pitch and duration.
func (r *Robot) Song(number int, notes ...int) error {
	args := append([]int{number, len(notes) / 2}, notes...)
	return r.Send(oi.OpSong, args...)
}

// Play plays a previously stored song.
func (r *Robot) Play(number int) error { return r.Send(oi.OpPlay, number) }

// RequestStream asks the robot to stream the given sensor packets every 15ms.
func (r *Robot) RequestStream(ids ...int) error {
	args := append([]int{len(ids)}, ids...)
	return r.Send(oi.OpStream, args...)
}

// PauseStream pauses the telemetry stream without clearing the packet list.
func (r *Robot) PauseStream() error { return r.Send(oi.OpPauseResumeStream, 0) }

// ResumeStream resumes a previously paused telemetry stream.
func (r *Robot) ResumeStream() error { return r.Send(oi.OpPauseResumeStream, 1) }

// StopOI stops the Open Interface.
func (r *Robot) StopOI() error { return r.Send(oi.OpStop) }

// Stop stops the background read loop and closes the device if present.
func (r *Robot) Stop() {
	// close stop channel (idempotent)
	select {
	case <-r.stop:
		// already closed
	default:
		close(r.stop)
	}
	if r.Device != nil {
		_ = r.Device.Close()
	}
	r.wg.Wait()
}
