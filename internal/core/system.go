// Package core contains the main runtime logic and orchestration layer for
// the RoombaLink system. It defines the Console, Robot and System types that
// manage their lifecycle.
package core

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"RoombaLink/internal/device"
	"RoombaLink/internal/history"
	"RoombaLink/internal/model"
	"RoombaLink/internal/parser"
	"RoombaLink/internal/util"
)

// System manages lifecycle of the main components (Console, Robots).
// It loads configuration from a YAML file and constructs objects accordingly.
type System struct {
	cfgPath string
	cfg     *model.Config
	parsers map[string]parser.Parser
	Robots  []*Robot
	Console *Console
	history *history.Store

	// initial per-robot OI setup derived from config
	setup map[string]model.RobotConfig

	started   bool
	startLock sync.Mutex
}

// NewSystem reads the YAML configuration at cfgPath and creates a System.
// It registers the available wire parsers (csv/json) and constructs the
// Console and Robot objects.
func NewSystem(cfgPath string) (*System, error) {
	b, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	var cfg model.Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	s := &System{
		cfgPath: cfgPath,
		cfg:     &cfg,
		parsers: make(map[string]parser.Parser),
		setup:   make(map[string]model.RobotConfig),
	}

	// register parser formats
	s.parsers["csv"] = parser.NewCSVParser()
	s.parsers["json"] = parser.NewJSONParser()

	wf := cfg.Global.WireFormat
	if wf == "" {
		wf = "json"
	}
	out, ok := s.parsers[wf]
	if !ok {
		return nil, fmt.Errorf("unknown wire format %q", wf)
	}

	// construct Console with configured address or default
	addr := cfg.Global.ConsoleAddr
	if addr == "" {
		addr = ":10000"
	}
	s.Console = NewConsole(addr, out)

	// optional telemetry history
	if cfg.Global.HistoryPath != "" {
		store, err := history.Open(cfg.Global.HistoryPath)
		if err != nil {
			return nil, err
		}
		s.history = store
		s.Console.History = store
	}

	// construct robots from config
	for _, rcfg := range cfg.Robots {
		dev, err := device.NewSerialDevice(rcfg.SerialDev, rcfg.SerialBaud)
		if err != nil {
			// log but continue: user may run without a physical robot
			util.Error("robot %s: open serial failed: %v", rcfg.ID, err)
		}
		var robot *Robot
		if dev != nil {
			robot = NewRobot(rcfg.ID, dev)
		} else {
			robot = NewRobot(rcfg.ID, nil)
		}
		robot.OnTelemetry = s.Console.Publish
		s.Console.RegisterRobot(robot)
		s.Robots = append(s.Robots, robot)
		s.setup[rcfg.ID] = rcfg
	}
	return s, nil
}

// StartAll starts the Console and all Robots concurrently. Each robot gets
// the OI start sequence from its config: Start, mode, then the requested
// sensor stream.
func (s *System) StartAll() error {
	s.startLock.Lock()
	defer s.startLock.Unlock()
	if s.started {
		return nil
	}
	// start console server in background
	go s.Console.Start()

	for _, r := range s.Robots {
		if err := r.Start(); err != nil {
			util.Error("robot %s start err: %v", r.ID, err)
			continue
		}
		if r.Device == nil {
			continue
		}
		if err := s.bringUp(r); err != nil {
			util.Error("robot %s bring-up err: %v", r.ID, err)
		}
	}
	s.started = true
	return nil
}

// bringUp sends the initial commands for one robot per its config.
func (s *System) bringUp(r *Robot) error {
	cfg := s.setup[r.ID]
	if err := r.StartOI(); err != nil {
		return err
	}
	switch cfg.Mode {
	case "safe":
		if err := r.SafeMode(); err != nil {
			return err
		}
	case "full":
		if err := r.FullMode(); err != nil {
			return err
		}
	}
	if len(cfg.StreamPackets) > 0 {
		if err := r.RequestStream(cfg.StreamPackets...); err != nil {
			return err
		}
	}
	return nil
}

// StopAll stops all running components gracefully. Streaming robots are
// paused and their OI stopped before the links close.
func (s *System) StopAll() {
	s.startLock.Lock()
	defer s.startLock.Unlock()
	if !s.started {
		return
	}
	for _, r := range s.Robots {
		if r.Device != nil {
			if len(s.setup[r.ID].StreamPackets) > 0 {
				if err := r.PauseStream(); err != nil {
					util.Error("robot %s pause stream err: %v", r.ID, err)
				}
			}
			if err := r.StopOI(); err != nil {
				util.Error("robot %s stop oi err: %v", r.ID, err)
			}
		}
		r.Stop()
	}
	s.Console.Stop()
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			util.Error("history close err: %v", err)
		}
	}
	s.started = false
}
