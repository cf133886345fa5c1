// Package model defines shared configuration structures used to initialize
// the RoombaLink system. It includes global settings and robot definitions.
package model

// Config represents the root structure loaded from configs/config.yml.
// It contains global settings and robot link definitions.
type Config struct {
	Global GlobalConfig  `yaml:"global"`
	Robots []RobotConfig `yaml:"robots"`
}

// GlobalConfig defines shared defaults across the system.
type GlobalConfig struct {
	WireFormat  string `yaml:"wire_format"`  // default console wire format (csv/json)
	ConsoleAddr string `yaml:"console_addr"` // address for the console server (e.g. ":10000")
	HistoryPath string `yaml:"history_path"` // BoltDB file for telemetry history (empty disables)
}

// RobotConfig defines configuration for a single robot serial link.
type RobotConfig struct {
	ID            string `yaml:"id"`
	SerialDev     string `yaml:"serial_device"`
	SerialBaud    int    `yaml:"serial_baud"`
	Mode          string `yaml:"mode"`           // passive, safe or full
	StreamPackets []int  `yaml:"stream_packets"` // sensor packet ids to stream
	WireFormat    string `yaml:"wire_format"`
}
