// Package model defines shared message structures for RoombaLink.
package model

// SensorValue is one decoded sensor reading forwarded to console clients.
type SensorValue struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Telemetry represents one batch of decoded readings from a robot, produced
// per accepted stream frame and broadcast as JSON or CSV.
type Telemetry struct {
	RobotID   string        `json:"robot_id"`
	Timestamp string        `json:"timestamp"`
	Readings  []SensorValue `json:"readings"`
}

// CommandRequest is used by Console -> Robot (JSON). The opcode and integer
// arguments are validated and encoded by the OI codec before transmission.
type CommandRequest struct {
	RobotID string `json:"robot_id"`
	Opcode  int    `json:"opcode"`
	Args    []int  `json:"args"`
}

// AckMessage confirms a control command was encoded and written to a robot.
type AckMessage struct {
	RobotID string `json:"robot_id"`
	Ack     bool   `json:"ack"`
}
