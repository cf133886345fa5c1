// Package util provides helpers for virtual serial management using socat.
// The simulation binary uses a PTY pair as a stand-in for the robot's UART.
package util

import (
	"fmt"
	"log"
	"os/exec"
	"sync"
)

// SocatManager owns the socat processes backing virtual serial pairs.
// socat removes its PTY symlinks when it exits, so cleanup is just killing
// the children.
type SocatManager struct {
	mu     sync.Mutex
	cmds   []*exec.Cmd
	closed bool
}

// NewSocatManager initializes an empty manager.
func NewSocatManager() *SocatManager {
	return &SocatManager{}
}

// CreatePair starts a socat process that links two PTYs (bidirectional).
// host is the side the main binary opens, robot the side the simulator
// serves.
func (m *SocatManager) CreatePair(host, robot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := exec.Command(
		"socat", "-d", "-d",
		fmt.Sprintf("pty,raw,echo=0,link=%s", host),
		fmt.Sprintf("pty,raw,echo=0,link=%s", robot),
	)
	cmd.Stdout = log.Writer()
	cmd.Stderr = log.Writer()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start socat: %w", err)
	}

	log.Printf("[virt-serial] started socat (pid=%d): %s <-> %s", cmd.Process.Pid, host, robot)
	m.cmds = append(m.cmds, cmd)
	return nil
}

// Cleanup kills every socat child. Idempotent.
func (m *SocatManager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true

	for _, cmd := range m.cmds {
		if cmd.Process == nil {
			continue
		}
		log.Printf("[virt-serial] killing socat pid=%d", cmd.Process.Pid)
		_ = cmd.Process.Kill()
		_, _ = cmd.Process.Wait()
	}
}
