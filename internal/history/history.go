// Package history persists telemetry batches in BoltDB so the console can
// serve readings received before a client connected.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"RoombaLink/internal/model"
)

// Store is an append-only telemetry log. Each robot gets its own bucket;
// keys are RFC3339Nano timestamps so cursor order is arrival order.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("[history] failed to create %s: %w", dir, err)
		}
	}
	db, err := bbolt.Open(path, 0o666, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("[history] failed to open BoltDB: %w", err)
	}
	return &Store{db: db}, nil
}

// Append records one telemetry batch under its robot's bucket.
func (s *Store) Append(t model.Telemetry) error {
	body, err := json.Marshal(t)
	if err != nil {
		return err
	}
	key := []byte(time.Now().UTC().Format(time.RFC3339Nano))
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(t.RobotID))
		if err != nil {
			return err
		}
		return b.Put(key, body)
	})
}

// Latest returns the most recently appended batch for a robot.
// ok is false when the robot has no history.
func (s *Store) Latest(robotID string) (model.Telemetry, bool, error) {
	var t model.Telemetry
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(robotID))
		if b == nil {
			return nil
		}
		_, v := b.Cursor().Last()
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &t); err != nil {
			return err
		}
		found = true
		return nil
	})
	return t, found, err
}

// Recent returns up to n batches for a robot, newest first.
func (s *Store) Recent(robotID string, n int) ([]model.Telemetry, error) {
	var out []model.Telemetry
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(robotID))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(out) < n; k, v = c.Prev() {
			var t model.Telemetry
			if err := json.Unmarshal(v, &t); err != nil {
				return err
			}
			out = append(out, t)
		}
		return nil
	})
	return out, err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
