// Package journal keeps a local append-only record of provisioning runs.
// It is an audit trail, not state: losing it never affects the cloud side.
package journal

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var bucketRuns = []byte("runs")

// Entry is one recorded run.
type Entry struct {
	Sequence  uint64          `json:"sequence"`
	RunID     string          `json:"run_id"`
	Outcome   string          `json:"outcome"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Journal wraps a bbolt database holding run entries.
type Journal struct {
	db *bbolt.DB
}

// Open creates or opens the journal at dir/journal.db.
func Open(dir string) (*Journal, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := bbolt.Open(filepath.Join(dir, "journal.db"), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRuns)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init journal bucket: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends one run to the journal.
func (j *Journal) Record(runID, outcome string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal run data: %w", err)
	}

	return j.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketRuns)

		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		entry := Entry{
			Sequence:  seq,
			RunID:     runID,
			Outcome:   outcome,
			Timestamp: time.Now(),
			Data:      payload,
		}
		value, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		return bucket.Put(key, value)
	})
}

// Runs returns all recorded runs in append order.
func (j *Journal) Runs() ([]Entry, error) {
	var entries []Entry

	err := j.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRuns).ForEach(func(_, value []byte) error {
			var entry Entry
			if err := json.Unmarshal(value, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal entry: %w", err)
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
