// file: internal/store/store.go
// version: 1.1.0
// guid: 1d3f5b7c-9e2a-4c4e-a6b8-0c2e4a6c8e0b

package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/pebble/v2"
)

// Store records which tasks have already been produced, so repeated runs
// over the same region do not re-submit known inconsistencies.
//
// Key Schema:
// - task:<challenge>:<task_id> -> Record JSON
type Store struct {
	db *pebble.DB
}

// Record is the persisted state of one submitted task.
type Record struct {
	TaskID    string    `json:"task_id"`
	Challenge string    `json:"challenge"`
	RunID     string    `json:"run_id"`
	Submitted time.Time `json:"submitted"`
}

// Open creates or opens the store at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func taskKey(challenge, taskID string) []byte {
	return []byte(fmt.Sprintf("task:%s:%s", challenge, taskID))
}

// Seen reports whether the task was recorded by an earlier run.
func (s *Store) Seen(challenge, taskID string) (bool, error) {
	_, closer, err := s.db.Get(taskKey(challenge, taskID))
	if err == pebble.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read task %s: %w", taskID, err)
	}
	closer.Close()
	return true, nil
}

// MarkSubmitted records a task as handled by the given run.
func (s *Store) MarkSubmitted(challenge, taskID, runID string) error {
	rec := Record{
		TaskID:    taskID,
		Challenge: challenge,
		RunID:     runID,
		Submitted: time.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := s.db.Set(taskKey(challenge, taskID), data, pebble.Sync); err != nil {
		return fmt.Errorf("failed to record task %s: %w", taskID, err)
	}
	return nil
}

// Records returns every record for a challenge, for inspection and tests.
func (s *Store) Records(challenge string) ([]Record, error) {
	prefix := fmt.Sprintf("task:%s:", challenge)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open iterator: %w", err)
	}
	defer iter.Close()

	var out []Record
	for iter.First(); iter.Valid(); iter.Next() {
		if !strings.HasPrefix(string(iter.Key()), prefix) {
			break
		}
		var rec Record
		if err := json.Unmarshal(iter.Value(), &rec); err != nil {
			return nil, fmt.Errorf("corrupt record at %s: %w", iter.Key(), err)
		}
		out = append(out, rec)
	}
	return out, nil
}
