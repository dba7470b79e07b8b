package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tiliavir/hours-tracker/internal/model"
)

// EntriesKey is the fixed key the entry collection is stored under.
const EntriesKey = "timeEntries"

// ErrCorrupt is returned when stored data cannot be decoded.
var ErrCorrupt = errors.New("corrupt entry data")

// Persistence loads and saves the whole entry collection.
type Persistence interface {
	Load(ctx context.Context) ([]model.TimeEntry, error)
	Save(ctx context.Context, entries []model.TimeEntry) error
}

// KV is a key-value byte store. Get reports found=false for a missing key;
// that is not an error.
type KV interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Put(ctx context.Context, key string, data []byte) error
}

// quarantiner is implemented by backends that can move an unreadable
// value aside so the next save starts clean.
type quarantiner interface {
	Quarantine(ctx context.Context, key string) (string, error)
}

// BaseDir returns the root data directory (~/.hours).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".hours"), nil
}

// JSONStore keeps the collection as a JSON array under EntriesKey.
type JSONStore struct {
	kv  KV
	key string
}

// NewJSONStore returns a Persistence backed by kv.
func NewJSONStore(kv KV) *JSONStore {
	return &JSONStore{kv: kv, key: EntriesKey}
}

// Load returns the stored collection, or an empty one if nothing was saved yet.
func (s *JSONStore) Load(ctx context.Context) ([]model.TimeEntry, error) {
	data, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return []model.TimeEntry{}, fmt.Errorf("storage error reading %s: %w", s.key, err)
	}
	if !found || len(data) == 0 {
		return []model.TimeEntry{}, nil
	}

	var entries []model.TimeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		if q, ok := s.kv.(quarantiner); ok {
			if backup, qErr := q.Quarantine(ctx, s.key); qErr == nil {
				return []model.TimeEntry{}, fmt.Errorf("%w in %s (backed up to %s): %v", ErrCorrupt, s.key, backup, err)
			}
		}
		return []model.TimeEntry{}, fmt.Errorf("%w in %s: %v", ErrCorrupt, s.key, err)
	}
	if entries == nil {
		entries = []model.TimeEntry{}
	}
	return entries, nil
}

// Save replaces the stored collection.
func (s *JSONStore) Save(ctx context.Context, entries []model.TimeEntry) error {
	if entries == nil {
		entries = []model.TimeEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("storage error writing %s: %w", s.key, err)
	}
	return nil
}
