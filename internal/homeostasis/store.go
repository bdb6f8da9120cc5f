package homeostasis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// #region store

// Store persists snapshots as an indented UTF-8 JSON document so the state
// file stays human-readable. A missing or malformed file is reported as
// absent, never as a hard failure.
type Store struct {
	path string
}

// NewStore creates a Store writing to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// #endregion store

// #region load

// Load reads the snapshot. ok is false when the file is missing or cannot be
// parsed; callers fall back to defaults in that case.
func (s *Store) Load() (snap Snapshot, ok bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Snapshot{}, false
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false
	}
	return snap, true
}

// #endregion load

// #region save

// Save writes the snapshot through a temp-file rename so a crashed write
// cannot leave a truncated state file behind.
func (s *Store) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// #endregion save
