// Package auditstore persists per-repository audit outcomes to a single
// JSON file.
package auditstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/driftgate/driftgate/internal/contract"
	"github.com/driftgate/driftgate/schema"
)

// FileStore implements the HistoryStore interface over one JSON file
// holding a mapping from repository identifier to a newest-first list of
// audit entries, capped at schema.HistoryLimit per repository.
//
// Writes replace the whole file via a temp file and an atomic rename, so
// readers never observe a partial file. Append is still read-modify-write
// over the full mapping: two processes appending concurrently can lose one
// side's update (last writer wins). Accepted for a single-operator tool.
type FileStore struct {
	path string
}

var _ contract.HistoryStore = &FileStore{} // Compile-time check

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = contract.DefaultHistoryFile
	}
	return &FileStore{path: path}
}

// Append inserts the entry at the front of the repository's log, trims the
// log to the retention limit, and rewrites the backing file.
func (s *FileStore) Append(repoID string, entry schema.AuditEntry) error {
	history := s.loadAll()

	entry.Score = schema.ClampScore(entry.Score)
	entries := append([]schema.AuditEntry{entry}, history[repoID]...)
	if len(entries) > schema.HistoryLimit {
		entries = entries[:schema.HistoryLimit]
	}
	history[repoID] = entries

	return s.writeAll(history)
}

// List returns the repository's entries newest-first. Missing or corrupt
// storage degrades to an empty slice.
func (s *FileStore) List(repoID string) []schema.AuditEntry {
	return s.loadAll()[repoID]
}

// Clear removes all entries for the repository and reports whether any
// existed. Other repositories' entries are untouched.
func (s *FileStore) Clear(repoID string) (bool, error) {
	history := s.loadAll()
	if _, ok := history[repoID]; !ok {
		return false, nil
	}
	delete(history, repoID)
	if err := s.writeAll(history); err != nil {
		return false, err
	}
	return true, nil
}

// loadAll reads the full persisted mapping. Any read or decode failure is
// treated as an empty mapping, never as a fatal condition.
func (s *FileStore) loadAll() map[string][]schema.AuditEntry {
	history := make(map[string][]schema.AuditEntry)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return history
	}
	if err := json.Unmarshal(data, &history); err != nil {
		return make(map[string][]schema.AuditEntry)
	}
	return history
}

// writeAll rewrites the backing file atomically: encode to a temp file in
// the same directory, then rename over the target.
func (s *FileStore) writeAll(history map[string][]schema.AuditEntry) error {
	data, err := json.MarshalIndent(history, "", "    ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp history file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}
