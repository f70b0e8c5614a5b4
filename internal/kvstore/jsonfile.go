package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"lifelist/internal/logging"
)

// JSONFile keeps every key in one JSON object on disk. Each change rewrites
// the file atomically.
type JSONFile struct {
	path   string
	logger *slog.Logger
	mu     sync.RWMutex
	values map[string]string
}

// NewJSONFile loads the store at path. A missing file starts empty; an
// unreadable one also starts empty after a warning, and is replaced by the
// next write.
func NewJSONFile(path string, logger *slog.Logger) *JSONFile {
	logger = logging.NewComponentLogger(logger, "kvstore-jsonfile")
	s := &JSONFile{
		path:   path,
		logger: logger,
		values: make(map[string]string),
	}

	if err := s.load(); err != nil {
		logging.WarnWithContext(logger, "failed to load json store", "kvstore_load_failed",
			logging.Error(err),
			logging.String("path", path),
			logging.String(logging.FieldErrorHint, "re-run lifelist import to rebuild the store"),
			logging.String(logging.FieldImpact, "previously stored values are ignored"))
	}
	return s
}

// Get returns the value stored under key.
func (s *JSONFile) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key and persists the file.
func (s *JSONFile) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if existed {
			s.values[key] = previous
		} else {
			delete(s.values, key)
		}
		return fmt.Errorf("persist json store: %w", err)
	}
	return nil
}

// Remove deletes key and persists the file. Removing a missing key succeeds
// without touching the file.
func (s *JSONFile) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.values[key]
	if !existed {
		return nil
	}
	delete(s.values, key)
	if err := s.save(); err != nil {
		s.values[key] = previous
		return fmt.Errorf("persist json store: %w", err)
	}
	return nil
}

// Close is a no-op; every change is already on disk.
func (s *JSONFile) Close() error {
	return nil
}

func (s *JSONFile) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read store file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parse store file: %w", err)
	}
	s.values = values

	s.logger.Debug("loaded json store",
		logging.Int("key_count", len(values)),
		logging.String("path", s.path))
	return nil
}

func (s *JSONFile) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
