package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store reads and writes snapshots as JSON files.
type Store struct {
	logger *zap.Logger
}

// NewStore creates a store. A nil logger is replaced with a no-op logger.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Save writes the snapshot to path as indented JSON, creating parent
// directories as needed. The write goes through a uniquely named temp file
// and a rename so a crash never leaves a truncated snapshot behind.
func (s *Store) Save(snap *Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding coverage data: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating coverage directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing coverage data: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing coverage data: %w", err)
	}

	s.logger.Info("saved coverage data", zap.String("path", path))
	return nil
}

// Load reads a snapshot from path.
//
// A missing file is an error and propagates to the caller. A file that does
// not parse as JSON is downgraded to an empty snapshot with a warning, and
// missing fields get their defaults (version "1.0", zero runs, empty
// covergroups, last_updated now). This lenient-load policy means a corrupt
// file costs history, not a crash.
func (s *Store) Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("coverage file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("reading coverage file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("failed to parse coverage file, starting empty",
			zap.String("path", path), zap.Error(err))
		return NewSnapshot(), nil
	}

	if snap.Version == "" {
		snap.Version = Version
	}
	if snap.Covergroups == nil {
		snap.Covergroups = make(map[string]*CovergroupData)
	}
	if snap.LastUpdated.IsZero() {
		snap.LastUpdated = Now()
	}

	s.logger.Info("loaded coverage data",
		zap.String("path", path), zap.Int("total_runs", snap.TotalRuns))
	return &snap, nil
}
