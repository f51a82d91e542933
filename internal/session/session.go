// Package session ties a covergroup registry to persisted coverage data.
package session

import (
	"errors"
	"os"

	"go.uber.org/zap"

	"funcov/internal/registry"
	"funcov/internal/store"
)

// Session is one coverage session: the live covergroup registry plus the
// in-memory snapshot accumulated from loads. Multiple independent sessions
// can coexist in a process; there is no shared state between them.
//
// The persistence lifecycle is deliberately asymmetric. Load merges file
// contents into memory, but Save writes the live registry state wholesale,
// borrowing only the run count from any file already at the path. Within a
// process, cross-run accumulation works because live bins keep their
// counters between saves.
type Session struct {
	registry *registry.Registry
	store    *store.Store
	data     *store.Snapshot
	logger   *zap.Logger
}

// New creates an empty session. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		registry: registry.New(logger),
		store:    store.NewStore(logger),
		data:     store.NewSnapshot(),
		logger:   logger,
	}
}

// Registry returns the session's covergroup registry.
func (s *Session) Registry() *registry.Registry { return s.registry }

// Data returns the in-memory snapshot.
func (s *Session) Data() *store.Snapshot { return s.data }

// Load reads a coverage file and folds it into the session. If the session
// already holds data the file is merged in cumulatively; otherwise it is
// adopted wholesale. A missing file is an error.
func (s *Session) Load(path string) error {
	loaded, err := s.store.Load(path)
	if err != nil {
		return err
	}
	if s.data.Empty() {
		s.data = loaded
	} else {
		s.data = store.Merge(s.data, loaded)
	}
	return nil
}

// Save records a run: it collects every registered covergroup into the
// snapshot, sets total_runs to one more than whatever the file at path
// already recorded, and writes the result. Hit counts in the file are not
// re-merged; the in-memory state is the truth being written.
func (s *Session) Save(path string) error {
	runs := 0
	if _, err := os.Stat(path); err == nil {
		existing, err := s.store.Load(path)
		if err == nil {
			runs = existing.TotalRuns
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	s.data.TotalRuns = runs + 1
	s.data.LastUpdated = store.Now()
	s.data.Covergroups = make(map[string]*store.CovergroupData, s.registry.Len())
	for key, cg := range s.registry.All() {
		s.data.Covergroups[key] = store.FromCovergroup(cg)
	}

	return s.store.Save(s.data, path)
}

// Reset clears both the registry and the in-memory snapshot, returning the
// session to its initial state. Used for test isolation.
func (s *Session) Reset() {
	s.registry.Reset()
	s.data = store.NewSnapshot()
}
