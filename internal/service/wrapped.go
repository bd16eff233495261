package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"garmin-wrapped/internal/analysis"
	"garmin-wrapped/internal/config"
	"garmin-wrapped/internal/export"
)

// Category identifies one of the three independent export datasets.
type Category string

const (
	CategoryActivities Category = "activities"
	CategorySteps      Category = "steps"
	CategorySleep      Category = "sleep"
)

// User-facing load failure messages. A structured error taxonomy beyond
// "no rows" vs "parse failure" is deliberately not exposed.
const (
	MsgNoRows      = "no rows found"
	MsgParseFailed = "failed to parse file"
)

// Upload describes one successful load of an export file.
type Upload struct {
	ID       uuid.UUID
	Path     string
	LoadedAt time.Time
}

// WrappedService runs the aggregation pipeline per category and holds the
// latest snapshot for each. A re-load fully replaces the prior snapshot for
// that category; the three categories never read each other's state. Load
// runs inside a Bubble Tea command goroutine while the render loop reads the
// accessors, so all state is guarded by mu. Snapshots are immutable once
// aggregated, making the returned pointers safe to hold across the lock.
type WrappedService struct {
	cfg config.WrappedConfig

	mu sync.RWMutex

	activities *analysis.ActivitySnapshot
	steps      *analysis.StepsSnapshot
	sleep      *analysis.SleepSnapshot

	uploads map[Category]Upload
	errs    map[Category]string
}

// NewWrappedService creates a new wrapped service
func NewWrappedService(cfg config.WrappedConfig) *WrappedService {
	if cfg.StepsPerMile == 0 {
		cfg.StepsPerMile = analysis.DefaultStepsPerMile
	}
	return &WrappedService{
		cfg:     cfg,
		uploads: make(map[Category]Upload),
		errs:    make(map[Category]string),
	}
}

// Load reads and aggregates the export file for one category. On failure the
// prior snapshot for that category is cleared and a human-readable message is
// recorded; other categories are untouched.
func (s *WrappedService) Load(cat Category, path string) error {
	rows, err := export.ReadFile(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.fail(cat, err)
		return err
	}

	switch cat {
	case CategoryActivities:
		snap, aerr := analysis.AggregateActivities(rows)
		if aerr != nil {
			s.fail(cat, aerr)
			return aerr
		}
		s.activities = snap
	case CategorySteps:
		snap, aerr := analysis.AggregateSteps(rows, s.cfg.StepsPerMile)
		if aerr != nil {
			s.fail(cat, aerr)
			return aerr
		}
		s.steps = snap
	case CategorySleep:
		snap, aerr := analysis.AggregateSleep(rows)
		if aerr != nil {
			s.fail(cat, aerr)
			return aerr
		}
		s.sleep = snap
	}

	delete(s.errs, cat)
	s.uploads[cat] = Upload{
		ID:       uuid.New(),
		Path:     path,
		LoadedAt: time.Now(),
	}
	return nil
}

// fail clears the category snapshot and records the user-facing message.
// The caller must hold mu.
func (s *WrappedService) fail(cat Category, err error) {
	switch cat {
	case CategoryActivities:
		s.activities = nil
	case CategorySteps:
		s.steps = nil
	case CategorySleep:
		s.sleep = nil
	}
	if errors.Is(err, analysis.ErrNoData) || errors.Is(err, export.ErrEmpty) {
		s.errs[cat] = MsgNoRows
	} else {
		s.errs[cat] = MsgParseFailed
	}
}

// Activities returns the latest activities snapshot, or nil when the last
// load failed or nothing was loaded yet.
func (s *WrappedService) Activities() *analysis.ActivitySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activities
}

// Steps returns the latest steps snapshot.
func (s *WrappedService) Steps() *analysis.StepsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steps
}

// Sleep returns the latest sleep snapshot.
func (s *WrappedService) Sleep() *analysis.SleepSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sleep
}

// Err returns the recorded failure message for a category, or "" when the
// most recent load succeeded.
func (s *WrappedService) Err(cat Category) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errs[cat]
}

// LastUpload returns metadata for the most recent successful load of a
// category.
func (s *WrappedService) LastUpload(cat Category) (Upload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.uploads[cat]
	return u, ok
}

// TopSports returns the configured number of top sport categories.
func (s *WrappedService) TopSports() []analysis.SportTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activities == nil {
		return nil
	}
	return s.activities.TopSports(s.cfg.TopSports)
}
