// Package store owns the authoritative in-memory collection of activities and
// ideas. Every mutation passes through it: local state is updated first
// (optimistic), the persistence backend is synced, and a sync failure restores
// the pre-mutation snapshot. Derived stats are recomputed synchronously on
// every change and fed to the threshold tracker.
//
// Execution is single-threaded and event-driven; mutators are atomic with
// respect to the caller and there is no lock. A superseding mutation issues
// its own sync call and last-write-wins at the backend.
package store

import (
	"time"

	"github.com/julianstephens/fozzle/internal/constants"
	apperrors "github.com/julianstephens/fozzle/internal/errors"
	"github.com/julianstephens/fozzle/internal/logger"
	"github.com/julianstephens/fozzle/internal/metrics"
	"github.com/julianstephens/fozzle/internal/models"
	"github.com/julianstephens/fozzle/internal/notify"
	"github.com/julianstephens/fozzle/internal/storage"
	"github.com/julianstephens/fozzle/internal/timeutil"
)

type Store struct {
	remote    storage.Provider
	engine    *metrics.Engine
	threshold *notify.ThresholdTracker

	activities []models.Activity
	ideas      []models.Idea
	settings   models.Settings
	stats      models.DailyStats

	now func() time.Time
	loc *time.Location
}

// Option configures a Store at construction.
type Option func(*Store)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a store over the given persistence backend. The emitter receives
// the celebration signal on threshold crossings.
func New(remote storage.Provider, emitter notify.Emitter, opts ...Option) *Store {
	s := &Store{
		remote:    remote,
		engine:    metrics.New(time.Local),
		threshold: notify.NewThresholdTracker(emitter),
		now:       time.Now,
		loc:       time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load performs the initial bulk load. A failure degrades to empty
// collections and default settings so the app stays usable; the returned
// LoadError is informational.
func (s *Store) Load() error {
	var loadErr error

	settings, err := s.remote.GetSettings()
	if err != nil {
		logger.Warn("Failed to load settings, using defaults", "error", err)
		settings = defaultSettings()
		loadErr = err
	}
	s.settings = settings

	loc, err := timeutil.LoadLocation(s.settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using local", "timezone", s.settings.Timezone)
		loc = time.Local
	}
	s.loc = loc
	s.engine = metrics.New(loc)

	activities, err := s.remote.ListActivities()
	if err != nil {
		logger.Error("Failed to load activities", "error", err)
		activities = nil
		loadErr = err
	}
	s.activities = activities

	ideas, err := s.remote.ListIdeas()
	if err != nil {
		logger.Error("Failed to load ideas", "error", err)
		ideas = nil
		loadErr = err
	}
	s.ideas = ideas

	s.recompute()

	if loadErr != nil {
		return &apperrors.LoadError{Err: loadErr}
	}
	return nil
}

func defaultSettings() models.Settings {
	return models.Settings{
		Timezone:             constants.DefaultTimezone,
		DailyGoal:            constants.DefaultDailyGoal,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
	}
}

// Read access. Slices are copied so callers cannot mutate store state.

func (s *Store) Activities() []models.Activity {
	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

func (s *Store) Ideas() []models.Idea {
	out := make([]models.Idea, len(s.ideas))
	copy(out, s.ideas)
	return out
}

func (s *Store) Settings() models.Settings { return s.settings }

func (s *Store) Stats() models.DailyStats { return s.stats }

func (s *Store) Week() models.WeekSummary {
	return s.engine.Week(s.activities, s.now())
}

func (s *Store) Streak() int {
	return s.engine.Streak(s.activities, s.now())
}

func (s *Store) Engine() *metrics.Engine { return s.engine }

func (s *Store) Location() *time.Location { return s.loc }

// recompute refreshes today's stats and runs the threshold check. Called after
// every mutation, including rollbacks.
func (s *Store) recompute() {
	if s.engine == nil {
		s.engine = metrics.New(s.loc)
	}
	s.stats = s.engine.Today(s.activities, s.now())
	s.threshold.Observe(s.stats)
}

// mutate is the optimistic-update helper shared by all mutators:
// snapshot-before, apply, recompute, sync; on sync failure restore the
// snapshot, recompute again, and surface a SyncError.
func (s *Store) mutate(op string, apply func(), sync func() error) error {
	snapActivities := s.Activities()
	snapIdeas := s.Ideas()

	apply()
	s.recompute()

	if err := sync(); err != nil {
		logger.Warn("Sync failed, rolling back", "op", op, "error", err)
		s.activities = snapActivities
		s.ideas = snapIdeas
		s.recompute()
		return &apperrors.SyncError{Op: op, Err: err}
	}
	return nil
}

func (s *Store) findActivity(id string) (int, bool) {
	for i := range s.activities {
		if s.activities[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Store) findIdea(id string) (int, bool) {
	for i := range s.ideas {
		if s.ideas[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// UpdateSettings persists new settings optimistically.
func (s *Store) UpdateSettings(settings models.Settings) error {
	if _, err := timeutil.LoadLocation(settings.Timezone); err != nil {
		return apperrors.Validationf("invalid timezone %q", settings.Timezone)
	}
	if settings.DailyGoal < 1 {
		return apperrors.Validationf("daily goal must be at least 1")
	}

	prev := s.settings
	s.settings = settings
	if err := s.remote.SaveSettings(settings); err != nil {
		s.settings = prev
		return &apperrors.SyncError{Op: "update settings", Err: err}
	}

	if loc, err := timeutil.LoadLocation(settings.Timezone); err == nil && loc != s.loc {
		s.loc = loc
		s.engine = metrics.New(loc)
		s.recompute()
	}
	return nil
}

// Reset deletes every activity and idea. Remote deletions run first so a
// backend failure leaves the local state untouched.
func (s *Store) Reset() error {
	for _, a := range s.activities {
		if err := s.remote.DeleteActivity(a.ID); err != nil {
			return &apperrors.SyncError{Op: "reset", Err: err}
		}
	}
	for _, i := range s.ideas {
		if err := s.remote.DeleteIdea(i.ID); err != nil {
			return &apperrors.SyncError{Op: "reset", Err: err}
		}
	}
	s.activities = nil
	s.ideas = nil
	s.recompute()
	return nil
}
