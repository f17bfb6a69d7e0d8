package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/fozzle/internal/constants"
	"github.com/julianstephens/fozzle/internal/models"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS activities (
	id                  TEXT PRIMARY KEY,
	title               TEXT NOT NULL,
	description         TEXT NOT NULL DEFAULT '',
	category            TEXT NOT NULL,
	priority            TEXT NOT NULL,
	completed           INTEGER NOT NULL DEFAULT 0,
	rejected            INTEGER NOT NULL DEFAULT 0,
	sort_order          INTEGER NOT NULL DEFAULT 0,
	created_at          TEXT NOT NULL,
	completed_at        TEXT,
	rejected_at         TEXT,
	category_changed_at TEXT
);

CREATE TABLE IF NOT EXISTS ideas (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	promoted    INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	id                    INTEGER PRIMARY KEY CHECK (id = 1),
	timezone              TEXT NOT NULL,
	daily_goal            INTEGER NOT NULL,
	notifications_enabled INTEGER NOT NULL
);
`

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings on first init only.
	settings, err := s.GetSettings()
	if err != nil || settings.Timezone == "" {
		defaults := models.Settings{
			Timezone:             constants.DefaultTimezone,
			DailyGoal:            constants.DefaultDailyGoal,
			NotificationsEnabled: constants.DefaultNotificationsEnabled,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'fozzle init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

func (s *Store) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow(`SELECT timezone, daily_goal, notifications_enabled FROM settings WHERE id = 1`)

	var settings models.Settings
	err := row.Scan(&settings.Timezone, &settings.DailyGoal, &settings.NotificationsEnabled)
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, daily_goal, notifications_enabled)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			timezone = excluded.timezone,
			daily_goal = excluded.daily_goal,
			notifications_enabled = excluded.notifications_enabled`,
		settings.Timezone, settings.DailyGoal, settings.NotificationsEnabled)
	return err
}
