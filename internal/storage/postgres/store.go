package postgres

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"github.com/julianstephens/fozzle/internal/constants"
	"github.com/julianstephens/fozzle/internal/logger"
	"github.com/julianstephens/fozzle/internal/models"
)

// Store is the Postgres Provider, for users who keep their data on a shared
// server. The connection string comes from the OS keyring (see the keyring
// package) so credentials never land in the config directory.
type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	s := &Store{
		connStr: connStr,
	}
	s.ensureSearchPath()
	return s
}

// ensureSearchPath pins the connection to the app schema so the tables don't
// land in public on shared databases.
func (s *Store) ensureSearchPath() {
	if strings.HasPrefix(s.connStr, "postgres://") || strings.HasPrefix(s.connStr, "postgresql://") {
		u, err := url.Parse(s.connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
		return
	}

	// DSN format: space-separated key=value pairs.
	for _, part := range strings.Fields(s.connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "search_path") {
			return
		}
	}
	s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
}

const schema = `
CREATE SCHEMA IF NOT EXISTS ` + constants.AppName + `;

CREATE TABLE IF NOT EXISTS ` + constants.AppName + `.activities (
	id                  TEXT PRIMARY KEY,
	title               TEXT NOT NULL,
	description         TEXT NOT NULL DEFAULT '',
	category            TEXT NOT NULL,
	priority            TEXT NOT NULL,
	completed           BOOLEAN NOT NULL DEFAULT FALSE,
	rejected            BOOLEAN NOT NULL DEFAULT FALSE,
	sort_order          INTEGER NOT NULL DEFAULT 0,
	created_at          TIMESTAMPTZ NOT NULL,
	completed_at        TIMESTAMPTZ,
	rejected_at         TIMESTAMPTZ,
	category_changed_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS ` + constants.AppName + `.ideas (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	promoted    BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS ` + constants.AppName + `.settings (
	id                    INTEGER PRIMARY KEY CHECK (id = 1),
	timezone              TEXT NOT NULL,
	daily_goal            INTEGER NOT NULL,
	notifications_enabled BOOLEAN NOT NULL
);
`

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

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
	if err := s.open(); err != nil {
		return err
	}
	// Settings row doubles as the initialization marker.
	if _, err := s.GetSettings(); err != nil {
		return fmt.Errorf("storage not initialized, run 'fozzle init' first: %w", err)
	}
	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
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
	// The connection string may embed credentials; never report it.
	return "postgres"
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
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			daily_goal = EXCLUDED.daily_goal,
			notifications_enabled = EXCLUDED.notifications_enabled`,
		settings.Timezone, settings.DailyGoal, settings.NotificationsEnabled)
	return err
}
