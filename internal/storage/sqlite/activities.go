package sqlite

import (
	"database/sql"
	"time"

	"github.com/julianstephens/fozzle/internal/models"
)

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}

func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

const activityColumns = `id, title, description, category, priority, completed, rejected,
	       sort_order, created_at, completed_at, rejected_at, category_changed_at`

func scanActivity(row interface{ Scan(...any) error }) (models.Activity, error) {
	var a models.Activity
	var createdAt string
	var completedAt, rejectedAt, categoryChangedAt sql.NullString

	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Category, &a.Priority, &a.Completed, &a.Rejected,
		&a.Order, &createdAt, &completedAt, &rejectedAt, &categoryChangedAt,
	)
	if err != nil {
		return models.Activity{}, err
	}

	if a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return models.Activity{}, err
	}
	if a.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return models.Activity{}, err
	}
	if a.RejectedAt, err = parseNullTime(rejectedAt); err != nil {
		return models.Activity{}, err
	}
	if a.CategoryChangedAt, err = parseNullTime(categoryChangedAt); err != nil {
		return models.Activity{}, err
	}

	return a, nil
}

func (s *Store) ListActivities() ([]models.Activity, error) {
	rows, err := s.db.Query(`SELECT ` + activityColumns + ` FROM activities ORDER BY category, sort_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func (s *Store) CreateActivity(a models.Activity) error {
	_, err := s.db.Exec(`
		INSERT INTO activities (`+activityColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Description, string(a.Category), string(a.Priority), a.Completed, a.Rejected,
		a.Order, a.CreatedAt.Format(time.RFC3339Nano), nullTime(a.CompletedAt), nullTime(a.RejectedAt), nullTime(a.CategoryChangedAt))
	return err
}

func (s *Store) UpdateActivity(a models.Activity) error {
	res, err := s.db.Exec(`
		UPDATE activities SET
			title = ?, description = ?, category = ?, priority = ?, completed = ?, rejected = ?,
			sort_order = ?, completed_at = ?, rejected_at = ?, category_changed_at = ?
		WHERE id = ?`,
		a.Title, a.Description, string(a.Category), string(a.Priority), a.Completed, a.Rejected,
		a.Order, nullTime(a.CompletedAt), nullTime(a.RejectedAt), nullTime(a.CategoryChangedAt), a.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteActivity(id string) error {
	_, err := s.db.Exec(`DELETE FROM activities WHERE id = ?`, id)
	return err
}
