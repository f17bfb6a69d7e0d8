package postgres

import (
	"database/sql"

	"github.com/julianstephens/fozzle/internal/models"
)

const activityColumns = `id, title, description, category, priority, completed, rejected,
	       sort_order, created_at, completed_at, rejected_at, category_changed_at`

func scanActivity(row interface{ Scan(...any) error }) (models.Activity, error) {
	var a models.Activity
	var completedAt, rejectedAt, categoryChangedAt sql.NullTime

	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Category, &a.Priority, &a.Completed, &a.Rejected,
		&a.Order, &a.CreatedAt, &completedAt, &rejectedAt, &categoryChangedAt,
	)
	if err != nil {
		return models.Activity{}, err
	}

	if completedAt.Valid {
		t := completedAt.Time
		a.CompletedAt = &t
	}
	if rejectedAt.Valid {
		t := rejectedAt.Time
		a.RejectedAt = &t
	}
	if categoryChangedAt.Valid {
		t := categoryChangedAt.Time
		a.CategoryChangedAt = &t
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
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.Title, a.Description, string(a.Category), string(a.Priority), a.Completed, a.Rejected,
		a.Order, a.CreatedAt, a.CompletedAt, a.RejectedAt, a.CategoryChangedAt)
	return err
}

func (s *Store) UpdateActivity(a models.Activity) error {
	res, err := s.db.Exec(`
		UPDATE activities SET
			title = $1, description = $2, category = $3, priority = $4, completed = $5, rejected = $6,
			sort_order = $7, completed_at = $8, rejected_at = $9, category_changed_at = $10
		WHERE id = $11`,
		a.Title, a.Description, string(a.Category), string(a.Priority), a.Completed, a.Rejected,
		a.Order, a.CompletedAt, a.RejectedAt, a.CategoryChangedAt, a.ID)
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
	_, err := s.db.Exec(`DELETE FROM activities WHERE id = $1`, id)
	return err
}

func (s *Store) ListIdeas() ([]models.Idea, error) {
	rows, err := s.db.Query(`SELECT id, title, description, promoted, created_at FROM ideas ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		var i models.Idea
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.Promoted, &i.CreatedAt); err != nil {
			return nil, err
		}
		ideas = append(ideas, i)
	}
	return ideas, rows.Err()
}

func (s *Store) CreateIdea(i models.Idea) error {
	_, err := s.db.Exec(`
		INSERT INTO ideas (id, title, description, promoted, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		i.ID, i.Title, i.Description, i.Promoted, i.CreatedAt)
	return err
}

func (s *Store) UpdateIdea(i models.Idea) error {
	res, err := s.db.Exec(`
		UPDATE ideas SET title = $1, description = $2, promoted = $3 WHERE id = $4`,
		i.Title, i.Description, i.Promoted, i.ID)
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

func (s *Store) DeleteIdea(id string) error {
	_, err := s.db.Exec(`DELETE FROM ideas WHERE id = $1`, id)
	return err
}
