package sqlite

import (
	"database/sql"
	"time"

	"github.com/julianstephens/fozzle/internal/models"
)

func (s *Store) ListIdeas() ([]models.Idea, error) {
	rows, err := s.db.Query(`SELECT id, title, description, promoted, created_at FROM ideas ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ideas []models.Idea
	for rows.Next() {
		var i models.Idea
		var createdAt string
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.Promoted, &createdAt); err != nil {
			return nil, err
		}
		if i.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, err
		}
		ideas = append(ideas, i)
	}
	return ideas, rows.Err()
}

func (s *Store) CreateIdea(i models.Idea) error {
	_, err := s.db.Exec(`
		INSERT INTO ideas (id, title, description, promoted, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		i.ID, i.Title, i.Description, i.Promoted, i.CreatedAt.Format(time.RFC3339Nano))
	return err
}

func (s *Store) UpdateIdea(i models.Idea) error {
	res, err := s.db.Exec(`
		UPDATE ideas SET title = ?, description = ?, promoted = ? WHERE id = ?`,
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
	_, err := s.db.Exec(`DELETE FROM ideas WHERE id = ?`, id)
	return err
}
