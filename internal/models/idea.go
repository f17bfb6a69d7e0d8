package models

import (
	"fmt"
	"strings"
	"time"
)

// Idea is a lightweight capture item. Promotion to an Activity is one-way:
// Promoted never goes back to false and the idea record is kept for history.
type Idea struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Promoted    bool      `json:"promoted"`
	CreatedAt   time.Time `json:"created_at"`
}

func (i Idea) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("idea title must not be empty")
	}
	return nil
}
