package models

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategorySignal Category = "signal"
	CategoryNoise  Category = "noise"
)

type Priority string

const (
	PriorityWork   Priority = "work"
	PriorityHome   Priority = "home"
	PrioritySocial Priority = "social"
)

// Activity is the central entity: a unit of work classified as Signal or Noise.
// Completed and Rejected are mutually exclusive; Rejected is only meaningful for
// Noise activities. Order is a dense per-category ordering key (0 = top).
type Activity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	Rejected    bool     `json:"rejected"`
	Order       int      `json:"order"`

	CreatedAt time.Time `json:"created_at"`
	// CompletedAt/RejectedAt are set when the corresponding flag transitions to
	// true and cleared when it transitions back.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`
	// CategoryChangedAt records only the most recent category switch. Scoring
	// for days before the switch infers the prior category from it.
	CategoryChangedAt *time.Time `json:"category_changed_at,omitempty"`
}

// Validate checks the activity's own invariants.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("activity title must not be empty")
	}
	if a.Category != CategorySignal && a.Category != CategoryNoise {
		return fmt.Errorf("invalid category: %q", a.Category)
	}
	if a.Completed && a.Rejected {
		return fmt.Errorf("activity cannot be both completed and rejected")
	}
	if a.Rejected && a.Category != CategoryNoise {
		return fmt.Errorf("only noise activities can be rejected")
	}
	return nil
}

// ParseCategory parses a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySignal:
		return CategorySignal, nil
	case CategoryNoise:
		return CategoryNoise, nil
	default:
		return "", fmt.Errorf("invalid category %q (expected signal or noise)", s)
	}
}

// ParsePriority parses a user-supplied priority tag.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityWork:
		return PriorityWork, nil
	case PriorityHome:
		return PriorityHome, nil
	case PrioritySocial:
		return PrioritySocial, nil
	default:
		return "", fmt.Errorf("invalid priority %q (expected work, home or social)", s)
	}
}

// Opposite returns the other category. Used by historical scoring when a
// category switch postdates the day being scored.
func (c Category) Opposite() Category {
	if c == CategorySignal {
		return CategoryNoise
	}
	return CategorySignal
}
