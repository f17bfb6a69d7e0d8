package store

import (
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/fozzle/internal/errors"
	"github.com/julianstephens/fozzle/internal/models"
)

// AddIdea records a new idea in the someday list.
func (s *Store) AddIdea(title, description string) (models.Idea, error) {
	idea := models.Idea{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := idea.Validate(); err != nil {
		return models.Idea{}, &apperrors.ValidationError{Msg: err.Error()}
	}

	err := s.mutate("add idea",
		func() { s.ideas = append(s.ideas, idea) },
		func() error { return s.remote.CreateIdea(idea) })
	if err != nil {
		return models.Idea{}, err
	}
	return idea, nil
}

// UpdateIdea replaces an idea's title and description.
func (s *Store) UpdateIdea(id, title, description string) (models.Idea, error) {
	idx, ok := s.findIdea(id)
	if !ok {
		return models.Idea{}, apperrors.Validationf("idea %s not found", id)
	}

	next := s.ideas[idx]
	next.Title = strings.TrimSpace(title)
	next.Description = description
	if err := next.Validate(); err != nil {
		return models.Idea{}, &apperrors.ValidationError{Msg: err.Error()}
	}

	err := s.mutate("update idea",
		func() { s.ideas[idx] = next },
		func() error { return s.remote.UpdateIdea(next) })
	if err != nil {
		return models.Idea{}, err
	}
	return next, nil
}

// DeleteIdea removes an idea.
func (s *Store) DeleteIdea(id string) error {
	idx, ok := s.findIdea(id)
	if !ok {
		return apperrors.Validationf("idea %s not found", id)
	}
	return s.mutate("delete idea",
		func() { s.ideas = append(s.ideas[:idx], s.ideas[idx+1:]...) },
		func() error { return s.remote.DeleteIdea(id) })
}

// PromoteIdea turns an idea into an activity at the top of the chosen column
// and marks the idea promoted. Promoting an already-promoted idea is a no-op.
func (s *Store) PromoteIdea(id string, category models.Category, priority models.Priority) (models.Activity, error) {
	idx, ok := s.findIdea(id)
	if !ok {
		return models.Activity{}, apperrors.Validationf("idea %s not found", id)
	}
	if s.ideas[idx].Promoted {
		return models.Activity{}, nil
	}
	if category == "" {
		category = models.CategorySignal
	}
	if priority == "" {
		priority = models.PriorityWork
	}

	idea := s.ideas[idx]
	a := models.Activity{
		ID:          uuid.NewString(),
		Title:       idea.Title,
		Description: idea.Description,
		Category:    category,
		Priority:    priority,
		Order:       0,
		CreatedAt:   s.now(),
	}

	promoted := idea
	promoted.Promoted = true

	err := s.mutate("promote idea",
		func() {
			for i := range s.activities {
				if s.activities[i].Category == category {
					s.activities[i].Order++
				}
			}
			s.activities = append(s.activities, a)
			s.ideas[idx] = promoted
		},
		func() error {
			if err := s.remote.CreateActivity(a); err != nil {
				return err
			}
			if err := s.remote.UpdateIdea(promoted); err != nil {
				return err
			}
			return s.syncCategoryOrder(category, a.ID)
		})
	if err != nil {
		return models.Activity{}, err
	}
	return a, nil
}
