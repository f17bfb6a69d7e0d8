package store

import (
	"github.com/google/uuid"

	apperrors "github.com/julianstephens/fozzle/internal/errors"
	"github.com/julianstephens/fozzle/internal/models"
)

// ActivityUpdate is a partial update; nil fields are left unchanged.
type ActivityUpdate struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Category    *models.Category
	Completed   *bool
}

// CreateActivity inserts a new activity at the top of its category column and
// shifts existing members of that category down by one.
func (s *Store) CreateActivity(title, description string, category models.Category, priority models.Priority) (models.Activity, error) {
	a := models.Activity{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		Order:       0,
		CreatedAt:   s.now(),
	}
	if err := a.Validate(); err != nil {
		return models.Activity{}, &apperrors.ValidationError{Msg: err.Error()}
	}

	err := s.mutate("create activity",
		func() {
			for i := range s.activities {
				if s.activities[i].Category == category {
					s.activities[i].Order++
				}
			}
			s.activities = append(s.activities, a)
		},
		func() error {
			if err := s.remote.CreateActivity(a); err != nil {
				return err
			}
			return s.syncCategoryOrder(category, a.ID)
		})
	if err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

// UpdateActivity applies a partial update. Marking complete forces rejected
// off; a category change restamps CategoryChangedAt and clears any rejection,
// since rejection only applies to Noise.
func (s *Store) UpdateActivity(id string, upd ActivityUpdate) (models.Activity, error) {
	idx, ok := s.findActivity(id)
	if !ok {
		return models.Activity{}, apperrors.Validationf("activity %s not found", id)
	}

	next := s.activities[idx]
	if upd.Title != nil {
		next.Title = *upd.Title
	}
	if upd.Description != nil {
		next.Description = *upd.Description
	}
	if upd.Priority != nil {
		next.Priority = *upd.Priority
	}
	if upd.Category != nil && *upd.Category != next.Category {
		now := s.now()
		next.Category = *upd.Category
		next.CategoryChangedAt = &now
		next.Rejected = false
		next.RejectedAt = nil
	}
	if upd.Completed != nil {
		s.setCompleted(&next, *upd.Completed)
	}
	if err := next.Validate(); err != nil {
		return models.Activity{}, &apperrors.ValidationError{Msg: err.Error()}
	}

	err := s.mutate("update activity",
		func() { s.activities[idx] = next },
		func() error { return s.remote.UpdateActivity(next) })
	if err != nil {
		return models.Activity{}, err
	}
	return next, nil
}

// ToggleComplete flips the completed flag. Completing a rejected activity
// clears the rejection first, keeping the two states mutually exclusive.
func (s *Store) ToggleComplete(id string) (models.Activity, error) {
	idx, ok := s.findActivity(id)
	if !ok {
		return models.Activity{}, apperrors.Validationf("activity %s not found", id)
	}

	next := s.activities[idx]
	s.setCompleted(&next, !next.Completed)

	err := s.mutate("toggle complete",
		func() { s.activities[idx] = next },
		func() error { return s.remote.UpdateActivity(next) })
	if err != nil {
		return models.Activity{}, err
	}
	return next, nil
}

func (s *Store) setCompleted(a *models.Activity, completed bool) {
	a.Completed = completed
	if completed {
		now := s.now()
		a.CompletedAt = &now
		a.Rejected = false
		a.RejectedAt = nil
	} else {
		a.CompletedAt = nil
	}
}

// ToggleReject flips the rejected flag on a Noise activity. Rejecting a Signal
// activity is a validation error and leaves all state untouched. Rejecting a
// completed activity clears the completion.
func (s *Store) ToggleReject(id string) (models.Activity, error) {
	idx, ok := s.findActivity(id)
	if !ok {
		return models.Activity{}, apperrors.Validationf("activity %s not found", id)
	}
	if s.activities[idx].Category != models.CategoryNoise {
		return models.Activity{}, apperrors.Validationf("only noise activities can be rejected")
	}

	next := s.activities[idx]
	next.Rejected = !next.Rejected
	if next.Rejected {
		now := s.now()
		next.RejectedAt = &now
		next.Completed = false
		next.CompletedAt = nil
	} else {
		next.RejectedAt = nil
	}

	err := s.mutate("toggle reject",
		func() { s.activities[idx] = next },
		func() error { return s.remote.UpdateActivity(next) })
	if err != nil {
		return models.Activity{}, err
	}
	return next, nil
}

// MoveCategory moves the activity to the other category, placing it at the top
// of the destination column. The rejection is always cleared on a move;
// CategoryChangedAt is stamped so historical days score the activity under its
// prior category.
func (s *Store) MoveCategory(id string) (models.Activity, error) {
	idx, ok := s.findActivity(id)
	if !ok {
		return models.Activity{}, apperrors.Validationf("activity %s not found", id)
	}

	now := s.now()
	dest := s.activities[idx].Category.Opposite()

	var moved models.Activity
	err := s.mutate("move category",
		func() {
			for i := range s.activities {
				if i != idx && s.activities[i].Category == dest {
					s.activities[i].Order++
				}
			}
			a := &s.activities[idx]
			a.Category = dest
			a.CategoryChangedAt = &now
			a.Rejected = false
			a.RejectedAt = nil
			a.Order = 0
			moved = *a
		},
		func() error { return s.syncCategoryOrder(dest, "") })
	if err != nil {
		return models.Activity{}, err
	}
	return moved, nil
}

// Reorder rewrites the ordering of one category column. IDs in orderedIDs that
// belong to the category take positions in the given sequence; unknown ids are
// ignored, and category members missing from the list keep their relative
// order after the listed ones. The result is always dense from 0.
func (s *Store) Reorder(category models.Category, orderedIDs []string) error {
	listed := make(map[string]int, len(orderedIDs))
	pos := 0
	for _, id := range orderedIDs {
		if i, ok := s.findActivity(id); ok && s.activities[i].Category == category {
			if _, dup := listed[id]; !dup {
				listed[id] = pos
				pos++
			}
		}
	}

	// Remaining members keep their relative order, after the listed block.
	var rest []int
	for i := range s.activities {
		a := &s.activities[i]
		if a.Category == category {
			if _, ok := listed[a.ID]; !ok {
				rest = append(rest, i)
			}
		}
	}
	sortByOrder(s.activities, rest)

	return s.mutate("reorder",
		func() {
			for i := range s.activities {
				if p, ok := listed[s.activities[i].ID]; ok {
					s.activities[i].Order = p
				}
			}
			for _, i := range rest {
				s.activities[i].Order = pos
				pos++
			}
		},
		func() error { return s.syncCategoryOrder(category, "") })
}

func sortByOrder(activities []models.Activity, idxs []int) {
	for i := 1; i < len(idxs); i++ {
		for j := i; j > 0 && activities[idxs[j]].Order < activities[idxs[j-1]].Order; j-- {
			idxs[j], idxs[j-1] = idxs[j-1], idxs[j]
		}
	}
}

// DeleteActivity removes the activity and closes the order gap it leaves.
func (s *Store) DeleteActivity(id string) error {
	idx, ok := s.findActivity(id)
	if !ok {
		return apperrors.Validationf("activity %s not found", id)
	}
	category := s.activities[idx].Category
	removedOrder := s.activities[idx].Order

	return s.mutate("delete activity",
		func() {
			s.activities = append(s.activities[:idx], s.activities[idx+1:]...)
			for i := range s.activities {
				if s.activities[i].Category == category && s.activities[i].Order > removedOrder {
					s.activities[i].Order--
				}
			}
		},
		func() error {
			if err := s.remote.DeleteActivity(id); err != nil {
				return err
			}
			return s.syncCategoryOrder(category, "")
		})
}

// syncCategoryOrder pushes the current order of every activity in a category
// to the backend. skipID excludes an activity already written by the caller.
func (s *Store) syncCategoryOrder(category models.Category, skipID string) error {
	for i := range s.activities {
		a := s.activities[i]
		if a.Category != category || a.ID == skipID {
			continue
		}
		if err := s.remote.UpdateActivity(a); err != nil {
			return err
		}
	}
	return nil
}

// ActivitiesByCategory returns the category's activities sorted by order.
func (s *Store) ActivitiesByCategory(category models.Category) []models.Activity {
	var out []models.Activity
	for _, a := range s.activities {
		if a.Category == category {
			out = append(out, a)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
