// Package metrics computes the Fozzle score and its aggregates from the raw
// activity collection. All functions are pure over the supplied slice and the
// supplied reference time, so callers control what "today" means.
package metrics

import (
	"time"

	"github.com/julianstephens/fozzle/internal/models"
	"github.com/julianstephens/fozzle/internal/timeutil"
)

// Engine scores activity collections. The zero value is not usable; construct
// with New.
type Engine struct {
	loc *time.Location
}

func New(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{loc: loc}
}

// categoryOn returns the activity's category as of the day ending at dayEnd.
// Only the most recent category switch is recorded, so a switch after dayEnd
// implies the activity was in the opposite category on that day. Days older
// than the second-most-recent switch are unrecoverable and silently score
// under this single-step inference.
func categoryOn(a models.Activity, dayEnd time.Time) models.Category {
	if a.CategoryChangedAt != nil && a.CategoryChangedAt.After(dayEnd) {
		return a.Category.Opposite()
	}
	return a.Category
}

// ScoreForDay computes the Fozzle score breakdown for the calendar day
// containing day.
//
// The score answers: of everything that needed a decision on the day, what
// fraction was resolved the disciplined way? Completing Signal work and
// rejecting Noise both count for the numerator; completing Noise and leaving
// Signal open inflate only the denominator. A day with an empty denominator
// scores 0, so missed days stay visible in aggregates.
func (e *Engine) ScoreForDay(activities []models.Activity, day time.Time) models.DayScore {
	dayStart, dayEnd := timeutil.DayBounds(day.In(e.loc))

	ds := models.DayScore{Date: dayStart}
	for _, a := range activities {
		cat := categoryOn(a, dayEnd)

		if a.CompletedAt != nil && timeutil.WithinDay(a.CompletedAt.In(e.loc), dayStart, dayEnd) {
			switch cat {
			case models.CategorySignal:
				ds.SignalCompleted++
			case models.CategoryNoise:
				ds.NoiseCompleted++
			}
		}
		if a.RejectedAt != nil && cat == models.CategoryNoise &&
			timeutil.WithinDay(a.RejectedAt.In(e.loc), dayStart, dayEnd) {
			ds.Rejected++
		}
		if cat == models.CategorySignal && !a.CreatedAt.In(e.loc).After(dayEnd) {
			openAsOfDay := !a.Completed || (a.CompletedAt != nil && a.CompletedAt.In(e.loc).After(dayEnd))
			if openAsOfDay {
				ds.OutstandingSignal++
			}
		}
	}

	numerator := ds.SignalCompleted + ds.Rejected
	denominator := ds.SignalCompleted + ds.NoiseCompleted + ds.Rejected + ds.OutstandingSignal
	if denominator > 0 {
		ds.Score = float64(numerator) / float64(denominator) * 100
	}
	ds.Active = ds.SignalCompleted+ds.NoiseCompleted+ds.Rejected > 0
	return ds
}

// Today computes the live stats for the calendar day containing now.
func (e *Engine) Today(activities []models.Activity, now time.Time) models.DailyStats {
	ds := e.ScoreForDay(activities, now)
	return models.DailyStats{
		SignalCompleted: ds.SignalCompleted,
		NoiseCompleted:  ds.NoiseCompleted,
		TotalCompleted:  ds.SignalCompleted + ds.NoiseCompleted,
		Rejected:        ds.Rejected,
		Score:           ds.Score,
	}
}

// Week scores each day of the Monday-anchored week containing now. The
// average covers only days with any completion or rejection; a week with no
// active days averages 0.
func (e *Engine) Week(activities []models.Activity, now time.Time) models.WeekSummary {
	monday := timeutil.MondayOf(now.In(e.loc))

	ws := models.WeekSummary{Monday: monday}
	var sum float64
	for i := 0; i < 7; i++ {
		ds := e.ScoreForDay(activities, monday.AddDate(0, 0, i))
		ws.Days[i] = ds
		ws.SignalCompleted += ds.SignalCompleted
		ws.NoiseCompleted += ds.NoiseCompleted
		ws.Rejected += ds.Rejected
		if ds.Active {
			ws.ActiveDays++
			sum += ds.Score
		}
	}
	if ws.ActiveDays > 0 {
		ws.Average = sum / float64(ws.ActiveDays)
	}
	return ws
}

// Streak returns the consecutive-day streak as displayed to the user: the
// count of days strictly before today with a nonzero score, walking backward
// from yesterday, plus one credit for today when that count is nonzero. A
// zero-score yesterday breaks the chain regardless of older history.
func (e *Engine) Streak(activities []models.Activity, now time.Time) int {
	past := 0
	day := now.In(e.loc).AddDate(0, 0, -1)
	for {
		if e.ScoreForDay(activities, day).Score <= 0 {
			break
		}
		past++
		day = day.AddDate(0, 0, -1)
	}
	if past == 0 {
		return 0
	}
	return past + 1
}

// HasActivityBefore reports whether any disciplined outcome exists strictly
// before the given day start: a Signal completion (by current category) or any
// rejection. Current category stands in for category-at-the-time; the full
// history is not recorded.
func (e *Engine) HasActivityBefore(activities []models.Activity, dayStart time.Time) bool {
	for _, a := range activities {
		if a.CompletedAt != nil && a.Category == models.CategorySignal && a.CompletedAt.In(e.loc).Before(dayStart) {
			return true
		}
		if a.RejectedAt != nil && a.RejectedAt.In(e.loc).Before(dayStart) {
			return true
		}
	}
	return false
}
