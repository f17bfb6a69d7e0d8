package models

import "time"

// DailyStats holds today's live counts and score. Derived, never persisted.
type DailyStats struct {
	SignalCompleted int     `json:"signal_completed"`
	NoiseCompleted  int     `json:"noise_completed"`
	TotalCompleted  int     `json:"total_completed"`
	Rejected        int     `json:"rejected"`
	Score           float64 `json:"score"` // 0..100
}

// DayScore is the scored breakdown of a single calendar day.
type DayScore struct {
	Date              time.Time `json:"date"`
	Score             float64   `json:"score"` // 0..100
	SignalCompleted   int       `json:"signal_completed"`
	NoiseCompleted    int       `json:"noise_completed"`
	Rejected          int       `json:"rejected"`
	OutstandingSignal int       `json:"outstanding_signal"`
	// Active reports whether anything was resolved on the day. Inactive days
	// are excluded from the weekly average.
	Active bool `json:"active"`
}

// WeekSummary aggregates the seven days of a Monday-anchored week.
type WeekSummary struct {
	Monday          time.Time   `json:"monday"`
	Days            [7]DayScore `json:"days"`
	Average         float64     `json:"average"` // mean over active days, 0 when none
	ActiveDays      int         `json:"active_days"`
	SignalCompleted int         `json:"signal_completed"`
	NoiseCompleted  int         `json:"noise_completed"`
	Rejected        int         `json:"rejected"`
}
