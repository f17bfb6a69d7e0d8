// Package notify holds the stateful notification logic: the edge-triggered
// score-threshold celebration and the once-per-day session notices. The
// presentation layer plugs in through two small ports, Emitter and DayGate, so
// the core never depends on a particular output or storage technology.
package notify

import (
	"time"

	"github.com/julianstephens/fozzle/internal/constants"
	"github.com/julianstephens/fozzle/internal/logger"
	"github.com/julianstephens/fozzle/internal/metrics"
	"github.com/julianstephens/fozzle/internal/models"
	"github.com/julianstephens/fozzle/internal/timeutil"
)

// Signal names the one-shot events the core emits to the presentation layer.
type Signal string

const (
	SignalCelebration  Signal = "celebration"
	SignalWelcomeBack  Signal = "welcome-back"
	SignalMissedReturn Signal = "missed-return"
)

// Payload carries the display data for a signal. Fields are populated per
// kind: celebration fills the score/completion fields, welcome-back fills
// streak and weekly average.
type Payload struct {
	Score           float64
	SignalCompleted int
	TotalCompleted  int
	Streak          int
	WeeklyAverage   float64
}

// Emitter receives one-shot signals. Implementations must not block.
type Emitter interface {
	Emit(sig Signal, payload Payload)
}

// DayGate is the per-kind once-per-day idempotency gate. Implementations back
// it with whatever session storage is available.
type DayGate interface {
	WasShownToday(kind constants.NoticeKind, today string) (bool, error)
	MarkShownToday(kind constants.NoticeKind, today string) error
	Clear(kind constants.NoticeKind) error
}

// ThresholdTracker fires the celebration signal when today's score crosses
// the threshold upward. The check is edge-triggered: a score that stays at or
// above the threshold across recomputes fires only on the initial crossing.
type ThresholdTracker struct {
	emitter  Emitter
	previous float64
}

func NewThresholdTracker(emitter Emitter) *ThresholdTracker {
	return &ThresholdTracker{emitter: emitter}
}

// Observe records a recompute of today's stats. previous is updated on every
// call, whether or not the threshold was crossed.
func (t *ThresholdTracker) Observe(stats models.DailyStats) {
	crossed := t.previous < constants.ScoreThreshold && stats.Score >= constants.ScoreThreshold
	prev := t.previous
	t.previous = stats.Score

	if crossed && stats.TotalCompleted > 0 {
		logger.Debug("score threshold crossed", "from", prev, "to", stats.Score)
		t.emitter.Emit(SignalCelebration, Payload{
			Score:           stats.Score,
			SignalCompleted: stats.SignalCompleted,
			TotalCompleted:  stats.TotalCompleted,
		})
	}
}

// Reset clears the tracked score so the next crossing fires again.
func (t *ThresholdTracker) Reset() {
	t.previous = 0
}

// SessionNotifier decides, once per session start, whether to surface a
// welcome-back or missed-return notice based on yesterday's score.
type SessionNotifier struct {
	engine  *metrics.Engine
	gate    DayGate
	emitter Emitter
}

func NewSessionNotifier(engine *metrics.Engine, gate DayGate, emitter Emitter) *SessionNotifier {
	return &SessionNotifier{engine: engine, gate: gate, emitter: emitter}
}

// Run evaluates the daily notice decision for the session starting at now.
// Rules, in order, each gated to at most one showing per calendar day per kind:
//  1. yesterday scored > 0: welcome back, with streak and weekly average
//  2. yesterday scored 0 but older history exists: missed return
//  3. otherwise nothing
func (n *SessionNotifier) Run(activities []models.Activity, now time.Time) error {
	today := timeutil.DayKey(now)
	yesterday := now.AddDate(0, 0, -1)
	yesterdayScore := n.engine.ScoreForDay(activities, yesterday).Score

	if yesterdayScore > 0 {
		shown, err := n.gate.WasShownToday(constants.NoticeWelcomeBack, today)
		if err != nil {
			return err
		}
		if shown {
			return nil
		}
		n.emitter.Emit(SignalWelcomeBack, Payload{
			Streak:        n.engine.Streak(activities, now),
			WeeklyAverage: n.engine.Week(activities, now).Average,
		})
		return n.gate.MarkShownToday(constants.NoticeWelcomeBack, today)
	}

	yesterdayStart := timeutil.StartOfDay(yesterday)
	if !n.engine.HasActivityBefore(activities, yesterdayStart) {
		return nil
	}

	shown, err := n.gate.WasShownToday(constants.NoticeMissedReturn, today)
	if err != nil {
		return err
	}
	if shown {
		return nil
	}
	n.emitter.Emit(SignalMissedReturn, Payload{})
	return n.gate.MarkShownToday(constants.NoticeMissedReturn, today)
}

// ForceWelcome emits the welcome-back notice regardless of scores or the gate.
// Debug affordance only: it neither consults nor marks the gate, and never
// touches the score computation.
func (n *SessionNotifier) ForceWelcome(activities []models.Activity, now time.Time) {
	n.emitter.Emit(SignalWelcomeBack, Payload{
		Streak:        n.engine.Streak(activities, now),
		WeeklyAverage: n.engine.Week(activities, now).Average,
	})
}

// ClearGate clears both notice kinds so the next Run re-evaluates them.
func (n *SessionNotifier) ClearGate() error {
	if err := n.gate.Clear(constants.NoticeWelcomeBack); err != nil {
		return err
	}
	return n.gate.Clear(constants.NoticeMissedReturn)
}
