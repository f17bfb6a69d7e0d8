package notify

import (
	"testing"
	"time"

	"github.com/julianstephens/fozzle/internal/constants"
	"github.com/julianstephens/fozzle/internal/metrics"
	"github.com/julianstephens/fozzle/internal/models"
)

type recordedSignal struct {
	sig     Signal
	payload Payload
}

type fakeEmitter struct {
	signals []recordedSignal
}

func (e *fakeEmitter) Emit(sig Signal, payload Payload) {
	e.signals = append(e.signals, recordedSignal{sig: sig, payload: payload})
}

func (e *fakeEmitter) count(sig Signal) int {
	n := 0
	for _, s := range e.signals {
		if s.sig == sig {
			n++
		}
	}
	return n
}

type memGate struct {
	shown map[constants.NoticeKind]string
}

func newMemGate() *memGate {
	return &memGate{shown: make(map[constants.NoticeKind]string)}
}

func (g *memGate) WasShownToday(kind constants.NoticeKind, today string) (bool, error) {
	return g.shown[kind] == today, nil
}

func (g *memGate) MarkShownToday(kind constants.NoticeKind, today string) error {
	g.shown[kind] = today
	return nil
}

func (g *memGate) Clear(kind constants.NoticeKind) error {
	delete(g.shown, kind)
	return nil
}

func stats(score float64, completed int) models.DailyStats {
	return models.DailyStats{Score: score, TotalCompleted: completed, SignalCompleted: completed}
}

func TestThresholdTrackerEdgeTrigger(t *testing.T) {
	tests := []struct {
		name      string
		sequence  []models.DailyStats
		wantFires int
	}{
		{
			name:      "crossing fires once",
			sequence:  []models.DailyStats{stats(70, 3), stats(85, 4)},
			wantFires: 1,
		},
		{
			name:      "sustained above threshold does not refire",
			sequence:  []models.DailyStats{stats(70, 3), stats(85, 4), stats(90, 5), stats(100, 6)},
			wantFires: 1,
		},
		{
			name:      "exact threshold counts as crossed",
			sequence:  []models.DailyStats{stats(79.9, 3), stats(80, 4)},
			wantFires: 1,
		},
		{
			name:      "crossing with no completions stays silent",
			sequence:  []models.DailyStats{stats(0, 0), stats(100, 0)},
			wantFires: 0,
		},
		{
			name:      "drop and re-cross fires again",
			sequence:  []models.DailyStats{stats(85, 2), stats(60, 2), stats(85, 3)},
			wantFires: 2,
		},
		{
			name:      "never crossing stays silent",
			sequence:  []models.DailyStats{stats(20, 1), stats(50, 2), stats(79, 3)},
			wantFires: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emitter := &fakeEmitter{}
			tracker := NewThresholdTracker(emitter)
			for _, s := range tt.sequence {
				tracker.Observe(s)
			}
			if got := emitter.count(SignalCelebration); got != tt.wantFires {
				t.Errorf("Observe() fired %d celebrations, want %d", got, tt.wantFires)
			}
		})
	}
}

func TestThresholdTrackerFirstObservationAboveThreshold(t *testing.T) {
	emitter := &fakeEmitter{}
	tracker := NewThresholdTracker(emitter)

	// previous starts at 0, so a first recompute already above the threshold
	// is itself an upward crossing.
	tracker.Observe(stats(100, 1))
	if got := emitter.count(SignalCelebration); got != 1 {
		t.Errorf("Observe() fired %d celebrations, want 1", got)
	}
}

func TestThresholdTrackerReset(t *testing.T) {
	emitter := &fakeEmitter{}
	tracker := NewThresholdTracker(emitter)

	tracker.Observe(stats(85, 2))
	tracker.Reset()
	tracker.Observe(stats(85, 2))
	if got := emitter.count(SignalCelebration); got != 2 {
		t.Errorf("Observe() after Reset() fired %d celebrations, want 2", got)
	}
}

var notifyNow = time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

func completedSignal(daysAgo int) models.Activity {
	at := notifyNow.AddDate(0, 0, -daysAgo)
	return models.Activity{
		ID:          "a",
		Title:       "activity",
		Category:    models.CategorySignal,
		Completed:   true,
		CompletedAt: &at,
		CreatedAt:   at.Add(-time.Hour),
	}
}

func TestSessionNotifierWelcomeBack(t *testing.T) {
	emitter := &fakeEmitter{}
	gate := newMemGate()
	n := NewSessionNotifier(metrics.New(time.UTC), gate, emitter)

	activities := []models.Activity{completedSignal(1), completedSignal(2)}
	if err := n.Run(activities, notifyNow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := emitter.count(SignalWelcomeBack); got != 1 {
		t.Fatalf("Run() emitted %d welcome-back, want 1", got)
	}
	payload := emitter.signals[0].payload
	if payload.Streak != 3 {
		t.Errorf("Run() streak = %d, want 3", payload.Streak)
	}
	if payload.WeeklyAverage != 100 {
		t.Errorf("Run() weeklyAverage = %v, want 100", payload.WeeklyAverage)
	}

	// Second session on the same day is gated.
	if err := n.Run(activities, notifyNow.Add(2*time.Hour)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := emitter.count(SignalWelcomeBack); got != 1 {
		t.Errorf("Run() twice same day emitted %d welcome-back, want 1", got)
	}

	// Next day the gate opens again (with today now active as its yesterday).
	if err := n.Run(append(activities, completedSignal(0)), notifyNow.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := emitter.count(SignalWelcomeBack); got != 2 {
		t.Errorf("Run() next day emitted %d welcome-back total, want 2", got)
	}
}

func TestSessionNotifierMissedReturn(t *testing.T) {
	emitter := &fakeEmitter{}
	gate := newMemGate()
	n := NewSessionNotifier(metrics.New(time.UTC), gate, emitter)

	// History exists before yesterday, but yesterday itself scored 0.
	activities := []models.Activity{completedSignal(3)}
	if err := n.Run(activities, notifyNow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := emitter.count(SignalMissedReturn); got != 1 {
		t.Errorf("Run() emitted %d missed-return, want 1", got)
	}
	if got := emitter.count(SignalWelcomeBack); got != 0 {
		t.Errorf("Run() emitted %d welcome-back, want 0", got)
	}

	// Gated on repeat.
	if err := n.Run(activities, notifyNow.Add(time.Hour)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := emitter.count(SignalMissedReturn); got != 1 {
		t.Errorf("Run() twice same day emitted %d missed-return, want 1", got)
	}
}

func TestSessionNotifierNoHistory(t *testing.T) {
	emitter := &fakeEmitter{}
	n := NewSessionNotifier(metrics.New(time.UTC), newMemGate(), emitter)

	if err := n.Run(nil, notifyNow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(emitter.signals) != 0 {
		t.Errorf("Run() emitted %d signals for empty history, want 0", len(emitter.signals))
	}
}

func TestSessionNotifierWelcomeBackWinsOverMissedReturn(t *testing.T) {
	emitter := &fakeEmitter{}
	n := NewSessionNotifier(metrics.New(time.UTC), newMemGate(), emitter)

	// Yesterday active and older history present: rule 1 short-circuits rule 2.
	activities := []models.Activity{completedSignal(1), completedSignal(4)}
	if err := n.Run(activities, notifyNow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := emitter.count(SignalWelcomeBack); got != 1 {
		t.Errorf("Run() emitted %d welcome-back, want 1", got)
	}
	if got := emitter.count(SignalMissedReturn); got != 0 {
		t.Errorf("Run() emitted %d missed-return, want 0", got)
	}
}

func TestForceWelcomeBypassesGate(t *testing.T) {
	emitter := &fakeEmitter{}
	gate := newMemGate()
	n := NewSessionNotifier(metrics.New(time.UTC), gate, emitter)

	activities := []models.Activity{completedSignal(1)}
	if err := n.Run(activities, notifyNow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	n.ForceWelcome(activities, notifyNow)

	if got := emitter.count(SignalWelcomeBack); got != 2 {
		t.Errorf("ForceWelcome() after gated Run(): %d welcome-back, want 2", got)
	}

	// Forcing must not mark the gate for a kind that has not run yet.
	emitter2 := &fakeEmitter{}
	gate2 := newMemGate()
	n2 := NewSessionNotifier(metrics.New(time.UTC), gate2, emitter2)
	n2.ForceWelcome(activities, notifyNow)
	if err := n2.Run(activities, notifyNow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := emitter2.count(SignalWelcomeBack); got != 2 {
		t.Errorf("Run() after ForceWelcome(): %d welcome-back, want 2 (force must not consume the gate)", got)
	}
}

func TestClearGate(t *testing.T) {
	emitter := &fakeEmitter{}
	gate := newMemGate()
	n := NewSessionNotifier(metrics.New(time.UTC), gate, emitter)

	activities := []models.Activity{completedSignal(1)}
	if err := n.Run(activities, notifyNow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := n.ClearGate(); err != nil {
		t.Fatalf("ClearGate() error = %v", err)
	}
	if err := n.Run(activities, notifyNow); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := emitter.count(SignalWelcomeBack); got != 2 {
		t.Errorf("Run() after ClearGate(): %d welcome-back, want 2", got)
	}
}
