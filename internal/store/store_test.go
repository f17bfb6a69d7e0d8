package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "github.com/julianstephens/fozzle/internal/errors"
	"github.com/julianstephens/fozzle/internal/models"
	"github.com/julianstephens/fozzle/internal/notify"
)

// fakeProvider is an in-memory Provider with per-method failure injection.
type fakeProvider struct {
	activities map[string]models.Activity
	ideas      map[string]models.Idea
	settings   models.Settings

	failCreate   bool
	failUpdate   bool
	failList     bool
	failSettings bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		activities: make(map[string]models.Activity),
		ideas:      make(map[string]models.Idea),
		settings: models.Settings{
			Timezone:             "UTC",
			DailyGoal:            10,
			NotificationsEnabled: true,
		},
	}
}

var errInjected = errors.New("injected backend failure")

func (p *fakeProvider) Init() error           { return nil }
func (p *fakeProvider) Load() error           { return nil }
func (p *fakeProvider) Close() error          { return nil }
func (p *fakeProvider) GetConfigPath() string { return "fake" }

func (p *fakeProvider) GetSettings() (models.Settings, error) {
	if p.failSettings {
		return models.Settings{}, errInjected
	}
	return p.settings, nil
}

func (p *fakeProvider) SaveSettings(s models.Settings) error {
	if p.failSettings {
		return errInjected
	}
	p.settings = s
	return nil
}

func (p *fakeProvider) ListActivities() ([]models.Activity, error) {
	if p.failList {
		return nil, errInjected
	}
	out := make([]models.Activity, 0, len(p.activities))
	for _, a := range p.activities {
		out = append(out, a)
	}
	return out, nil
}

func (p *fakeProvider) CreateActivity(a models.Activity) error {
	if p.failCreate {
		return errInjected
	}
	p.activities[a.ID] = a
	return nil
}

func (p *fakeProvider) UpdateActivity(a models.Activity) error {
	if p.failUpdate {
		return errInjected
	}
	if _, ok := p.activities[a.ID]; !ok {
		return fmt.Errorf("activity %s not found", a.ID)
	}
	p.activities[a.ID] = a
	return nil
}

func (p *fakeProvider) DeleteActivity(id string) error {
	delete(p.activities, id)
	return nil
}

func (p *fakeProvider) ListIdeas() ([]models.Idea, error) {
	if p.failList {
		return nil, errInjected
	}
	out := make([]models.Idea, 0, len(p.ideas))
	for _, i := range p.ideas {
		out = append(out, i)
	}
	return out, nil
}

func (p *fakeProvider) CreateIdea(i models.Idea) error {
	if p.failCreate {
		return errInjected
	}
	p.ideas[i.ID] = i
	return nil
}

func (p *fakeProvider) UpdateIdea(i models.Idea) error {
	if p.failUpdate {
		return errInjected
	}
	p.ideas[i.ID] = i
	return nil
}

func (p *fakeProvider) DeleteIdea(id string) error {
	delete(p.ideas, id)
	return nil
}

type recordingEmitter struct {
	signals []notify.Signal
}

func (e *recordingEmitter) Emit(sig notify.Signal, _ notify.Payload) {
	e.signals = append(e.signals, sig)
}

var testNow = time.Date(2025, 6, 11, 15, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, provider *fakeProvider) (*Store, *recordingEmitter) {
	t.Helper()
	emitter := &recordingEmitter{}
	s := New(provider, emitter, WithClock(func() time.Time { return testNow }))
	if err := s.Load(); err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	return s, emitter
}

func TestCreateActivityOrdering(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	first, err := s.CreateActivity("write report", "", models.CategorySignal, models.PriorityWork)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}
	second, err := s.CreateActivity("review notes", "", models.CategorySignal, models.PriorityWork)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}
	noise, err := s.CreateActivity("scroll feeds", "", models.CategoryNoise, models.PriorityHome)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}

	byID := make(map[string]models.Activity)
	for _, a := range s.Activities() {
		byID[a.ID] = a
	}
	if got := byID[second.ID].Order; got != 0 {
		t.Errorf("newest signal Order = %d, want 0", got)
	}
	if got := byID[first.ID].Order; got != 1 {
		t.Errorf("shifted signal Order = %d, want 1", got)
	}
	if got := byID[noise.ID].Order; got != 0 {
		t.Errorf("noise Order = %d, want 0 (separate column)", got)
	}
}

func TestCreateActivityEmptyTitle(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	_, err := s.CreateActivity("   ", "", models.CategorySignal, models.PriorityWork)
	if !apperrors.IsValidation(err) {
		t.Errorf("CreateActivity(blank title) = %v, want ValidationError", err)
	}
	if n := len(s.Activities()); n != 0 {
		t.Errorf("len(Activities()) = %d, want 0", n)
	}
}

func TestCompleteRejectMutualExclusion(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	a, err := s.CreateActivity("check socials", "", models.CategoryNoise, models.PriorityHome)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}

	rejected, err := s.ToggleReject(a.ID)
	if err != nil {
		t.Fatalf("ToggleReject() = %v, want nil", err)
	}
	if !rejected.Rejected || rejected.RejectedAt == nil {
		t.Errorf("after reject: Rejected = %v, RejectedAt = %v", rejected.Rejected, rejected.RejectedAt)
	}

	completed, err := s.ToggleComplete(a.ID)
	if err != nil {
		t.Fatalf("ToggleComplete() = %v, want nil", err)
	}
	if !completed.Completed || completed.Rejected {
		t.Errorf("after complete: Completed = %v, Rejected = %v, want true, false", completed.Completed, completed.Rejected)
	}
	if completed.RejectedAt != nil {
		t.Errorf("after complete: RejectedAt = %v, want nil", completed.RejectedAt)
	}

	rejected, err = s.ToggleReject(a.ID)
	if err != nil {
		t.Fatalf("ToggleReject() = %v, want nil", err)
	}
	if !rejected.Rejected || rejected.Completed {
		t.Errorf("after re-reject: Rejected = %v, Completed = %v, want true, false", rejected.Rejected, rejected.Completed)
	}
	if rejected.CompletedAt != nil {
		t.Errorf("after re-reject: CompletedAt = %v, want nil", rejected.CompletedAt)
	}
}

func TestRejectSignalActivity(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	a, err := s.CreateActivity("deep work", "", models.CategorySignal, models.PriorityWork)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}

	_, err = s.ToggleReject(a.ID)
	if !apperrors.IsValidation(err) {
		t.Errorf("ToggleReject(signal) = %v, want ValidationError", err)
	}

	got := s.Activities()[0]
	if got.Rejected || got.RejectedAt != nil {
		t.Errorf("signal activity mutated by rejected attempt: Rejected = %v, RejectedAt = %v", got.Rejected, got.RejectedAt)
	}
}

func TestMoveCategoryClearsRejection(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	a, err := s.CreateActivity("tidy desk", "", models.CategoryNoise, models.PriorityHome)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}
	if _, err := s.ToggleReject(a.ID); err != nil {
		t.Fatalf("ToggleReject() = %v, want nil", err)
	}

	moved, err := s.MoveCategory(a.ID)
	if err != nil {
		t.Fatalf("MoveCategory() = %v, want nil", err)
	}
	if moved.Category != models.CategorySignal {
		t.Errorf("Category = %v, want %v", moved.Category, models.CategorySignal)
	}
	if moved.Rejected || moved.RejectedAt != nil {
		t.Errorf("rejection survived the move: Rejected = %v, RejectedAt = %v", moved.Rejected, moved.RejectedAt)
	}
	if moved.CategoryChangedAt == nil || !moved.CategoryChangedAt.Equal(testNow) {
		t.Errorf("CategoryChangedAt = %v, want %v", moved.CategoryChangedAt, testNow)
	}
	if moved.Order != 0 {
		t.Errorf("Order = %d, want 0 (top of destination)", moved.Order)
	}
}

func TestReorderDensity(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	var ids []string
	for _, title := range []string{"a", "b", "c", "d"} {
		a, err := s.CreateActivity(title, "", models.CategorySignal, models.PriorityWork)
		if err != nil {
			t.Fatalf("CreateActivity() = %v, want nil", err)
		}
		ids = append(ids, a.ID)
	}
	// Creation order stacks newest on top: current column is d, c, b, a.

	// Partial reorder listing only two ids, plus one unknown id to be ignored.
	if err := s.Reorder(models.CategorySignal, []string{ids[0], "missing", ids[1]}); err != nil {
		t.Fatalf("Reorder() = %v, want nil", err)
	}

	column := s.ActivitiesByCategory(models.CategorySignal)
	if len(column) != 4 {
		t.Fatalf("len(column) = %d, want 4", len(column))
	}
	wantTitles := []string{"a", "b", "d", "c"}
	for i, want := range wantTitles {
		if column[i].Title != want {
			t.Errorf("column[%d].Title = %q, want %q", i, column[i].Title, want)
		}
		if column[i].Order != i {
			t.Errorf("column[%d].Order = %d, want %d (dense)", i, column[i].Order, i)
		}
	}
}

func TestDeleteActivityClosesGap(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		a, err := s.CreateActivity(title, "", models.CategorySignal, models.PriorityWork)
		if err != nil {
			t.Fatalf("CreateActivity() = %v, want nil", err)
		}
		ids = append(ids, a.ID)
	}

	// Column is c(0), b(1), a(2); delete the middle.
	if err := s.DeleteActivity(ids[1]); err != nil {
		t.Fatalf("DeleteActivity() = %v, want nil", err)
	}

	column := s.ActivitiesByCategory(models.CategorySignal)
	if len(column) != 2 {
		t.Fatalf("len(column) = %d, want 2", len(column))
	}
	for i := range column {
		if column[i].Order != i {
			t.Errorf("column[%d].Order = %d, want %d", i, column[i].Order, i)
		}
	}
}

func TestSyncFailureRollsBack(t *testing.T) {
	provider := newFakeProvider()
	s, _ := newTestStore(t, provider)

	a, err := s.CreateActivity("focus block", "", models.CategorySignal, models.PriorityWork)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}

	provider.failUpdate = true
	_, err = s.ToggleComplete(a.ID)
	if !apperrors.IsSync(err) {
		t.Fatalf("ToggleComplete() with failing backend = %v, want SyncError", err)
	}

	got := s.Activities()[0]
	if got.Completed || got.CompletedAt != nil {
		t.Errorf("state not rolled back: Completed = %v, CompletedAt = %v", got.Completed, got.CompletedAt)
	}
	if s.Stats().TotalCompleted != 0 {
		t.Errorf("Stats().TotalCompleted = %d, want 0 after rollback", s.Stats().TotalCompleted)
	}
}

func TestCreateSyncFailureRollsBack(t *testing.T) {
	provider := newFakeProvider()
	s, _ := newTestStore(t, provider)

	provider.failCreate = true
	_, err := s.CreateActivity("doomed", "", models.CategorySignal, models.PriorityWork)
	if !apperrors.IsSync(err) {
		t.Fatalf("CreateActivity() with failing backend = %v, want SyncError", err)
	}
	if n := len(s.Activities()); n != 0 {
		t.Errorf("len(Activities()) = %d, want 0 after rollback", n)
	}
}

func TestCelebrationFiresOnceOnCrossing(t *testing.T) {
	s, emitter := newTestStore(t, newFakeProvider())

	a, err := s.CreateActivity("ship feature", "", models.CategorySignal, models.PriorityWork)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}
	if _, err := s.ToggleComplete(a.ID); err != nil {
		t.Fatalf("ToggleComplete() = %v, want nil", err)
	}

	celebrations := 0
	for _, sig := range emitter.signals {
		if sig == notify.SignalCelebration {
			celebrations++
		}
	}
	if celebrations != 1 {
		t.Errorf("celebration count = %d, want 1 (100%% score crosses once)", celebrations)
	}

	// Further mutations that keep the score at 100 must not re-fire.
	if _, err := s.AddIdea("someday", ""); err != nil {
		t.Fatalf("AddIdea() = %v, want nil", err)
	}

	celebrations = 0
	for _, sig := range emitter.signals {
		if sig == notify.SignalCelebration {
			celebrations++
		}
	}
	if celebrations != 1 {
		t.Errorf("celebration count after sustained score = %d, want 1", celebrations)
	}
}

func TestPromoteIdea(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	existing, err := s.CreateActivity("current focus", "", models.CategorySignal, models.PriorityWork)
	if err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}

	idea, err := s.AddIdea("learn sketching", "weekend project")
	if err != nil {
		t.Fatalf("AddIdea() = %v, want nil", err)
	}

	promoted, err := s.PromoteIdea(idea.ID, models.CategorySignal, models.PriorityHome)
	if err != nil {
		t.Fatalf("PromoteIdea() = %v, want nil", err)
	}
	if promoted.Category != models.CategorySignal {
		t.Errorf("Category = %v, want %v", promoted.Category, models.CategorySignal)
	}
	if promoted.Title != "learn sketching" || promoted.Description != "weekend project" {
		t.Errorf("promoted activity = %q/%q, want idea's title and description", promoted.Title, promoted.Description)
	}
	if promoted.Order != 0 {
		t.Errorf("Order = %d, want 0 (top of signal column)", promoted.Order)
	}

	byID := make(map[string]models.Activity)
	for _, a := range s.Activities() {
		byID[a.ID] = a
	}
	if got := byID[existing.ID].Order; got != 1 {
		t.Errorf("existing signal Order = %d, want 1 after promotion", got)
	}
	if got := s.Ideas()[0]; !got.Promoted {
		t.Errorf("idea Promoted = %v, want true", got.Promoted)
	}

	// Promoting again is a silent no-op.
	again, err := s.PromoteIdea(idea.ID, models.CategorySignal, models.PriorityHome)
	if err != nil {
		t.Fatalf("PromoteIdea(again) = %v, want nil", err)
	}
	if again.ID != "" {
		t.Errorf("second promotion created activity %q, want none", again.ID)
	}
	if n := len(s.Activities()); n != 2 {
		t.Errorf("len(Activities()) = %d, want 2 after repeated promotion", n)
	}
}

func TestLoadFallback(t *testing.T) {
	provider := newFakeProvider()
	provider.failList = true
	provider.failSettings = true

	emitter := &recordingEmitter{}
	s := New(provider, emitter, WithClock(func() time.Time { return testNow }))

	err := s.Load()
	var le *apperrors.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Load() = %v, want LoadError", err)
	}

	if n := len(s.Activities()); n != 0 {
		t.Errorf("len(Activities()) = %d, want 0", n)
	}
	if got := s.Settings().DailyGoal; got != 10 {
		t.Errorf("Settings().DailyGoal = %d, want default 10", got)
	}
	if got := s.Stats().Score; got != 0 {
		t.Errorf("Stats().Score = %v, want 0", got)
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	err := s.UpdateSettings(models.Settings{Timezone: "Not/AZone", DailyGoal: 5, NotificationsEnabled: true})
	if !apperrors.IsValidation(err) {
		t.Errorf("UpdateSettings(bad timezone) = %v, want ValidationError", err)
	}

	err = s.UpdateSettings(models.Settings{Timezone: "UTC", DailyGoal: 0, NotificationsEnabled: true})
	if !apperrors.IsValidation(err) {
		t.Errorf("UpdateSettings(goal 0) = %v, want ValidationError", err)
	}

	err = s.UpdateSettings(models.Settings{Timezone: "America/New_York", DailyGoal: 5, NotificationsEnabled: false})
	if err != nil {
		t.Errorf("UpdateSettings(valid) = %v, want nil", err)
	}
	if got := s.Settings().DailyGoal; got != 5 {
		t.Errorf("Settings().DailyGoal = %d, want 5", got)
	}
}

func TestReset(t *testing.T) {
	s, _ := newTestStore(t, newFakeProvider())

	if _, err := s.CreateActivity("one", "", models.CategorySignal, models.PriorityWork); err != nil {
		t.Fatalf("CreateActivity() = %v, want nil", err)
	}
	if _, err := s.AddIdea("an idea", ""); err != nil {
		t.Fatalf("AddIdea() = %v, want nil", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() = %v, want nil", err)
	}
	if n := len(s.Activities()); n != 0 {
		t.Errorf("len(Activities()) = %d, want 0", n)
	}
	if n := len(s.Ideas()); n != 0 {
		t.Errorf("len(Ideas()) = %d, want 0", n)
	}
}
