package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hartmut/reprise/internal/adaptive"
	"github.com/hartmut/reprise/internal/curve"
	"github.com/hartmut/reprise/internal/section"
)

var testNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	sessions  map[string]ScheduledSession
	mutations int
	addErr    error
	listErr   error
	removeErr error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]ScheduledSession)}
}

func (m *memSessionStore) GetAllPending(_ context.Context, sectionID string) ([]ScheduledSession, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []ScheduledSession
	for _, s := range m.sessions {
		if s.SectionID == sectionID && s.Status == StatusPlanned {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSessionStore) Add(_ context.Context, s ScheduledSession) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.mutations++
	m.sessions[s.ID] = s
	return nil
}

func (m *memSessionStore) Remove(_ context.Context, id string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.mutations++
	delete(m.sessions, id)
	return nil
}

type stubResolver struct {
	piece *section.Piece
	err   error
}

func (s stubResolver) FindOwningPiece(context.Context, string) (*section.Piece, error) {
	return s.piece, s.err
}

type stubPersister struct {
	calls int
	err   error
}

func (s *stubPersister) Persist(context.Context) error {
	s.calls++
	return s.err
}

type fixture struct {
	controller *Controller
	sessions   *memSessionStore
	persister  *stubPersister
}

func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	sessions := newMemSessionStore()
	persister := &stubPersister{}
	opts := Options{
		Tau:       adaptive.NewCalculator(nil, nil, nil),
		Curve:     curve.New(nil),
		Sessions:  sessions,
		Pieces:    stubResolver{piece: &section.Piece{ID: "piece-1", Title: "Prelude"}},
		Persister: persister,
		Clock:     func() time.Time { return testNow },
	}
	if mutate != nil {
		mutate(&opts)
	}
	return &fixture{
		controller: NewController(opts),
		sessions:   sessions,
		persister:  persister,
	}
}

func activeSection() *section.Section {
	s := section.New("sec-1", "piece-1", section.Average)
	return s
}

func TestTransition_ActiveToMaintenance_EnforcesFloor(t *testing.T) {
	f := newFixture(t, nil)
	sec := activeSection()
	sec.IntervalDays = 3
	sec.Overdue = true

	report := f.controller.Transition(context.Background(), sec, section.Maintenance)

	if sec.State != section.Maintenance {
		t.Fatalf("State = %v, want Maintenance", sec.State)
	}
	if sec.IntervalDays != 7 {
		t.Errorf("IntervalDays = %d, want floor 7", sec.IntervalDays)
	}
	want := testNow.AddDate(0, 0, 7)
	if sec.NextReviewDate == nil || !sec.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", sec.NextReviewDate, want)
	}
	if sec.Overdue {
		t.Error("overdue flag not cleared")
	}
	if !report.OK() {
		t.Errorf("side effects failed: %+v", report.Failed())
	}
}

func TestTransition_MaintenanceKeepsLongerInterval(t *testing.T) {
	f := newFixture(t, nil)
	sec := activeSection()
	sec.IntervalDays = 30

	f.controller.Transition(context.Background(), sec, section.Maintenance)

	if sec.IntervalDays != 30 {
		t.Errorf("IntervalDays = %d, want 30 kept above the floor", sec.IntervalDays)
	}
}

func TestTransition_MaintenanceSessionHasZeroTau(t *testing.T) {
	f := newFixture(t, nil)
	sec := activeSection()

	report := f.controller.Transition(context.Background(), sec, section.Maintenance)

	if report.SessionID == "" {
		t.Fatal("no planned session inserted")
	}
	s := f.sessions.sessions[report.SessionID]
	if s.Tau != 0 {
		t.Errorf("maintenance session tau = %v, want 0", s.Tau)
	}
	if s.Status != StatusPlanned {
		t.Errorf("status = %v, want Planned", s.Status)
	}
}

func TestTransition_ToInactive_ClearsSchedule(t *testing.T) {
	f := newFixture(t, nil)
	sec := activeSection()
	sec.SetNextReview(testNow.AddDate(0, 0, 5), 5)
	sec.Overdue = true

	// Seed two stale pending sessions for the section.
	f.sessions.sessions["a"] = ScheduledSession{ID: "a", SectionID: "sec-1", Status: StatusPlanned}
	f.sessions.sessions["b"] = ScheduledSession{ID: "b", SectionID: "sec-1", Status: StatusPlanned}

	report := f.controller.Transition(context.Background(), sec, section.Inactive)

	if sec.NextReviewDate != nil {
		t.Error("NextReviewDate not cleared")
	}
	if sec.Overdue {
		t.Error("overdue flag not cleared")
	}
	pending, _ := f.sessions.GetAllPending(context.Background(), "sec-1")
	if len(pending) != 0 {
		t.Errorf("%d pending sessions remain, want 0", len(pending))
	}
	if report.SessionID != "" {
		t.Error("inactive transition must not insert a replacement session")
	}
	if f.persister.calls != 1 {
		t.Errorf("persister called %d times, want 1", f.persister.calls)
	}
}

func TestTransition_MaintenanceToActive_Reactivation(t *testing.T) {
	f := newFixture(t, nil)
	sec := activeSection()
	sec.State = section.Maintenance
	sec.CompletedReps = 5
	sec.IntervalDays = 30

	report := f.controller.Transition(context.Background(), sec, section.Active)

	if report.Tau <= 0 {
		t.Fatalf("tau = %v, want positive", report.Tau)
	}
	if report.IntervalDays < 0 || report.IntervalDays > 365 {
		t.Errorf("interval = %d, outside [0, 365]", report.IntervalDays)
	}
	want := testNow.AddDate(0, 0, report.IntervalDays)
	if sec.NextReviewDate == nil || !sec.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", sec.NextReviewDate, want)
	}

	pending, _ := f.sessions.GetAllPending(context.Background(), "sec-1")
	if len(pending) != 1 {
		t.Fatalf("%d pending sessions, want exactly 1", len(pending))
	}
	if !pending[0].ScheduledDate.Equal(want) {
		t.Errorf("session date = %v, want %v", pending[0].ScheduledDate, want)
	}
	if pending[0].Tau != report.Tau {
		t.Errorf("session tau = %v, want %v", pending[0].Tau, report.Tau)
	}
}

func TestTransition_ActiveToActive_IsNoOp(t *testing.T) {
	f := newFixture(t, nil)
	sec := activeSection()
	sec.SetNextReview(testNow.AddDate(0, 0, 4), 4)

	before := *sec.NextReviewDate
	report := f.controller.Transition(context.Background(), sec, section.Active)

	if !sec.NextReviewDate.Equal(before) {
		t.Error("no-op reactivation changed the schedule")
	}
	if f.sessions.mutations != 0 {
		t.Errorf("%d session mutations, want 0", f.sessions.mutations)
	}
	if !report.OK() {
		t.Errorf("unexpected side effect failures: %+v", report.Failed())
	}
}

func TestTransition_ReplacesStalePending(t *testing.T) {
	f := newFixture(t, nil)
	sec := activeSection()
	sec.State = section.Inactive
	f.sessions.sessions["stale"] = ScheduledSession{ID: "stale", SectionID: "sec-1", Status: StatusPlanned}

	f.controller.Transition(context.Background(), sec, section.Active)

	pending, _ := f.sessions.GetAllPending(context.Background(), "sec-1")
	if len(pending) != 1 {
		t.Fatalf("%d pending sessions, want exactly 1 after replacement", len(pending))
	}
	if pending[0].ID == "stale" {
		t.Error("stale pending session survived the transition")
	}
}

func TestTransition_Suppressed_NoSideEffects(t *testing.T) {
	f := newFixture(t, nil)
	f.controller.SetSuppressed(true)

	sec := activeSection()
	sec.State = section.Maintenance
	report := f.controller.Transition(context.Background(), sec, section.Active)

	if !report.Suppressed {
		t.Error("report does not mark suppression")
	}
	if sec.State != section.Active {
		t.Error("suppressed transition must still change state")
	}
	if f.sessions.mutations != 0 {
		t.Errorf("%d session mutations under suppression, want 0", f.sessions.mutations)
	}
	if f.persister.calls != 0 {
		t.Errorf("%d persistence calls under suppression, want 0", f.persister.calls)
	}

	f.controller.SetSuppressed(false)
	if f.controller.Suppressed() {
		t.Error("suppression not cleared")
	}
}

func TestTransition_SideEffectFailureDoesNotAbort(t *testing.T) {
	f := newFixture(t, nil)
	f.sessions.addErr = errors.New("store unavailable")

	sec := activeSection()
	sec.State = section.Maintenance
	report := f.controller.Transition(context.Background(), sec, section.Active)

	if sec.State != section.Active {
		t.Fatal("state change aborted by side-effect failure")
	}
	if report.OK() {
		t.Error("report hides the failed side effect")
	}
	if len(report.Failed()) == 0 {
		t.Error("failed side effects not recorded")
	}
}

func TestTransition_PersistFailureRecorded(t *testing.T) {
	f := newFixture(t, nil)
	f.persister.err = errors.New("disk full")

	sec := activeSection()
	report := f.controller.Transition(context.Background(), sec, section.Maintenance)

	if sec.State != section.Maintenance {
		t.Fatal("state change aborted by persistence failure")
	}
	var found bool
	for _, fx := range report.Failed() {
		if fx.Name == "persist-profile" {
			found = true
		}
	}
	if !found {
		t.Error("persist failure not recorded in report")
	}
}

func TestTransition_OrphanedSectionSkipsPersistence(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Pieces = stubResolver{piece: nil}
	})

	sec := activeSection()
	sec.State = section.Maintenance
	report := f.controller.Transition(context.Background(), sec, section.Active)

	if sec.State != section.Active {
		t.Fatal("orphaned section aborted the transition")
	}
	if f.persister.calls != 0 {
		t.Errorf("persister called %d times for an orphaned section, want 0", f.persister.calls)
	}
	if report.SessionID != "" {
		t.Error("planned session inserted without a resolvable piece")
	}
}
