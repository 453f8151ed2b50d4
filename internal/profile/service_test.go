package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hartmut/reprise/internal/lifecycle"
	"github.com/hartmut/reprise/internal/outcome"
	"github.com/hartmut/reprise/internal/section"
	"github.com/hartmut/reprise/internal/store"
)

var testNow = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

type memSnapshotRepo struct {
	saved    []*store.Snapshot
	pruned   int
	failures int // fail this many saves with a capacity error
}

func (m *memSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if m.failures > 0 {
		m.failures--
		return &store.CapacityError{Err: errors.New("database or disk is full")}
	}
	m.saved = append(m.saved, snap)
	return nil
}

func (m *memSnapshotRepo) Latest(_ context.Context, profileID string) (*store.Snapshot, error) {
	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].ProfileID == profileID {
			return m.saved[i], nil
		}
	}
	return nil, nil
}

func (m *memSnapshotRepo) Prune(_ context.Context, _ string, _ int) error {
	m.pruned++
	return nil
}

type memEventRepo struct {
	practice  []store.PracticeEventData
	lifecycle []store.LifecycleEventData
	deleted   []int
	nextID    int
}

func (m *memEventRepo) AppendPracticeEvent(_ context.Context, data store.PracticeEventData) (int, error) {
	m.nextID++
	m.practice = append(m.practice, data)
	return m.nextID, nil
}

func (m *memEventRepo) SoftDeletePracticeEvent(_ context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memEventRepo) AppendLifecycleEvent(_ context.Context, data store.LifecycleEventData) error {
	m.lifecycle = append(m.lifecycle, data)
	return nil
}

func (m *memEventRepo) RecentOutcomes(_ context.Context, _ string, _ int) ([]store.PracticeEventRecord, error) {
	return nil, nil
}

type memSessionRepo struct {
	records map[string]store.ScheduledSessionRecord
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{records: make(map[string]store.ScheduledSessionRecord)}
}

func (m *memSessionRepo) GetAllPending(_ context.Context, sectionID string) ([]store.ScheduledSessionRecord, error) {
	var out []store.ScheduledSessionRecord
	for _, rec := range m.records {
		if rec.SectionID == sectionID && rec.Status == "Planned" {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memSessionRepo) Add(_ context.Context, rec store.ScheduledSessionRecord) error {
	m.records[rec.SessionID] = rec
	return nil
}

func (m *memSessionRepo) Remove(_ context.Context, sessionID string) error {
	delete(m.records, sessionID)
	return nil
}

func (m *memSessionRepo) MarkCompleted(_ context.Context, sessionID string) error {
	rec, ok := m.records[sessionID]
	if !ok {
		return errors.New("not found")
	}
	rec.Status = "Completed"
	m.records[sessionID] = rec
	return nil
}

type fixture struct {
	svc       *Service
	snapshots *memSnapshotRepo
	events    *memEventRepo
	sessions  *memSessionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		snapshots: &memSnapshotRepo{},
		events:    &memEventRepo{},
		sessions:  newMemSessionRepo(),
	}
	f.svc = NewService(Options{
		ProfileID: "default",
		Snapshots: f.snapshots,
		Events:    f.events,
		Sessions:  f.sessions,
		Clock:     func() time.Time { return testNow },
	})

	piece := &section.Piece{
		ID:    "piece-1",
		Title: "Nocturne",
		Sections: []*section.Section{
			section.New("sec-1", "piece-1", section.Average),
			section.New("sec-2", "piece-1", section.Difficult),
		},
	}
	if err := f.svc.AddPiece(context.Background(), piece); err != nil {
		t.Fatalf("AddPiece: %v", err)
	}
	return f
}

func goodOutcome(sectionID string, date time.Time) outcome.Outcome {
	return outcome.Outcome{
		SectionID:   sectionID,
		Date:        date,
		Performance: outcome.Good,
		Repetitions: 3,
	}
}

func TestRecordSessionSchedulesReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", testNow))
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	if res.Score != 7.5 {
		t.Errorf("Score = %v, want 7.5", res.Score)
	}
	if res.Tau <= 0 {
		t.Errorf("Tau = %v, want positive", res.Tau)
	}
	if res.IntervalDays < 1 || res.IntervalDays > 365 {
		t.Errorf("IntervalDays = %d, want within [1, 365]", res.IntervalDays)
	}

	sec := f.svc.Section("sec-1")
	if sec.NextReviewDate == nil {
		t.Fatal("next review not set")
	}
	wantNext := testNow.AddDate(0, 0, res.IntervalDays)
	if !sec.NextReviewDate.Equal(wantNext) {
		t.Errorf("next review = %v, want %v", sec.NextReviewDate, wantNext)
	}
	if sec.LastPracticeDate == nil || !sec.LastPracticeDate.Equal(testNow) {
		t.Errorf("last practice = %v, want %v", sec.LastPracticeDate, testNow)
	}
}

func TestRecordSessionAppendsEventAndSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := len(f.snapshots.saved)

	if _, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", testNow)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	if len(f.events.practice) != 1 {
		t.Fatalf("got %d practice events, want 1", len(f.events.practice))
	}
	ev := f.events.practice[0]
	if ev.SectionID != "sec-1" || ev.PieceID != "piece-1" || ev.Performance != "Good" {
		t.Errorf("unexpected event %+v", ev)
	}
	if len(f.snapshots.saved) != before+1 {
		t.Errorf("got %d new snapshots, want 1", len(f.snapshots.saved)-before)
	}
}

func TestRecordSessionReplacesPendingSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", testNow)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	later := testNow.AddDate(0, 0, 2)
	if _, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", later)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	pending, _ := f.sessions.GetAllPending(ctx, "sec-1")
	if len(pending) != 1 {
		t.Fatalf("got %d pending sessions, want exactly 1", len(pending))
	}
	if pending[0].Tau <= 0 {
		t.Errorf("pending session tau = %v, want positive", pending[0].Tau)
	}
}

func TestRecordSessionCompletesDueSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", testNow)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	pending, _ := f.sessions.GetAllPending(ctx, "sec-1")
	if len(pending) != 1 {
		t.Fatalf("got %d pending sessions, want 1", len(pending))
	}
	firstID := pending[0].SessionID

	// Practice again after the planned date: the entry was fulfilled.
	after := pending[0].ScheduledDate.AddDate(0, 0, 1)
	if _, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", after)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	rec, ok := f.sessions.records[firstID]
	if !ok {
		t.Fatal("fulfilled session was removed instead of completed")
	}
	if rec.Status != "Completed" {
		t.Errorf("status = %s, want Completed", rec.Status)
	}
}

func TestRecordSessionInactiveNotRescheduled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Transition(ctx, "sec-1", section.Inactive); err != nil {
		t.Fatalf("Transition: %v", err)
	}

	res, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", testNow))
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	sec := f.svc.Section("sec-1")
	if sec.NextReviewDate != nil {
		t.Errorf("inactive section got next review %v, want none", sec.NextReviewDate)
	}
	pending, _ := f.sessions.GetAllPending(ctx, "sec-1")
	if len(pending) != 0 {
		t.Errorf("got %d pending sessions for inactive section, want 0", len(pending))
	}
	if res.IntervalDays != 0 || !res.NextReview.IsZero() {
		t.Errorf("result carries a schedule: interval %d, next %v", res.IntervalDays, res.NextReview)
	}

	// Memory models still learn from the session.
	stats := f.svc.SectionStats("sec-1", testNow)
	if stats.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", stats.ReviewCount)
	}
	if len(f.events.practice) != 1 {
		t.Errorf("got %d practice events, want 1", len(f.events.practice))
	}
}

func TestRecordSessionMaintenanceKeepsFixedInterval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Transition(ctx, "sec-1", section.Maintenance); err != nil {
		t.Fatalf("Transition: %v", err)
	}

	// A poor outcome would shrink a curve-derived interval well below the
	// maintenance floor.
	o := goodOutcome("sec-1", testNow)
	o.Performance = outcome.Poor
	res, err := f.svc.RecordSession(ctx, o)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	if res.IntervalDays < 7 {
		t.Errorf("interval = %d, want at least the 7-day maintenance floor", res.IntervalDays)
	}
	if res.Tau != 0 {
		t.Errorf("tau = %v, want 0 for a policy-fixed interval", res.Tau)
	}
	wantNext := testNow.AddDate(0, 0, res.IntervalDays)
	sec := f.svc.Section("sec-1")
	if sec.NextReviewDate == nil || !sec.NextReviewDate.Equal(wantNext) {
		t.Errorf("next review = %v, want %v", sec.NextReviewDate, wantNext)
	}

	pending, _ := f.sessions.GetAllPending(ctx, "sec-1")
	if len(pending) != 1 {
		t.Fatalf("got %d pending sessions, want 1", len(pending))
	}
	if pending[0].Tau != 0 {
		t.Errorf("pending session tau = %v, want 0", pending[0].Tau)
	}
}

func TestRecordSessionDefaultsZeroDate(t *testing.T) {
	f := newFixture(t)

	o := goodOutcome("sec-1", time.Time{})
	if _, err := f.svc.RecordSession(context.Background(), o); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	stats := f.svc.SectionStats("sec-1", testNow)
	if stats.DaysSinceLastReview != 0 {
		t.Errorf("days since last review = %v, want 0 (review stamped at the clock time)", stats.DaysSinceLastReview)
	}
	sec := f.svc.Section("sec-1")
	if sec.LastPracticeDate == nil || !sec.LastPracticeDate.Equal(testNow) {
		t.Errorf("last practice = %v, want %v", sec.LastPracticeDate, testNow)
	}
}

func TestRecordSessionUnknownSection(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RecordSession(context.Background(), goodOutcome("missing", testNow))
	if !errors.Is(err, section.ErrInvalidSection) {
		t.Errorf("err = %v, want ErrInvalidSection", err)
	}
	if len(f.events.practice) != 0 {
		t.Error("event appended for unknown section")
	}
}

func TestRecordSessionInvalidPerformance(t *testing.T) {
	f := newFixture(t)

	o := goodOutcome("sec-1", testNow)
	o.Performance = outcome.Performance(99)
	_, err := f.svc.RecordSession(context.Background(), o)
	if !errors.Is(err, outcome.ErrInvalidPerformance) {
		t.Errorf("err = %v, want ErrInvalidPerformance", err)
	}
}

func TestRecordSessionStageAdvance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	o := goodOutcome("sec-1", testNow)
	o.Repetitions = section.StageBaselineReps
	res, err := f.svc.RecordSession(ctx, o)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if !res.StageAdvanced {
		t.Error("expected stage to advance at the repetition target")
	}
	sec := f.svc.Section("sec-1")
	if sec.Stage != 1 || sec.CompletedReps != 0 {
		t.Errorf("stage = %d, completed = %d, want 1 and 0", sec.Stage, sec.CompletedReps)
	}
}

func TestPersistCapacityRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// One capacity failure: prune fires and the retry succeeds.
	f.snapshots.failures = 1
	if err := f.svc.Persist(ctx); err != nil {
		t.Fatalf("Persist after single failure: %v", err)
	}
	if f.snapshots.pruned != 1 {
		t.Errorf("pruned %d times, want 1", f.snapshots.pruned)
	}

	// Persistent capacity failure: terminal, user-actionable error.
	f.snapshots.failures = 2
	err := f.svc.Persist(ctx)
	if !errors.Is(err, ErrStorageFull) {
		t.Errorf("err = %v, want ErrStorageFull", err)
	}

	// In-memory state survives the failed save.
	if f.svc.Section("sec-1") == nil {
		t.Error("in-memory state lost after failed persist")
	}
}

func TestLoadRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", testNow)); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	wantNext := *f.svc.Section("sec-1").NextReviewDate
	wantStats := f.svc.SectionStats("sec-1", testNow)

	restored := NewService(Options{
		ProfileID: "default",
		Snapshots: f.snapshots,
		Events:    &memEventRepo{},
		Sessions:  newMemSessionRepo(),
		Clock:     func() time.Time { return testNow },
	})
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	sec := restored.Section("sec-1")
	if sec == nil {
		t.Fatal("section missing after restore")
	}
	if sec.NextReviewDate == nil || !sec.NextReviewDate.Equal(wantNext) {
		t.Errorf("next review = %v, want %v", sec.NextReviewDate, wantNext)
	}
	gotStats := restored.SectionStats("sec-1", testNow)
	if gotStats.ReviewCount != wantStats.ReviewCount {
		t.Errorf("review count = %d, want %d", gotStats.ReviewCount, wantStats.ReviewCount)
	}
	if gotStats.Stability != wantStats.Stability {
		t.Errorf("stability = %v, want %v", gotStats.Stability, wantStats.Stability)
	}
}

func TestLoadEmpty(t *testing.T) {
	svc := NewService(Options{
		ProfileID: "fresh",
		Snapshots: &memSnapshotRepo{},
		Events:    &memEventRepo{},
		Sessions:  newMemSessionRepo(),
	})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load on empty store: %v", err)
	}
	if len(svc.DueSections(testNow)) != 0 {
		t.Error("fresh profile reports due sections")
	}
}

func TestTransitionRecordsLifecycleEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	report, err := f.svc.Transition(ctx, "sec-1", section.Maintenance)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if report.To != section.Maintenance {
		t.Errorf("report.To = %v, want Maintenance", report.To)
	}
	if len(f.events.lifecycle) != 1 {
		t.Fatalf("got %d lifecycle events, want 1", len(f.events.lifecycle))
	}
	ev := f.events.lifecycle[0]
	if ev.FromState != int(section.Active) || ev.ToState != int(section.Maintenance) {
		t.Errorf("event states = %d -> %d, want 0 -> 1", ev.FromState, ev.ToState)
	}
}

func TestBulkLoadSuppressesScheduling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	snapshotsBefore := len(f.snapshots.saved)

	f.svc.SetBulkLoad(true)
	report, err := f.svc.Transition(ctx, "sec-1", section.Maintenance)
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if !report.Suppressed {
		t.Error("report not marked suppressed")
	}
	if f.svc.Section("sec-1").State != section.Maintenance {
		t.Error("state change suppressed along with side effects")
	}
	if len(f.sessions.records) != 0 {
		t.Errorf("got %d session mutations during bulk load, want 0", len(f.sessions.records))
	}
	if len(f.events.lifecycle) != 0 {
		t.Errorf("got %d lifecycle events during bulk load, want 0", len(f.events.lifecycle))
	}
	if len(f.snapshots.saved) != snapshotsBefore {
		t.Errorf("got %d snapshot writes during bulk load, want 0", len(f.snapshots.saved)-snapshotsBefore)
	}
	f.svc.SetBulkLoad(false)
}

func TestDueSectionsOrdering(t *testing.T) {
	f := newFixture(t)
	now := testNow

	a := f.svc.Section("sec-1")
	b := f.svc.Section("sec-2")
	past := now.AddDate(0, 0, -5)
	recent := now.AddDate(0, 0, -1)
	a.SetNextReview(recent, 1)
	b.SetNextReview(past, 1)

	due := f.svc.DueSections(now)
	if len(due) != 2 {
		t.Fatalf("got %d due sections, want 2", len(due))
	}
	if due[0].Section.ID != "sec-2" {
		t.Errorf("first due = %s, want sec-2 (most overdue)", due[0].Section.ID)
	}
	if !due[0].Section.Overdue {
		t.Error("overdue flag not set")
	}
}

func TestDueSectionsSkipsInactive(t *testing.T) {
	f := newFixture(t)
	now := testNow

	sec := f.svc.Section("sec-1")
	sec.SetNextReview(now.AddDate(0, 0, -1), 1)
	sec.State = section.Inactive

	for _, d := range f.svc.DueSections(now) {
		if d.Section.ID == "sec-1" {
			t.Error("inactive section reported due")
		}
	}
}

func TestDeleteOutcome(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.RecordSession(ctx, goodOutcome("sec-1", testNow))
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if err := f.svc.DeleteOutcome(ctx, res.EventID); err != nil {
		t.Fatalf("DeleteOutcome: %v", err)
	}
	if len(f.events.deleted) != 1 || f.events.deleted[0] != res.EventID {
		t.Errorf("deleted = %v, want [%d]", f.events.deleted, res.EventID)
	}
}

func TestLifecycleControllerPersistsThroughService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := len(f.snapshots.saved)

	if _, err := f.svc.Transition(ctx, "sec-1", section.Inactive); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if len(f.snapshots.saved) <= before {
		t.Error("transition did not persist a snapshot")
	}
}

var _ lifecycle.Persister = (*Service)(nil)
var _ lifecycle.PieceResolver = (*Service)(nil)
