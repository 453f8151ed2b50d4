package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "default")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot, got %+v", snap)
	}

	first := &Snapshot{
		ProfileID: "default",
		Timestamp: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		Data:      map[string]any{"version": float64(1)},
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := &Snapshot{
		ProfileID: "default",
		Timestamp: time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC),
		Data:      map[string]any{"version": float64(2)},
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Latest(ctx, "default")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.Data["version"] != float64(2) {
		t.Errorf("latest version = %v, want 2", got.Data["version"])
	}

	// Snapshots are per profile.
	other, err := repo.Latest(ctx, "other")
	if err != nil {
		t.Fatalf("Latest(other): %v", err)
	}
	if other != nil {
		t.Errorf("expected nil snapshot for unknown profile, got %+v", other)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		snap := &Snapshot{
			ProfileID: "default",
			Timestamp: base.AddDate(0, 0, i),
			Data:      map[string]any{"i": float64(i)},
		}
		if err := repo.Save(ctx, snap); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "default", 2); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	got, err := repo.Latest(ctx, "default")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got == nil || got.Data["i"] != float64(4) {
		t.Errorf("latest after prune = %+v, want i=4", got)
	}
}

func TestPracticeEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ids := make([]int, 0, 3)
	for _, perf := range []string{"Good", "Poor", "Excellent"} {
		id, err := repo.AppendPracticeEvent(ctx, PracticeEventData{
			ProfileID:   "default",
			SectionID:   "sec-1",
			PieceID:     "piece-1",
			Performance: perf,
			Score:       7.5,
			Repetitions: 6,
		})
		if err != nil {
			t.Fatalf("AppendPracticeEvent: %v", err)
		}
		ids = append(ids, id)
	}

	recent, err := repo.RecentOutcomes(ctx, "sec-1", 10)
	if err != nil {
		t.Fatalf("RecentOutcomes: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(recent))
	}
	// Newest first.
	if recent[0].Performance != "Excellent" {
		t.Errorf("first outcome = %s, want Excellent", recent[0].Performance)
	}

	// Soft delete excludes the record but keeps it in the table.
	if err := repo.SoftDeletePracticeEvent(ctx, ids[1]); err != nil {
		t.Fatalf("SoftDeletePracticeEvent: %v", err)
	}
	recent, err = repo.RecentOutcomes(ctx, "sec-1", 10)
	if err != nil {
		t.Fatalf("RecentOutcomes: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("got %d outcomes after soft delete, want 2", len(recent))
	}
	for _, r := range recent {
		if r.Performance == "Poor" {
			t.Error("soft-deleted outcome still returned")
		}
	}
}

func TestLifecycleEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLifecycleEvent(ctx, LifecycleEventData{
		ProfileID:    "default",
		SectionID:    "sec-1",
		FromState:    1,
		ToState:      0,
		Tau:          12.5,
		IntervalDays: 4,
	})
	if err != nil {
		t.Fatalf("AppendLifecycleEvent: %v", err)
	}
}

func TestScheduledSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScheduledSessionRepo()
	ctx := context.Background()

	rec := ScheduledSessionRecord{
		SessionID:        "11111111-2222-3333-4444-555555555555",
		ProfileID:        "default",
		SectionID:        "sec-1",
		PieceID:          "piece-1",
		ScheduledDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:           "Planned",
		EstimatedMinutes: 15,
		Tau:              9.5,
	}
	if err := repo.Add(ctx, rec); err != nil {
		t.Fatalf("Add: %v", err)
	}

	pending, err := repo.GetAllPending(ctx, "sec-1")
	if err != nil {
		t.Fatalf("GetAllPending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("got %d pending, want 1", len(pending))
	}
	if pending[0].Tau != 9.5 {
		t.Errorf("Tau = %v, want 9.5", pending[0].Tau)
	}

	if err := repo.MarkCompleted(ctx, rec.SessionID); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	pending, err = repo.GetAllPending(ctx, "sec-1")
	if err != nil {
		t.Fatalf("GetAllPending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("got %d pending after completion, want 0", len(pending))
	}

	if err := repo.Remove(ctx, rec.SessionID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := repo.MarkCompleted(ctx, rec.SessionID); err == nil {
		t.Error("expected error completing a removed session")
	}
}

func TestSequenceCounterMonotone(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	prev := int64(-1)
	for i := 0; i < 10; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestCapacityErrorMatches(t *testing.T) {
	err := &CapacityError{Err: errors.New("database or disk is full")}
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Error("CapacityError does not match ErrCapacityExceeded")
	}
}
