package section

import (
	"errors"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	s := New("sec-1", "piece-1", Average)

	if s.State != Active {
		t.Errorf("State = %v, want Active", s.State)
	}
	if s.Stage != 0 {
		t.Errorf("Stage = %d, want 0", s.Stage)
	}
	if s.TargetReps != StageBaselineReps {
		t.Errorf("TargetReps = %d, want %d", s.TargetReps, StageBaselineReps)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Section)
	}{
		{"empty id", func(s *Section) { s.ID = "" }},
		{"invalid difficulty", func(s *Section) { s.Difficulty = Difficulty(9) }},
		{"invalid state", func(s *Section) { s.State = State(7) }},
		{"negative stage", func(s *Section) { s.Stage = -1 }},
		{"zero target reps", func(s *Section) { s.TargetReps = 0 }},
		{"negative target reps", func(s *Section) { s.TargetReps = -3 }},
		{"negative completed reps", func(s *Section) { s.CompletedReps = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("sec-1", "piece-1", Easy)
			tt.mutate(s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidSection) {
				t.Errorf("error %v not ErrInvalidSection", err)
			}
		})
	}
}

func TestRecordRepetitions_StageAdvance(t *testing.T) {
	s := New("sec-1", "piece-1", Average)

	// Below target: counter grows, stage holds.
	if advanced := s.RecordRepetitions(5); advanced {
		t.Error("stage advanced below target")
	}
	if s.CompletedReps != 5 || s.Stage != 0 {
		t.Errorf("CompletedReps=%d Stage=%d, want 5/0", s.CompletedReps, s.Stage)
	}

	// Reaching the target advances the stage and resets counters.
	if advanced := s.RecordRepetitions(1); !advanced {
		t.Error("expected stage advance at target")
	}
	if s.Stage != 1 {
		t.Errorf("Stage = %d, want 1", s.Stage)
	}
	if s.CompletedReps != 0 {
		t.Errorf("CompletedReps = %d, want 0 after advance", s.CompletedReps)
	}
	if s.TargetReps != StageBaselineReps {
		t.Errorf("TargetReps = %d, want baseline %d", s.TargetReps, StageBaselineReps)
	}
}

func TestRecordRepetitions_InvariantHolds(t *testing.T) {
	s := New("sec-1", "piece-1", Difficult)
	for i := 0; i < 40; i++ {
		s.RecordRepetitions(1)
		if s.CompletedReps >= s.TargetReps {
			t.Fatalf("invariant violated: completed %d >= target %d", s.CompletedReps, s.TargetReps)
		}
	}
	if s.Stage == 0 {
		t.Error("stage never advanced over 40 repetitions")
	}
}

func TestRecordRepetitions_NonPositiveIgnored(t *testing.T) {
	s := New("sec-1", "piece-1", Easy)
	s.RecordRepetitions(0)
	s.RecordRepetitions(-2)
	if s.CompletedReps != 0 {
		t.Errorf("CompletedReps = %d, want 0", s.CompletedReps)
	}
}

func TestDueAndOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s := New("sec-1", "piece-1", Average)

	if s.IsDue(now) {
		t.Error("unscheduled section reported due")
	}

	s.SetNextReview(now.AddDate(0, 0, -2), 7)
	if !s.IsDue(now) {
		t.Error("section 2 days past due not reported due")
	}
	if got := s.OverdueDays(now); got < 1.9 || got > 2.1 {
		t.Errorf("OverdueDays = %v, want ~2", got)
	}

	s.ClearNextReview()
	if s.NextReviewDate != nil {
		t.Error("ClearNextReview left a review date")
	}
	if got := s.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays after clear = %v, want 0", got)
	}
}

func TestDifficultyMarshalRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{Easy, Average, Difficult} {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", d, err)
		}
		var back Difficulty
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != d {
			t.Errorf("round trip %v -> %q -> %v", d, text, back)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Active, "Active"},
		{Maintenance, "Maintenance"},
		{Inactive, "Inactive"},
		{State(5), "State(5)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
