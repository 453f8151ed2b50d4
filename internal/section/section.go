package section

import (
	"errors"
	"fmt"
	"time"
)

// StageBaselineReps is the repetition target a stage resets to after the
// previous stage's target is reached.
const StageBaselineReps = 6

// ErrInvalidSection is returned for malformed section records.
var ErrInvalidSection = errors.New("section: invalid section")

// Section is a practicable unit of material owned by a piece. It carries
// the scheduling state the interval engine reads and writes.
type Section struct {
	ID               string     `json:"id"`
	PieceID          string     `json:"piece_id"`
	Name             string     `json:"name,omitempty"`
	Difficulty       Difficulty `json:"difficulty"`
	State            State      `json:"lifecycle_state"`
	Stage            int        `json:"practice_schedule_stage"` // non-negative, grows while Active
	CompletedReps    int        `json:"completed_repetitions"`
	TargetReps       int        `json:"target_repetitions"`
	IntervalDays     int        `json:"interval"`
	NextReviewDate   *time.Time `json:"next_review_date"`   // nil when no review is scheduled
	LastPracticeDate *time.Time `json:"last_practice_date"` // nil before first practice
	Overdue          bool       `json:"overdue"`
}

// New creates an Active section at stage zero with the baseline repetition
// target.
func New(id, pieceID string, difficulty Difficulty) *Section {
	return &Section{
		ID:         id,
		PieceID:    pieceID,
		Difficulty: difficulty,
		State:      Active,
		TargetReps: StageBaselineReps,
	}
}

// Validate rejects malformed section records at the boundary.
func (s *Section) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidSection)
	}
	if !s.Difficulty.IsValid() {
		return fmt.Errorf("%w: difficulty %d", ErrInvalidSection, int(s.Difficulty))
	}
	if !s.State.IsValid() {
		return fmt.Errorf("%w: lifecycle state %d", ErrInvalidSection, int(s.State))
	}
	if s.Stage < 0 {
		return fmt.Errorf("%w: negative stage %d", ErrInvalidSection, s.Stage)
	}
	if s.TargetReps <= 0 {
		return fmt.Errorf("%w: target repetitions %d", ErrInvalidSection, s.TargetReps)
	}
	if s.CompletedReps < 0 {
		return fmt.Errorf("%w: negative completed repetitions %d", ErrInvalidSection, s.CompletedReps)
	}
	return nil
}

// RecordRepetitions counts n successful repetitions toward the current
// stage. When the target is reached the stage advances, the counter resets,
// and the target resets to the stage baseline. Returns true if the stage
// advanced.
func (s *Section) RecordRepetitions(n int) bool {
	if n <= 0 {
		return false
	}
	s.CompletedReps += n
	if s.CompletedReps < s.TargetReps {
		return false
	}
	s.Stage++
	s.CompletedReps = 0
	s.TargetReps = StageBaselineReps
	return true
}

// IsDue reports whether the section has a scheduled review at or before now.
func (s *Section) IsDue(now time.Time) bool {
	if s.NextReviewDate == nil {
		return false
	}
	return !now.Before(*s.NextReviewDate)
}

// OverdueDays returns how many days past due the section is, 0 if not due
// or unscheduled.
func (s *Section) OverdueDays(now time.Time) float64 {
	if s.NextReviewDate == nil || now.Before(*s.NextReviewDate) {
		return 0
	}
	return now.Sub(*s.NextReviewDate).Hours() / 24.0
}

// SetNextReview schedules the next review at the given date and records the
// interval in whole days.
func (s *Section) SetNextReview(date time.Time, intervalDays int) {
	d := date
	s.NextReviewDate = &d
	s.IntervalDays = intervalDays
}

// ClearNextReview removes any scheduled review.
func (s *Section) ClearNextReview() {
	s.NextReviewDate = nil
}
