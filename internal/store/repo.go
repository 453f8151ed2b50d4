package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrCapacityExceeded marks persistence failures caused by storage
// capacity. Callers treat it as retryable once after cleanup, then
// terminal. Check with errors.Is.
var ErrCapacityExceeded = errors.New("store: capacity exceeded")

// CapacityError carries the underlying driver error for a capacity
// failure while matching ErrCapacityExceeded.
type CapacityError struct {
	Err error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("store: capacity exceeded: %v", e.Err)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// Snapshot represents a point-in-time capture of one profile's state.
type Snapshot struct {
	ID        int
	ProfileID string
	Sequence  int64
	Timestamp time.Time
	Data      map[string]any
}

// SnapshotRepo manages profile state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot for the profile.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the profile's most recent snapshot, or nil if none.
	Latest(ctx context.Context, profileID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots of the profile.
	Prune(ctx context.Context, profileID string, keep int) error
}

// PracticeEventData captures one completed practice session for append.
type PracticeEventData struct {
	ProfileID         string
	SectionID         string
	PieceID           string
	Performance       string
	Score             float64
	Repetitions       int
	ExecutionFailures int
	MemoryFailures    int
}

// PracticeEventRecord is a stored practice event.
type PracticeEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PracticeEventData
}

// LifecycleEventData captures one lifecycle transition for append.
type LifecycleEventData struct {
	ProfileID    string
	SectionID    string
	FromState    int
	ToState      int
	Suppressed   bool
	Tau          float64
	IntervalDays int
}

// EventRepo provides append access to the domain event log.
type EventRepo interface {
	// AppendPracticeEvent records a session outcome and returns its id.
	AppendPracticeEvent(ctx context.Context, data PracticeEventData) (int, error)

	// SoftDeletePracticeEvent marks an event deleted. The record stays
	// for audit but is excluded from calibration queries.
	SoftDeletePracticeEvent(ctx context.Context, id int) error

	// AppendLifecycleEvent records a lifecycle transition.
	AppendLifecycleEvent(ctx context.Context, data LifecycleEventData) error

	// RecentOutcomes returns the section's most recent non-deleted
	// practice events, newest first.
	RecentOutcomes(ctx context.Context, sectionID string, lastN int) ([]PracticeEventRecord, error)
}

// ScheduledSessionRecord is a stored scheduled-session entry.
type ScheduledSessionRecord struct {
	SessionID        string
	ProfileID        string
	SectionID        string
	PieceID          string
	ScheduledDate    time.Time
	Status           string // "Planned" or "Completed"
	EstimatedMinutes int
	Tau              float64
}

// ScheduledSessionRepo manages planned review entries.
type ScheduledSessionRepo interface {
	// GetAllPending returns the section's Planned entries.
	GetAllPending(ctx context.Context, sectionID string) ([]ScheduledSessionRecord, error)

	// Add inserts a new entry.
	Add(ctx context.Context, rec ScheduledSessionRecord) error

	// Remove deletes an entry by its session id.
	Remove(ctx context.Context, sessionID string) error

	// MarkCompleted flips an entry's status to Completed.
	MarkCompleted(ctx context.Context, sessionID string) error
}
