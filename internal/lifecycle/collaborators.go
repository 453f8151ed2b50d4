package lifecycle

import (
	"context"
	"time"

	"github.com/hartmut/reprise/internal/section"
)

// SessionStatus is the state of a scheduled session record.
type SessionStatus string

const (
	StatusPlanned   SessionStatus = "Planned"
	StatusCompleted SessionStatus = "Completed"
)

// ScheduledSession is a planned, not-yet-completed review entry. At most
// one pending (Planned) session exists per section; the controller enforces
// this by deleting all pending entries before inserting a new one.
type ScheduledSession struct {
	ID               string        `json:"id"`
	SectionID        string        `json:"section_id"`
	PieceID          string        `json:"piece_id"`
	ScheduledDate    time.Time     `json:"scheduled_date"`
	Status           SessionStatus `json:"status"`
	EstimatedMinutes int           `json:"estimated_duration"`
	Tau              float64       `json:"tau_value"` // 0 for policy-fixed maintenance intervals
}

// SessionStore is the scheduled-session store the controller mutates.
type SessionStore interface {
	GetAllPending(ctx context.Context, sectionID string) ([]ScheduledSession, error)
	Add(ctx context.Context, s ScheduledSession) error
	Remove(ctx context.Context, id string) error
}

// PieceResolver resolves a section's owning piece. A nil piece with a nil
// error means the link does not exist (benign for legacy data).
type PieceResolver interface {
	FindOwningPiece(ctx context.Context, sectionID string) (*section.Piece, error)
}

// Persister saves the owning profile document after a transition so the
// state change survives a crash immediately following it.
type Persister interface {
	Persist(ctx context.Context) error
}
