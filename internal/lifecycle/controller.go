// Package lifecycle implements the section lifecycle state machine:
// Active, Maintenance, and Inactive transitions and their side effects on
// scheduled-session records. The state change itself is the primary effect;
// scheduling side effects are collected into a report, logged, and never
// re-raised past the controller boundary.
package lifecycle

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hartmut/reprise/internal/adaptive"
	"github.com/hartmut/reprise/internal/curve"
	"github.com/hartmut/reprise/internal/section"
)

// MaintenanceFloorDays is the minimum interval for sections in Maintenance.
// Maintenance intervals are policy-fixed, not forgetting-curve-derived.
const MaintenanceFloorDays = 7

// Options configures a Controller.
type Options struct {
	Tau       *adaptive.Calculator
	Curve     *curve.Model
	Sessions  SessionStore
	Pieces    PieceResolver
	Persister Persister
	Logger    *zap.Logger

	// RetentionTarget is the recall probability scheduling aims for at the
	// next review. Zero means DefaultRetentionTarget.
	RetentionTarget float64

	// EstimatedMinutes is the planned duration written into scheduled
	// sessions. Zero means DefaultEstimatedMinutes.
	EstimatedMinutes int

	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// DefaultRetentionTarget accepts a 30% chance of forgetting by the review.
const DefaultRetentionTarget = 0.7

// DefaultEstimatedMinutes is the planned duration of a review session.
const DefaultEstimatedMinutes = 15

// Controller governs lifecycle transitions for one profile's sections.
type Controller struct {
	tau       *adaptive.Calculator
	curve     *curve.Model
	sessions  SessionStore
	pieces    PieceResolver
	persister Persister
	retention float64
	minutes   int
	clock     func() time.Time
	log       *zap.Logger

	suppressed bool
}

// NewController creates a Controller from options, filling defaults.
func NewController(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	retention := opts.RetentionTarget
	if retention == 0 {
		retention = DefaultRetentionTarget
	}
	minutes := opts.EstimatedMinutes
	if minutes == 0 {
		minutes = DefaultEstimatedMinutes
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Controller{
		tau:       opts.Tau,
		curve:     opts.Curve,
		sessions:  opts.Sessions,
		pieces:    opts.Pieces,
		persister: opts.Persister,
		retention: retention,
		minutes:   minutes,
		clock:     clock,
		log:       log,
	}
}

// SetSuppressed toggles bulk-load suppression. While suppressed,
// transitions are logged and change in-memory state, but produce no
// scheduled-session mutations and no persistence calls. Mass imports would
// otherwise fan out a recompute-and-persist per section and could race the
// import's own writes.
func (c *Controller) SetSuppressed(on bool) {
	c.suppressed = on
}

// Suppressed reports whether bulk-load suppression is active.
func (c *Controller) Suppressed() bool {
	return c.suppressed
}

// Transition moves a section to the target lifecycle state and applies the
// state's scheduling side effects. It never returns an error: failures are
// recorded in the report and logged with the section id and the old/new
// state for operator follow-up.
func (c *Controller) Transition(ctx context.Context, sec *section.Section, to section.State) TransitionReport {
	from := sec.State
	report := TransitionReport{
		SectionID: sec.ID,
		From:      from,
		To:        to,
	}

	sec.State = to

	if c.suppressed {
		report.Suppressed = true
		c.log.Debug("lifecycle transition suppressed (bulk load)",
			zap.String("section_id", sec.ID),
			zap.Stringer("from", from),
			zap.Stringer("to", to))
		return report
	}

	switch to {
	case section.Active:
		c.transitionToActive(ctx, sec, from, &report)
	case section.Maintenance:
		c.transitionToMaintenance(ctx, sec, &report)
	case section.Inactive:
		c.transitionToInactive(ctx, sec, &report)
	default:
		c.log.Warn("transition to unknown lifecycle state",
			zap.String("section_id", sec.ID),
			zap.Int("state", int(to)))
		return report
	}

	for _, fx := range report.SideEffects {
		if fx.Err != nil {
			c.log.Warn("lifecycle side effect failed; state change recorded anyway",
				zap.String("section_id", sec.ID),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
				zap.String("side_effect", fx.Name),
				zap.Error(fx.Err))
		}
	}
	return report
}

func (c *Controller) transitionToActive(ctx context.Context, sec *section.Section, from section.State, report *TransitionReport) {
	if from == section.Active {
		// Already active: notification only, no recompute.
		c.log.Debug("section already active, transition is a no-op",
			zap.String("section_id", sec.ID))
		return
	}

	c.clearPending(ctx, sec.ID, report)

	// Recompute from the section's current difficulty, repetitions, and
	// stage, not any stale maintenance-forced interval.
	now := c.clock()
	tau := c.tau.IntegratedTau(sec.Difficulty, sec.CompletedReps, adaptive.Context{
		SectionID: sec.ID,
		Stage:     sec.Stage,
		Now:       now,
	})
	raw := c.curve.IntervalFor(tau, c.retention)
	clamped, bound := c.curve.ClampToScientificBounds(raw, tau)
	days := int(math.Round(clamped))

	sec.SetNextReview(now.AddDate(0, 0, days), days)
	report.Tau = tau
	report.IntervalDays = days
	report.NextReview = sec.NextReviewDate

	c.log.Info("section reactivated",
		zap.String("section_id", sec.ID),
		zap.Stringer("previous_state", from),
		zap.Float64("tau", tau),
		zap.Float64("raw_days", raw),
		zap.Int("interval_days", days),
		zap.Stringer("binding_bound", bound))

	piece := c.resolvePiece(ctx, sec, report)
	if piece == nil {
		return
	}
	c.insertPlanned(ctx, sec, piece.ID, tau, report)
	c.persist(ctx, report)
}

func (c *Controller) transitionToMaintenance(ctx context.Context, sec *section.Section, report *TransitionReport) {
	days := sec.IntervalDays
	if days < MaintenanceFloorDays {
		days = MaintenanceFloorDays
	}

	now := c.clock()
	sec.SetNextReview(now.AddDate(0, 0, days), days)
	sec.Overdue = false
	report.IntervalDays = days
	report.NextReview = sec.NextReviewDate

	c.clearPending(ctx, sec.ID, report)
	// Maintenance sessions record tau as 0: the interval is policy-fixed.
	c.insertPlanned(ctx, sec, sec.PieceID, 0, report)

	if piece := c.resolvePiece(ctx, sec, report); piece != nil {
		c.persist(ctx, report)
	}
}

func (c *Controller) transitionToInactive(ctx context.Context, sec *section.Section, report *TransitionReport) {
	sec.ClearNextReview()
	sec.Overdue = false

	c.clearPending(ctx, sec.ID, report)

	if piece := c.resolvePiece(ctx, sec, report); piece != nil {
		c.persist(ctx, report)
	}
}

// clearPending deletes every pending scheduled session for the section,
// enforcing the at-most-one-pending invariant before any insert.
func (c *Controller) clearPending(ctx context.Context, sectionID string, report *TransitionReport) {
	pending, err := c.sessions.GetAllPending(ctx, sectionID)
	if err != nil {
		report.addEffect("list-pending-sessions", err)
		return
	}
	for _, s := range pending {
		if err := c.sessions.Remove(ctx, s.ID); err != nil {
			report.addEffect("remove-pending-session", err)
		}
	}
	report.addEffect("clear-pending-sessions", nil)
}

func (c *Controller) insertPlanned(ctx context.Context, sec *section.Section, pieceID string, tau float64, report *TransitionReport) {
	s := ScheduledSession{
		ID:               uuid.NewString(),
		SectionID:        sec.ID,
		PieceID:          pieceID,
		ScheduledDate:    *sec.NextReviewDate,
		Status:           StatusPlanned,
		EstimatedMinutes: c.minutes,
		Tau:              tau,
	}
	if err := c.sessions.Add(ctx, s); err != nil {
		report.addEffect("insert-planned-session", err)
		return
	}
	report.SessionID = s.ID
	report.addEffect("insert-planned-session", nil)
}

// resolvePiece looks up the owning piece. A section that never had a piece
// link is benign legacy data; a recorded link that fails to resolve hints
// at corruption. Either way the caller skips persistence for this one
// operation without aborting the transition.
func (c *Controller) resolvePiece(ctx context.Context, sec *section.Section, report *TransitionReport) *section.Piece {
	piece, err := c.pieces.FindOwningPiece(ctx, sec.ID)
	if err != nil {
		report.addEffect("resolve-owning-piece", err)
		return nil
	}
	if piece == nil {
		if sec.PieceID == "" {
			c.log.Debug("section has no owning piece link",
				zap.String("section_id", sec.ID))
		} else {
			c.log.Warn("owning piece link failed to resolve",
				zap.String("section_id", sec.ID),
				zap.String("piece_id", sec.PieceID))
		}
		return nil
	}
	return piece
}

func (c *Controller) persist(ctx context.Context, report *TransitionReport) {
	if err := c.persister.Persist(ctx); err != nil {
		report.addEffect("persist-profile", err)
		return
	}
	report.addEffect("persist-profile", nil)
}
