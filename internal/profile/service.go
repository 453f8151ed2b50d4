// Package profile orchestrates one practicer's state: the piece and
// section catalog, the tracked memory models, the event log, and the
// scheduling pipeline that ties them together. All mutating operations
// end by snapshotting the full profile document.
package profile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hartmut/reprise/internal/adaptive"
	"github.com/hartmut/reprise/internal/calibration"
	"github.com/hartmut/reprise/internal/curve"
	"github.com/hartmut/reprise/internal/lifecycle"
	"github.com/hartmut/reprise/internal/outcome"
	"github.com/hartmut/reprise/internal/section"
	"github.com/hartmut/reprise/internal/stability"
	"github.com/hartmut/reprise/internal/store"
)

// keepSnapshots is how many snapshots survive a capacity-triggered prune.
const keepSnapshots = 3

// ErrStorageFull is returned when a snapshot save fails for capacity even
// after pruning old snapshots. In-memory state is intact; the user has to
// free disk space before the next save can succeed.
var ErrStorageFull = errors.New("profile: storage full, free disk space and retry")

// Options configures a Service.
type Options struct {
	ProfileID string
	Snapshots store.SnapshotRepo
	Events    store.EventRepo
	Sessions  store.ScheduledSessionRepo
	Logger    *zap.Logger

	// RetentionTarget overrides the default recall probability scheduling
	// aims for. Zero means lifecycle.DefaultRetentionTarget.
	RetentionTarget float64

	// EstimatedMinutes overrides the planned session duration. Zero means
	// lifecycle.DefaultEstimatedMinutes.
	EstimatedMinutes int

	// Clock overrides time.Now, for tests.
	Clock func() time.Time
}

// SessionResult summarizes one recorded practice session for display.
type SessionResult struct {
	SectionID     string
	Score         float64
	Tau           float64
	IntervalDays  int
	NextReview    time.Time
	StageAdvanced bool
	EventID       int
}

// Service is the per-profile aggregate. Construct one per profile; it is
// not safe for concurrent use.
type Service struct {
	profileID string

	pieces   map[string]*section.Piece
	sections map[string]*section.Section

	stability   *stability.Tracker
	calibration *calibration.Store
	tau         *adaptive.Calculator
	curve       *curve.Model
	lifecycle   *lifecycle.Controller

	snapshots store.SnapshotRepo
	events    store.EventRepo
	sessions  *sessionStore

	retention float64
	minutes   int
	log       *zap.Logger
	clock     func() time.Time
}

// NewService wires a Service from its stores. The lifecycle controller
// shares the service's tau pipeline and persists through the service.
func NewService(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	retention := opts.RetentionTarget
	if retention == 0 {
		retention = lifecycle.DefaultRetentionTarget
	}
	minutes := opts.EstimatedMinutes
	if minutes == 0 {
		minutes = lifecycle.DefaultEstimatedMinutes
	}

	tracker := stability.NewTracker(log)
	calib := calibration.NewStore(log)
	tauCalc := adaptive.NewCalculator(calib, tracker, log)
	model := curve.New(log)

	svc := &Service{
		profileID:   opts.ProfileID,
		pieces:      make(map[string]*section.Piece),
		sections:    make(map[string]*section.Section),
		stability:   tracker,
		calibration: calib,
		tau:         tauCalc,
		curve:       model,
		snapshots:   opts.Snapshots,
		events:      opts.Events,
		sessions:    &sessionStore{profileID: opts.ProfileID, repo: opts.Sessions},
		retention:   retention,
		minutes:     minutes,
		log:         log,
		clock:       clock,
	}

	svc.lifecycle = lifecycle.NewController(lifecycle.Options{
		Tau:              tauCalc,
		Curve:            model,
		Sessions:         svc.sessions,
		Pieces:           svc,
		Persister:        svc,
		Logger:           log,
		RetentionTarget:  retention,
		EstimatedMinutes: minutes,
		Clock:            clock,
	})
	return svc
}

// Load restores the profile from its most recent snapshot. A missing
// snapshot leaves the service empty, which is the first-run case.
func (s *Service) Load(ctx context.Context) error {
	snap, err := s.snapshots.Latest(ctx, s.profileID)
	if err != nil {
		return fmt.Errorf("load profile %q: %w", s.profileID, err)
	}
	if snap == nil {
		s.log.Info("no snapshot found, starting fresh",
			zap.String("profile_id", s.profileID))
		return nil
	}

	st, err := stateFromDocument(snap.Data)
	if err != nil {
		return fmt.Errorf("load profile %q: %w", s.profileID, err)
	}

	s.pieces = st.Pieces
	s.sections = st.Sections
	if st.Stability != nil {
		s.stability.LoadSnapshot(st.Stability)
	}
	if st.Calibration != nil {
		s.calibration.LoadSnapshot(st.Calibration)
	}

	s.log.Info("profile restored",
		zap.String("profile_id", s.profileID),
		zap.Int("pieces", len(s.pieces)),
		zap.Int("sections", len(s.sections)),
		zap.Int64("sequence", snap.Sequence))
	return nil
}

// Persist snapshots the full profile document. On a capacity failure it
// prunes old snapshots and retries exactly once; a second failure returns
// ErrStorageFull. In-memory state is never rolled back.
func (s *Service) Persist(ctx context.Context) error {
	st := &State{
		Version:     stateVersion,
		ProfileID:   s.profileID,
		SavedAt:     s.clock(),
		Pieces:      s.pieces,
		Sections:    s.sections,
		Stability:   s.stability.Snapshot(),
		Calibration: s.calibration.Snapshot(),
	}
	doc, err := st.toDocument()
	if err != nil {
		return err
	}

	save := func() error {
		return s.snapshots.Save(ctx, &store.Snapshot{
			ProfileID: s.profileID,
			Timestamp: s.clock(),
			Data:      doc,
		})
	}

	err = save()
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrCapacityExceeded) {
		return fmt.Errorf("save profile %q: %w", s.profileID, err)
	}

	s.log.Warn("snapshot save hit capacity limit, pruning and retrying",
		zap.String("profile_id", s.profileID),
		zap.Error(err))
	if pruneErr := s.snapshots.Prune(ctx, s.profileID, keepSnapshots); pruneErr != nil {
		s.log.Warn("snapshot prune failed", zap.Error(pruneErr))
	}
	if err = save(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFull, err)
	}
	return nil
}

// AddPiece registers a piece and its sections. Sections are indexed by id
// for direct lookup.
func (s *Service) AddPiece(ctx context.Context, p *section.Piece) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("%w: piece without id", section.ErrInvalidSection)
	}
	for _, sec := range p.Sections {
		if err := sec.Validate(); err != nil {
			return err
		}
	}
	s.pieces[p.ID] = p
	for _, sec := range p.Sections {
		sec.PieceID = p.ID
		s.sections[sec.ID] = sec
	}
	return s.Persist(ctx)
}

// Section returns the section with the given id, or nil.
func (s *Service) Section(id string) *section.Section {
	return s.sections[id]
}

// Piece returns the piece with the given id, or nil.
func (s *Service) Piece(id string) *section.Piece {
	return s.pieces[id]
}

// FindOwningPiece resolves a section's piece for the lifecycle controller.
// An unknown section or a dangling piece link returns nil, nil.
func (s *Service) FindOwningPiece(ctx context.Context, sectionID string) (*section.Piece, error) {
	sec, ok := s.sections[sectionID]
	if !ok {
		return nil, nil
	}
	return s.pieces[sec.PieceID], nil
}

// RecordSession processes one completed practice session: it appends the
// immutable event, feeds the memory models, advances repetition counting,
// reschedules the next review, and snapshots the profile. Scheduling
// follows the section's lifecycle state: Active sections get a
// forgetting-curve interval from the recomputed tau, Maintenance sections
// keep their policy-fixed floor-enforced interval, and Inactive sections
// are never rescheduled. Event-log and scheduling failures are logged and
// do not abort the in-memory update; only an unknown section or an
// invalid outcome is an error.
func (s *Service) RecordSession(ctx context.Context, o outcome.Outcome) (*SessionResult, error) {
	sec, ok := s.sections[o.SectionID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown section %q", section.ErrInvalidSection, o.SectionID)
	}
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	if !o.Performance.IsValid() {
		return nil, fmt.Errorf("%w: performance %d", outcome.ErrInvalidPerformance, int(o.Performance))
	}

	now := o.Date
	if now.IsZero() {
		// The models read the outcome's date; stamp it so a defaulted
		// session does not record a zero-time review.
		now = s.clock()
		o.Date = now
	}
	score := o.Score()

	// Baseline and elapsed time are measured against the pre-update state
	// so calibration compares the schedule that was actually in force.
	baseline := s.tau.BaselineTau(sec.Difficulty, sec.CompletedReps, sec.Stage)
	var elapsed float64
	if sec.LastPracticeDate != nil {
		elapsed = o.ElapsedDaysSince(*sec.LastPracticeDate)
	}

	eventID, err := s.events.AppendPracticeEvent(ctx, store.PracticeEventData{
		ProfileID:         s.profileID,
		SectionID:         o.SectionID,
		PieceID:           sec.PieceID,
		Performance:       o.Performance.String(),
		Score:             score,
		Repetitions:       o.Repetitions,
		ExecutionFailures: o.ExecutionFailures,
		MemoryFailures:    o.MemoryFailures,
	})
	if err != nil {
		s.log.Warn("practice event append failed",
			zap.String("section_id", o.SectionID),
			zap.Error(err))
	}

	s.calibration.RecordOutcome(sec.Difficulty, calibration.Observation{
		Score:       score,
		ElapsedDays: elapsed,
		BaselineTau: baseline,
	})
	s.stability.Update(o)

	advanced := sec.RecordRepetitions(o.Repetitions)
	t := now
	sec.LastPracticeDate = &t
	sec.Overdue = false

	res := &SessionResult{
		SectionID:     o.SectionID,
		Score:         score,
		StageAdvanced: advanced,
		EventID:       eventID,
	}

	// Inactive sections track memory state but carry no schedule. Review
	// resumes through an explicit lifecycle transition.
	if sec.State == section.Inactive {
		s.log.Info("session recorded for inactive section, not rescheduled",
			zap.String("section_id", o.SectionID),
			zap.String("performance", o.Performance.String()))
		if err := s.Persist(ctx); err != nil {
			return nil, err
		}
		return res, nil
	}

	var tauVal float64
	var interval int
	bound := curve.BoundNone
	if sec.State == section.Maintenance {
		// Maintenance intervals are policy-fixed, never curve-derived.
		interval = sec.IntervalDays
		if interval < lifecycle.MaintenanceFloorDays {
			interval = lifecycle.MaintenanceFloorDays
		}
	} else {
		tauVal = s.tau.IntegratedTau(sec.Difficulty, sec.CompletedReps, adaptive.Context{
			SectionID: o.SectionID,
			Stage:     sec.Stage,
			Now:       now,
		})
		raw := s.curve.IntervalFor(tauVal, s.retention)
		days, reason := s.curve.ClampToScientificBounds(raw, tauVal)
		interval = int(math.Round(days))
		bound = reason
	}
	next := now.AddDate(0, 0, interval)
	sec.SetNextReview(next, interval)

	s.log.Info("session recorded",
		zap.String("section_id", o.SectionID),
		zap.String("performance", o.Performance.String()),
		zap.Stringer("state", sec.State),
		zap.Float64("tau", tauVal),
		zap.Int("interval_days", interval),
		zap.String("bound", bound.String()),
		zap.Bool("stage_advanced", advanced))

	s.reschedule(ctx, sec, now, next, tauVal)

	if err := s.Persist(ctx); err != nil {
		return nil, err
	}
	res.Tau = tauVal
	res.IntervalDays = interval
	res.NextReview = next
	return res, nil
}

// reschedule replaces the section's pending scheduled session with a new
// Planned entry at the given date. A pending entry whose scheduled date
// has arrived was fulfilled by this practice and is marked Completed;
// future entries were practiced early and are removed. Failures are
// logged, never raised: the section's own next-review date is the
// authoritative schedule.
func (s *Service) reschedule(ctx context.Context, sec *section.Section, now, date time.Time, tauVal float64) {
	pending, err := s.sessions.GetAllPending(ctx, sec.ID)
	if err != nil {
		s.log.Warn("pending session lookup failed",
			zap.String("section_id", sec.ID), zap.Error(err))
	}
	for _, p := range pending {
		if !p.ScheduledDate.After(now) {
			if err := s.sessions.MarkCompleted(ctx, p.ID); err != nil {
				s.log.Warn("session completion failed",
					zap.String("session_id", p.ID), zap.Error(err))
			}
			continue
		}
		if err := s.sessions.Remove(ctx, p.ID); err != nil {
			s.log.Warn("stale session removal failed",
				zap.String("session_id", p.ID), zap.Error(err))
		}
	}
	err = s.sessions.Add(ctx, lifecycle.ScheduledSession{
		ID:               uuid.NewString(),
		SectionID:        sec.ID,
		PieceID:          sec.PieceID,
		ScheduledDate:    date,
		Status:           lifecycle.StatusPlanned,
		EstimatedMinutes: s.minutes,
		Tau:              tauVal,
	})
	if err != nil {
		s.log.Warn("session insert failed",
			zap.String("section_id", sec.ID), zap.Error(err))
	}
}

// Transition moves a section to a new lifecycle state through the
// controller and records the transition in the event log.
func (s *Service) Transition(ctx context.Context, sectionID string, to section.State) (lifecycle.TransitionReport, error) {
	sec, ok := s.sections[sectionID]
	if !ok {
		return lifecycle.TransitionReport{}, fmt.Errorf("%w: unknown section %q", section.ErrInvalidSection, sectionID)
	}

	report := s.lifecycle.Transition(ctx, sec, to)

	// Suppressed transitions make no store writes at all; the debug log
	// inside the controller is their only trace.
	if report.Suppressed {
		return report, nil
	}

	err := s.events.AppendLifecycleEvent(ctx, store.LifecycleEventData{
		ProfileID:    s.profileID,
		SectionID:    sectionID,
		FromState:    int(report.From),
		ToState:      int(report.To),
		Suppressed:   report.Suppressed,
		Tau:          report.Tau,
		IntervalDays: report.IntervalDays,
	})
	if err != nil {
		s.log.Warn("lifecycle event append failed",
			zap.String("section_id", sectionID), zap.Error(err))
	}
	return report, nil
}

// SetBulkLoad toggles suppressed mode on the lifecycle controller: state
// changes apply without scheduling side effects while a profile import is
// replaying transitions.
func (s *Service) SetBulkLoad(on bool) {
	s.lifecycle.SetSuppressed(on)
}

// DeleteOutcome soft-deletes a practice event. The memory models are not
// rewound; the event just stops informing future calibration queries.
func (s *Service) DeleteOutcome(ctx context.Context, eventID int) error {
	if err := s.events.SoftDeletePracticeEvent(ctx, eventID); err != nil {
		return fmt.Errorf("delete outcome %d: %w", eventID, err)
	}
	return nil
}

// DueSection pairs a due section with its overdue measure for display.
type DueSection struct {
	Section     *section.Section
	OverdueDays float64
}

// DueSections returns the Active and Maintenance sections due at or before
// now, most overdue first. Inactive sections never appear.
func (s *Service) DueSections(now time.Time) []DueSection {
	due := make([]DueSection, 0)
	for _, sec := range s.sections {
		if sec.State == section.Inactive {
			continue
		}
		if !sec.IsDue(now) {
			continue
		}
		sec.Overdue = sec.OverdueDays(now) > 0
		due = append(due, DueSection{Section: sec, OverdueDays: sec.OverdueDays(now)})
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].OverdueDays != due[j].OverdueDays {
			return due[i].OverdueDays > due[j].OverdueDays
		}
		return due[i].Section.ID < due[j].Section.ID
	})
	return due
}

// SectionStats exposes the tracked memory state for one section.
func (s *Service) SectionStats(sectionID string, now time.Time) stability.Stats {
	return s.stability.Stats(sectionID, now)
}

// CalibrationStats exposes the profile's calibration state.
func (s *Service) CalibrationStats() calibration.Stats {
	return s.calibration.CalibrationStats()
}
