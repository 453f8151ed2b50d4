// Package calibration learns a per-profile, per-difficulty-class
// multiplicative adjustment to the forgetting-curve decay parameter from
// observed session outcomes. A profile that forgets faster than the
// demographic baseline predicts trends below 1.0, slower trends above.
package calibration

import (
	"math"

	"go.uber.org/zap"

	"github.com/hartmut/reprise/internal/section"
)

const (
	minFactor = 0.5
	maxFactor = 2.0

	// rapidCalibrationSessions is the cold-start window: the first few
	// sessions of a class move the factor at a faster rate so a new
	// profile does not wait weeks for personalization.
	rapidCalibrationSessions = 5
	rapidRate                = 0.15
	steadyRate               = 0.05

	// confidenceHalfSat is the session count at which confidence reaches
	// 0.5. Growth is monotone and saturating.
	confidenceHalfSat = 20.0

	// calibratedSessions is the total session count after which the
	// profile is considered calibrated.
	calibratedSessions = 12
)

// Observation is the decay evidence extracted from one session outcome.
type Observation struct {
	Score       float64 // 0-10 performance score
	ElapsedDays float64 // days since the section's previous practice
	BaselineTau float64 // the demographic tau the schedule was built from
}

// Adjustment is the learned state for one difficulty class.
type Adjustment struct {
	Factor     float64 `json:"factor"`
	Confidence float64 `json:"confidence"`
	Sessions   int     `json:"sessions"`
}

// Store holds the calibration table for one profile. Construct one per
// profile session; it is never shared across profiles.
type Store struct {
	byClass       map[section.Difficulty]*Adjustment
	totalSessions int
	log           *zap.Logger
}

// NewStore creates an empty calibration table. A nil logger is replaced
// with a no-op logger.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		byClass: make(map[section.Difficulty]*Adjustment),
		log:     log,
	}
}

func (s *Store) get(class section.Difficulty) *Adjustment {
	if a, ok := s.byClass[class]; ok {
		return a
	}
	a := &Adjustment{Factor: 1.0}
	s.byClass[class] = a
	return a
}

// RecordOutcome folds one session's decay evidence into the class
// adjustment. Observations without a usable decay signal (first-ever
// practice of a section, or a degenerate baseline) still count toward
// confidence but leave the factor untouched.
func (s *Store) RecordOutcome(class section.Difficulty, obs Observation) {
	a := s.get(class)

	if obs.ElapsedDays > 0 && obs.BaselineTau > 0 {
		expected := math.Exp(-obs.ElapsedDays / obs.BaselineTau)
		observed := obs.Score / 10.0
		if observed < 0 {
			observed = 0
		}
		if observed > 1 {
			observed = 1
		}

		rate := steadyRate
		if a.Sessions < rapidCalibrationSessions {
			rate = rapidRate
		}

		a.Factor *= 1 + rate*(observed-expected)
		if a.Factor < minFactor {
			a.Factor = minFactor
		}
		if a.Factor > maxFactor {
			a.Factor = maxFactor
		}
	}

	a.Sessions++
	a.Confidence = float64(a.Sessions) / (float64(a.Sessions) + confidenceHalfSat)
	s.totalSessions++

	s.log.Debug("calibration updated",
		zap.String("difficulty", class.String()),
		zap.Float64("factor", a.Factor),
		zap.Float64("confidence", a.Confidence),
		zap.Int("sessions", a.Sessions))
}

// AdjustmentFactor returns the confidence-weighted multiplicative tau
// adjustment for a difficulty class. An uncalibrated class returns 1.0.
func (s *Store) AdjustmentFactor(class section.Difficulty) float64 {
	a, ok := s.byClass[class]
	if !ok {
		return 1.0
	}
	return 1 + (a.Factor-1)*a.Confidence
}

// Stats summarizes the calibration state for display.
type Stats struct {
	TotalSessions int
	IsCalibrated  bool
	ByClass       map[section.Difficulty]Adjustment
}

// CalibrationStats returns a copy of the current calibration state.
func (s *Store) CalibrationStats() Stats {
	st := Stats{
		TotalSessions: s.totalSessions,
		IsCalibrated:  s.totalSessions >= calibratedSessions,
		ByClass:       make(map[section.Difficulty]Adjustment, len(s.byClass)),
	}
	for class, a := range s.byClass {
		st.ByClass[class] = *a
	}
	return st
}

// SnapshotData is the persisted form of a calibration store.
type SnapshotData struct {
	TotalSessions int                                `json:"total_sessions"`
	ByClass       map[section.Difficulty]*Adjustment `json:"by_class"`
}

// Snapshot exports the store for profile persistence.
func (s *Store) Snapshot() *SnapshotData {
	data := &SnapshotData{
		TotalSessions: s.totalSessions,
		ByClass:       make(map[section.Difficulty]*Adjustment, len(s.byClass)),
	}
	for class, a := range s.byClass {
		cp := *a
		data.ByClass[class] = &cp
	}
	return data
}

// LoadSnapshot replaces the store state with persisted data. A nil snapshot
// leaves the table empty: calibration is never reset implicitly, only by an
// explicit data wipe.
func (s *Store) LoadSnapshot(data *SnapshotData) {
	s.byClass = make(map[section.Difficulty]*Adjustment)
	s.totalSessions = 0
	if data == nil {
		return
	}
	s.totalSessions = data.TotalSessions
	for class, a := range data.ByClass {
		cp := *a
		if cp.Factor == 0 {
			cp.Factor = 1.0
		}
		s.byClass[class] = &cp
	}
}
