// Package curve implements the Ebbinghaus forgetting-curve interval model:
// mapping a decay-rate parameter tau and a retention target to a review
// interval, and clamping raw intervals into operationally safe bounds.
package curve

import (
	"math"

	"go.uber.org/zap"
)

const (
	// MinRetention and MaxRetention bound the retention target before the
	// logarithm. Values outside (0,1) would produce degenerate intervals.
	MinRetention = 0.01
	MaxRetention = 0.99

	// FloorDays and CeilingDays are the absolute interval bounds.
	FloorDays   = 1.0
	CeilingDays = 365.0

	// TauCapMultiple caps the interval at this multiple of tau. Beyond
	// five time constants the retention estimate is unreliable.
	TauCapMultiple = 5.0

	// FallbackDays substitutes for degenerate interval computations.
	FallbackDays = 1.0
)

// BoundReason identifies which bound, if any, constrained a clamped interval.
type BoundReason int

const (
	BoundNone BoundReason = iota
	BoundFloor
	BoundCeiling
	BoundTauCap
)

// String returns the bound name for diagnostics.
func (b BoundReason) String() string {
	switch b {
	case BoundNone:
		return "none"
	case BoundFloor:
		return "floor"
	case BoundCeiling:
		return "ceiling"
	case BoundTauCap:
		return "tau-cap"
	}
	return "unknown"
}

// Model computes forgetting-curve intervals. The zero value is not usable;
// construct with New.
type Model struct {
	log *zap.Logger
}

// New creates a Model. A nil logger is replaced with a no-op logger.
func New(log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	return &Model{log: log}
}

// IntervalFor returns the interval in days after which recall probability
// decays to retentionTarget, given decay parameter tau:
//
//	days = -tau * ln(retentionTarget)
//
// The retention target is clamped into [MinRetention, MaxRetention] before
// the logarithm. A non-finite or non-positive result (tau <= 0 or otherwise
// degenerate input) is replaced with FallbackDays and logged.
func (m *Model) IntervalFor(tau, retentionTarget float64) float64 {
	r := retentionTarget
	if r < MinRetention {
		r = MinRetention
	}
	if r > MaxRetention {
		r = MaxRetention
	}

	days := -tau * math.Log(r)
	if math.IsNaN(days) || math.IsInf(days, 0) || days <= 0 {
		m.log.Warn("degenerate interval computation, substituting fallback",
			zap.Float64("tau", tau),
			zap.Float64("retention_target", retentionTarget),
			zap.Float64("raw_days", days),
			zap.Float64("fallback_days", FallbackDays))
		return FallbackDays
	}
	return days
}

// ClampToScientificBounds clamps rawDays into [FloorDays, CeilingDays] and
// additionally caps it at TauCapMultiple*tau. It returns the clamped value
// and which bound was binding, for diagnostics.
func (m *Model) ClampToScientificBounds(rawDays, tau float64) (float64, BoundReason) {
	days := rawDays
	reason := BoundNone

	if tau > 0 {
		if cap := TauCapMultiple * tau; days > cap {
			days = cap
			reason = BoundTauCap
		}
	}
	if days > CeilingDays {
		days = CeilingDays
		reason = BoundCeiling
	}
	if days < FloorDays {
		days = FloorDays
		reason = BoundFloor
	}
	return days, reason
}

// InverseRetention returns the recall probability the model predicts after
// elapsed days, given decay parameter tau. This is the inverse mapping of
// IntervalFor. Returns 0 for non-positive tau.
func (m *Model) InverseRetention(elapsedDays, tau float64) float64 {
	if tau <= 0 {
		return 0
	}
	return math.Exp(-elapsedDays / tau)
}
