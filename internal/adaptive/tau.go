// Package adaptive computes the forgetting-curve decay parameter tau for a
// scheduling decision by layering personalization and tracked memory
// stability on top of a demographic, stage-aware baseline.
package adaptive

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/hartmut/reprise/internal/section"
	"github.com/hartmut/reprise/internal/stability"
)

// Per-difficulty demographic baseline tau in days.
var baseTau = map[section.Difficulty]float64{
	section.Easy:      5.0,
	section.Average:   3.5,
	section.Difficult: 2.5,
}

const defaultBaseTau = 3.5

// Stage multipliers for the learning regime. From the overlearning stage
// onward the baseline instead walks graduatedTau.
var stageMultipliers = []float64{1.0, 1.8, 3.0}

// graduatedTau is the fixed consolidation sequence for the mastered and
// overlearning regime. Growth through the sequence is gradual: motor
// consolidation should not jump straight to the maximum interval.
var graduatedTau = []float64{7, 14, 30, 60}

// overlearningStage is the stage at which the graduated sequence begins.
const overlearningStage = 3

// repetitionBonusCap bounds the per-repetition tau growth within a stage.
const repetitionBonusCap = 10

// CalibrationSource supplies the learned per-difficulty tau adjustment.
type CalibrationSource interface {
	AdjustmentFactor(class section.Difficulty) float64
}

// StabilitySource supplies tracked per-section memory state.
type StabilitySource interface {
	Stats(sectionID string, now time.Time) stability.Stats
}

// Context carries the per-decision scheduling inputs that are not part of
// the difficulty/repetition pair.
type Context struct {
	SectionID string
	Stage     int
	Now       time.Time
}

// Calculator produces one tau value per scheduling decision. Either source
// may be nil, in which case that stage of the pipeline is skipped; the
// result is always finite and positive.
type Calculator struct {
	calibration CalibrationSource
	stability   StabilitySource
	log         *zap.Logger
}

// NewCalculator creates a Calculator. A nil logger is replaced with a
// no-op logger.
func NewCalculator(cal CalibrationSource, stab StabilitySource, log *zap.Logger) *Calculator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Calculator{calibration: cal, stability: stab, log: log}
}

// IntegratedTau orchestrates the full pipeline: demographic baseline with
// stage growth, multiplied by the personalized calibration factor, then
// blended with tracked stability when enough review evidence exists. Any
// unavailable or degenerate stage degrades to the baseline rather than
// failing the scheduling decision.
func (c *Calculator) IntegratedTau(difficulty section.Difficulty, repetitionCount int, ctx Context) float64 {
	base := c.BaselineTau(difficulty, repetitionCount, ctx.Stage)
	tau := base

	if c.calibration != nil {
		factor := c.calibration.AdjustmentFactor(difficulty)
		if isUsable(factor) {
			tau *= factor
		} else {
			c.log.Warn("calibration returned degenerate factor, skipping personalization",
				zap.String("difficulty", difficulty.String()),
				zap.Float64("factor", factor))
		}
	}

	if c.stability != nil && ctx.SectionID != "" {
		stats := c.stability.Stats(ctx.SectionID, ctx.Now)
		if !stats.IsNew && isUsable(stats.Stability) {
			tau = blendStability(tau, stats)
		}
	}

	if !isUsable(tau) {
		c.log.Warn("integrated tau degenerate, falling back to baseline",
			zap.String("section_id", ctx.SectionID),
			zap.String("difficulty", difficulty.String()),
			zap.Int("stage", ctx.Stage),
			zap.Float64("tau", tau))
		return base
	}
	return tau
}

// BaselineTau is the formula-driven tau from difficulty class, stage, and
// repetition count alone. It is the graceful-degradation floor of the
// pipeline and is always finite and positive.
func (c *Calculator) BaselineTau(difficulty section.Difficulty, repetitionCount, stage int) float64 {
	base, ok := baseTau[difficulty]
	if !ok {
		base = defaultBaseTau
	}
	if stage < 0 {
		stage = 0
	}

	var tau float64
	if stage < overlearningStage {
		tau = base * stageMultipliers[stage]
	} else {
		// Walk the graduated sequence, never dropping below the last
		// learning-regime value for the class.
		idx := stage - overlearningStage
		if idx >= len(graduatedTau) {
			idx = len(graduatedTau) - 1
		}
		last := base * stageMultipliers[len(stageMultipliers)-1]
		tau = math.Max(graduatedTau[idx], last)
	}

	reps := repetitionCount
	if reps < 0 {
		reps = 0
	}
	if reps > repetitionBonusCap {
		reps = repetitionBonusCap
	}
	return tau * (1 + 0.04*float64(reps))
}

// blendStability mixes the formula tau with tracked stability, weighting
// the empirical signal by the amount of review evidence behind it. Long-run
// stability gradually supersedes the baseline but never fully replaces it.
func blendStability(tau float64, stats stability.Stats) float64 {
	weight := math.Min(float64(stats.ReviewCount)/10.0, 0.7)
	blended := (1-weight)*tau + weight*stats.Stability
	if !isUsable(blended) {
		return tau
	}
	return blended
}

func isUsable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
