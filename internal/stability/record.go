// Package stability maintains a per-section three-parameter memory model:
// stability S (a half-life-like durability estimate in days), difficulty D
// (resistance to stability growth), and retrievability R (instantaneous
// estimated recall probability given elapsed time).
package stability

import "time"

// Model constants. The exact coefficients are a tuning surface; the
// contract is that better outcomes never decrease S and worse outcomes
// never increase it, holding elapsed time fixed.
const (
	// DefaultDifficulty is the initial difficulty for an untracked section.
	DefaultDifficulty = 0.30

	minStability  = 0.1
	maxStability  = 3650.0
	minDifficulty = 0.05
	maxDifficulty = 0.95
)

// Record is the tracked memory state for one section.
type Record struct {
	SectionID   string    `json:"section_id"`
	Stability   float64   `json:"stability"`  // days
	Difficulty  float64   `json:"difficulty"` // 0-1
	LastReview  time.Time `json:"last_review"`
	ReviewCount int       `json:"review_count"`
}

// IsNew reports whether the section has never been reviewed.
func (r *Record) IsNew() bool {
	return r.ReviewCount == 0
}

// Stats is a side-effect-free view of a section's memory state.
type Stats struct {
	IsNew               bool
	Stability           float64
	Difficulty          float64
	Retrievability      float64
	ReviewCount         int
	DaysSinceLastReview float64
	LearningProgress    float64 // 0-1, saturating
}

func clampStability(s float64) float64 {
	if s < minStability {
		return minStability
	}
	if s > maxStability {
		return maxStability
	}
	return s
}

func clampDifficulty(d float64) float64 {
	if d < minDifficulty {
		return minDifficulty
	}
	if d > maxDifficulty {
		return maxDifficulty
	}
	return d
}
