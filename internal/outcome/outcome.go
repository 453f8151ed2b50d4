package outcome

import "time"

// Outcome records a single completed practice session for a section.
// Outcomes are immutable once written; soft deletion happens at the store
// layer and excludes the record from future calibration, not from audit.
type Outcome struct {
	SectionID         string      `json:"section_id"`
	Date              time.Time   `json:"date"`
	Performance       Performance `json:"performance"`
	Repetitions       int         `json:"repetitions"`        // successful repetitions
	ExecutionFailures int         `json:"execution_failures"` // attempts before first success
	MemoryFailures    int         `json:"memory_failures"`    // streak resets during the session
}

// Score returns the derived numeric performance score on the 0-10 scale.
func (o Outcome) Score() float64 {
	return ScoreFor(o.Performance)
}

// ElapsedDaysSince returns the days elapsed from last to the outcome's date.
// Returns 0 for a zero last time or a non-positive span.
func (o Outcome) ElapsedDaysSince(last time.Time) float64 {
	if last.IsZero() {
		return 0
	}
	d := o.Date.Sub(last).Hours() / 24.0
	if d < 0 {
		return 0
	}
	return d
}
