package stability

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/hartmut/reprise/internal/outcome"
)

// Tracker holds the memory records for one profile's sections. One Tracker
// is constructed per profile session; there is no shared global state.
type Tracker struct {
	records map[string]*Record
	log     *zap.Logger
}

// NewTracker creates an empty tracker. A nil logger is replaced with a
// no-op logger.
func NewTracker(log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		records: make(map[string]*Record),
		log:     log,
	}
}

// get returns the record for a section, creating it lazily with defaults.
func (t *Tracker) get(sectionID string) *Record {
	if r, ok := t.records[sectionID]; ok {
		return r
	}
	r := &Record{
		SectionID:  sectionID,
		Difficulty: DefaultDifficulty,
	}
	t.records[sectionID] = r
	return r
}

// Update recomputes stability and difficulty for the outcome's section.
// Retrievability is computed from the prior stability before any mutation:
// well-retained material reviewed with a strong outcome grows S the most,
// while a weak outcome on poorly-retained material shrinks S and raises D.
func (t *Tracker) Update(o outcome.Outcome) {
	r := t.get(o.SectionID)
	factor := outcome.AdjustmentFactor(o.Score())

	if r.IsNew() {
		r.Stability = clampStability(initialStability(o.Score()))
		r.Difficulty = clampDifficulty(r.Difficulty + 0.05*capped(o.MemoryFailures, 4))
	} else {
		elapsed := o.ElapsedDaysSince(r.LastReview)
		retr := math.Exp(-elapsed / r.Stability)
		r.Stability = clampStability(nextStability(r.Stability, r.Difficulty, retr, factor))
		r.Difficulty = clampDifficulty(nextDifficulty(r.Difficulty, retr, factor, o.MemoryFailures))
	}

	r.LastReview = o.Date
	r.ReviewCount++

	t.log.Debug("stability updated",
		zap.String("section_id", o.SectionID),
		zap.String("performance", o.Performance.String()),
		zap.Float64("stability", r.Stability),
		zap.Float64("difficulty", r.Difficulty),
		zap.Int("review_count", r.ReviewCount))
}

// initialStability seeds S from the first observed score: 1 day for a
// failed first session up to roughly 5 days for an excellent one.
func initialStability(score float64) float64 {
	return 1.0 + (score/10.0)*4.0
}

// nextStability grows or shrinks S for a reviewed section. factor is the
// performance adjustment (monotone in outcome quality, 1.0 neutral).
// Growth is damped by difficulty and boosted by high retrievability;
// shrinkage is amplified when retrievability was already low.
func nextStability(s, d, retr, factor float64) float64 {
	if factor >= 1 {
		growth := (factor - 1) * (1 - d) * (0.5 + 0.5*retr)
		return s * (1 + growth)
	}
	return s * math.Pow(factor, 1+(1-retr))
}

// nextDifficulty raises D on weak outcomes (more when retrievability was
// low, and per in-session forgetting event) and mean-reverts it toward the
// default on strong outcomes.
func nextDifficulty(d, retr, factor float64, memoryFailures int) float64 {
	if factor < 1 {
		return d + (1-retr)*0.08 + 0.02*capped(memoryFailures, 5)
	}
	return d + (DefaultDifficulty-d)*0.05
}

func capped(n, max int) float64 {
	if n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	return float64(n)
}

// HasRecord reports whether the section has any tracked state.
func (t *Tracker) HasRecord(sectionID string) bool {
	_, ok := t.records[sectionID]
	return ok
}

// Stats returns a side-effect-free view of a section's memory state at now.
// An untracked section yields a zero-value Stats with IsNew set.
func (t *Tracker) Stats(sectionID string, now time.Time) Stats {
	r, ok := t.records[sectionID]
	if !ok || r.IsNew() {
		return Stats{IsNew: true, Difficulty: DefaultDifficulty}
	}

	elapsed := now.Sub(r.LastReview).Hours() / 24.0
	if elapsed < 0 {
		elapsed = 0
	}
	return Stats{
		IsNew:               false,
		Stability:           r.Stability,
		Difficulty:          r.Difficulty,
		Retrievability:      math.Exp(-elapsed / r.Stability),
		ReviewCount:         r.ReviewCount,
		DaysSinceLastReview: elapsed,
		LearningProgress:    learningProgress(r),
	}
}

// learningProgress blends durability and review experience into a single
// saturating 0-1 indicator for display.
func learningProgress(r *Record) float64 {
	durability := math.Min(r.Stability/60.0, 1.0)
	experience := math.Min(float64(r.ReviewCount)/12.0, 1.0)
	return 0.6*durability + 0.4*experience
}

// SnapshotData is the persisted form of a tracker.
type SnapshotData struct {
	Records map[string]*Record `json:"records"`
}

// Snapshot exports the tracker state for profile persistence.
func (t *Tracker) Snapshot() *SnapshotData {
	data := &SnapshotData{Records: make(map[string]*Record, len(t.records))}
	for id, r := range t.records {
		cp := *r
		data.Records[id] = &cp
	}
	return data
}

// LoadSnapshot replaces the tracker state with persisted data. A nil
// snapshot leaves the tracker empty.
func (t *Tracker) LoadSnapshot(data *SnapshotData) {
	t.records = make(map[string]*Record)
	if data == nil || data.Records == nil {
		return
	}
	for id, r := range data.Records {
		cp := *r
		cp.SectionID = id
		cp.Stability = clampStability(cp.Stability)
		cp.Difficulty = clampDifficulty(cp.Difficulty)
		if cp.ReviewCount < 0 {
			cp.ReviewCount = 0
		}
		t.records[id] = &cp
	}
}
