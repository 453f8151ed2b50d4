package stability

import (
	"math"
	"testing"
	"time"

	"github.com/hartmut/reprise/internal/outcome"
)

var baseDate = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func outcomeAt(sectionID string, perf outcome.Performance, date time.Time) outcome.Outcome {
	return outcome.Outcome{
		SectionID:   sectionID,
		Date:        date,
		Performance: perf,
		Repetitions: 6,
	}
}

func TestUpdate_FirstReviewInitializes(t *testing.T) {
	tr := NewTracker(nil)
	tr.Update(outcomeAt("sec-1", outcome.Good, baseDate))

	stats := tr.Stats("sec-1", baseDate)
	if stats.IsNew {
		t.Fatal("section still new after first review")
	}
	if stats.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", stats.ReviewCount)
	}
	if stats.Stability <= 0 {
		t.Errorf("Stability = %v, want positive", stats.Stability)
	}
	if math.Abs(stats.Difficulty-DefaultDifficulty) > 1e-9 {
		t.Errorf("Difficulty = %v, want default %v", stats.Difficulty, DefaultDifficulty)
	}
}

func TestUpdate_FirstReviewScoresOrderStability(t *testing.T) {
	perfs := []outcome.Performance{outcome.Poor, outcome.Fair, outcome.Good, outcome.Excellent}
	prev := 0.0
	for _, p := range perfs {
		tr := NewTracker(nil)
		tr.Update(outcomeAt("sec-1", p, baseDate))
		s := tr.Stats("sec-1", baseDate).Stability
		if s < prev {
			t.Fatalf("initial stability for %v = %v, below %v for a worse outcome", p, s, prev)
		}
		prev = s
	}
}

// Holding elapsed time fixed, a strictly better outcome never yields lower
// stability and a strictly worse outcome never yields higher stability.
func TestUpdate_MonotoneInOutcomeQuality(t *testing.T) {
	histories := [][]outcome.Performance{
		{outcome.Good},
		{outcome.Good, outcome.Fair},
		{outcome.Excellent, outcome.Poor, outcome.Good},
		{outcome.Fair, outcome.Fair, outcome.Fair, outcome.Fair},
	}
	elapsed := []int{3, 5, 9, 2}

	for hi, history := range histories {
		for _, gap := range elapsed {
			perfs := []outcome.Performance{outcome.Poor, outcome.Fair, outcome.Good, outcome.Excellent}
			prev := -1.0
			for _, final := range perfs {
				tr := NewTracker(nil)
				date := baseDate
				for _, p := range history {
					tr.Update(outcomeAt("sec-1", p, date))
					date = date.AddDate(0, 0, gap)
				}
				tr.Update(outcomeAt("sec-1", final, date))
				s := tr.Stats("sec-1", date).Stability
				if s < prev {
					t.Fatalf("history %d gap %d: final %v gives stability %v < %v from worse outcome",
						hi, gap, final, s, prev)
				}
				prev = s
			}
		}
	}
}

func TestUpdate_WeakOutcomeRaisesDifficulty(t *testing.T) {
	tr := NewTracker(nil)
	tr.Update(outcomeAt("sec-1", outcome.Good, baseDate))
	before := tr.Stats("sec-1", baseDate).Difficulty

	// A poor session after a long gap: low retrievability, weak outcome.
	late := baseDate.AddDate(0, 0, 30)
	o := outcomeAt("sec-1", outcome.Poor, late)
	o.MemoryFailures = 3
	tr.Update(o)

	after := tr.Stats("sec-1", late).Difficulty
	if after <= before {
		t.Errorf("Difficulty %v -> %v, want increase after forgetting", before, after)
	}
}

func TestUpdate_StrongOutcomeGrowsStability(t *testing.T) {
	tr := NewTracker(nil)
	tr.Update(outcomeAt("sec-1", outcome.Good, baseDate))
	before := tr.Stats("sec-1", baseDate).Stability

	next := baseDate.AddDate(0, 0, 2)
	tr.Update(outcomeAt("sec-1", outcome.Excellent, next))
	after := tr.Stats("sec-1", next).Stability

	if after <= before {
		t.Errorf("Stability %v -> %v, want growth after excellent review", before, after)
	}
}

func TestUpdate_PoorOutcomeShrinksStability(t *testing.T) {
	tr := NewTracker(nil)
	tr.Update(outcomeAt("sec-1", outcome.Excellent, baseDate))
	before := tr.Stats("sec-1", baseDate).Stability

	next := baseDate.AddDate(0, 0, 20)
	tr.Update(outcomeAt("sec-1", outcome.Poor, next))
	after := tr.Stats("sec-1", next).Stability

	if after >= before {
		t.Errorf("Stability %v -> %v, want shrink after poor review", before, after)
	}
}

func TestStats_Retrievability(t *testing.T) {
	tr := NewTracker(nil)
	tr.Update(outcomeAt("sec-1", outcome.Good, baseDate))

	s0 := tr.Stats("sec-1", baseDate)
	if s0.Retrievability < 0.99 {
		t.Errorf("Retrievability immediately after review = %v, want ~1", s0.Retrievability)
	}

	later := tr.Stats("sec-1", baseDate.AddDate(0, 0, 14))
	if later.Retrievability >= s0.Retrievability {
		t.Errorf("Retrievability did not decay: %v -> %v", s0.Retrievability, later.Retrievability)
	}
	if later.DaysSinceLastReview < 13.9 || later.DaysSinceLastReview > 14.1 {
		t.Errorf("DaysSinceLastReview = %v, want ~14", later.DaysSinceLastReview)
	}
}

func TestStats_UntrackedSectionIsNew(t *testing.T) {
	tr := NewTracker(nil)
	stats := tr.Stats("nope", baseDate)
	if !stats.IsNew {
		t.Error("untracked section not reported new")
	}
	if stats.Difficulty != DefaultDifficulty {
		t.Errorf("Difficulty = %v, want default", stats.Difficulty)
	}
	if tr.HasRecord("nope") {
		t.Error("Stats created a record; reads must be side-effect-free")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tr := NewTracker(nil)
	tr.Update(outcomeAt("sec-1", outcome.Good, baseDate))
	tr.Update(outcomeAt("sec-2", outcome.Poor, baseDate))
	tr.Update(outcomeAt("sec-1", outcome.Excellent, baseDate.AddDate(0, 0, 3)))

	snap := tr.Snapshot()

	restored := NewTracker(nil)
	restored.LoadSnapshot(snap)

	now := baseDate.AddDate(0, 0, 10)
	for _, id := range []string{"sec-1", "sec-2"} {
		a := tr.Stats(id, now)
		b := restored.Stats(id, now)
		if a != b {
			t.Errorf("stats for %s differ after round trip: %+v vs %+v", id, a, b)
		}
	}
}

func TestLoadSnapshot_NilResets(t *testing.T) {
	tr := NewTracker(nil)
	tr.Update(outcomeAt("sec-1", outcome.Good, baseDate))
	tr.LoadSnapshot(nil)
	if tr.HasRecord("sec-1") {
		t.Error("LoadSnapshot(nil) kept old records")
	}
}
