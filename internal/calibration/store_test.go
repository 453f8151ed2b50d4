package calibration

import (
	"encoding/json"
	"testing"

	"github.com/hartmut/reprise/internal/section"
)

func TestAdjustmentFactor_UncalibratedIsNeutral(t *testing.T) {
	s := NewStore(nil)
	for _, class := range []section.Difficulty{section.Easy, section.Average, section.Difficult} {
		if got := s.AdjustmentFactor(class); got != 1.0 {
			t.Errorf("AdjustmentFactor(%v) = %v, want 1.0 before any data", class, got)
		}
	}
}

func TestRecordOutcome_FastForgetterTrendsBelowOne(t *testing.T) {
	s := NewStore(nil)

	// Repeated poor recall well before the baseline model predicts decay.
	for i := 0; i < 20; i++ {
		s.RecordOutcome(section.Average, Observation{Score: 2.5, ElapsedDays: 2, BaselineTau: 14})
	}

	got := s.AdjustmentFactor(section.Average)
	if got >= 1.0 {
		t.Errorf("AdjustmentFactor = %v, want < 1.0 for a fast forgetter", got)
	}
}

func TestRecordOutcome_SlowForgetterTrendsAboveOne(t *testing.T) {
	s := NewStore(nil)

	// Strong recall long after the baseline predicts near-total decay.
	for i := 0; i < 20; i++ {
		s.RecordOutcome(section.Average, Observation{Score: 9.5, ElapsedDays: 21, BaselineTau: 7})
	}

	got := s.AdjustmentFactor(section.Average)
	if got <= 1.0 {
		t.Errorf("AdjustmentFactor = %v, want > 1.0 for a slow forgetter", got)
	}
}

func TestConfidence_MonotoneAndSaturating(t *testing.T) {
	s := NewStore(nil)
	prev := 0.0
	var gains []float64
	for i := 0; i < 60; i++ {
		s.RecordOutcome(section.Easy, Observation{Score: 7.5, ElapsedDays: 3, BaselineTau: 7})
		c := s.CalibrationStats().ByClass[section.Easy].Confidence
		if c < prev {
			t.Fatalf("confidence decreased: %v -> %v at session %d", prev, c, i+1)
		}
		if c >= 1.0 {
			t.Fatalf("confidence %v reached 1.0 at session %d, must saturate below", c, i+1)
		}
		gains = append(gains, c-prev)
		prev = c
	}
	// Diminishing returns: late gains smaller than early gains.
	if gains[50] >= gains[1] {
		t.Errorf("confidence gain did not diminish: session 2 %v vs session 51 %v", gains[1], gains[50])
	}
}

func TestRecordOutcome_FactorStaysBounded(t *testing.T) {
	s := NewStore(nil)
	for i := 0; i < 500; i++ {
		s.RecordOutcome(section.Difficult, Observation{Score: 0, ElapsedDays: 1, BaselineTau: 60})
	}
	st := s.CalibrationStats().ByClass[section.Difficult]
	if st.Factor < 0.5 || st.Factor > 2.0 {
		t.Errorf("Factor = %v, outside [0.5, 2.0]", st.Factor)
	}
}

func TestRecordOutcome_NoSignalStillCountsSession(t *testing.T) {
	s := NewStore(nil)
	s.RecordOutcome(section.Average, Observation{Score: 7.5, ElapsedDays: 0, BaselineTau: 7})

	st := s.CalibrationStats()
	if st.TotalSessions != 1 {
		t.Errorf("TotalSessions = %d, want 1", st.TotalSessions)
	}
	adj := st.ByClass[section.Average]
	if adj.Factor != 1.0 {
		t.Errorf("Factor = %v, want untouched 1.0 without a decay signal", adj.Factor)
	}
	if adj.Sessions != 1 {
		t.Errorf("Sessions = %d, want 1", adj.Sessions)
	}
}

func TestCalibrationStats(t *testing.T) {
	s := NewStore(nil)
	if s.CalibrationStats().IsCalibrated {
		t.Error("empty store reported calibrated")
	}

	for i := 0; i < calibratedSessions; i++ {
		s.RecordOutcome(section.Easy, Observation{Score: 7.5, ElapsedDays: 3, BaselineTau: 7})
	}
	st := s.CalibrationStats()
	if !st.IsCalibrated {
		t.Errorf("store not calibrated after %d sessions", calibratedSessions)
	}
	if st.TotalSessions != calibratedSessions {
		t.Errorf("TotalSessions = %d, want %d", st.TotalSessions, calibratedSessions)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewStore(nil)
	for i := 0; i < 15; i++ {
		s.RecordOutcome(section.Average, Observation{Score: 9.5, ElapsedDays: 10, BaselineTau: 7})
		s.RecordOutcome(section.Difficult, Observation{Score: 2.5, ElapsedDays: 2, BaselineTau: 14})
	}

	snap := s.Snapshot()

	// The snapshot must survive JSON serialization unchanged.
	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var decoded SnapshotData
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	restored := NewStore(nil)
	restored.LoadSnapshot(&decoded)

	for _, class := range []section.Difficulty{section.Average, section.Difficult} {
		if got, want := restored.AdjustmentFactor(class), s.AdjustmentFactor(class); got != want {
			t.Errorf("AdjustmentFactor(%v) after round trip = %v, want %v", class, got, want)
		}
	}
	if got, want := restored.CalibrationStats().TotalSessions, s.CalibrationStats().TotalSessions; got != want {
		t.Errorf("TotalSessions after round trip = %d, want %d", got, want)
	}
}

func TestLoadSnapshot_ZeroFactorNormalized(t *testing.T) {
	s := NewStore(nil)
	s.LoadSnapshot(&SnapshotData{
		ByClass: map[section.Difficulty]*Adjustment{
			section.Easy: {Factor: 0, Confidence: 0.2, Sessions: 3},
		},
	})
	// A zero factor in persisted data is a legacy artifact, not a real
	// adjustment; it must not zero out scheduled intervals.
	if got := s.AdjustmentFactor(section.Easy); got <= 0 {
		t.Errorf("AdjustmentFactor = %v, want positive after normalization", got)
	}
}
