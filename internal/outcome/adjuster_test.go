package outcome

import (
	"math"
	"testing"
)

func TestScoreFor(t *testing.T) {
	tests := []struct {
		perf Performance
		want float64
	}{
		{Poor, 2.5},
		{Fair, 5.0},
		{Good, 7.5},
		{Excellent, 9.5},
		{Incomplete, 5.0},
		{Performance(0), 5.0},
		{Performance(42), 5.0},
	}
	for _, tt := range tests {
		if got := ScoreFor(tt.perf); got != tt.want {
			t.Errorf("ScoreFor(%v) = %v, want %v", tt.perf, got, tt.want)
		}
	}
}

func TestAdjustmentFactor_InRange(t *testing.T) {
	for score := -5.0; score <= 15.0; score += 0.25 {
		got := AdjustmentFactor(score)
		if got < MinAdjustmentFactor || got > MaxAdjustmentFactor {
			t.Errorf("AdjustmentFactor(%v) = %v, outside [%v, %v]",
				score, got, MinAdjustmentFactor, MaxAdjustmentFactor)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("AdjustmentFactor(%v) = %v, not finite", score, got)
		}
	}
}

func TestAdjustmentFactor_Monotone(t *testing.T) {
	prev := AdjustmentFactor(0)
	for score := 0.1; score <= 10.0; score += 0.1 {
		got := AdjustmentFactor(score)
		if got < prev {
			t.Fatalf("AdjustmentFactor(%v) = %v, less than %v at lower score", score, got, prev)
		}
		prev = got
	}
}

func TestAdjustmentFactor_PoorShortensExcellentExtends(t *testing.T) {
	poor := AdjustmentFactor(ScoreFor(Poor))
	excellent := AdjustmentFactor(ScoreFor(Excellent))

	if excellent <= poor {
		t.Errorf("excellent factor %v not greater than poor factor %v", excellent, poor)
	}
	if poor >= 1.0 {
		t.Errorf("poor factor %v should shorten the interval (< 1.0)", poor)
	}
	if excellent <= 1.0 {
		t.Errorf("excellent factor %v should extend the interval (> 1.0)", excellent)
	}
}

func TestAdjustmentFactor_SigmoidSaturation(t *testing.T) {
	// Extreme normalized inputs must not overflow the exponent.
	lo := AdjustmentFactor(0)
	hi := AdjustmentFactor(10)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		t.Fatalf("saturation failed: lo=%v hi=%v", lo, hi)
	}
	if hi <= lo {
		t.Errorf("hi=%v not greater than lo=%v", hi, lo)
	}
}

func TestPerformanceMarshalRoundTrip(t *testing.T) {
	for _, p := range []Performance{Poor, Fair, Good, Excellent, Incomplete} {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", p, err)
		}
		var back Performance
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != p {
			t.Errorf("round trip %v -> %q -> %v", p, text, back)
		}
	}
}

func TestPerformanceUnmarshalInvalid(t *testing.T) {
	var p Performance
	if err := p.UnmarshalText([]byte("Mediocre")); err == nil {
		t.Error("expected error for unknown performance name")
	}
	if _, err := Performance(99).MarshalText(); err == nil {
		t.Error("expected error marshalling invalid performance")
	}
}
