package adaptive

import (
	"math"
	"testing"
	"time"

	"github.com/hartmut/reprise/internal/section"
	"github.com/hartmut/reprise/internal/stability"
)

var now = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

// fixedCalibration returns a constant factor for every class.
type fixedCalibration struct{ factor float64 }

func (f fixedCalibration) AdjustmentFactor(section.Difficulty) float64 { return f.factor }

// fixedStability returns a constant stats view for every section.
type fixedStability struct{ stats stability.Stats }

func (f fixedStability) Stats(string, time.Time) stability.Stats { return f.stats }

func TestBaselineTau_DifficultyOrdering(t *testing.T) {
	c := NewCalculator(nil, nil, nil)
	easy := c.BaselineTau(section.Easy, 0, 0)
	avg := c.BaselineTau(section.Average, 0, 0)
	hard := c.BaselineTau(section.Difficult, 0, 0)

	if !(easy > avg && avg > hard) {
		t.Errorf("baseline ordering wrong: easy=%v avg=%v hard=%v", easy, avg, hard)
	}
}

func TestBaselineTau_StageGrowthIsMonotone(t *testing.T) {
	c := NewCalculator(nil, nil, nil)
	for _, d := range []section.Difficulty{section.Easy, section.Average, section.Difficult} {
		prev := 0.0
		for stage := 0; stage <= 8; stage++ {
			tau := c.BaselineTau(d, 0, stage)
			if tau < prev {
				t.Fatalf("%v: tau at stage %d = %v, below stage %d value %v", d, stage, tau, stage-1, prev)
			}
			prev = tau
		}
	}
}

func TestBaselineTau_GraduatedSequenceNotImmediateMax(t *testing.T) {
	c := NewCalculator(nil, nil, nil)

	// Entering the overlearning regime must step through the graduated
	// sequence instead of jumping to the terminal value.
	first := c.BaselineTau(section.Difficult, 0, 3)
	last := c.BaselineTau(section.Difficult, 0, 6)
	if first >= last {
		t.Errorf("graduated growth missing: stage 3 tau %v >= stage 6 tau %v", first, last)
	}
	if last != 60 {
		t.Errorf("terminal graduated tau = %v, want 60", last)
	}

	// Beyond the sequence the value stays at the terminal step.
	if got := c.BaselineTau(section.Difficult, 0, 20); got != last {
		t.Errorf("tau at stage 20 = %v, want %v", got, last)
	}
}

func TestBaselineTau_RepetitionBonusCapped(t *testing.T) {
	c := NewCalculator(nil, nil, nil)
	at10 := c.BaselineTau(section.Average, 10, 1)
	at50 := c.BaselineTau(section.Average, 50, 1)
	if at10 != at50 {
		t.Errorf("repetition bonus not capped: reps=10 gives %v, reps=50 gives %v", at10, at50)
	}
	if c.BaselineTau(section.Average, 5, 1) <= c.BaselineTau(section.Average, 0, 1) {
		t.Error("repetitions should raise tau below the cap")
	}
}

func TestBaselineTau_AlwaysFinitePositive(t *testing.T) {
	c := NewCalculator(nil, nil, nil)
	for _, d := range []section.Difficulty{section.Easy, section.Average, section.Difficult, section.Difficulty(99)} {
		for _, stage := range []int{-3, 0, 1, 2, 3, 7, 100} {
			for _, reps := range []int{-5, 0, 6, 1000} {
				tau := c.BaselineTau(d, reps, stage)
				if !(tau > 0) || math.IsInf(tau, 0) || math.IsNaN(tau) {
					t.Errorf("BaselineTau(%v, %d, %d) = %v", d, reps, stage, tau)
				}
			}
		}
	}
}

func TestIntegratedTau_AppliesCalibration(t *testing.T) {
	base := NewCalculator(nil, nil, nil).BaselineTau(section.Average, 3, 1)

	c := NewCalculator(fixedCalibration{factor: 1.5}, nil, nil)
	got := c.IntegratedTau(section.Average, 3, Context{Stage: 1, Now: now})
	want := base * 1.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("IntegratedTau = %v, want %v", got, want)
	}
}

func TestIntegratedTau_BlendsStability(t *testing.T) {
	stats := stability.Stats{
		IsNew:       false,
		Stability:   40,
		ReviewCount: 20, // full blend weight
	}
	c := NewCalculator(nil, fixedStability{stats: stats}, nil)

	base := c.BaselineTau(section.Average, 0, 1)
	got := c.IntegratedTau(section.Average, 0, Context{SectionID: "sec-1", Stage: 1, Now: now})

	// Weight saturates at 0.7: tau = 0.3*base + 0.7*S.
	want := 0.3*base + 0.7*40
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("IntegratedTau = %v, want blended %v", got, want)
	}
	if got <= base {
		t.Errorf("high tracked stability should raise tau above baseline %v, got %v", base, got)
	}
}

func TestIntegratedTau_NewSectionSkipsBlend(t *testing.T) {
	c := NewCalculator(nil, fixedStability{stats: stability.Stats{IsNew: true}}, nil)
	got := c.IntegratedTau(section.Easy, 0, Context{SectionID: "sec-1", Now: now})
	want := c.BaselineTau(section.Easy, 0, 0)
	if got != want {
		t.Errorf("IntegratedTau = %v, want baseline %v for a new section", got, want)
	}
}

func TestIntegratedTau_DegenerateSubsystemsFallBack(t *testing.T) {
	tests := []struct {
		name string
		cal  CalibrationSource
		stab StabilitySource
	}{
		{"nan calibration", fixedCalibration{factor: math.NaN()}, nil},
		{"zero calibration", fixedCalibration{factor: 0}, nil},
		{"negative calibration", fixedCalibration{factor: -2}, nil},
		{"inf stability", nil, fixedStability{stats: stability.Stats{Stability: math.Inf(1), ReviewCount: 30}}},
		{"nothing available", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCalculator(tt.cal, tt.stab, nil)
			got := c.IntegratedTau(section.Average, 2, Context{SectionID: "sec-1", Stage: 2, Now: now})
			if !(got > 0) || math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("IntegratedTau = %v, must be finite positive", got)
			}
		})
	}
}

func TestIntegratedTau_DeterministicForSameInputs(t *testing.T) {
	c := NewCalculator(fixedCalibration{factor: 1.2}, nil, nil)
	ctx := Context{SectionID: "sec-1", Stage: 2, Now: now}
	a := c.IntegratedTau(section.Difficult, 4, ctx)
	b := c.IntegratedTau(section.Difficult, 4, ctx)
	if a != b {
		t.Errorf("same inputs produced %v and %v", a, b)
	}
}
