package curve

import (
	"math"
	"testing"
)

func TestIntervalFor_KnownValues(t *testing.T) {
	m := New(nil)

	tests := []struct {
		name      string
		tau       float64
		retention float64
		want      float64
	}{
		{"tau 7 retention 0.7", 7, 0.7, -7 * math.Log(0.7)},
		{"tau 14 retention 0.9", 14, 0.9, -14 * math.Log(0.9)},
		{"tau 1 retention 0.5", 1, 0.5, math.Ln2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.IntervalFor(tt.tau, tt.retention)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IntervalFor(%v, %v) = %v, want %v", tt.tau, tt.retention, got, tt.want)
			}
		})
	}
}

func TestIntervalFor_FinitePositive(t *testing.T) {
	m := New(nil)
	for _, tau := range []float64{0.1, 1, 7, 30, 365} {
		for _, r := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
			got := m.IntervalFor(tau, r)
			if math.IsNaN(got) || math.IsInf(got, 0) || got <= 0 {
				t.Errorf("IntervalFor(%v, %v) = %v, want finite positive", tau, r, got)
			}
		}
	}
}

func TestIntervalFor_IncreasesAsRetentionDecreases(t *testing.T) {
	m := New(nil)
	retentions := []float64{0.95, 0.9, 0.8, 0.7, 0.5, 0.3, 0.1}
	prev := 0.0
	for _, r := range retentions {
		got := m.IntervalFor(10, r)
		if got <= prev {
			t.Fatalf("IntervalFor(10, %v) = %v, not greater than %v at higher retention", r, got, prev)
		}
		prev = got
	}
}

func TestIntervalFor_ClampsRetentionBoundaries(t *testing.T) {
	m := New(nil)

	// Retention at or beyond (0,1) boundaries is clamped, not rejected.
	if got := m.IntervalFor(10, 0); got != m.IntervalFor(10, MinRetention) {
		t.Errorf("IntervalFor(10, 0) = %v, want clamp to MinRetention", got)
	}
	if got := m.IntervalFor(10, 1); got != m.IntervalFor(10, MaxRetention) {
		t.Errorf("IntervalFor(10, 1) = %v, want clamp to MaxRetention", got)
	}
	if got := m.IntervalFor(10, -5); got != m.IntervalFor(10, MinRetention) {
		t.Errorf("IntervalFor(10, -5) = %v, want clamp to MinRetention", got)
	}
}

func TestIntervalFor_DegenerateTauFallsBack(t *testing.T) {
	m := New(nil)

	for _, tau := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		got := m.IntervalFor(tau, 0.7)
		if got != FallbackDays {
			t.Errorf("IntervalFor(%v, 0.7) = %v, want fallback %v", tau, got, FallbackDays)
		}
	}
}

func TestClampToScientificBounds(t *testing.T) {
	m := New(nil)

	tests := []struct {
		name       string
		rawDays    float64
		tau        float64
		wantDays   float64
		wantReason BoundReason
	}{
		{"within bounds", 10, 7, 10, BoundNone},
		{"below floor", 0.2, 7, 1, BoundFloor},
		{"above ceiling", 1000, 400, 365, BoundCeiling},
		{"tau cap binds", 30, 4, 20, BoundTauCap},
		{"tau cap then ceiling", 5000, 200, 365, BoundCeiling},
		{"negative raw", -3, 7, 1, BoundFloor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, reason := m.ClampToScientificBounds(tt.rawDays, tt.tau)
			if days != tt.wantDays {
				t.Errorf("days = %v, want %v", days, tt.wantDays)
			}
			if reason != tt.wantReason {
				t.Errorf("reason = %v, want %v", reason, tt.wantReason)
			}
		})
	}
}

func TestClampToScientificBounds_NeverOutOfRange(t *testing.T) {
	m := New(nil)
	for _, raw := range []float64{-100, 0, 0.5, 1, 17, 365, 366, 1e6} {
		for _, tau := range []float64{0.5, 1, 7, 30, 100, 365} {
			days, _ := m.ClampToScientificBounds(raw, tau)
			if days < FloorDays || days > CeilingDays {
				t.Errorf("clamp(%v, %v) = %v, outside [%v, %v]", raw, tau, days, FloorDays, CeilingDays)
			}
			if cap := TauCapMultiple * tau; cap >= FloorDays && days > cap {
				t.Errorf("clamp(%v, %v) = %v, above tau cap %v", raw, tau, days, cap)
			}
		}
	}
}

func TestInverseRetention(t *testing.T) {
	m := New(nil)

	// Elapsed equal to the computed interval recovers the retention target.
	tau := 12.0
	target := 0.7
	days := m.IntervalFor(tau, target)
	got := m.InverseRetention(days, tau)
	if math.Abs(got-target) > 1e-9 {
		t.Errorf("InverseRetention(%v, %v) = %v, want %v", days, tau, got, target)
	}

	if got := m.InverseRetention(5, 0); got != 0 {
		t.Errorf("InverseRetention with tau 0 = %v, want 0", got)
	}
}

func TestBoundReasonString(t *testing.T) {
	tests := []struct {
		reason BoundReason
		want   string
	}{
		{BoundNone, "none"},
		{BoundFloor, "floor"},
		{BoundCeiling, "ceiling"},
		{BoundTauCap, "tau-cap"},
		{BoundReason(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("BoundReason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
