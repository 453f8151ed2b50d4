package outcome

import "math"

// Adjustment factor bounds. Poor performance shortens the next interval
// sharply; excellent performance extends it generously but not unboundedly.
const (
	MinAdjustmentFactor = 0.3
	MaxAdjustmentFactor = 2.5
)

// scoreTable maps performance levels to the 0-10 score scale. The table is
// fixed; levels outside it (including Incomplete) fall back to the neutral
// midpoint.
var scoreTable = map[Performance]float64{
	Poor:      2.5,
	Fair:      5.0,
	Good:      7.5,
	Excellent: 9.5,
}

const neutralScore = 5.0

// ScoreFor maps a qualitative performance to a numeric score in [0, 10].
func ScoreFor(p Performance) float64 {
	if s, ok := scoreTable[p]; ok {
		return s
	}
	return neutralScore
}

// AdjustmentFactor maps a 0-10 performance score to a multiplicative
// interval adjustment in [MinAdjustmentFactor, MaxAdjustmentFactor].
// Three signals are blended with fixed 50/30/20 weights: a logistic curve
// around the score midpoint, a confidence reward that grows super-linearly
// for strong performance, and a cognitive-load penalty that floors very
// weak performance.
func AdjustmentFactor(score float64) float64 {
	n := score / 10.0
	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}

	blended := 0.5*sigmoidFactor(n) + 0.3*confidenceFactor(n) + 0.2*cognitiveLoadFactor(n)

	if blended < MinAdjustmentFactor {
		return MinAdjustmentFactor
	}
	if blended > MaxAdjustmentFactor {
		return MaxAdjustmentFactor
	}
	return blended
}

// sigmoidFactor is a logistic curve centered at n=0.5 with steepness 6,
// mapped from [0,1] onto [0.4, 2.0]. The exponent is saturated at +/-50 to
// protect against overflow.
func sigmoidFactor(n float64) float64 {
	x := -6.0 * (n - 0.5)
	if x > 50 {
		x = 50
	}
	if x < -50 {
		x = -50
	}
	s := 1.0 / (1.0 + math.Exp(x))
	return 0.4 + s*1.6
}

// confidenceFactor is linear from 0.6 to 1.0 up to the midpoint, then
// rewards strong performance super-linearly.
func confidenceFactor(n float64) float64 {
	if n <= 0.5 {
		return 0.6 + 0.8*n
	}
	return 1.0 + math.Pow((n-0.5)*2.0, 1.5)*0.8
}

// cognitiveLoadFactor penalizes very low scores with a severity-scaled
// floor down to 0.3, is near-linear through the mid-band, and mildly
// boosts scores above 0.7.
func cognitiveLoadFactor(n float64) float64 {
	switch {
	case n < 0.3:
		return 0.3 + (n/0.3)*0.7
	case n < 0.7:
		return 1.0 + (n-0.3)*0.5
	default:
		return 1.2 + (n-0.7)*1.0
	}
}
