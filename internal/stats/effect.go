package stats

import "math"

// CohensDIndependent computes Cohen's d for two independent samples using the
// pooled unbiased standard deviation. Returns 0 when either sample has fewer
// than two points or the pooled deviation is zero.
func CohensDIndependent(group1, group2 []float64) float64 {
	n1, n2 := len(group1), len(group2)
	if n1 < 2 || n2 < 2 {
		return 0
	}
	v1 := SampleVariance(group1)
	v2 := SampleVariance(group2)
	pooled := math.Sqrt((float64(n1-1)*v1 + float64(n2-1)*v2) / float64(n1+n2-2))
	if pooled == 0 {
		return 0
	}
	return (Mean(group1) - Mean(group2)) / pooled
}

// CohensDPaired computes Cohen's d for paired differences: mean(diff)/sd(diff).
// Returns 0 when fewer than two differences or zero spread.
func CohensDPaired(diffs []float64) float64 {
	if len(diffs) < 2 {
		return 0
	}
	sd := SampleSD(diffs)
	if sd == 0 {
		return 0
	}
	return Mean(diffs) / sd
}

// CohensDOneSample computes Cohen's d against a reference value mu.
func CohensDOneSample(data []float64, mu float64) float64 {
	if len(data) < 2 {
		return 0
	}
	sd := SampleSD(data)
	if sd == 0 {
		return 0
	}
	return (Mean(data) - mu) / sd
}

// InterpretEffectSize maps |d| onto the conventional labels.
func InterpretEffectSize(d float64) string {
	ad := math.Abs(d)
	switch {
	case ad < 0.2:
		return "negligible"
	case ad < 0.5:
		return "small"
	case ad < 0.8:
		return "medium"
	default:
		return "large"
	}
}
