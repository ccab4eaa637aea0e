// Package stats implements the statistical primitives behind the hypothesis
// engines: descriptive summaries, effect sizes, t-tests, Pearson correlation,
// one-way ANOVA and confidence intervals. Degenerate inputs (empty samples,
// zero variance) produce defined sentinel values, never panics; callers that
// need to distinguish "undefined" receive an ok bool.
package stats

import (
	mstats "github.com/montanaflynn/stats"
)

// Mean returns the arithmetic mean, 0 for an empty sample.
func Mean(data []float64) float64 {
	m, err := mstats.Mean(mstats.Float64Data(data))
	if err != nil {
		return 0
	}
	return m
}

// SampleVariance returns the unbiased (n-1) variance, 0 when n < 2.
func SampleVariance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	v, err := mstats.SampleVariance(mstats.Float64Data(data))
	if err != nil {
		return 0
	}
	return v
}

// SampleSD returns the unbiased sample standard deviation, 0 when n < 2.
func SampleSD(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	sd, err := mstats.StandardDeviationSample(mstats.Float64Data(data))
	if err != nil {
		return 0
	}
	return sd
}

// Percentile returns the p-th percentile (0 < p <= 100), 0 on empty input.
func Percentile(data []float64, p float64) float64 {
	v, err := mstats.Percentile(mstats.Float64Data(data), p)
	if err != nil {
		return 0
	}
	return v
}
