package stats

import (
	"math/rand"
)

// DefaultBootstrapSeed fixes the resampling stream so repeated analyses of the
// same data report identical intervals.
const DefaultBootstrapSeed int64 = 42

// BootstrapCI estimates a percentile confidence interval for an arbitrary
// statistic by resampling with replacement. The point estimate is always the
// statistic evaluated on the original sample, not a resample average. ok is
// false for an empty sample.
func BootstrapCI(data []float64, statistic func([]float64) float64, nBootstrap int, confidence float64) (point, lower, upper float64, ok bool) {
	return BootstrapCISeeded(data, statistic, nBootstrap, confidence, DefaultBootstrapSeed)
}

// BootstrapCISeeded is BootstrapCI with an explicit seed.
func BootstrapCISeeded(data []float64, statistic func([]float64) float64, nBootstrap int, confidence float64, seed int64) (point, lower, upper float64, ok bool) {
	n := len(data)
	if n == 0 || nBootstrap < 1 {
		return 0, 0, 0, false
	}

	point = statistic(data)

	rng := rand.New(rand.NewSource(seed))
	resample := make([]float64, n)
	estimates := make([]float64, nBootstrap)
	for i := 0; i < nBootstrap; i++ {
		for j := 0; j < n; j++ {
			resample[j] = data[rng.Intn(n)]
		}
		estimates[i] = statistic(resample)
	}

	alpha := 1 - confidence
	lower = Percentile(estimates, 100*alpha/2)
	upper = Percentile(estimates, 100*(1-alpha/2))
	return point, lower, upper, true
}
