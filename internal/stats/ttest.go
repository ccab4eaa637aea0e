package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult holds a t statistic with its two-tailed p-value.
type TTestResult struct {
	T          float64
	DF         float64
	PTwoTailed float64
}

// tTwoTailedP converts a t statistic into a two-tailed p-value.
func tTwoTailedP(t, df float64) float64 {
	if df < 1 {
		return 1
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(t))
}

// OneTailedP converts a two-tailed p-value into the directional one: halved
// when the statistic lies in the predicted direction, otherwise 1 - p/2.
func OneTailedP(pTwoTailed float64, inPredictedDirection bool) float64 {
	if inPredictedDirection {
		return pTwoTailed / 2
	}
	return 1 - pTwoTailed/2
}

// OneSampleTTest tests the sample mean against mu. A sample with fewer than
// two points or zero spread yields the sentinel t=0, p=1.
func OneSampleTTest(data []float64, mu float64) TTestResult {
	n := len(data)
	if n < 2 {
		return TTestResult{T: 0, DF: 0, PTwoTailed: 1}
	}
	sd := SampleSD(data)
	if sd == 0 {
		return TTestResult{T: 0, DF: float64(n - 1), PTwoTailed: 1}
	}
	t := (Mean(data) - mu) / (sd / math.Sqrt(float64(n)))
	df := float64(n - 1)
	return TTestResult{T: t, DF: df, PTwoTailed: tTwoTailedP(t, df)}
}

// PairedTTest tests paired samples via their differences. Inputs must be the
// same length; a length mismatch is a caller bug and panics.
func PairedTTest(a, b []float64) TTestResult {
	if len(a) != len(b) {
		panic("stats: paired t-test requires equal-length samples")
	}
	diffs := make([]float64, len(a))
	for i := range a {
		diffs[i] = a[i] - b[i]
	}
	return OneSampleTTest(diffs, 0)
}

// IndependentTTest is the pooled-variance Student's t-test for two independent
// samples (equal variances assumed). Zero pooled variance yields t=0, p=1.
func IndependentTTest(group1, group2 []float64) TTestResult {
	n1, n2 := len(group1), len(group2)
	if n1 < 2 || n2 < 2 {
		return TTestResult{T: 0, DF: 0, PTwoTailed: 1}
	}
	v1 := SampleVariance(group1)
	v2 := SampleVariance(group2)
	df := float64(n1 + n2 - 2)
	pooled := (float64(n1-1)*v1 + float64(n2-1)*v2) / df
	if pooled == 0 {
		return TTestResult{T: 0, DF: df, PTwoTailed: 1}
	}
	se := math.Sqrt(pooled * (1/float64(n1) + 1/float64(n2)))
	t := (Mean(group1) - Mean(group2)) / se
	return TTestResult{T: t, DF: df, PTwoTailed: tTwoTailedP(t, df)}
}

// PearsonTest computes the Pearson correlation and its two-tailed p-value from
// the t approximation with n-2 degrees of freedom. Degenerate inputs (n < 3,
// zero variance on either side) yield the sentinel r=0, p=1. A perfect
// correlation yields p=0.
func PearsonTest(x, y []float64) (r, pTwoTailed float64) {
	if len(x) != len(y) {
		panic("stats: correlation requires equal-length samples")
	}
	n := len(x)
	if n < 3 {
		return 0, 1
	}
	r = stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0, 1
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	denom := 1 - r*r
	if denom <= 0 {
		return r, 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/denom)
	return r, tTwoTailedP(t, df)
}
