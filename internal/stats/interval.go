package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceInterval returns the two-sided parametric confidence interval for
// the mean using the Student-t critical value with n-1 degrees of freedom.
// ok is false when n < 2, where the interval is undefined.
func ConfidenceInterval(data []float64, confidence float64) (lower, upper float64, ok bool) {
	n := len(data)
	if n < 2 {
		return 0, 0, false
	}
	mean := Mean(data)
	sem := SampleSD(data) / math.Sqrt(float64(n))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	tCrit := dist.Quantile((1 + confidence) / 2)
	return mean - tCrit*sem, mean + tCrit*sem, true
}
