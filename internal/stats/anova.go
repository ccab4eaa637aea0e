package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ANOVAResult holds the omnibus one-way ANOVA outcome.
type ANOVAResult struct {
	F          float64
	P          float64
	EtaSquared float64
	DFBetween  int
	DFWithin   int
}

// OneWayANOVA runs a one-way ANOVA across k groups. ok is false when there are
// fewer than two groups or no within-group degrees of freedom. Degenerate
// variance follows fixed sentinels: zero within-group spread with real
// between-group spread gives F=+Inf, p=0; all-equal data gives F=0, p=1,
// eta-squared 0.
func OneWayANOVA(groups [][]float64) (ANOVAResult, bool) {
	k := len(groups)
	if k < 2 {
		return ANOVAResult{}, false
	}

	var total int
	var grandSum float64
	for _, g := range groups {
		total += len(g)
		for _, v := range g {
			grandSum += v
		}
	}
	dfWithin := total - k
	if total == 0 || dfWithin < 1 {
		return ANOVAResult{}, false
	}
	grand := grandSum / float64(total)

	var ssBetween, ssWithin float64
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		m := Mean(g)
		ssBetween += float64(len(g)) * (m - grand) * (m - grand)
		for _, v := range g {
			ssWithin += (v - m) * (v - m)
		}
	}

	res := ANOVAResult{DFBetween: k - 1, DFWithin: dfWithin}
	ssTotal := ssBetween + ssWithin
	if ssTotal > 0 {
		res.EtaSquared = ssBetween / ssTotal
	}

	if ssWithin == 0 {
		if ssBetween > 0 {
			res.F = math.Inf(1)
			res.P = 0
		} else {
			res.F = 0
			res.P = 1
		}
		return res, true
	}

	msBetween := ssBetween / float64(res.DFBetween)
	msWithin := ssWithin / float64(res.DFWithin)
	res.F = msBetween / msWithin

	dist := distuv.F{D1: float64(res.DFBetween), D2: float64(res.DFWithin)}
	res.P = 1 - dist.CDF(res.F)
	return res, true
}
