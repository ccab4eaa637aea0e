package analysis

import (
	"fmt"
	"sort"

	"sycobench/domain/hypothesis"
	"sycobench/internal/stats"
)

// RankModels builds the exploratory cross-model comparison from per-model
// sycophancy indices. It reports pairwise index differences and a descending
// ranking; being exploratory it carries no p-value of any kind. Fewer than two
// models yields a structured insufficient-data result.
func (a *Analyzer) RankModels(indices map[string]hypothesis.ModelIndex) hypothesis.CrossModelResult {
	res := hypothesis.CrossModelResult{
		Test:        "Cross-model SI comparison (exploratory)",
		Form:        "ranking",
		Exploratory: true,
	}
	if len(indices) < 2 {
		res.Error = fmt.Sprintf("need at least 2 models for comparison, have %d", len(indices))
		return res
	}

	models := make([]string, 0, len(indices))
	for m := range indices {
		models = append(models, m)
	}
	sort.Strings(models)

	comparisons := make(map[string]hypothesis.IndexComparison)
	for i, m1 := range models {
		for _, m2 := range models[i+1:] {
			si1 := indices[m1].SycophancyIndex
			si2 := indices[m2].SycophancyIndex
			more := m2
			if si1 > si2 {
				more = m1
			}
			comparisons[m1+"_vs_"+m2] = hypothesis.IndexComparison{
				Difference:      si1 - si2,
				MoreSycophantic: more,
			}
		}
	}

	ranking := make([]hypothesis.RankedModel, 0, len(models))
	for _, m := range models {
		ranking = append(ranking, hypothesis.RankedModel{
			Model:           m,
			SycophancyIndex: indices[m].SycophancyIndex,
			N:               indices[m].N,
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].SycophancyIndex > ranking[j].SycophancyIndex
	})

	res.ModelIndices = indices
	res.PairwiseComparisons = comparisons
	res.Ranking = ranking
	res.MostSycophantic = ranking[0].Model
	res.LeastSycophantic = ranking[len(ranking)-1].Model
	res.Interpretation = fmt.Sprintf("%s shows the highest sycophancy index, %s the lowest (exploratory, no inferential test)",
		res.MostSycophantic, res.LeastSycophantic)
	return res
}

// CompareGroups runs the confirmatory form of the cross-model question: a
// one-way ANOVA over per-group score samples with eta-squared for effect size.
// Post-hoc pairwise t-tests are computed only when the omnibus test is
// significant; an insignificant omnibus leaves PostHoc nil.
func (a *Analyzer) CompareGroups(groups map[string][]float64) hypothesis.CrossModelResult {
	res := hypothesis.CrossModelResult{
		Test:  "One-way ANOVA (cross-model scores)",
		Form:  "anova",
		Alpha: a.Alpha,
	}
	if len(groups) < 2 {
		res.Error = fmt.Sprintf("need at least 2 groups for comparison, have %d", len(groups))
		return res
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	samples := make([][]float64, len(names))
	for i, name := range names {
		samples[i] = groups[name]
	}

	anova, ok := stats.OneWayANOVA(samples)
	if !ok {
		res.Error = "insufficient data: no within-group degrees of freedom"
		return res
	}

	res.NGroups = len(names)
	res.Groups = names
	res.FStatistic = anova.F
	res.PValue = anova.P
	res.EtaSquared = anova.EtaSquared
	res.RejectNull = anova.P < a.Alpha

	if res.RejectNull {
		res.PostHoc = make(map[string]hypothesis.PairwiseTest)
		for i, m1 := range names {
			for _, m2 := range names[i+1:] {
				tt := stats.IndependentTTest(groups[m1], groups[m2])
				res.PostHoc[m1+"_vs_"+m2] = hypothesis.PairwiseTest{
					TStatistic: tt.T,
					PValue:     tt.PTwoTailed,
					CohensD:    stats.CohensDIndependent(groups[m1], groups[m2]),
				}
			}
		}
		res.Interpretation = "Group means differ significantly"
	} else {
		res.Interpretation = "No significant difference between group means"
	}
	return res
}
