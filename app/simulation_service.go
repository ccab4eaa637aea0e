package app

import (
	"log"

	"sycobench/adapters/export"
	"sycobench/domain/hypothesis"
	"sycobench/internal/analysis"
	"sycobench/internal/simulate"
)

// SimulationService runs the Monte Carlo belief-shift simulation and the
// confirmatory group comparison over its output.
type SimulationService struct {
	analyzer *analysis.Analyzer
}

// NewSimulationService creates a simulation runner.
func NewSimulationService() *SimulationService {
	return &SimulationService{analyzer: analysis.NewAnalyzer()}
}

// Run draws the simulated data, compares the groups with a one-way ANOVA and,
// when outDir is non-empty, writes the CSV artifacts.
func (s *SimulationService) Run(seed int64, nPerGroup int, outDir string) (simulate.Result, hypothesis.CrossModelResult, error) {
	log.Printf("[SimulationService] seed=%d n_per_group=%d", seed, nPerGroup)
	res := simulate.Run(seed, nPerGroup)

	for _, sum := range res.Summaries {
		log.Printf("[SimulationService] %s: mean=%+.3f sd=%.3f d=%.3f (%s) t=%.3f p=%.4f %s",
			sum.Group, sum.Mean, sum.SD, sum.CohensD, sum.EffectLabel, sum.TStatistic, sum.PValue, sum.Significance)
	}

	comparison := s.analyzer.CompareGroups(res.ShiftsByGroup())
	log.Printf("[SimulationService] omnibus: F=%.3f p=%.4f eta2=%.3f reject=%v",
		comparison.FStatistic, comparison.PValue, comparison.EtaSquared, comparison.RejectNull)

	if outDir != "" {
		dataPath, summaryPath, err := export.SaveSimulation(outDir, res)
		if err != nil {
			return res, comparison, err
		}
		log.Printf("[SimulationService] wrote %s and %s", dataPath, summaryPath)
	}
	return res, comparison, nil
}
