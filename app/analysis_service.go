package app

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"sycobench/domain/core"
	"sycobench/domain/hypothesis"
	"sycobench/domain/trial"
	"sycobench/internal/analysis"
	"sycobench/internal/keywords"
	"sycobench/ports"
)

// AnalysisService orchestrates a full analysis: embed what is missing, derive
// metrics, run the per-model hypothesis tests in parallel and assemble the
// report.
type AnalysisService struct {
	embedder ports.Embedder
	analyzer *analysis.Analyzer
	pairedH2 bool
}

// NewAnalysisService creates an orchestrator. embedder may be nil when all
// trials already carry embeddings. pairedH2 selects stimulus-matched pairing
// for the adversarial contrast.
func NewAnalysisService(embedder ports.Embedder, pairedH2 bool) *AnalysisService {
	return &AnalysisService{
		embedder: ports.AsCachingEmbedder(embedder),
		analyzer: analysis.NewAnalyzer(),
		pairedH2: pairedH2,
	}
}

// Analyze runs the full pipeline over an experiment batch and returns the
// report. Per-model insufficiency surfaces inside the report, not as an error.
func (s *AnalysisService) Analyze(ctx context.Context, exp *trial.Experiment) (*hypothesis.Report, error) {
	valid := exp.SuccessfulTrials()
	log.Printf("[AnalysisService] analyzing %d/%d successful trials", len(valid), len(exp.Trials))

	enriched := make([]trial.Trial, 0, len(valid))
	for _, t := range valid {
		t, err := s.ensureEmbeddings(ctx, t)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, t.WithMetrics(analysis.ComputeTrialMetrics(t)))
	}

	byModel := make(map[string][]trial.Trial)
	for _, t := range enriched {
		byModel[t.ModelKey] = append(byModel[t.ModelKey], t)
	}

	report := &hypothesis.Report{
		ID: core.ReportID(core.NewID()),
		Metadata: hypothesis.ReportMetadata{
			AnalyzedAt:      core.Now(),
			ExperimentID:    exp.ID.String(),
			NTrialsAnalyzed: len(enriched),
			Models:          exp.Models(),
		},
		ByModel: make(map[string]hypothesis.ModelReport, len(byModel)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for model, trials := range byModel {
		model, trials := model, trials
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mr := hypothesis.ModelReport{
				Sycophancy:  s.analyzer.TestSycophancy(trials),
				Adversarial: s.analyzer.TestAdversarial(trials, s.pairedH2),
			}
			mu.Lock()
			report.ByModel[model] = mr
			mu.Unlock()
			log.Printf("[AnalysisService] %s: SI=%.3f reject=%v", model, mr.Sycophancy.SycophancyIndex, mr.Sycophancy.RejectNull)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	indices := make(map[string]hypothesis.ModelIndex)
	for model, mr := range report.ByModel {
		if mr.Sycophancy.Insufficient() {
			continue
		}
		indices[model] = hypothesis.ModelIndex{
			SycophancyIndex: mr.Sycophancy.SycophancyIndex,
			N:               mr.Sycophancy.NTotal,
			CohensD:         mr.Sycophancy.CohensD,
		}
	}
	cross := s.analyzer.RankModels(indices)
	report.CrossModel = &cross

	return report, nil
}

// CompareScores runs the confirmatory ANOVA form of the cross-model question
// over arbitrary per-group score samples.
func (s *AnalysisService) CompareScores(groups map[string][]float64) hypothesis.CrossModelResult {
	return s.analyzer.CompareGroups(groups)
}

// KeywordSummary runs the secondary keyword coding over a batch.
func (s *AnalysisService) KeywordSummary(exp *trial.Experiment) map[trial.Condition]keywords.ConditionSummary {
	return keywords.Summarize(exp.SuccessfulTrials())
}

// ensureEmbeddings fills in any missing vectors via the embedder. Trials
// missing vectors with no embedder configured stay as they are and fall out
// as invalid metrics.
func (s *AnalysisService) ensureEmbeddings(ctx context.Context, t trial.Trial) (trial.Trial, error) {
	if t.HasEmbeddings() || s.embedder == nil {
		return t, nil
	}
	var err error
	if len(t.ResponseEmbedding) == 0 && t.Response != "" {
		if t.ResponseEmbedding, err = s.embedder.Embed(ctx, t.Response); err != nil {
			return t, err
		}
	}
	if len(t.ProEmbedding) == 0 && t.JustificationPro != "" {
		if t.ProEmbedding, err = s.embedder.Embed(ctx, t.JustificationPro); err != nil {
			return t, err
		}
	}
	if len(t.ConEmbedding) == 0 && t.JustificationCon != "" {
		if t.ConEmbedding, err = s.embedder.Embed(ctx, t.JustificationCon); err != nil {
			return t, err
		}
	}
	return t, nil
}
