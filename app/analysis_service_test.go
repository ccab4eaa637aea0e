package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sycobench/adapters/llm"
	"sycobench/domain/core"
	"sycobench/domain/trial"
	"sycobench/internal/testkit"
)

func syntheticExperiment(perCondition int) *trial.Experiment {
	trials := append(testkit.Trials("claude", perCondition, true),
		testkit.Trials("gpt5", perCondition, false)...)
	return &trial.Experiment{
		ID: core.ExperimentID(core.NewID()),
		Metadata: trial.ExperimentMetadata{
			Timestamp:     core.Now(),
			Models:        []string{"claude", "gpt5"},
			NPerCondition: perCondition,
			TotalTrials:   len(trials),
		},
		Trials: trials,
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	svc := NewAnalysisService(nil, false)
	report, err := svc.Analyze(context.Background(), syntheticExperiment(10))
	require.NoError(t, err)

	require.Len(t, report.ByModel, 2)

	claude := report.ByModel["claude"]
	assert.True(t, claude.Sycophancy.RejectNull, "engineered sycophancy should be detected")
	assert.True(t, claude.Adversarial.RejectNull, "engineered adversarial effect should be detected")

	gpt := report.ByModel["gpt5"]
	assert.False(t, gpt.Sycophancy.RejectNull, "flat model should not be flagged")

	require.NotNil(t, report.CrossModel)
	assert.Equal(t, "ranking", report.CrossModel.Form)
	assert.Equal(t, "claude", report.CrossModel.MostSycophantic)
	assert.Equal(t, 80, report.Metadata.NTrialsAnalyzed)
}

func TestAnalyzeEmbedsMissingVectors(t *testing.T) {
	exp := syntheticExperiment(5)
	// Strip embeddings; the mock embedder must regenerate them.
	for i := range exp.Trials {
		exp.Trials[i].ResponseEmbedding = nil
		exp.Trials[i].ProEmbedding = nil
		exp.Trials[i].ConEmbedding = nil
		exp.Trials[i].JustificationPro = "pro justification"
		exp.Trials[i].JustificationCon = "con justification"
	}

	svc := NewAnalysisService(llm.NewMockEmbedder(16), false)
	report, err := svc.Analyze(context.Background(), exp)
	require.NoError(t, err)

	// With hash-based mock embeddings the scores are meaningless, but every
	// trial must still come out with valid metrics rather than being dropped.
	for model, mr := range report.ByModel {
		assert.False(t, mr.Sycophancy.Insufficient(), "model %s should have enough valid trials", model)
	}
}

func TestAnalyzeSkipsFailedTrials(t *testing.T) {
	exp := syntheticExperiment(5)
	exp.Trials = append(exp.Trials, testkit.InvalidTrial("claude", trial.SycophancyPro))

	svc := NewAnalysisService(nil, false)
	report, err := svc.Analyze(context.Background(), exp)
	require.NoError(t, err)
	assert.Equal(t, 40, report.Metadata.NTrialsAnalyzed, "failed trial must be excluded")
}

func TestAnalyzePairedMode(t *testing.T) {
	svc := NewAnalysisService(nil, true)
	report, err := svc.Analyze(context.Background(), syntheticExperiment(10))
	require.NoError(t, err)
	assert.Equal(t, "paired", report.ByModel["claude"].Adversarial.Mode)
	assert.Equal(t, 5, report.ByModel["claude"].Adversarial.NPairs)
}

func TestCompareScores(t *testing.T) {
	svc := NewAnalysisService(nil, false)
	res := svc.CompareScores(map[string][]float64{
		"a": {0.9, 1.0, 0.95, 1.05},
		"b": {0.1, 0.15, 0.05, 0.12},
	})
	assert.Equal(t, "anova", res.Form)
	assert.True(t, res.RejectNull)
}
