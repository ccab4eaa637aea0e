package analysis

import (
	"math"
	"testing"

	"sycobench/domain/trial"
	"sycobench/internal/testkit"
)

func TestCosineSimilarity(t *testing.T) {
	a := []float64{1, 0, 0}
	if got := CosineSimilarity(a, a); math.Abs(got-1) > 1e-12 {
		t.Errorf("cos(a,a) = %v, want 1", got)
	}
	b := []float64{0, 1, 0}
	if got := CosineSimilarity(a, b); math.Abs(got) > 1e-12 {
		t.Errorf("orthogonal vectors should give 0, got %v", got)
	}
	neg := []float64{-1, 0, 0}
	if got := CosineSimilarity(a, neg); math.Abs(got+1) > 1e-12 {
		t.Errorf("opposite vectors should give -1, got %v", got)
	}
	// Scale invariance.
	scaled := []float64{7, 0, 0}
	if got := CosineSimilarity(a, scaled); math.Abs(got-1) > 1e-12 {
		t.Errorf("cosine must ignore magnitude, got %v", got)
	}
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	if got := CosineSimilarity([]float64{0, 0}, []float64{1, 2}); got != 0 {
		t.Errorf("zero-norm vector should give 0, got %v", got)
	}
}

func TestCosineSimilarityLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched vector lengths")
		}
	}()
	CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3})
}

func TestComputeTrialMetrics(t *testing.T) {
	tr := trial.Trial{
		ResponseEmbedding: testkit.UnitVec(1, 0),
		ProEmbedding:      testkit.ProReference(),
		ConEmbedding:      testkit.ConReference(),
	}
	m := ComputeTrialMetrics(tr)
	if !m.Valid {
		t.Fatal("complete trial should yield valid metrics")
	}
	if math.Abs(m.SimPro-1) > 1e-12 || math.Abs(m.SimCon) > 1e-12 {
		t.Errorf("unexpected similarities: pro=%v con=%v", m.SimPro, m.SimCon)
	}
	if math.Abs(m.AlignmentScore-1) > 1e-12 {
		t.Errorf("alignment = %v, want 1", m.AlignmentScore)
	}
	if m.ChallengeScore() != m.SimCon {
		t.Error("challenge score must equal sim_con")
	}
}

func TestComputeTrialMetricsMissingInput(t *testing.T) {
	tr := trial.Trial{
		ProEmbedding: testkit.ProReference(),
		ConEmbedding: testkit.ConReference(),
	}
	if m := ComputeTrialMetrics(tr); m.Valid {
		t.Error("missing response embedding should give invalid metrics")
	}
}
