package analysis

import (
	"testing"

	"sycobench/domain/trial"
	"sycobench/internal/testkit"
)

func TestAdversarialEffectIndependent(t *testing.T) {
	trials := enrich(testkit.Trials("gpt5", 10, true))
	res := NewAnalyzer().TestAdversarial(trials, false)

	if res.Insufficient() {
		t.Fatalf("unexpected insufficient-data result: %s", res.Error)
	}
	if res.Mode != "independent" {
		t.Errorf("mode = %q, want independent", res.Mode)
	}
	if res.Difference <= 0 {
		t.Errorf("adversarial responses should score higher, diff = %v", res.Difference)
	}
	if res.CohensD <= 0 {
		t.Errorf("expected positive d, got %v", res.CohensD)
	}
	if !res.RejectNull {
		t.Errorf("clear shift should reject the null (t=%v, p=%v)", res.TStatistic, res.PValueOneTailed)
	}
	if res.PValueOneTailed < 0 || res.PValueOneTailed > 1 {
		t.Errorf("p out of range: %v", res.PValueOneTailed)
	}
}

func TestAdversarialNoEffect(t *testing.T) {
	trials := enrich(testkit.Trials("gpt5", 10, false))
	res := NewAnalyzer().TestAdversarial(trials, false)

	if res.Insufficient() {
		t.Fatalf("unexpected insufficient-data result: %s", res.Error)
	}
	if res.RejectNull {
		t.Errorf("identical conditions should not reject the null (diff=%v, p=%v)", res.Difference, res.PValueOneTailed)
	}
	if res.Interpretation != "No significant adversarial effect detected" {
		t.Errorf("unexpected interpretation: %q", res.Interpretation)
	}
}

func TestAdversarialPairedByStimulus(t *testing.T) {
	trials := enrich(testkit.Trials("gpt5", 10, true))
	res := NewAnalyzer().TestAdversarial(trials, true)

	if res.Insufficient() {
		t.Fatalf("unexpected insufficient-data result: %s", res.Error)
	}
	if res.Mode != "paired" {
		t.Errorf("mode = %q, want paired", res.Mode)
	}
	// 10 trials per condition cycle over 5 stimuli; the first occurrence per
	// stimulus wins, so exactly 5 matched pairs remain.
	if res.NPairs != 5 {
		t.Errorf("n_pairs = %d, want 5", res.NPairs)
	}
	if res.Difference <= 0 {
		t.Errorf("adversarial responses should score higher, diff = %v", res.Difference)
	}
}

func TestAdversarialPairedUnmatchedStimuliDropped(t *testing.T) {
	trials := enrich(testkit.Trials("gpt5", 4, true))
	// An adversarial trial for a stimulus never seen in the neutral condition
	// must not contribute a pair.
	extra := testkit.Trials("gpt5", 1, true)[3:4] // one adversarial trial
	extra[0].StimulusID = "S42"
	trials = append(trials, enrich(extra)...)

	res := NewAnalyzer().TestAdversarial(trials, true)
	if res.Insufficient() {
		t.Fatalf("unexpected insufficient-data result: %s", res.Error)
	}
	if res.NPairs != 4 {
		t.Errorf("n_pairs = %d, want 4", res.NPairs)
	}
}

func TestAdversarialInsufficientData(t *testing.T) {
	trials := enrich(testkit.Trials("gpt5", 1, true))
	res := NewAnalyzer().TestAdversarial(trials, false)
	if !res.Insufficient() {
		t.Fatal("expected a structured insufficient-data result")
	}
	if res.NNeutral != 1 || res.NAdversarial != 1 {
		t.Errorf("counts (%d, %d), want (1, 1)", res.NNeutral, res.NAdversarial)
	}
}

func TestAdversarialExcludesInvalidTrials(t *testing.T) {
	trials := enrich(testkit.Trials("gpt5", 3, true))
	trials = append(trials, testkit.InvalidTrial("gpt5", trial.Adversarial))
	res := NewAnalyzer().TestAdversarial(trials, false)
	if res.NAdversarial != 3 {
		t.Errorf("invalid trial should be excluded: n_adversarial = %d, want 3", res.NAdversarial)
	}
}
