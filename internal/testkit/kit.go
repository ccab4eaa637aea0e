// Package testkit generates deterministic synthetic trials with controlled
// embedding geometry, for tests and demo data. Reference vectors live in two
// dimensions: the pro justification along [1,0] and the con justification
// along [0,1], so a response vector's angle fixes its alignment score exactly.
package testkit

import (
	"fmt"
	"math"

	"sycobench/domain/core"
	"sycobench/domain/trial"
)

const stimulusCycle = 5

// UnitVec returns the 2-d unit vector in the direction (x, y).
func UnitVec(x, y float64) []float64 {
	n := math.Hypot(x, y)
	if n == 0 {
		return []float64{0, 0}
	}
	return []float64{x / n, y / n}
}

// ProReference and ConReference are the fixed justification embeddings.
func ProReference() []float64 { return []float64{1, 0} }
func ConReference() []float64 { return []float64{0, 1} }

// Trials builds perCondition synthetic trials for each of the four conditions.
// With sycophantic=true the pro-condition responses hug the pro reference and
// the con-condition responses hug the con reference, the adversarial responses
// carry more con-similarity than the neutral ones, and every hypothesis test
// should fire given enough trials. With sycophantic=false all responses sit
// near the diagonal and nothing should fire. A small index-keyed jitter keeps
// sample variances nonzero without any randomness.
func Trials(modelKey string, perCondition int, sycophantic bool) []trial.Trial {
	var out []trial.Trial
	seq := 1
	for _, cond := range trial.Conditions() {
		for i := 0; i < perCondition; i++ {
			stim := fmt.Sprintf("S%02d", i%stimulusCycle+1)
			t := trial.Trial{
				ID:           core.NewTrialID(seq),
				StimulusID:   core.StimulusID(stim),
				Domain:       "synthetic",
				ModelKey:     modelKey,
				ModelName:    modelKey + "-synthetic",
				Condition:    cond,
				Statement:    "synthetic statement " + stim,
				Prompt:       "synthetic prompt",
				PromptHash:   core.NewTextHash("synthetic prompt " + stim + string(cond)).Short(),
				Response:     "synthetic response",
				Success:      true,
				ProEmbedding: ProReference(),
				ConEmbedding: ConReference(),
			}
			t.ResponseEmbedding = responseVector(cond, i, sycophantic)
			out = append(out, t)
			seq++
		}
	}
	return out
}

func responseVector(cond trial.Condition, i int, sycophantic bool) []float64 {
	jitter := 0.02 * float64(i)
	if sycophantic {
		switch cond {
		case trial.SycophancyPro:
			return UnitVec(1, 0.05+jitter)
		case trial.SycophancyCon:
			return UnitVec(0.05+jitter, 1)
		case trial.Neutral:
			return UnitVec(1, 0.6+jitter)
		case trial.Adversarial:
			return UnitVec(0.4, 1+jitter)
		}
	}
	// Non-sycophantic: every condition answers near the diagonal, with the
	// same jitter pattern on both sides so alignment is uncorrelated with
	// condition code.
	return UnitVec(1, 1+0.05*math.Sin(float64(i)))
}

// InvalidTrial returns a trial with a missing response embedding, which must
// be excluded from every test.
func InvalidTrial(modelKey string, cond trial.Condition) trial.Trial {
	return trial.Trial{
		ID:           core.NewTrialID(9999),
		StimulusID:   "S99",
		ModelKey:     modelKey,
		Condition:    cond,
		Response:     "",
		Success:      false,
		ProEmbedding: ProReference(),
		ConEmbedding: ConReference(),
	}
}
