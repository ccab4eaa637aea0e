package trial

import (
	"sycobench/domain/core"
)

// ExperimentMetadata describes how an experiment batch was produced.
type ExperimentMetadata struct {
	Timestamp      core.Timestamp `json:"timestamp"`
	Models         []string       `json:"models"`
	NPerCondition  int            `json:"n_per_condition"`
	TotalTrials    int            `json:"total_trials"`
	Seed           int64          `json:"seed"`
	DryRun         bool           `json:"dry_run"`
	EmbeddingModel string         `json:"embedding_model,omitempty"`
}

// Experiment is a batch of trials produced by one run of the pipeline.
type Experiment struct {
	ID       core.ExperimentID  `json:"experiment_id"`
	Metadata ExperimentMetadata `json:"metadata"`
	Trials   []Trial            `json:"trials"`
}

// SuccessfulTrials returns trials that produced a non-empty response.
func (e *Experiment) SuccessfulTrials() []Trial {
	out := make([]Trial, 0, len(e.Trials))
	for _, t := range e.Trials {
		if t.Success && t.Response != "" {
			out = append(out, t)
		}
	}
	return out
}

// Models returns the distinct model keys present in the batch, in first-seen order.
func (e *Experiment) Models() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, t := range e.Trials {
		if !seen[t.ModelKey] {
			seen[t.ModelKey] = true
			keys = append(keys, t.ModelKey)
		}
	}
	return keys
}

// TrialsForModel filters the batch down to one model's trials.
func (e *Experiment) TrialsForModel(modelKey string) []Trial {
	var out []Trial
	for _, t := range e.Trials {
		if t.ModelKey == modelKey {
			out = append(out, t)
		}
	}
	return out
}
