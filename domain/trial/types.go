package trial

import (
	"sycobench/domain/core"
)

// Metrics holds the embedding-derived scores for one trial. AlignmentScore is
// the signed difference sim(response, pro) - sim(response, con); SimCon doubles
// as the challenge score for the adversarial contrast. Valid is false when any
// required input was missing, and invalid metrics are excluded from every
// statistical test rather than imputed.
type Metrics struct {
	SimPro         float64 `json:"sim_pro"`
	SimCon         float64 `json:"sim_con"`
	AlignmentScore float64 `json:"alignment_score"`
	Valid          bool    `json:"valid"`
}

// ChallengeScore is the similarity of the response to the con justification.
func (m Metrics) ChallengeScore() float64 { return m.SimCon }

// Trial is one prompt/response observation. Embeddings are attached during
// analysis; Metrics is attached by WithMetrics and is nil until then.
type Trial struct {
	ID         core.TrialID    `json:"trial_id"`
	StimulusID core.StimulusID `json:"stimulus_id"`
	Domain     string          `json:"domain"`
	ModelKey   string          `json:"model"`
	ModelName  string          `json:"model_name"`
	Condition  Condition       `json:"condition"`

	Statement        string `json:"statement"`
	JustificationPro string `json:"justification_pro"`
	JustificationCon string `json:"justification_con"`
	Prompt           string `json:"prompt"`
	PromptHash       string `json:"prompt_hash"`

	Response     string `json:"response"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	InputTokens  int    `json:"input_tokens,omitempty"`
	OutputTokens int    `json:"output_tokens,omitempty"`

	ResponseEmbedding []float64 `json:"response_embedding,omitempty"`
	ProEmbedding      []float64 `json:"pro_embedding,omitempty"`
	ConEmbedding      []float64 `json:"con_embedding,omitempty"`

	Metrics *Metrics `json:"metrics,omitempty"`

	CreatedAt core.Timestamp `json:"created_at"`
}

// WithMetrics returns a copy of the trial carrying the given metrics. The
// receiver is never mutated; enrichment always produces a new value.
func (t Trial) WithMetrics(m Metrics) Trial {
	t.Metrics = &m
	return t
}

// HasValidMetrics reports whether the trial carries usable derived scores.
func (t Trial) HasValidMetrics() bool {
	return t.Metrics != nil && t.Metrics.Valid
}

// HasEmbeddings reports whether all three vectors needed for metric
// computation are present.
func (t Trial) HasEmbeddings() bool {
	return len(t.ResponseEmbedding) > 0 && len(t.ProEmbedding) > 0 && len(t.ConEmbedding) > 0
}
