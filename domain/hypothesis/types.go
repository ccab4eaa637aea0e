package hypothesis

import (
	"sycobench/domain/core"
)

// DefaultAlpha is the significance level used across all tests.
const DefaultAlpha = 0.05

// Interval is a two-sided confidence interval. Result structs carry it as a
// pointer so an undefined interval (n < 2) serializes as null rather than NaN.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ConditionStats summarizes one condition's scores.
type ConditionStats struct {
	N    int       `json:"n"`
	Mean float64   `json:"mean"`
	SD   float64   `json:"sd"`
	CI95 *Interval `json:"ci_95,omitempty"`
}

// SycophancyResult is the outcome of the sycophancy contrast: the correlation
// between condition code (+1 pro / -1 con) and alignment score, tested
// one-tailed in the positive direction. An Error value marks a structured
// insufficient-data result; all other fields are then zero.
type SycophancyResult struct {
	Test       string `json:"test"`
	Hypothesis string `json:"hypothesis"`

	NTotal int `json:"n_total"`
	NPro   int `json:"n_pro"`
	NCon   int `json:"n_con"`

	SycophancyIndex float64 `json:"sycophancy_index"`
	PValueOneTailed float64 `json:"p_value_one_tailed"`
	Alpha           float64 `json:"alpha"`
	RejectNull      bool    `json:"reject_null"`

	ProCondition ConditionStats `json:"pro_condition"`
	ConCondition ConditionStats `json:"con_condition"`

	CohensD              float64 `json:"cohens_d"`
	EffectInterpretation string  `json:"effect_interpretation"`
	Interpretation       string  `json:"interpretation"`

	Error string `json:"error,omitempty"`
}

// Insufficient reports whether the result is a structured insufficient-data outcome.
func (r SycophancyResult) Insufficient() bool { return r.Error != "" }

// AdversarialResult is the outcome of the adversarial-vs-neutral challenge
// contrast, tested one-tailed in the direction adversarial > neutral.
type AdversarialResult struct {
	Test       string `json:"test"`
	Hypothesis string `json:"hypothesis"`

	// Mode is "independent" or "paired". Paired mode matches trials by
	// stimulus ID and only stimuli observed in both conditions form pairs.
	Mode string `json:"mode"`

	NNeutral     int `json:"n_neutral"`
	NAdversarial int `json:"n_adversarial"`
	NPairs       int `json:"n_pairs,omitempty"`

	NeutralMean     float64 `json:"neutral_mean"`
	NeutralSD       float64 `json:"neutral_sd"`
	AdversarialMean float64 `json:"adversarial_mean"`
	AdversarialSD   float64 `json:"adversarial_sd"`
	Difference      float64 `json:"difference"`

	TStatistic      float64 `json:"t_statistic"`
	PValueOneTailed float64 `json:"p_value_one_tailed"`
	Alpha           float64 `json:"alpha"`
	RejectNull      bool    `json:"reject_null"`

	CohensD              float64 `json:"cohens_d"`
	EffectInterpretation string  `json:"effect_interpretation"`
	Interpretation       string  `json:"interpretation"`

	Error string `json:"error,omitempty"`
}

func (r AdversarialResult) Insufficient() bool { return r.Error != "" }

// ModelIndex is one model's sycophancy summary feeding the cross-model ranking.
type ModelIndex struct {
	SycophancyIndex float64 `json:"sycophancy_index"`
	N               int     `json:"n"`
	CohensD         float64 `json:"cohens_d"`
}

// IndexComparison is a pairwise difference between two models' indices.
type IndexComparison struct {
	Difference      float64 `json:"difference"`
	MoreSycophantic string  `json:"more_sycophantic"`
}

// RankedModel is one entry of the descending sycophancy ranking.
type RankedModel struct {
	Model           string  `json:"model"`
	SycophancyIndex float64 `json:"sycophancy_index"`
	N               int     `json:"n"`
}

// PairwiseTest is one post-hoc comparison after a significant omnibus test.
type PairwiseTest struct {
	TStatistic float64 `json:"t_statistic"`
	PValue     float64 `json:"p_value"`
	CohensD    float64 `json:"cohens_d"`
}

// CrossModelResult covers both forms of the cross-model question. The ANOVA
// form carries an omnibus F test with eta-squared and post-hoc pairwise tests
// (populated only when the omnibus is significant). The ranking form is
// explicitly exploratory: pairwise index differences and a descending ranking,
// with no p-value of any kind.
type CrossModelResult struct {
	Test string `json:"test"`
	Form string `json:"form"` // "anova" or "ranking"

	// ANOVA form
	NGroups    int                     `json:"n_groups,omitempty"`
	Groups     []string                `json:"groups,omitempty"`
	FStatistic float64                 `json:"f_statistic,omitempty"`
	PValue     float64                 `json:"p_value,omitempty"`
	Alpha      float64                 `json:"alpha,omitempty"`
	RejectNull bool                    `json:"reject_null,omitempty"`
	EtaSquared float64                 `json:"eta_squared,omitempty"`
	PostHoc    map[string]PairwiseTest `json:"post_hoc,omitempty"`

	// Ranking form
	Exploratory         bool                       `json:"exploratory,omitempty"`
	ModelIndices        map[string]ModelIndex      `json:"model_indices,omitempty"`
	PairwiseComparisons map[string]IndexComparison `json:"pairwise_comparisons,omitempty"`
	Ranking             []RankedModel              `json:"ranking,omitempty"`
	MostSycophantic     string                     `json:"most_sycophantic,omitempty"`
	LeastSycophantic    string                     `json:"least_sycophantic,omitempty"`

	Interpretation string `json:"interpretation,omitempty"`
	Error          string `json:"error,omitempty"`
}

func (r CrossModelResult) Insufficient() bool { return r.Error != "" }

// ModelReport bundles the per-model hypothesis outcomes.
type ModelReport struct {
	Sycophancy  SycophancyResult  `json:"h1_sycophancy"`
	Adversarial AdversarialResult `json:"h2_adversarial"`
}

// ReportMetadata records provenance for a finished analysis.
type ReportMetadata struct {
	AnalyzedAt      core.Timestamp `json:"analyzed_at"`
	ExperimentID    string         `json:"experiment_id,omitempty"`
	DataFile        string         `json:"data_file,omitempty"`
	NTrialsAnalyzed int            `json:"n_trials_analyzed"`
	Models          []string       `json:"models"`
}

// Report is the full analysis document the orchestrator assembles.
type Report struct {
	ID         core.ReportID          `json:"report_id"`
	Metadata   ReportMetadata         `json:"metadata"`
	ByModel    map[string]ModelReport `json:"by_model"`
	CrossModel *CrossModelResult      `json:"h3_cross_model,omitempty"`
}
