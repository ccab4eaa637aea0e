// Package simulate generates synthetic belief-shift data from literature
// priors. The output is a theoretical prediction of the framework, not
// empirical data, and is labeled as such everywhere it surfaces.
package simulate

import (
	"fmt"
	"math/rand"
	"strings"

	"sycobench/internal/stats"
)

// Likert shifts are clipped to the instrument bounds.
const (
	minShift = -6
	maxShift = 6
)

// Defaults match the registered simulation protocol.
const (
	DefaultSeed     int64 = 42
	DefaultPerGroup       = 125
)

// Prior is a literature-derived belief-shift distribution for one group.
type Prior struct {
	Mu     float64
	Sigma  float64
	Source string
}

// Groups returns the condition groups in canonical order.
func Groups() []string {
	return []string{"Sycophancy", "Neutral", "Adversarial", "Control"}
}

// Priors returns the literature-derived priors per group.
func Priors() map[string]Prior {
	return map[string]Prior{
		"Sycophancy":  {Mu: 0.85, Sigma: 0.6, Source: "Perez et al. (2022); Lord et al. (1979)"},
		"Neutral":     {Mu: 0.20, Sigma: 0.4, Source: "Theoretical: RLHF mean-reversion hypothesis"},
		"Adversarial": {Mu: -0.41, Sigma: 1.1, Source: "Nyhan & Reifler (2010)"},
		"Control":     {Mu: 0.02, Sigma: 0.2, Source: "Baseline stability assumption"},
	}
}

// Observation is one simulated participant.
type Observation struct {
	ParticipantID string  `json:"participant_id"`
	Group         string  `json:"group"`
	BeliefShift   float64 `json:"belief_shift"`
}

// GroupSummary holds per-group statistics: Cohen's d against the control
// group and a one-sample t-test against zero shift.
type GroupSummary struct {
	Group        string  `json:"group"`
	N            int     `json:"n"`
	Mean         float64 `json:"mean"`
	SD           float64 `json:"sd"`
	CohensD      float64 `json:"cohens_d"`
	EffectLabel  string  `json:"effect_label"`
	TStatistic   float64 `json:"t_statistic"`
	PValue       float64 `json:"p_value"`
	Significance string  `json:"significance"`
}

// Result is a full simulation run.
type Result struct {
	Seed         int64          `json:"seed"`
	NPerGroup    int            `json:"n_per_group"`
	Observations []Observation  `json:"observations"`
	Summaries    []GroupSummary `json:"summaries"`
}

// ShiftsByGroup regroups the observations for downstream group comparisons.
func (r Result) ShiftsByGroup() map[string][]float64 {
	out := make(map[string][]float64)
	for _, o := range r.Observations {
		out[o.Group] = append(out[o.Group], o.BeliefShift)
	}
	return out
}

// Run draws nPerGroup belief shifts per group from the priors, clipped to the
// Likert bounds, using a single seeded stream so identical inputs reproduce
// identical output.
func Run(seed int64, nPerGroup int) Result {
	rng := rand.New(rand.NewSource(seed))
	priors := Priors()

	res := Result{Seed: seed, NPerGroup: nPerGroup}
	shifts := make(map[string][]float64, len(priors))
	for _, group := range Groups() {
		p := priors[group]
		prefix := strings.ToUpper(group[:3])
		for i := 0; i < nPerGroup; i++ {
			shift := clip(rng.NormFloat64()*p.Sigma+p.Mu, minShift, maxShift)
			shifts[group] = append(shifts[group], shift)
			res.Observations = append(res.Observations, Observation{
				ParticipantID: fmt.Sprintf("%s_%03d", prefix, i+1),
				Group:         group,
				BeliefShift:   shift,
			})
		}
	}

	control := shifts["Control"]
	for _, group := range Groups() {
		data := shifts[group]
		var d float64
		if group != "Control" {
			d = stats.CohensDIndependent(data, control)
		}
		tt := stats.OneSampleTTest(data, 0)
		res.Summaries = append(res.Summaries, GroupSummary{
			Group:        group,
			N:            len(data),
			Mean:         stats.Mean(data),
			SD:           stats.SampleSD(data),
			CohensD:      d,
			EffectLabel:  stats.InterpretEffectSize(d),
			TStatistic:   tt.T,
			PValue:       tt.PTwoTailed,
			Significance: significanceStars(tt.PTwoTailed),
		})
	}
	return res
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func significanceStars(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	default:
		return "ns"
	}
}
