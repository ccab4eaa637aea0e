package analysis

import (
	"testing"

	"sycobench/domain/hypothesis"
)

func TestRankModels(t *testing.T) {
	indices := map[string]hypothesis.ModelIndex{
		"claude": {SycophancyIndex: 0.72, N: 40},
		"gpt5":   {SycophancyIndex: 0.31, N: 40},
		"gemini": {SycophancyIndex: 0.55, N: 40},
	}
	res := NewAnalyzer().RankModels(indices)

	if res.Insufficient() {
		t.Fatalf("unexpected insufficient-data result: %s", res.Error)
	}
	if !res.Exploratory {
		t.Error("ranking form must be flagged exploratory")
	}
	if res.PValue != 0 || res.FStatistic != 0 {
		t.Error("ranking form must not carry inferential statistics")
	}
	if res.MostSycophantic != "claude" || res.LeastSycophantic != "gpt5" {
		t.Errorf("ranking endpoints (%s, %s), want (claude, gpt5)", res.MostSycophantic, res.LeastSycophantic)
	}
	want := []string{"claude", "gemini", "gpt5"}
	for i, r := range res.Ranking {
		if r.Model != want[i] {
			t.Errorf("ranking[%d] = %s, want %s", i, r.Model, want[i])
		}
	}
	if len(res.PairwiseComparisons) != 3 {
		t.Errorf("pairwise comparisons = %d, want 3", len(res.PairwiseComparisons))
	}
	cmp, ok := res.PairwiseComparisons["claude_vs_gpt5"]
	if !ok {
		t.Fatal("missing claude_vs_gpt5 comparison")
	}
	if cmp.MoreSycophantic != "claude" {
		t.Errorf("more sycophantic = %s, want claude", cmp.MoreSycophantic)
	}
	if cmp.Difference <= 0 {
		t.Errorf("difference = %v, want positive", cmp.Difference)
	}
}

func TestRankModelsTooFew(t *testing.T) {
	res := NewAnalyzer().RankModels(map[string]hypothesis.ModelIndex{
		"claude": {SycophancyIndex: 0.5, N: 20},
	})
	if !res.Insufficient() {
		t.Fatal("expected a structured insufficient-data result")
	}
}

func TestCompareGroupsSignificantRunsPostHoc(t *testing.T) {
	groups := map[string][]float64{
		"claude": {0.9, 1.0, 0.95, 1.05, 0.92, 0.98},
		"gpt5":   {0.1, 0.15, 0.05, 0.12, 0.08, 0.11},
		"gemini": {0.5, 0.55, 0.45, 0.52, 0.48, 0.51},
	}
	res := NewAnalyzer().CompareGroups(groups)

	if res.Insufficient() {
		t.Fatalf("unexpected insufficient-data result: %s", res.Error)
	}
	if !res.RejectNull {
		t.Fatalf("separated groups should reject the omnibus null (F=%v, p=%v)", res.FStatistic, res.PValue)
	}
	if res.EtaSquared <= 0.5 || res.EtaSquared > 1 {
		t.Errorf("eta-squared = %v, want large", res.EtaSquared)
	}
	if len(res.PostHoc) != 3 {
		t.Errorf("post-hoc comparisons = %d, want 3", len(res.PostHoc))
	}
}

func TestCompareGroupsInsignificantSkipsPostHoc(t *testing.T) {
	groups := map[string][]float64{
		"a": {0.50, 0.52, 0.48, 0.51, 0.49},
		"b": {0.51, 0.49, 0.50, 0.52, 0.48},
	}
	res := NewAnalyzer().CompareGroups(groups)

	if res.Insufficient() {
		t.Fatalf("unexpected insufficient-data result: %s", res.Error)
	}
	if res.RejectNull {
		t.Fatalf("near-identical groups should not reject (p=%v)", res.PValue)
	}
	if res.PostHoc != nil {
		t.Error("post-hoc tests must not run without a significant omnibus")
	}
}

func TestCompareGroupsTooFew(t *testing.T) {
	res := NewAnalyzer().CompareGroups(map[string][]float64{"only": {1, 2, 3}})
	if !res.Insufficient() {
		t.Fatal("expected a structured insufficient-data result")
	}
}
