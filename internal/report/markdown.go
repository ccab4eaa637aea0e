// Package report renders an analysis report as markdown and HTML.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"sycobench/domain/hypothesis"
)

// Markdown renders the full report document.
func Markdown(r *hypothesis.Report) string {
	var b strings.Builder

	b.WriteString("# Sycophancy Analysis Report\n\n")
	fmt.Fprintf(&b, "Analyzed: %s  \n", r.Metadata.AnalyzedAt.String())
	fmt.Fprintf(&b, "Trials analyzed: %d  \n", r.Metadata.NTrialsAnalyzed)
	fmt.Fprintf(&b, "Models: %s\n\n", strings.Join(r.Metadata.Models, ", "))

	models := make([]string, 0, len(r.ByModel))
	for m := range r.ByModel {
		models = append(models, m)
	}
	sort.Strings(models)

	for _, m := range models {
		mr := r.ByModel[m]
		fmt.Fprintf(&b, "## Model: %s\n\n", m)
		writeSycophancy(&b, mr.Sycophancy)
		writeAdversarial(&b, mr.Adversarial)
	}

	if r.CrossModel != nil {
		writeCrossModel(&b, *r.CrossModel)
	}

	b.WriteString("## Notes\n\n")
	b.WriteString("- Alignment scores are cosine-similarity differences against the pro and con justification embeddings.\n")
	b.WriteString("- The challenge score is the similarity to the con justification.\n")
	b.WriteString("- Invalid trials are excluded from all tests, never imputed.\n")
	return b.String()
}

func writeSycophancy(b *strings.Builder, h1 hypothesis.SycophancyResult) {
	b.WriteString("### H1: Sycophancy\n\n")
	if h1.Insufficient() {
		fmt.Fprintf(b, "Not testable: %s\n\n", h1.Error)
		return
	}
	fmt.Fprintf(b, "- Sycophancy Index: %.3f (n=%d)\n", h1.SycophancyIndex, h1.NTotal)
	fmt.Fprintf(b, "- One-tailed p: %.4f (alpha %.2f)\n", h1.PValueOneTailed, h1.Alpha)
	fmt.Fprintf(b, "- Cohen's d (pro vs con): %.3f (%s)\n", h1.CohensD, h1.EffectInterpretation)
	fmt.Fprintf(b, "- Pro condition: mean %.3f, sd %.3f%s\n", h1.ProCondition.Mean, h1.ProCondition.SD, intervalSuffix(h1.ProCondition.CI95))
	fmt.Fprintf(b, "- Con condition: mean %.3f, sd %.3f%s\n", h1.ConCondition.Mean, h1.ConCondition.SD, intervalSuffix(h1.ConCondition.CI95))
	fmt.Fprintf(b, "- **%s**\n\n", h1.Interpretation)
}

func writeAdversarial(b *strings.Builder, h2 hypothesis.AdversarialResult) {
	b.WriteString("### H2: Adversarial Mitigation\n\n")
	if h2.Insufficient() {
		fmt.Fprintf(b, "Not testable: %s\n\n", h2.Error)
		return
	}
	fmt.Fprintf(b, "- Mode: %s", h2.Mode)
	if h2.Mode == "paired" {
		fmt.Fprintf(b, " (%d stimulus pairs)", h2.NPairs)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "- Challenge scores: adversarial %.3f vs neutral %.3f (diff %+.3f)\n",
		h2.AdversarialMean, h2.NeutralMean, h2.Difference)
	fmt.Fprintf(b, "- t = %.3f, one-tailed p = %.4f (alpha %.2f)\n", h2.TStatistic, h2.PValueOneTailed, h2.Alpha)
	fmt.Fprintf(b, "- Cohen's d: %.3f (%s)\n", h2.CohensD, h2.EffectInterpretation)
	fmt.Fprintf(b, "- **%s**\n\n", h2.Interpretation)
}

func writeCrossModel(b *strings.Builder, h3 hypothesis.CrossModelResult) {
	b.WriteString("## H3: Cross-Model Comparison\n\n")
	if h3.Insufficient() {
		fmt.Fprintf(b, "Not testable: %s\n\n", h3.Error)
		return
	}
	switch h3.Form {
	case "ranking":
		b.WriteString("Exploratory ranking by Sycophancy Index (no inferential test):\n\n")
		b.WriteString("| Rank | Model | SI | n |\n|---|---|---|---|\n")
		for i, r := range h3.Ranking {
			fmt.Fprintf(b, "| %d | %s | %.3f | %d |\n", i+1, r.Model, r.SycophancyIndex, r.N)
		}
		fmt.Fprintf(b, "\nMost sycophantic: **%s**. Least: **%s**.\n\n", h3.MostSycophantic, h3.LeastSycophantic)
	case "anova":
		fmt.Fprintf(b, "- F(%d groups) = %.3f, p = %.4f, eta-squared = %.3f\n",
			h3.NGroups, h3.FStatistic, h3.PValue, h3.EtaSquared)
		if len(h3.PostHoc) > 0 {
			b.WriteString("- Post-hoc pairwise t-tests:\n")
			pairs := make([]string, 0, len(h3.PostHoc))
			for p := range h3.PostHoc {
				pairs = append(pairs, p)
			}
			sort.Strings(pairs)
			for _, p := range pairs {
				ph := h3.PostHoc[p]
				fmt.Fprintf(b, "  - %s: t = %.3f, p = %.4f, d = %.3f\n", p, ph.TStatistic, ph.PValue, ph.CohensD)
			}
		}
		fmt.Fprintf(b, "- **%s**\n\n", h3.Interpretation)
	}
}

func intervalSuffix(ci *hypothesis.Interval) string {
	if ci == nil {
		return ""
	}
	return fmt.Sprintf(", 95%% CI [%.3f, %.3f]", ci.Lower, ci.Upper)
}

// HTML renders the report markdown to HTML.
func HTML(r *hypothesis.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(Markdown(r)))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.CompletePage})
	return markdown.Render(doc, renderer)
}
