// Command cli is the sycobench pipeline front door: run experiments, analyze
// batches, simulate predicted outcomes and export reports.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sycobench/adapters/export"
	"sycobench/adapters/llm"
	"sycobench/adapters/postgres"
	"sycobench/app"
	"sycobench/domain/hypothesis"
	"sycobench/domain/trial"
	"sycobench/internal/config"
	"sycobench/ports"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "sycobench",
		Short: "LLM sycophancy experiment pipeline",
	}
	root.AddCommand(runCmd(), analyzeCmd(), simulateCmd(), exportCmd())

	if err := root.Execute(); err != nil {
		log.Fatalf("[CLI] %v", err)
	}
}

func runCmd() *cobra.Command {
	var models string
	var n int
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the trial matrix against the configured model providers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			stimuli, err := export.LoadStimuli(cfg.Experiment.StimuliPath)
			if err != nil {
				return err
			}

			var registry app.GeneratorRegistry
			if dryRun {
				registry = llm.NewMockRegistry("anthropic", "openai", "google")
			} else {
				registry, err = llm.NewRegistry(ctx, cfg.Providers)
				if err != nil {
					return err
				}
			}

			if n == 0 {
				n = cfg.Experiment.NPerCondition
			}
			svc := app.NewExperimentService(registry, cfg.Models(), stimuli, cfg.Experiment.RequestDelay)
			exp, err := svc.Run(ctx, splitModels(models), n, cfg.Experiment.Seed)
			if err != nil {
				return err
			}
			exp.Metadata.DryRun = dryRun
			exp.Metadata.EmbeddingModel = cfg.Embedding.Model

			path, err := export.SaveExperiment(cfg.Paths.RawDir, exp)
			if err != nil {
				return err
			}
			log.Printf("[CLI] experiment saved to %s", path)

			return saveExperimentToDB(ctx, cfg, exp)
		},
	}
	cmd.Flags().StringVar(&models, "models", "", "comma-separated model keys (default: all configured)")
	cmd.Flags().IntVar(&n, "n", 0, "trials per condition (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "use the mock provider instead of real APIs")
	return cmd
}

func analyzeCmd() *cobra.Command {
	var file string
	var paired bool
	var mockEmbeddings bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the hypothesis tests over an experiment batch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if file == "" {
				file, err = export.FindLatestExperiment(cfg.Paths.RawDir)
				if err != nil {
					return err
				}
			}
			exp, err := export.LoadExperiment(file)
			if err != nil {
				return err
			}
			log.Printf("[CLI] analyzing %s (%d trials)", file, len(exp.Trials))

			embedder, err := chooseEmbedder(cfg, mockEmbeddings || exp.Metadata.DryRun)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("paired") {
				paired = cfg.Experiment.PairedH2
			}

			svc := app.NewAnalysisService(embedder, paired)
			report, err := svc.Analyze(ctx, exp)
			if err != nil {
				return err
			}
			report.Metadata.DataFile = file

			for cond, sum := range svc.KeywordSummary(exp) {
				log.Printf("[CLI] keywords %s: n=%d agreement=%.2f challenge=%.2f hedging=%.2f",
					cond, sum.N, sum.AgreementMean, sum.ChallengeMean, sum.HedgingMean)
			}

			jsonPath, err := export.SaveReport(cfg.Paths.ProcessedDir, report)
			if err != nil {
				return err
			}
			log.Printf("[CLI] report saved to %s", jsonPath)

			xlsxPath := filepath.Join(cfg.Paths.ResultsDir, "report.xlsx")
			if err := os.MkdirAll(cfg.Paths.ResultsDir, 0o755); err != nil {
				return err
			}
			if err := export.SaveReportWorkbook(xlsxPath, report); err != nil {
				return err
			}
			log.Printf("[CLI] workbook saved to %s", xlsxPath)

			return saveReportToDB(ctx, cfg, exp, report)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "experiment JSON file (default: latest in raw dir)")
	cmd.Flags().BoolVar(&paired, "paired", false, "pair the adversarial contrast by stimulus ID")
	cmd.Flags().BoolVar(&mockEmbeddings, "mock-embeddings", false, "use deterministic mock embeddings")
	return cmd
}

func simulateCmd() *cobra.Command {
	var seed int64
	var n int
	var out string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the Monte Carlo belief-shift simulation (theoretical prediction)",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.Paths.SimulatedDir
			}
			_, _, err = app.NewSimulationService().Run(seed, n, out)
			return err
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().IntVar(&n, "n", 125, "participants per group")
	cmd.Flags().StringVar(&out, "out", "", "output directory (default from config)")
	return cmd
}

func exportCmd() *cobra.Command {
	var file string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an analysis report as an xlsx workbook",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if file == "" {
				file, err = export.FindLatestReport(cfg.Paths.ProcessedDir)
				if err != nil {
					return err
				}
			}
			report, err := export.LoadReport(file)
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(cfg.Paths.ResultsDir, "report.xlsx")
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			if err := export.SaveReportWorkbook(out, report); err != nil {
				return err
			}
			log.Printf("[CLI] workbook saved to %s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "report JSON file (default: latest in processed dir)")
	cmd.Flags().StringVar(&out, "out", "", "output xlsx path")
	return cmd
}

func splitModels(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func chooseEmbedder(cfg *config.Config, mock bool) (ports.Embedder, error) {
	if mock {
		return llm.NewMockEmbedder(cfg.Embedding.Dimensions), nil
	}
	if cfg.Providers.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for embeddings (or pass --mock-embeddings)")
	}
	return llm.NewOpenAIEmbedder(cfg.Providers.OpenAIKey, cfg.Embedding.Model), nil
}

// saveExperimentToDB persists the batch when a database is configured; the
// pipeline stays file-only otherwise.
func saveExperimentToDB(ctx context.Context, cfg *config.Config, exp *trial.Experiment) error {
	if cfg.Database.URL == "" {
		return nil
	}
	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.NewExperimentRepository(db).SaveExperiment(ctx, exp); err != nil {
		return err
	}
	log.Printf("[CLI] experiment %s stored in postgres", exp.ID)
	return nil
}

func saveReportToDB(ctx context.Context, cfg *config.Config, exp *trial.Experiment, rep *hypothesis.Report) error {
	if cfg.Database.URL == "" {
		return nil
	}
	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.NewReportRepository(db).SaveReport(ctx, exp.ID, rep); err != nil {
		return err
	}
	log.Printf("[CLI] report %s stored in postgres", rep.ID)
	return nil
}
