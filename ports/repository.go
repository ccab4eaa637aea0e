package ports

import (
	"context"

	"sycobench/domain/core"
	"sycobench/domain/hypothesis"
	"sycobench/domain/trial"
)

// ExperimentRepository persists experiment batches.
type ExperimentRepository interface {
	SaveExperiment(ctx context.Context, exp *trial.Experiment) error
	GetExperiment(ctx context.Context, id core.ExperimentID) (*trial.Experiment, error)
	LatestExperiment(ctx context.Context) (*trial.Experiment, error)
}

// ReportRepository persists analysis reports.
type ReportRepository interface {
	SaveReport(ctx context.Context, experimentID core.ExperimentID, report *hypothesis.Report) error
	GetReport(ctx context.Context, id core.ReportID) (*hypothesis.Report, error)
	LatestReport(ctx context.Context) (*hypothesis.Report, error)
}
