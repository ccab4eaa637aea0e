// Package postgres persists experiments and reports. Trials and report
// documents are stored as JSONB: the pipeline always reads whole batches, so
// there is nothing to gain from exploding embeddings into rows.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"sycobench/domain/core"
	"sycobench/domain/hypothesis"
	"sycobench/domain/trial"
	"sycobench/ports"
)

// Connect opens a postgres connection pool.
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	return db, nil
}

// experimentRepository implements ports.ExperimentRepository
type experimentRepository struct {
	db *sqlx.DB
}

// NewExperimentRepository creates a new experiment repository
func NewExperimentRepository(db *sqlx.DB) ports.ExperimentRepository {
	return &experimentRepository{db: db}
}

// SaveExperiment upserts an experiment batch with its trials.
func (r *experimentRepository) SaveExperiment(ctx context.Context, exp *trial.Experiment) error {
	metadataJSON, err := json.Marshal(exp.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal experiment metadata: %w", err)
	}
	trialsJSON, err := json.Marshal(exp.Trials)
	if err != nil {
		return fmt.Errorf("failed to marshal trials: %w", err)
	}

	query := `INSERT INTO experiments (id, metadata, trials, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET metadata = $2, trials = $3`

	if _, err := r.db.ExecContext(ctx, query, exp.ID, metadataJSON, trialsJSON); err != nil {
		return fmt.Errorf("failed to save experiment: %w", err)
	}
	return nil
}

// GetExperiment retrieves an experiment batch by ID.
func (r *experimentRepository) GetExperiment(ctx context.Context, id core.ExperimentID) (*trial.Experiment, error) {
	query := `SELECT id, metadata, trials FROM experiments WHERE id = $1`
	return r.scanExperiment(r.db.QueryRowContext(ctx, query, id))
}

// LatestExperiment retrieves the most recently stored experiment batch.
func (r *experimentRepository) LatestExperiment(ctx context.Context) (*trial.Experiment, error) {
	query := `SELECT id, metadata, trials FROM experiments ORDER BY created_at DESC LIMIT 1`
	return r.scanExperiment(r.db.QueryRowContext(ctx, query))
}

func (r *experimentRepository) scanExperiment(row *sql.Row) (*trial.Experiment, error) {
	var exp trial.Experiment
	var metadataJSON, trialsJSON []byte

	if err := row.Scan(&exp.ID, &metadataJSON, &trialsJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrExperimentNotFound
		}
		return nil, fmt.Errorf("failed to get experiment: %w", err)
	}
	if err := json.Unmarshal(metadataJSON, &exp.Metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal experiment metadata: %w", err)
	}
	if err := json.Unmarshal(trialsJSON, &exp.Trials); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trials: %w", err)
	}
	return &exp, nil
}

// reportRepository implements ports.ReportRepository
type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &reportRepository{db: db}
}

// SaveReport upserts an analysis report linked to its experiment.
func (r *reportRepository) SaveReport(ctx context.Context, experimentID core.ExperimentID, report *hypothesis.Report) error {
	document, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `INSERT INTO reports (id, experiment_id, document, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE SET experiment_id = $2, document = $3`

	if _, err := r.db.ExecContext(ctx, query, report.ID, experimentID, document); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves a report by ID.
func (r *reportRepository) GetReport(ctx context.Context, id core.ReportID) (*hypothesis.Report, error) {
	query := `SELECT document FROM reports WHERE id = $1`
	return r.scanReport(r.db.QueryRowContext(ctx, query, id))
}

// LatestReport retrieves the most recently stored report.
func (r *reportRepository) LatestReport(ctx context.Context) (*hypothesis.Report, error) {
	query := `SELECT document FROM reports ORDER BY created_at DESC LIMIT 1`
	return r.scanReport(r.db.QueryRowContext(ctx, query))
}

func (r *reportRepository) scanReport(row *sql.Row) (*hypothesis.Report, error) {
	var document []byte
	if err := row.Scan(&document); err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	var report hypothesis.Report
	if err := json.Unmarshal(document, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}
