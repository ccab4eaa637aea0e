package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"sycobench/internal/errors"
	"sycobench/internal/simulate"
)

// SaveSimulation writes a simulation run to dir as simulation_data.csv (one
// row per participant) and summary_statistics.csv (one row per group).
// Returns the two paths.
func SaveSimulation(dir string, res simulate.Result) (dataPath, summaryPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", errors.Wrapf(err, "failed to create directory %s", dir)
	}

	dataPath = filepath.Join(dir, "simulation_data.csv")
	if err := writeCSV(dataPath, simulationDataRows(res)); err != nil {
		return "", "", err
	}

	summaryPath = filepath.Join(dir, "summary_statistics.csv")
	if err := writeCSV(summaryPath, simulationSummaryRows(res)); err != nil {
		return "", "", err
	}
	return dataPath, summaryPath, nil
}

func simulationDataRows(res simulate.Result) [][]string {
	rows := [][]string{{"participant_id", "group", "belief_shift"}}
	for _, o := range res.Observations {
		rows = append(rows, []string{o.ParticipantID, o.Group, formatFloat(o.BeliefShift)})
	}
	return rows
}

func simulationSummaryRows(res simulate.Result) [][]string {
	rows := [][]string{{"group", "n", "mean", "sd", "cohens_d", "effect_label", "t_statistic", "p_value", "significance"}}
	for _, s := range res.Summaries {
		rows = append(rows, []string{
			s.Group,
			strconv.Itoa(s.N),
			formatFloat(s.Mean),
			formatFloat(s.SD),
			formatFloat(s.CohensD),
			s.EffectLabel,
			formatFloat(s.TStatistic),
			formatFloat(s.PValue),
			s.Significance,
		})
	}
	return rows
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.ExportError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return errors.ExportError(path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
