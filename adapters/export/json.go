// Package export writes and reads the pipeline's file artifacts: experiment
// batches and stimuli as JSON, simulation output as CSV, and the report
// workbook as xlsx.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sycobench/domain/core"
	"sycobench/domain/hypothesis"
	"sycobench/domain/trial"
	"sycobench/internal/errors"
)

// LoadStimuli reads the stimulus set from a JSON file. The file is either a
// bare array or an object with a "stimuli" key.
func LoadStimuli(path string) ([]trial.Stimulus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read stimuli file %s", path)
	}

	var stimuli []trial.Stimulus
	if err := json.Unmarshal(data, &stimuli); err != nil {
		var wrapper struct {
			Stimuli []trial.Stimulus `json:"stimuli"`
		}
		if err2 := json.Unmarshal(data, &wrapper); err2 != nil {
			return nil, errors.Wrapf(err, "failed to parse stimuli file %s", path)
		}
		stimuli = wrapper.Stimuli
	}

	for _, s := range stimuli {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid stimulus")
		}
	}
	if len(stimuli) == 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("stimuli file %s is empty", path))
	}
	return stimuli, nil
}

// SaveExperiment writes an experiment batch to dir as
// experiment_<models>_<timestamp>.json and returns the path.
func SaveExperiment(dir string, exp *trial.Experiment) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", dir)
	}
	name := fmt.Sprintf("experiment_%s_%s.json",
		strings.Join(exp.Metadata.Models, "_"),
		exp.Metadata.Timestamp.Stamp())
	path := filepath.Join(dir, name)
	if err := writeJSON(path, exp); err != nil {
		return "", err
	}
	return path, nil
}

// LoadExperiment reads an experiment batch from a JSON file.
func LoadExperiment(path string) (*trial.Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read experiment file %s", path)
	}
	var exp trial.Experiment
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, errors.Wrapf(err, "failed to parse experiment file %s", path)
	}
	return &exp, nil
}

// FindLatestExperiment returns the lexically newest experiment_*.json in dir.
// File names embed the creation timestamp, so lexical order is creation order.
func FindLatestExperiment(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "experiment_*.json"))
	if err != nil {
		return "", errors.Wrapf(err, "failed to scan %s", dir)
	}
	if len(matches) == 0 {
		return "", core.ErrExperimentNotFound
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// SaveReport writes a report document to dir as analysis_<timestamp>.json and
// returns the path.
func SaveReport(dir string, report *hypothesis.Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", dir)
	}
	path := filepath.Join(dir, fmt.Sprintf("analysis_%s.json", report.Metadata.AnalyzedAt.Stamp()))
	if err := writeJSON(path, report); err != nil {
		return "", err
	}
	return path, nil
}

// FindLatestReport returns the lexically newest analysis_*.json in dir.
func FindLatestReport(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "analysis_*.json"))
	if err != nil {
		return "", errors.Wrapf(err, "failed to scan %s", dir)
	}
	if len(matches) == 0 {
		return "", core.ErrReportNotFound
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// LoadReport reads a report document from a JSON file.
func LoadReport(path string) (*hypothesis.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read report file %s", path)
	}
	var report hypothesis.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrapf(err, "failed to parse report file %s", path)
	}
	return &report, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.ExportError(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ExportError(path, err)
	}
	return nil
}
