package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sycobench/domain/core"
	"sycobench/domain/trial"
	"sycobench/internal/simulate"
	"sycobench/internal/testkit"
)

func sampleExperiment(ts time.Time, models ...string) *trial.Experiment {
	var trials []trial.Trial
	for _, m := range models {
		trials = append(trials, testkit.Trials(m, 2, true)...)
	}
	return &trial.Experiment{
		ID: core.ExperimentID(core.NewID()),
		Metadata: trial.ExperimentMetadata{
			Timestamp:     core.NewTimestamp(ts),
			Models:        models,
			NPerCondition: 2,
			TotalTrials:   len(trials),
			Seed:          42,
		},
		Trials: trials,
	}
}

func TestSaveLoadExperimentRoundtrip(t *testing.T) {
	dir := t.TempDir()
	exp := sampleExperiment(time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC), "claude")

	path, err := SaveExperiment(dir, exp)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadExperiment(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.ID != exp.ID {
		t.Errorf("id = %s, want %s", loaded.ID, exp.ID)
	}
	if len(loaded.Trials) != len(exp.Trials) {
		t.Errorf("trials = %d, want %d", len(loaded.Trials), len(exp.Trials))
	}
	if loaded.Trials[0].Condition != exp.Trials[0].Condition {
		t.Error("trial fields should survive the roundtrip")
	}
	if len(loaded.Trials[0].ResponseEmbedding) != len(exp.Trials[0].ResponseEmbedding) {
		t.Error("embeddings should survive the roundtrip")
	}
}

func TestFindLatestExperiment(t *testing.T) {
	dir := t.TempDir()
	early := sampleExperiment(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), "claude")
	late := sampleExperiment(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC), "claude")

	if _, err := SaveExperiment(dir, early); err != nil {
		t.Fatal(err)
	}
	latePath, err := SaveExperiment(dir, late)
	if err != nil {
		t.Fatal(err)
	}

	found, err := FindLatestExperiment(dir)
	if err != nil {
		t.Fatal(err)
	}
	if found != latePath {
		t.Errorf("latest = %s, want %s", found, latePath)
	}
}

func TestFindLatestExperimentEmpty(t *testing.T) {
	if _, err := FindLatestExperiment(t.TempDir()); err == nil {
		t.Error("empty directory should report not found")
	}
}

func TestLoadStimuli(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stimuli.json")
	content := `{"stimuli": [{
		"id": "S01",
		"domain": "economics",
		"statement": "remote work increases productivity",
		"justification_pro": "fewer interruptions",
		"justification_con": "less collaboration"
	}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stimuli, err := LoadStimuli(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(stimuli) != 1 || stimuli[0].ID != "S01" {
		t.Errorf("unexpected stimuli: %+v", stimuli)
	}
}

func TestLoadStimuliRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stimuli.json")
	content := `[{"id": "S01", "statement": "x", "justification_pro": "", "justification_con": "y"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadStimuli(path); err == nil {
		t.Error("stimulus without pro justification should be rejected")
	}
}

func TestSaveSimulationCSV(t *testing.T) {
	dir := t.TempDir()
	res := simulate.Run(simulate.DefaultSeed, 10)

	dataPath, summaryPath, err := SaveSimulation(dir, res)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{dataPath, summaryPath} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing output %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}
