// Package app wires the domain engines, providers and storage into the three
// pipeline services: running experiments, analyzing them and simulating.
package app

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"sycobench/domain/core"
	"sycobench/domain/trial"
	"sycobench/ports"
)

// GeneratorRegistry resolves a provider name to a generator.
type GeneratorRegistry interface {
	Generator(provider string) (ports.Generator, error)
}

// ExperimentService runs the trial matrix: every requested model crossed with
// every condition, cycling through the stimulus set.
type ExperimentService struct {
	registry GeneratorRegistry
	models   map[string]ports.ModelConfig
	stimuli  []trial.Stimulus
	delay    time.Duration
}

// NewExperimentService creates an experiment runner. delay is the fixed pause
// between provider calls.
func NewExperimentService(registry GeneratorRegistry, models map[string]ports.ModelConfig, stimuli []trial.Stimulus, delay time.Duration) *ExperimentService {
	return &ExperimentService{
		registry: registry,
		models:   models,
		stimuli:  stimuli,
		delay:    delay,
	}
}

// Run executes nPerCondition trials per condition for each requested model
// key. Provider failures become failed trials in the batch; only an empty
// model set or a cancelled context abort the run.
func (s *ExperimentService) Run(ctx context.Context, modelKeys []string, nPerCondition int, seed int64) (*trial.Experiment, error) {
	if len(modelKeys) == 0 {
		modelKeys = s.allModelKeys()
	}
	if len(s.stimuli) == 0 {
		return nil, fmt.Errorf("no stimuli loaded")
	}

	exp := &trial.Experiment{
		ID: core.ExperimentID(core.NewID()),
		Metadata: trial.ExperimentMetadata{
			Timestamp:     core.Now(),
			Models:        modelKeys,
			NPerCondition: nPerCondition,
			Seed:          seed,
		},
	}

	seq := 1
	for _, key := range modelKeys {
		cfg, ok := s.models[key]
		if !ok {
			return nil, fmt.Errorf("unknown model key %q", key)
		}
		gen, err := s.registry.Generator(cfg.Provider)
		if err != nil {
			log.Printf("[ExperimentService] skipping %s: %v", key, err)
			continue
		}
		log.Printf("[ExperimentService] running %s (%s), %d trials per condition", key, cfg.Name, nPerCondition)

		for _, cond := range trial.Conditions() {
			for i := 0; i < nPerCondition; i++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				stim := s.stimuli[i%len(s.stimuli)]
				t, err := s.runTrial(ctx, gen, cfg, cond, stim, seq)
				if err != nil {
					return nil, err
				}
				exp.Trials = append(exp.Trials, t)
				seq++

				if s.delay > 0 {
					select {
					case <-time.After(s.delay):
					case <-ctx.Done():
						return nil, ctx.Err()
					}
				}
			}
		}
	}

	exp.Metadata.TotalTrials = len(exp.Trials)
	log.Printf("[ExperimentService] finished: %d trials, %d successful", len(exp.Trials), len(exp.SuccessfulTrials()))
	return exp, nil
}

func (s *ExperimentService) runTrial(ctx context.Context, gen ports.Generator, cfg ports.ModelConfig, cond trial.Condition, stim trial.Stimulus, seq int) (trial.Trial, error) {
	prompt, err := trial.BuildPrompt(cond, stim)
	if err != nil {
		return trial.Trial{}, err
	}

	t := trial.Trial{
		ID:               core.NewTrialID(seq),
		StimulusID:       core.StimulusID(stim.ID),
		Domain:           stim.Domain,
		ModelKey:         cfg.Key,
		ModelName:        cfg.Name,
		Condition:        cond,
		Statement:        stim.Statement,
		JustificationPro: stim.JustificationPro,
		JustificationCon: stim.JustificationCon,
		Prompt:           prompt,
		PromptHash:       core.NewTextHash(prompt).Short(),
		CreatedAt:        core.Now(),
	}

	gen2, err := gen.GenerateResponse(ctx, prompt, cfg)
	if err != nil {
		log.Printf("[ExperimentService] trial %s failed: %v", t.ID, err)
		t.Success = false
		t.Error = err.Error()
		return t, nil
	}

	t.Success = true
	t.Response = gen2.Text
	if gen2.Usage != nil {
		t.InputTokens = gen2.Usage.InputTokens
		t.OutputTokens = gen2.Usage.OutputTokens
	}
	return t, nil
}

func (s *ExperimentService) allModelKeys() []string {
	keys := make([]string, 0, len(s.models))
	for k := range s.models {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
