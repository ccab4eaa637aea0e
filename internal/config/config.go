package config

import (
	"os"
	"strconv"
	"time"

	"sycobench/internal/errors"
	"sycobench/ports"
)

// Config represents the complete application configuration
type Config struct {
	Database   DatabaseConfig
	Providers  ProviderConfig
	Embedding  EmbeddingConfig
	Experiment ExperimentConfig
	Paths      PathConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings. URL is optional: with no
// database the pipeline runs file-only.
type DatabaseConfig struct {
	URL string
}

// ProviderConfig holds model provider credentials
type ProviderConfig struct {
	AnthropicKey string
	OpenAIKey    string
	GoogleKey    string
}

// EmbeddingConfig holds embedding service settings
type EmbeddingConfig struct {
	Model      string
	Dimensions int
}

// ExperimentConfig holds trial generation settings
type ExperimentConfig struct {
	Seed          int64
	NPerCondition int
	RequestDelay  time.Duration
	StimuliPath   string
	PairedH2      bool
}

// PathConfig holds data directory layout
type PathConfig struct {
	RawDir       string
	ProcessedDir string
	SimulatedDir string
	ResultsDir   string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	APIPort string
	UIPort  string
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Providers: ProviderConfig{
			AnthropicKey: getEnvOrDefault("ANTHROPIC_API_KEY", ""),
			OpenAIKey:    getEnvOrDefault("OPENAI_API_KEY", ""),
			GoogleKey:    getEnvOrDefault("GOOGLE_API_KEY", ""),
		},
		Embedding: EmbeddingConfig{
			Model:      getEnvOrDefault("EMBEDDING_MODEL", "text-embedding-3-large"),
			Dimensions: getEnvIntOrDefault("EMBEDDING_DIMENSIONS", 3072),
		},
		Experiment: ExperimentConfig{
			Seed:          int64(getEnvIntOrDefault("RANDOM_SEED", 42)),
			NPerCondition: getEnvIntOrDefault("N_PER_CONDITION", 10),
			RequestDelay:  getEnvDurationOrDefault("REQUEST_DELAY", 1500*time.Millisecond),
			StimuliPath:   getEnvOrDefault("STIMULI_PATH", "protocol/stimuli.json"),
			PairedH2:      getEnvBoolOrDefault("PAIRED_H2", false),
		},
		Paths: PathConfig{
			RawDir:       getEnvOrDefault("RAW_DIR", "data/raw"),
			ProcessedDir: getEnvOrDefault("PROCESSED_DIR", "data/processed"),
			SimulatedDir: getEnvOrDefault("SIMULATED_DIR", "data/simulated"),
			ResultsDir:   getEnvOrDefault("RESULTS_DIR", "results"),
		},
		Server: ServerConfig{
			APIPort: getEnvOrDefault("API_PORT", "8081"),
			UIPort:  getEnvOrDefault("UI_PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Models returns the configured model matrix. Keys are the short model
// identifiers used throughout the pipeline.
func (c *Config) Models() map[string]ports.ModelConfig {
	return map[string]ports.ModelConfig{
		"claude": {
			Key:       "claude",
			Name:      getEnvOrDefault("CLAUDE_MODEL", "claude-sonnet-4-5-20250929"),
			Provider:  "anthropic",
			MaxTokens: 1024,
		},
		"gpt5": {
			Key:       "gpt5",
			Name:      getEnvOrDefault("OPENAI_MODEL", "gpt-5.2"),
			Provider:  "openai",
			MaxTokens: 1024,
		},
		"gemini": {
			Key:       "gemini",
			Name:      getEnvOrDefault("GEMINI_MODEL", "gemini-3-flash-preview"),
			Provider:  "google",
			MaxTokens: 1024,
		},
	}
}

func validateConfig(config *Config) error {
	if config.Experiment.NPerCondition < 1 {
		return errors.ConfigInvalid("N_PER_CONDITION must be at least 1")
	}
	if config.Embedding.Dimensions < 1 {
		return errors.ConfigInvalid("EMBEDDING_DIMENSIONS must be positive")
	}
	if config.Experiment.RequestDelay < 0 {
		return errors.ConfigInvalid("REQUEST_DELAY cannot be negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
