// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the engine configuration loadable from a JSON file, with
// environment variables as a second source. All fields are optional; missing
// values use defaults or must be provided via CLI flags.
type Config struct {
	// ScoringConfig is the path to the external scoring-policy JSON file.
	// Empty means the built-in balanced policy.
	ScoringConfig string `json:"scoring_config,omitempty"`

	// DatabaseURL is the PostgreSQL connection URL. Empty means the
	// in-memory store.
	DatabaseURL string `json:"database_url,omitempty"`

	// APIKey is the Gemini API key for the embedding-based similarity
	// oracle. Empty means lexical similarity only.
	APIKey string `json:"api_key,omitempty"`

	// EmbeddingModel overrides the default embedding model name.
	EmbeddingModel string `json:"embedding_model,omitempty"`

	// ListenAddr is the HTTP server bind address, like ":8080".
	ListenAddr string `json:"listen_addr,omitempty"`

	// SemanticTimeoutMS bounds each similarity-oracle call before the
	// lexical fallback takes over.
	SemanticTimeoutMS int `json:"semantic_timeout_ms,omitempty"`

	// Verbose prints detailed progress information.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Call after
// godotenv has loaded any .env file.
func FromEnv() Config {
	return Config{
		ScoringConfig:  os.Getenv("SCORING_CONFIG"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		EmbeddingModel: os.Getenv("EMBEDDING_MODEL"),
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.SemanticTimeoutMS < 0 {
		return fmt.Errorf("config error: 'semantic_timeout_ms' must be non-negative")
	}
	if c.ScoringConfig != "" {
		if _, err := os.Stat(c.ScoringConfig); os.IsNotExist(err) {
			return fmt.Errorf("config error: scoring config file not found: %s", c.ScoringConfig)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flag values should already be applied to the receiver, so
// flags win over the config file and environment.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ScoringConfig == "" {
		result.ScoringConfig = defaults.ScoringConfig
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.SemanticTimeoutMS == 0 {
		result.SemanticTimeoutMS = defaults.SemanticTimeoutMS
	}

	// Bool fields cannot distinguish unset from false, so flags always win.

	return result
}
