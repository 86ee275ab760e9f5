package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/talent-matcher/internal/config"
	"github.com/jonathan/talent-matcher/internal/cultural"
	"github.com/jonathan/talent-matcher/internal/engine"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/growth"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/semantic"
	"github.com/jonathan/talent-matcher/internal/store"
)

const defaultSemanticTimeout = 10 * time.Second

// resolveConfig merges CLI flags, the optional config file and environment
// variables. Flags win, then the file, then the environment.
func resolveConfig() (config.Config, error) {
	flags := config.Config{
		ScoringConfig: flagScoringConfig,
		DatabaseURL:   flagDatabaseURL,
		APIKey:        flagAPIKey,
		Verbose:       flagVerbose,
	}

	merged := flags
	if flagConfig != "" {
		fileCfg, err := config.LoadConfig(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	merged = merged.MergeWithDefaults(config.FromEnv())

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newEngine assembles the store, similarity oracle and scorer from resolved
// configuration. The returned cleanup closes external connections.
func newEngine(ctx context.Context, cfg config.Config) (*engine.Engine, func(), error) {
	scoringCfg := scoring.DefaultConfig()
	if cfg.ScoringConfig != "" {
		loaded, err := scoring.LoadConfig(cfg.ScoringConfig)
		if err != nil {
			return nil, nil, err
		}
		scoringCfg = loaded
	}

	var st store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		st = pg
	} else {
		st = store.NewMemoryStore()
	}

	timeout := defaultSemanticTimeout
	if cfg.SemanticTimeoutMS > 0 {
		timeout = time.Duration(cfg.SemanticTimeoutMS) * time.Millisecond
	}

	var primary semantic.Oracle
	var gemini *semantic.GeminiOracle
	if cfg.APIKey != "" {
		model := cfg.EmbeddingModel
		if model == "" {
			model = semantic.DefaultEmbeddingModel
		}
		g, err := semantic.NewGeminiOracle(ctx, cfg.APIKey, model)
		if err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("failed to create similarity oracle: %w", err)
		}
		gemini = g
		primary = g
	}
	oracle := semantic.NewCachingOracle(semantic.NewFallbackOracle(primary, timeout))

	eng := engine.New(
		st,
		extraction.NewPatternExtractor(extraction.DefaultConfig()),
		growth.NewAnalyzer(growth.DefaultConfig()),
		cultural.NewKeywordProfiler(cultural.DefaultConfig()),
		scoring.NewScorer(scoringCfg, oracle),
	)

	cleanup := func() {
		if gemini != nil {
			_ = gemini.Close()
		}
		st.Close()
	}
	return eng, cleanup, nil
}
