// Package main provides the entry point for the talent matcher CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_engine",
	Short: "Candidate-job compatibility scoring engine",
	Long:  "Talent matcher scores candidates against job openings by blending skill overlap, experience fit, location fit, semantic relevance and cultural alignment into a ranked match list.",
}

var (
	flagConfig        string
	flagDatabaseURL   string
	flagAPIKey        string
	flagScoringConfig string
	flagVerbose       bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDatabaseURL, "db-url", "", "PostgreSQL URL (overrides DATABASE_URL; empty uses the in-memory store)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY; empty uses lexical similarity)")
	rootCmd.PersistentFlags().StringVar(&flagScoringConfig, "scoring-config", "", "Path to scoring policy JSON (empty uses the built-in balanced policy)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed progress information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
