package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract a candidate's career timeline and growth profile",
	Long: `Extract the structured career timeline from a candidate's narrative, then
derive the growth profile and cultural profile.

Two modes:
  --candidate <id>    analyze a stored candidate
  --file <path>       analyze a narrative file without persisting anything`,
	RunE: runAnalyze,
}

var (
	analyzeCandidateID int
	analyzeFile        string
	analyzeJSON        bool
)

func init() {
	analyzeCmd.Flags().IntVar(&analyzeCandidateID, "candidate", 0, "Stored candidate ID")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a career narrative text file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the insights as JSON instead of formatted text")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	useStore := analyzeCandidateID > 0
	useFile := analyzeFile != ""

	if useStore == useFile {
		return fmt.Errorf("must provide exactly one of --candidate or --file")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if useFile {
		cfg.DatabaseURL = ""
	}

	ctx := context.Background()
	eng, cleanup, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	candidateID := analyzeCandidateID
	if useFile {
		narrative, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("failed to read narrative: %w", err)
		}
		candidateID, err = eng.IngestCandidate(ctx, types.CandidateRecord{
			Name:    analyzeFile,
			Profile: string(narrative),
		})
		if err != nil {
			return err
		}
	}

	insights, err := eng.AnalyzeCandidate(ctx, candidateID)
	if err != nil {
		return err
	}

	if analyzeJSON {
		return json.NewEncoder(os.Stdout).Encode(insights)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTimeline(insights.Timeline)
	printer.PrintGrowthProfile(insights.Candidate.Name, insights.Growth)
	printer.PrintCulturalProfile(insights.Cultural)
	return nil
}
