package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/types"
)

var ingestCandidateCmd = &cobra.Command{
	Use:   "ingest-candidate",
	Short: "Store a candidate from a career narrative file",
	Long:  "Read a candidate's free-text career narrative, derive skills, experience years and a cultural profile from it, and store the candidate record.",
	RunE:  runIngestCandidate,
}

var (
	ingestCandidateFile     string
	ingestCandidateName     string
	ingestCandidateLocation string
)

func init() {
	ingestCandidateCmd.Flags().StringVarP(&ingestCandidateFile, "file", "f", "", "Path to career narrative text file (required)")
	ingestCandidateCmd.Flags().StringVar(&ingestCandidateName, "name", "", "Candidate name (required)")
	ingestCandidateCmd.Flags().StringVar(&ingestCandidateLocation, "location", "", "Candidate location")
	_ = ingestCandidateCmd.MarkFlagRequired("file")
	_ = ingestCandidateCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(ingestCandidateCmd)
}

func runIngestCandidate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("ingest-candidate needs a database; set --db-url or DATABASE_URL")
	}

	ctx := context.Background()
	eng, cleanup, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	narrative, err := os.ReadFile(ingestCandidateFile)
	if err != nil {
		return fmt.Errorf("failed to read career narrative: %w", err)
	}

	id, err := eng.IngestCandidate(ctx, types.CandidateRecord{
		Name:     ingestCandidateName,
		Profile:  string(narrative),
		Location: ingestCandidateLocation,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Stored candidate %d: %s\n", id, ingestCandidateName)
	return nil
}
