package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidates against a job",
	Long: `Score every candidate against one job and print the ranked match list.

Two modes:
  --job <id>                          rank stored candidates against a stored job
  --job-file f --candidates-dir d     one-shot run over text files, nothing is persisted`,
	RunE: runMatch,
}

var (
	matchJobID         int
	matchJobFile       string
	matchJobTitle      string
	matchCandidatesDir string
	matchJSON          bool
)

func init() {
	matchCmd.Flags().IntVar(&matchJobID, "job", 0, "Stored job ID to rank against")
	matchCmd.Flags().StringVar(&matchJobFile, "job-file", "", "Path to a job description text file (file mode)")
	matchCmd.Flags().StringVar(&matchJobTitle, "job-title", "", "Job title for file mode")
	matchCmd.Flags().StringVar(&matchCandidatesDir, "candidates-dir", "", "Directory of candidate narrative .txt files (file mode)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Emit the ranked list as JSON instead of formatted text")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	useStore := matchJobID > 0
	useFiles := matchJobFile != "" || matchCandidatesDir != ""

	if useStore && useFiles {
		return fmt.Errorf("cannot use --job with --job-file/--candidates-dir")
	}
	if !useStore && !useFiles {
		return fmt.Errorf("must provide either --job or --job-file with --candidates-dir")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if useFiles {
		// File mode is self-contained; never touch a configured database.
		cfg.DatabaseURL = ""
	}

	ctx := context.Background()
	eng, cleanup, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	jobID := matchJobID
	if useFiles {
		jobID, err = loadFileRecords(ctx, eng)
		if err != nil {
			return err
		}
	}

	job, err := eng.Store().GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	matches, err := eng.MatchesForJob(ctx, jobID)
	if err != nil {
		return err
	}

	if matchJSON {
		return json.NewEncoder(os.Stdout).Encode(matches)
	}
	observability.NewPrinter(os.Stdout).PrintMatches(job, matches)
	return nil
}

// loadFileRecords ingests the job file and every candidate narrative into the
// ephemeral store and returns the job ID.
func loadFileRecords(ctx context.Context, eng engineIngestor) (int, error) {
	if matchJobFile == "" || matchCandidatesDir == "" {
		return 0, fmt.Errorf("file mode needs both --job-file and --candidates-dir")
	}

	description, err := os.ReadFile(matchJobFile)
	if err != nil {
		return 0, fmt.Errorf("failed to read job file: %w", err)
	}

	title := matchJobTitle
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(matchJobFile), filepath.Ext(matchJobFile))
	}
	jobID, err := eng.IngestJob(ctx, types.JobRecord{
		Title:       title,
		Description: string(description),
	})
	if err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(matchCandidatesDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read candidates directory: %w", err)
	}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		path := filepath.Join(matchCandidatesDir, entry.Name())
		narrative, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", path, err)
		}
		name := strings.TrimSuffix(entry.Name(), ".txt")
		if _, err := eng.IngestCandidate(ctx, types.CandidateRecord{
			Name:    name,
			Profile: string(narrative),
		}); err != nil {
			return 0, err
		}
		loaded++
	}
	if loaded == 0 {
		return 0, fmt.Errorf("no .txt candidate files found in %s", matchCandidatesDir)
	}

	return jobID, nil
}

// engineIngestor is the slice of the engine loadFileRecords needs, kept small
// for tests.
type engineIngestor interface {
	IngestJob(ctx context.Context, job types.JobRecord) (int, error)
	IngestCandidate(ctx context.Context, candidate types.CandidateRecord) (int, error)
}
