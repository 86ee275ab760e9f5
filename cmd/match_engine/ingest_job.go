package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/types"
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Store a job opening from a description file",
	Long:  "Read a job description text file, derive required skills and a cultural profile from it, and store the job record.",
	RunE:  runIngestJob,
}

var (
	ingestJobFile     string
	ingestJobTitle    string
	ingestJobCompany  string
	ingestJobLocation string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestJobFile, "file", "f", "", "Path to job description text file (required)")
	ingestJobCmd.Flags().StringVar(&ingestJobTitle, "title", "", "Job title (required)")
	ingestJobCmd.Flags().StringVar(&ingestJobCompany, "company", "", "Company name")
	ingestJobCmd.Flags().StringVar(&ingestJobLocation, "location", "", "Job location, e.g. \"Remote\" or \"Berlin, Germany\"")
	_ = ingestJobCmd.MarkFlagRequired("file")
	_ = ingestJobCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("ingest-job needs a database; set --db-url or DATABASE_URL")
	}

	ctx := context.Background()
	eng, cleanup, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	description, err := os.ReadFile(ingestJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	id, err := eng.IngestJob(ctx, types.JobRecord{
		Title:       ingestJobTitle,
		Company:     ingestJobCompany,
		Description: string(description),
		Location:    ingestJobLocation,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Stored job %d: %s\n", id, ingestJobTitle)
	return nil
}
