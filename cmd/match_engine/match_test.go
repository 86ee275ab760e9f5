package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

// fakeIngestor records ingested records and hands out sequential IDs.
type fakeIngestor struct {
	jobs       []types.JobRecord
	candidates []types.CandidateRecord
}

func (f *fakeIngestor) IngestJob(_ context.Context, job types.JobRecord) (int, error) {
	f.jobs = append(f.jobs, job)
	return len(f.jobs), nil
}

func (f *fakeIngestor) IngestCandidate(_ context.Context, candidate types.CandidateRecord) (int, error) {
	f.candidates = append(f.candidates, candidate)
	return len(f.candidates), nil
}

func TestLoadFileRecords(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "backend_role.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("Python and Django development"), 0644))

	candidatesDir := filepath.Join(dir, "candidates")
	require.NoError(t, os.Mkdir(candidatesDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(candidatesDir, "ada.txt"), []byte("8 years of Python"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(candidatesDir, "grace.txt"), []byte("SQL analyst"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(candidatesDir, "notes.md"), []byte("ignored"), 0644))

	matchJobFile = jobPath
	matchCandidatesDir = candidatesDir
	matchJobTitle = ""
	defer func() { matchJobFile, matchCandidatesDir = "", "" }()

	f := &fakeIngestor{}
	jobID, err := loadFileRecords(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, 1, jobID)
	require.Len(t, f.jobs, 1)
	// Title falls back to the file name.
	assert.Equal(t, "backend_role", f.jobs[0].Title)
	assert.Equal(t, "Python and Django development", f.jobs[0].Description)

	// Only .txt files load, named after their files.
	require.Len(t, f.candidates, 2)
	assert.Equal(t, "ada", f.candidates[0].Name)
	assert.Equal(t, "grace", f.candidates[1].Name)
}

func TestLoadFileRecordsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("desc"), 0644))

	emptyDir := filepath.Join(dir, "candidates")
	require.NoError(t, os.Mkdir(emptyDir, 0755))

	matchJobFile = jobPath
	matchCandidatesDir = emptyDir
	defer func() { matchJobFile, matchCandidatesDir = "", "" }()

	_, err := loadFileRecords(context.Background(), &fakeIngestor{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .txt candidate files")
}

func TestLoadFileRecordsMissingFlags(t *testing.T) {
	matchJobFile = ""
	matchCandidatesDir = ""

	_, err := loadFileRecords(context.Background(), &fakeIngestor{})
	assert.Error(t, err)
}
