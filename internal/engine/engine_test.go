package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/cultural"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/growth"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/semantic"
	"github.com/jonathan/talent-matcher/internal/store"
	"github.com/jonathan/talent-matcher/internal/types"
)

func newTestEngine() *Engine {
	oracle := semantic.NewFallbackOracle(nil, 0)
	return New(
		store.NewMemoryStore(),
		extraction.NewPatternExtractor(extraction.DefaultConfig()),
		growth.NewAnalyzer(growth.DefaultConfig()),
		cultural.NewKeywordProfiler(cultural.DefaultConfig()),
		scoring.NewScorer(scoring.DefaultConfig(), oracle),
	)
}

func TestIngestJobDerivesFields(t *testing.T) {
	eng := newTestEngine()
	ctx := context.Background()

	id, err := eng.IngestJob(ctx, types.JobRecord{
		Title:       "Backend Developer",
		Description: "We need Python and SQL skills for our collaborative team.",
	})
	require.NoError(t, err)

	job, err := eng.Store().GetJob(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, job.RequiredSkills, "python")
	assert.Contains(t, job.RequiredSkills, "sql")
	require.NotNil(t, job.CulturalProfile)
	assert.Len(t, job.CulturalProfile, len(types.CulturalDimensions))
}

func TestIngestJobKeepsExplicitFields(t *testing.T) {
	eng := newTestEngine()
	ctx := context.Background()

	explicit := types.NeutralCulturalProfile()
	id, err := eng.IngestJob(ctx, types.JobRecord{
		Title:           "Backend Developer",
		Description:     "Python heavy role",
		RequiredSkills:  []string{"Go", "postgres"},
		CulturalProfile: explicit,
	})
	require.NoError(t, err)

	job, err := eng.Store().GetJob(ctx, id)
	require.NoError(t, err)
	// Explicit skills are normalized, not replaced.
	assert.Equal(t, []string{"go", "postgresql"}, job.RequiredSkills)
	assert.Equal(t, explicit, job.CulturalProfile)
}

func TestIngestCandidateDerivesFields(t *testing.T) {
	eng := newTestEngine()
	ctx := context.Background()

	id, err := eng.IngestCandidate(ctx, types.CandidateRecord{
		Name:    "Ada",
		Profile: "6 years of Python and Django work on a collaborative team.",
	})
	require.NoError(t, err)

	candidate, err := eng.Store().GetCandidate(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, candidate.Skills, "python")
	assert.Contains(t, candidate.Skills, "django")
	assert.Equal(t, 6, candidate.ExperienceYears)
	require.NotNil(t, candidate.CulturalProfile)
}

func TestIngestCandidateDefaultExperience(t *testing.T) {
	eng := newTestEngine()
	ctx := context.Background()

	id, err := eng.IngestCandidate(ctx, types.CandidateRecord{
		Name:    "Grace",
		Profile: "Python work, no duration stated.",
	})
	require.NoError(t, err)

	candidate, err := eng.Store().GetCandidate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, defaultCandidateYears, candidate.ExperienceYears)
}

func TestMatchesForJobRanksStoredCandidates(t *testing.T) {
	eng := newTestEngine()
	ctx := context.Background()

	jobID, err := eng.IngestJob(ctx, types.JobRecord{
		Title:       "Python Developer",
		Description: "Python and Django web development",
	})
	require.NoError(t, err)

	strongID, err := eng.IngestCandidate(ctx, types.CandidateRecord{
		Name:    "Strong",
		Profile: "8 years of Python and Django web development",
	})
	require.NoError(t, err)
	_, err = eng.IngestCandidate(ctx, types.CandidateRecord{
		Name:    "Weak",
		Profile: "2 years of carpentry and woodworking",
	})
	require.NoError(t, err)

	matches, err := eng.MatchesForJob(ctx, jobID)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, strongID, matches[0].CandidateID)
	assert.Equal(t, jobID, matches[0].JobID)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Total, matches[i].Total)
	}
}

func TestMatchesForJobUnknownJob(t *testing.T) {
	eng := newTestEngine()

	_, err := eng.MatchesForJob(context.Background(), 404)
	require.Error(t, err)
	var notFound *store.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAnalyzeCandidate(t *testing.T) {
	eng := newTestEngine()
	ctx := context.Background()

	narrative := "Team Lead (2020–2024)\nGlobex\n\nSoftware Engineer (2016–2020)\nInitech\n"
	id, err := eng.IngestCandidate(ctx, types.CandidateRecord{Name: "Ada", Profile: narrative})
	require.NoError(t, err)

	insights, err := eng.AnalyzeCandidate(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "Ada", insights.Candidate.Name)
	require.Len(t, insights.Timeline.Roles, 2)
	assert.Equal(t, "Team Lead", insights.Timeline.Roles[0].Title)
	assert.NotEqual(t, types.InsufficientGrowthProfile(), insights.Growth)
	assert.Greater(t, insights.Growth.OverallScore, 0.0)
	assert.Len(t, insights.Cultural, len(types.CulturalDimensions))
}

func TestAnalyzeCandidateSentinelNarrative(t *testing.T) {
	eng := newTestEngine()
	ctx := context.Background()

	id, err := eng.IngestCandidate(ctx, types.CandidateRecord{Name: "Blank", Profile: "no structure here"})
	require.NoError(t, err)

	insights, err := eng.AnalyzeCandidate(ctx, id)
	require.NoError(t, err)

	require.Len(t, insights.Timeline.Roles, 1)
	assert.True(t, insights.Timeline.Roles[0].Sentinel)
	assert.Equal(t, types.InsufficientGrowthProfile(), insights.Growth)
}
