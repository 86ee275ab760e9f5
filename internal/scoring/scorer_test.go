package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/semantic"
	"github.com/jonathan/talent-matcher/internal/types"
)

// fixedOracle maps candidate profile text to a fixed similarity.
type fixedOracle struct {
	scores map[string]float64
	err    error
}

func (f *fixedOracle) Similarity(_ context.Context, _, candidateText string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.scores[candidateText], nil
}

func TestSkillScore(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("weighted partial overlap", func(t *testing.T) {
		// python 0.15 + sql 0.10 matched out of python + sql + tensorflow 0.33.
		score, common := skillScore(cfg, []string{"python", "sql", "tensorflow"}, []string{"python", "sql"})
		assert.InDelta(t, 0.25/0.33, score, 1e-9)
		assert.Equal(t, []string{"python", "sql"}, common)
	})

	t.Run("no required skills scores zero", func(t *testing.T) {
		score, common := skillScore(cfg, nil, []string{"python"})
		assert.Zero(t, score)
		assert.Empty(t, common)
	})

	t.Run("full match scores one", func(t *testing.T) {
		score, _ := skillScore(cfg, []string{"python", "react"}, []string{"react", "python", "extra"})
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("unknown skills use the default weight", func(t *testing.T) {
		score, common := skillScore(cfg, []string{"cobol", "fortran"}, []string{"cobol"})
		assert.InDelta(t, 0.5, score, 1e-9)
		assert.Equal(t, []string{"cobol"}, common)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		score, _ := skillScore(cfg, []string{"Python"}, []string{"PYTHON"})
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("duplicate required skills count once", func(t *testing.T) {
		once, _ := skillScore(cfg, []string{"python", "react"}, []string{"python"})
		duped, _ := skillScore(cfg, []string{"python", "python", "react"}, []string{"python"})
		assert.InDelta(t, once, duped, 1e-9)
	})

	t.Run("monotonic in candidate skills", func(t *testing.T) {
		required := []string{"python", "django", "sql", "aws"}
		narrow, _ := skillScore(cfg, required, []string{"python"})
		wide, _ := skillScore(cfg, required, []string{"python", "sql"})
		assert.Greater(t, wide, narrow)
	})
}

func TestExperienceScore(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 0.4, experienceScore(cfg, "Senior Engineer", 2), 1e-9)
	assert.InDelta(t, 1.0, experienceScore(cfg, "Senior Engineer", 5), 1e-9)
	assert.InDelta(t, 1.0, experienceScore(cfg, "Senior Engineer", 9), 1e-9)
	assert.InDelta(t, zeroExperienceFloor, experienceScore(cfg, "Senior Engineer", 0), 1e-9)
	assert.InDelta(t, 1.0, experienceScore(cfg, "Junior Developer", 3), 1e-9)
	// No keyword match falls back to the default threshold.
	assert.InDelta(t, 2.0/3.0, experienceScore(cfg, "Engineer", 2), 1e-9)
}

func TestLocationScore(t *testing.T) {
	cases := []struct {
		name      string
		job       string
		candidate string
		want      float64
	}{
		{"remote job", "Remote", "Berlin, Germany", 1.0},
		{"exact match", "Berlin, Germany", "berlin, germany", 1.0},
		{"candidate remote but job on-site", "Berlin, Germany", "Remote", 0.8},
		{"both unknown", "", "", 0.5},
		{"candidate unknown", "Berlin, Germany", "", 0.5},
		{"mismatch", "Berlin, Germany", "Lisbon, Portugal", 0.3},
		{"wfh counts as remote", "Work from home", "Lisbon, Portugal", 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, locationScore(tc.job, tc.candidate), 1e-9)
		})
	}
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		total float64
		grade types.Grade
	}{
		{0.95, types.GradeAPlus}, {0.9, types.GradeAPlus},
		{0.85, types.GradeA}, {0.75, types.GradeBPlus},
		{0.65, types.GradeB}, {0.55, types.GradeCPlus},
		{0.45, types.GradeC}, {0.2, types.GradeD}, {0.0, types.GradeD},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, gradeFor(tc.total), "total %.2f", tc.total)
	}
}

func TestScoreBlendsComponents(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScorer(cfg, &fixedOracle{scores: map[string]float64{"candidate text": 0.5}})

	job := types.JobRecord{
		ID:             7,
		Title:          "Senior Python Developer",
		Description:    "job text",
		RequiredSkills: []string{"python"},
		Location:       "Remote",
	}
	candidate := types.CandidateRecord{
		ID:              3,
		Profile:         "candidate text",
		Skills:          []string{"python"},
		ExperienceYears: 5,
		Location:        "Lisbon, Portugal",
	}

	match := s.Score(context.Background(), job, candidate)

	assert.Equal(t, 7, match.JobID)
	assert.Equal(t, 3, match.CandidateID)
	assert.InDelta(t, 1.0, match.Breakdown.Skills, 1e-9)
	assert.InDelta(t, 1.0, match.Breakdown.Experience, 1e-9)
	assert.InDelta(t, 1.0, match.Breakdown.Location, 1e-9)
	assert.InDelta(t, 0.5, match.Breakdown.Semantic, 1e-9)
	// Both profiles absent: per-dimension neutral on both sides.
	assert.InDelta(t, 1.0, match.Breakdown.Cultural, 1e-9)

	want := cfg.Weights.Skills + cfg.Weights.Experience + cfg.Weights.Location +
		cfg.Weights.Semantic*0.5 + cfg.Weights.Cultural
	assert.InDelta(t, want, match.Total, 1e-9)
	assert.Equal(t, gradeFor(match.Total), match.Grade)
	assert.Equal(t, []string{"python"}, match.CommonSkills)
}

func TestScoreFallsBackWhenOracleFails(t *testing.T) {
	s := NewScorer(DefaultConfig(), &fixedOracle{err: errors.New("oracle down")})
	lexical := semantic.NewLexicalOracle()

	job := types.JobRecord{Description: "python developer wanted"}
	candidate := types.CandidateRecord{Profile: "python developer here"}

	match := s.Score(context.Background(), job, candidate)
	want, _ := lexical.Similarity(context.Background(), job.Description, candidate.Profile)
	assert.InDelta(t, want, match.Breakdown.Semantic, 1e-9)
}

func TestScoreTotalAlwaysInRange(t *testing.T) {
	s := NewScorer(DefaultConfig(), &fixedOracle{scores: map[string]float64{}})

	jobs := []types.JobRecord{
		{},
		{Title: "Senior Engineer", RequiredSkills: []string{"python", "go"}, Location: "Remote"},
	}
	candidates := []types.CandidateRecord{
		{},
		{Skills: []string{"python"}, ExperienceYears: 20, Location: "Anywhere"},
	}
	for _, job := range jobs {
		for _, candidate := range candidates {
			match := s.Score(context.Background(), job, candidate)
			require.GreaterOrEqual(t, match.Total, 0.0)
			require.LessOrEqual(t, match.Total, 1.0)
		}
	}
}

func TestRankCandidates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSemanticScore = 0.2
	oracle := &fixedOracle{scores: map[string]float64{
		"strong": 0.9,
		"weak":   0.4,
		"noise":  0.05,
	}}
	s := NewScorer(cfg, oracle)

	job := types.JobRecord{ID: 1, Title: "Engineer", Description: "desc"}
	candidates := []types.CandidateRecord{
		{ID: 1, Profile: "weak", ExperienceYears: 3},
		{ID: 2, Profile: "strong", ExperienceYears: 3},
		{ID: 3, Profile: "noise", ExperienceYears: 3},
	}

	ranked, err := s.RankCandidates(context.Background(), job, candidates)
	require.NoError(t, err)

	// Candidate 3 is filtered below the semantic floor; the rest sort by
	// total descending.
	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].CandidateID)
	assert.Equal(t, 1, ranked[1].CandidateID)
	assert.Greater(t, ranked[0].Total, ranked[1].Total)
}

func TestRankCandidatesDeterministicTiebreak(t *testing.T) {
	cfg := DefaultConfig()
	oracle := &fixedOracle{scores: map[string]float64{"same": 0.5}}
	s := NewScorer(cfg, oracle)

	job := types.JobRecord{ID: 1, Title: "Engineer"}
	candidates := []types.CandidateRecord{
		{ID: 9, Profile: "same", ExperienceYears: 3},
		{ID: 2, Profile: "same", ExperienceYears: 3},
		{ID: 5, Profile: "same", ExperienceYears: 3},
	}

	ranked, err := s.RankCandidates(context.Background(), job, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, []int{2, 5, 9}, []int{ranked[0].CandidateID, ranked[1].CandidateID, ranked[2].CandidateID})
}

func TestRankCandidatesEmptyPool(t *testing.T) {
	s := NewScorer(DefaultConfig(), nil)

	ranked, err := s.RankCandidates(context.Background(), types.JobRecord{ID: 1}, nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
