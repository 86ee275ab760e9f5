package scoring

import (
	"context"

	"github.com/jonathan/talent-matcher/internal/cultural"
	"github.com/jonathan/talent-matcher/internal/semantic"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Scorer computes match scores between jobs and candidates. It is stateless
// apart from its immutable configuration and safe for concurrent use.
type Scorer struct {
	cfg     Config
	oracle  semantic.Oracle
	lexical *semantic.LexicalOracle
}

// NewScorer builds a scorer. The oracle supplies the semantic sub-score;
// when it fails, the lexical heuristic substitutes so scoring stays total.
func NewScorer(cfg Config, oracle semantic.Oracle) *Scorer {
	return &Scorer{
		cfg:     cfg,
		oracle:  oracle,
		lexical: semantic.NewLexicalOracle(),
	}
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// Score compares one job to one candidate. It is total over well-formed
// inputs: empty skill lists, missing locations and absent cultural profiles
// all produce defined sub-scores.
func (s *Scorer) Score(ctx context.Context, job types.JobRecord, candidate types.CandidateRecord) types.MatchScore {
	skills, common := skillScore(s.cfg, job.RequiredSkills, candidate.Skills)
	experience := experienceScore(s.cfg, job.Title, candidate.ExperienceYears)
	location := locationScore(job.Location, candidate.Location)
	sem := s.semanticScore(ctx, job.Description, candidate.Profile)
	culturalFit := cultural.Compatibility(job.CulturalProfile, candidate.CulturalProfile)

	breakdown := types.ScoreBreakdown{
		Skills:     skills,
		Experience: experience,
		Location:   location,
		Semantic:   sem,
		Cultural:   culturalFit.Score,
	}

	total := s.cfg.Weights.Skills*skills +
		s.cfg.Weights.Experience*experience +
		s.cfg.Weights.Location*location +
		s.cfg.Weights.Semantic*sem +
		s.cfg.Weights.Cultural*culturalFit.Score

	return types.MatchScore{
		JobID:        job.ID,
		CandidateID:  candidate.ID,
		Total:        clamp01(total),
		Grade:        gradeFor(clamp01(total)),
		Breakdown:    breakdown,
		CommonSkills: common,
	}
}

// semanticScore asks the oracle and falls back to the lexical heuristic on
// any failure; a match never fails because the oracle did.
func (s *Scorer) semanticScore(ctx context.Context, jobText, candidateText string) float64 {
	if s.oracle != nil {
		if score, err := s.oracle.Similarity(ctx, jobText, candidateText); err == nil {
			return clamp01(score)
		}
	}
	score, _ := s.lexical.Similarity(ctx, jobText, candidateText)
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
