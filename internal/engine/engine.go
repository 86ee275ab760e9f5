// Package engine wires the extractor, analyzers, profiler and scorer around a
// record store into one match engine.
package engine

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-matcher/internal/cultural"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/growth"
	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/store"
	"github.com/jonathan/talent-matcher/internal/types"
)

// defaultCandidateYears applies when a candidate narrative never states an
// experience figure. Jobs use the scoring config's default instead.
const defaultCandidateYears = 2

// Engine is the composition root for the match pipeline.
type Engine struct {
	store     store.Store
	extractor extraction.Extractor
	analyzer  *growth.Analyzer
	profiler  cultural.Profiler
	scorer    *scoring.Scorer
}

// New assembles an engine from its collaborators.
func New(st store.Store, ex extraction.Extractor, an *growth.Analyzer, pr cultural.Profiler, sc *scoring.Scorer) *Engine {
	return &Engine{store: st, extractor: ex, analyzer: an, profiler: pr, scorer: sc}
}

// Store exposes the underlying record store for direct reads.
func (e *Engine) Store() store.Store {
	return e.store
}

// IngestJob fills derived fields from the job description and stores the
// record. Explicitly provided skills and profiles are kept as-is.
func (e *Engine) IngestJob(ctx context.Context, job types.JobRecord) (int, error) {
	if len(job.RequiredSkills) == 0 {
		job.RequiredSkills = parsing.ExtractSkills(job.Description)
	} else {
		job.RequiredSkills = parsing.NormalizeSkills(job.RequiredSkills)
	}
	if job.CulturalProfile == nil {
		job.CulturalProfile = e.profiler.Profile(job.Description)
	}
	id, err := e.store.PutJob(ctx, job)
	if err != nil {
		return 0, fmt.Errorf("failed to ingest job: %w", err)
	}
	return id, nil
}

// IngestCandidate fills derived fields from the candidate narrative and
// stores the record.
func (e *Engine) IngestCandidate(ctx context.Context, candidate types.CandidateRecord) (int, error) {
	if len(candidate.Skills) == 0 {
		candidate.Skills = parsing.ExtractSkills(candidate.Profile)
	} else {
		candidate.Skills = parsing.NormalizeSkills(candidate.Skills)
	}
	if candidate.ExperienceYears == 0 {
		candidate.ExperienceYears = parsing.ExtractExperienceYears(candidate.Profile, defaultCandidateYears)
	}
	if candidate.CulturalProfile == nil {
		candidate.CulturalProfile = e.profiler.Profile(candidate.Profile)
	}
	id, err := e.store.PutCandidate(ctx, candidate)
	if err != nil {
		return 0, fmt.Errorf("failed to ingest candidate: %w", err)
	}
	return id, nil
}

// MatchesForJob scores every stored candidate against one job and returns the
// ranked results.
func (e *Engine) MatchesForJob(ctx context.Context, jobID int) ([]types.MatchScore, error) {
	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	candidates, err := e.store.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return e.scorer.RankCandidates(ctx, job, candidates)
}

// CandidateInsights bundles everything the engine can derive about one
// candidate from their stored narrative.
type CandidateInsights struct {
	Candidate types.CandidateRecord `json:"candidate"`
	Timeline  types.CareerTimeline  `json:"timeline"`
	Growth    types.GrowthProfile   `json:"growth"`
	Cultural  types.CulturalProfile `json:"cultural"`
}

// AnalyzeCandidate extracts the candidate's career timeline and derives the
// growth and cultural profiles from it.
func (e *Engine) AnalyzeCandidate(ctx context.Context, candidateID int) (CandidateInsights, error) {
	candidate, err := e.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return CandidateInsights{}, err
	}

	timeline := e.extractor.Extract(candidate.Profile)
	profile := candidate.CulturalProfile
	if profile == nil {
		profile = e.profiler.Profile(candidate.Profile)
	}

	return CandidateInsights{
		Candidate: candidate,
		Timeline:  timeline,
		Growth:    e.analyzer.Analyze(timeline.Chronological()),
		Cultural:  profile,
	}, nil
}
