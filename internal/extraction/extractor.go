// Package extraction turns free-text career narratives into structured role
// records using an ordered set of layout strategies.
package extraction

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Extractor produces a career timeline from one free-text career narrative.
// Implementations must be total: malformed or empty input yields the sentinel
// timeline, never an error.
type Extractor interface {
	Extract(text string) types.CareerTimeline
}

// Config carries the keyword tables the extractor needs. Instances are
// treated as immutable after construction.
type Config struct {
	// SkillVocabulary rejects triples where a layout strategy mis-split a
	// skills line into a title or organization.
	SkillVocabulary []string
	// ExecutiveKeywords, SeniorKeywords and ManagerKeywords infer role level
	// from titles (level 4, 3 and 2 respectively).
	ExecutiveKeywords []string
	SeniorKeywords    []string
	ManagerKeywords   []string
	// LeadershipKeywords decide scope: any hit means team_leadership.
	LeadershipKeywords []string
}

// DefaultConfig returns the standard keyword tables.
func DefaultConfig() Config {
	return Config{
		SkillVocabulary:    defaultSkillVocabulary,
		ExecutiveKeywords:  defaultExecutiveKeywords,
		SeniorKeywords:     defaultSeniorKeywords,
		ManagerKeywords:    defaultManagerKeywords,
		LeadershipKeywords: defaultLeadershipKeywords,
	}
}

// PatternExtractor extracts roles by applying layout strategies in order of
// descending extraction confidence.
type PatternExtractor struct {
	cfg        Config
	strategies []layoutStrategy
}

// NewPatternExtractor builds a pattern-based extractor with the given config.
func NewPatternExtractor(cfg Config) *PatternExtractor {
	return &PatternExtractor{cfg: cfg, strategies: layoutStrategies()}
}

// Extract runs every layout strategy against the text, then validates,
// de-duplicates and finalizes the surviving triples. Roles come back in
// source order (most-recent-first by resume convention). When nothing valid
// survives, the result is the flagged sentinel record.
func (e *PatternExtractor) Extract(text string) types.CareerTimeline {
	var raw []candidateRole
	for _, s := range e.strategies {
		raw = append(raw, s.match(text)...)
	}

	merged := mergeCandidates(raw, e.cfg)
	if len(merged) == 0 {
		return sentinelTimeline()
	}

	roles := make([]types.RoleRecord, 0, len(merged))
	for _, c := range merged {
		roles = append(roles, types.RoleRecord{
			Title:        c.Title,
			Organization: c.Organization,
			Span:         c.Span,
			Level:        inferLevel(c.Title, e.cfg),
			Scope:        inferScope(c.Title, e.cfg),
		})
	}
	return types.CareerTimeline{Roles: roles}
}

// mergeCandidates is the single merge policy: drop invalid triples, then
// de-duplicate on the case-insensitive (title, organization) pair. The input
// is ordered by strategy confidence, so the first occurrence wins.
func mergeCandidates(raw []candidateRole, cfg Config) []candidateRole {
	seen := make(map[string]bool, len(raw))
	out := make([]candidateRole, 0, len(raw))
	for _, c := range raw {
		if !isValidRole(c.Title, c.Organization, cfg.SkillVocabulary) {
			continue
		}
		key := strings.ToLower(c.Title) + "\x00" + strings.ToLower(c.Organization)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func sentinelTimeline() types.CareerTimeline {
	return types.CareerTimeline{Roles: []types.RoleRecord{{
		Title:        "Extracted role",
		Organization: "Extracted company",
		Span:         "Extracted duration",
		Level:        types.LevelManager,
		Scope:        types.ScopeIndividualContributor,
		Sentinel:     true,
	}}}
}
