package growth

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

var defaultExecutiveKeywords = []string{"chief", "cto", "ceo", "vp", "vice president", "president"}

// Stage thresholds on estimated total experience years.
const (
	executiveStageYears = 15
	midCareerYears      = 8
)

// classifyStage buckets a career by executive title evidence and estimated
// total experience.
func (a *Analyzer) classifyStage(roles []types.RoleRecord) types.CareerStage {
	for _, r := range roles {
		if containsAny(strings.ToLower(r.Title), a.cfg.ExecutiveKeywords) {
			return types.StageExecutive
		}
	}

	total := 0.0
	for _, r := range roles {
		total += tenureYears(r.Span)
	}
	switch {
	case total >= executiveStageYears:
		return types.StageExecutive
	case total >= midCareerYears:
		return types.StageMidCareer
	default:
		return types.StageEarlyCareer
	}
}

// classifyArchetype picks the archetype tier from overall score, max level
// and stage. Tiers are ordered; improving any input never drops the tier.
func classifyArchetype(overall float64, maxLevel int, stage types.CareerStage) types.CareerArchetype {
	switch {
	case stage == types.StageExecutive:
		return types.ArchetypeStrategicExecutive
	case overall >= 60 && maxLevel >= types.LevelManager:
		return types.ArchetypeSteadyManager
	case overall >= 60:
		return types.ArchetypeHighGrowthIC
	case overall >= 25:
		return types.ArchetypeTechnicalSpecialist
	default:
		return types.ArchetypeCareerStarter
	}
}

func distinctEmployers(roles []types.RoleRecord) int {
	seen := make(map[string]bool, len(roles))
	for _, r := range roles {
		seen[strings.ToLower(strings.TrimSpace(r.Organization))] = true
	}
	return len(seen)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
