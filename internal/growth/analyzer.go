// Package growth derives a multi-dimensional career growth profile from a
// chronological sequence of role records.
package growth

import (
	"math"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Dimension weights for the overall growth score.
const (
	verticalWeight     = 0.25
	scopeWeight        = 0.20
	impactWeight       = 0.25
	adaptabilityWeight = 0.15
	leadershipWeight   = 0.15
)

// Scope weights for scope-growth normalization. The executive tier applies
// when the level-4 keyword set matched the title.
const (
	scopeWeightIC        = 1
	scopeWeightLead      = 2
	scopeWeightExecutive = 3
)

// Impact ceiling: max level times ten years per role.
const (
	maxTenureYears = 10
)

// Config carries the keyword tables the analyzer needs. Immutable after
// construction.
type Config struct {
	// ExecutiveKeywords classify a candidate as executive-stage when any
	// role title matches.
	ExecutiveKeywords []string
}

// DefaultConfig returns the standard keyword tables.
func DefaultConfig() Config {
	return Config{ExecutiveKeywords: defaultExecutiveKeywords}
}

// Analyzer computes growth profiles. It is stateless and safe for concurrent
// use.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer builds an analyzer with the given config.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze derives a growth profile from roles ordered oldest-first. Fewer
// than two real (non-sentinel) roles yields the insufficient-data profile.
func (a *Analyzer) Analyze(chronological []types.RoleRecord) types.GrowthProfile {
	roles := realRoles(chronological)
	if len(roles) < 2 {
		return types.InsufficientGrowthProfile()
	}

	dims := types.GrowthDimensions{
		VerticalGrowth:     verticalGrowth(roles),
		ScopeGrowth:        scopeGrowth(roles),
		ImpactGrowth:       impactGrowth(roles),
		Adaptability:       adaptability(roles),
		LeadershipVelocity: leadershipVelocity(roles),
	}

	overall := 100 * (verticalWeight*dims.VerticalGrowth +
		scopeWeight*dims.ScopeGrowth +
		impactWeight*dims.ImpactGrowth +
		adaptabilityWeight*dims.Adaptability +
		leadershipWeight*dims.LeadershipVelocity)

	maxLevel := types.LevelIndividual
	for _, r := range roles {
		if r.Level > maxLevel {
			maxLevel = r.Level
		}
	}

	stage := a.classifyStage(roles)

	return types.GrowthProfile{
		OverallScore: round1(overall),
		Dimensions:   dims,
		Archetype:    classifyArchetype(overall, maxLevel, stage),
		CareerStage:  stage,
		MaxLevel:     maxLevel,
	}
}

func realRoles(roles []types.RoleRecord) []types.RoleRecord {
	out := make([]types.RoleRecord, 0, len(roles))
	for _, r := range roles {
		if !r.Sentinel {
			out = append(out, r)
		}
	}
	return out
}

// verticalGrowth sums positive consecutive level deltas, normalized by the
// maximum increase possible from the starting level across this many roles.
func verticalGrowth(roles []types.RoleRecord) float64 {
	gained := 0
	for i := 1; i < len(roles); i++ {
		if d := roles[i].Level - roles[i-1].Level; d > 0 {
			gained += d
		}
	}
	if gained == 0 {
		return 0
	}

	maxGain := types.LevelExecutive - roles[0].Level
	if steps := len(roles) - 1; steps < maxGain {
		maxGain = steps
	}
	if maxGain <= 0 {
		return 0
	}
	return math.Min(1, float64(gained)/float64(maxGain))
}

// scopeGrowth mirrors verticalGrowth over the scope-weight scale.
func scopeGrowth(roles []types.RoleRecord) float64 {
	gained := 0
	for i := 1; i < len(roles); i++ {
		if d := roleScopeWeight(roles[i]) - roleScopeWeight(roles[i-1]); d > 0 {
			gained += d
		}
	}
	if gained == 0 {
		return 0
	}

	maxGain := scopeWeightExecutive - roleScopeWeight(roles[0])
	if steps := len(roles) - 1; steps < maxGain {
		maxGain = steps
	}
	if maxGain <= 0 {
		return 0
	}
	return math.Min(1, float64(gained)/float64(maxGain))
}

func roleScopeWeight(r types.RoleRecord) int {
	if r.Level >= types.LevelExecutive {
		return scopeWeightExecutive
	}
	if r.Scope == types.ScopeTeamLeadership {
		return scopeWeightLead
	}
	return scopeWeightIC
}

// impactGrowth sums level-weighted tenure against a ceiling of the maximum
// level held for ten years in every role.
func impactGrowth(roles []types.RoleRecord) float64 {
	total := 0.0
	for _, r := range roles {
		total += float64(r.Level) * tenureYears(r.Span)
	}
	ceiling := float64(types.LevelExecutive) * maxTenureYears * float64(len(roles))
	return math.Min(1, total/ceiling)
}

// adaptability scores distinct-employer count relative to role count.
func adaptability(roles []types.RoleRecord) float64 {
	if len(roles) <= 2 {
		return 0.3
	}
	distinct := distinctEmployers(roles)
	if distinct == len(roles) {
		return 0.9
	}
	return math.Min(0.8, float64(distinct)/float64(len(roles)))
}

// leadershipVelocity rewards reaching a leadership role early in the career.
func leadershipVelocity(roles []types.RoleRecord) float64 {
	first := -1
	for i, r := range roles {
		if r.Scope == types.ScopeTeamLeadership {
			first = i
			break
		}
	}
	switch {
	case first < 0:
		return 0
	case first == 0:
		return 1.0
	}

	frac := float64(first) / float64(len(roles))
	switch {
	case frac <= 0.3:
		return 0.9
	case frac <= 0.6:
		return 0.7
	default:
		return 0.4
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
