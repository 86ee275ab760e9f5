package types

// CareerStage is a coarse classification of how far along a career is.
type CareerStage string

const (
	StageEarlyCareer CareerStage = "early_career"
	StageMidCareer   CareerStage = "mid_career"
	StageExecutive   CareerStage = "executive"
)

// CareerArchetype labels the overall shape of a career. Archetypes form
// ordered tiers: a candidate whose growth dimensions strictly dominate
// another's never receives a lower tier.
type CareerArchetype string

const (
	ArchetypeCareerStarter       CareerArchetype = "career_starter"
	ArchetypeTechnicalSpecialist CareerArchetype = "technical_specialist"
	ArchetypeHighGrowthIC        CareerArchetype = "high_growth_ic"
	ArchetypeSteadyManager       CareerArchetype = "steady_manager"
	ArchetypeStrategicExecutive  CareerArchetype = "strategic_executive"
)

// GrowthDimensions holds the five growth sub-scores, each in [0,1].
type GrowthDimensions struct {
	VerticalGrowth     float64 `json:"vertical_growth"`
	ScopeGrowth        float64 `json:"scope_growth"`
	ImpactGrowth       float64 `json:"impact_growth"`
	Adaptability       float64 `json:"adaptability"`
	LeadershipVelocity float64 `json:"leadership_velocity"`
}

// GrowthProfile is the derived, read-only summary of a career timeline.
type GrowthProfile struct {
	OverallScore float64          `json:"overall_score"` // 0..100
	Dimensions   GrowthDimensions `json:"dimensions"`
	Archetype    CareerArchetype  `json:"archetype"`
	CareerStage  CareerStage      `json:"career_stage"`
	MaxLevel     int              `json:"max_level"`
}

// InsufficientGrowthProfile is the well-defined profile returned when fewer
// than two real roles are available.
func InsufficientGrowthProfile() GrowthProfile {
	return GrowthProfile{
		OverallScore: 0,
		Dimensions:   GrowthDimensions{},
		Archetype:    ArchetypeCareerStarter,
		CareerStage:  StageEarlyCareer,
		MaxLevel:     1,
	}
}
