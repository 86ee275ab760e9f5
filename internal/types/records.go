package types

// JobRecord is one job opening as held by the record store.
type JobRecord struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Description     string          `json:"description"`
	RequiredSkills  []string        `json:"required_skills"`
	Location        string          `json:"location"`
	CulturalProfile CulturalProfile `json:"cultural_profile,omitempty"`
}

// CandidateRecord is one candidate as held by the record store.
type CandidateRecord struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Profile         string          `json:"profile"` // free-text career narrative
	Skills          []string        `json:"skills"`
	ExperienceYears int             `json:"experience_years"`
	Location        string          `json:"location"`
	CulturalProfile CulturalProfile `json:"cultural_profile,omitempty"`
}
