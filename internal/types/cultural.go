package types

// CulturalDimension names one of the five fixed cultural dimensions.
type CulturalDimension string

const (
	DimensionTeamwork        CulturalDimension = "teamwork"
	DimensionInnovation      CulturalDimension = "innovation"
	DimensionWorkEnvironment CulturalDimension = "work_environment"
	DimensionWorkPace        CulturalDimension = "work_pace"
	DimensionCustomerFocus   CulturalDimension = "customer_focus"
)

// CulturalDimensions lists the fixed dimensions in canonical order.
// Every CulturalProfile carries exactly these keys.
var CulturalDimensions = []CulturalDimension{
	DimensionTeamwork,
	DimensionInnovation,
	DimensionWorkEnvironment,
	DimensionWorkPace,
	DimensionCustomerFocus,
}

// CulturalSignal is one dimension's score with the confidence of the evidence
// behind it, both in [0,1].
type CulturalSignal struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}

// NeutralSignal is the default emitted when a text carries no evidence for a
// dimension: neutral score, low confidence.
func NeutralSignal() CulturalSignal {
	return CulturalSignal{Score: 0.5, Confidence: 0.3}
}

// CulturalProfile maps each of the five dimensions to its signal. Missing
// evidence yields the neutral default, never an absent key.
type CulturalProfile map[CulturalDimension]CulturalSignal

// NeutralCulturalProfile returns a profile with every dimension neutral.
func NeutralCulturalProfile() CulturalProfile {
	p := make(CulturalProfile, len(CulturalDimensions))
	for _, d := range CulturalDimensions {
		p[d] = NeutralSignal()
	}
	return p
}

// CulturalFit is the result of comparing two cultural profiles.
type CulturalFit struct {
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
}
