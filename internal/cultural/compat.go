package cultural

import "github.com/jonathan/talent-matcher/internal/types"

// lowConfidenceFloor is reported when the combined evidence across both
// profiles is too weak to trust the comparison.
const (
	lowConfidenceThreshold = 0.4
	lowConfidenceFloor     = 0.3
)

// Compatibility compares a job profile against a candidate profile.
// Per-dimension compatibility is 1 minus the absolute score difference; the
// overall score is the mean across the five dimensions. When the mean
// confidence across both profiles falls below the threshold, the reported
// confidence is clamped to the low-confidence floor without touching the
// score.
func Compatibility(job, candidate types.CulturalProfile) types.CulturalFit {
	scoreSum := 0.0
	confSum := 0.0
	for _, dim := range types.CulturalDimensions {
		j := signalOrNeutral(job, dim)
		c := signalOrNeutral(candidate, dim)

		diff := j.Score - c.Score
		if diff < 0 {
			diff = -diff
		}
		scoreSum += 1 - diff
		confSum += j.Confidence + c.Confidence
	}

	n := float64(len(types.CulturalDimensions))
	fit := types.CulturalFit{
		Score:      scoreSum / n,
		Confidence: confSum / (2 * n),
	}
	if fit.Confidence < lowConfidenceThreshold {
		fit.Confidence = lowConfidenceFloor
	}
	return fit
}

func signalOrNeutral(p types.CulturalProfile, dim types.CulturalDimension) types.CulturalSignal {
	if p == nil {
		return types.NeutralSignal()
	}
	if s, ok := p[dim]; ok {
		return s
	}
	return types.NeutralSignal()
}
