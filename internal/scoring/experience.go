package scoring

import "strings"

// zeroExperienceFloor keeps candidates with no recorded experience from
// scoring flat zero on otherwise viable matches.
const zeroExperienceFloor = 0.1

// requiredExperience infers the years threshold from job-title keywords
// using the configured rules, first match winning.
func requiredExperience(cfg Config, jobTitle string) int {
	lower := strings.ToLower(jobTitle)
	for _, rule := range cfg.ExperienceRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Years
			}
		}
	}
	return cfg.DefaultExperienceYears
}

// experienceScore rates candidate experience against the inferred threshold.
func experienceScore(cfg Config, jobTitle string, candidateYears int) float64 {
	required := requiredExperience(cfg, jobTitle)
	switch {
	case required <= 0 || candidateYears >= required:
		return 1.0
	case candidateYears > 0:
		return float64(candidateYears) / float64(required)
	default:
		return zeroExperienceFloor
	}
}
