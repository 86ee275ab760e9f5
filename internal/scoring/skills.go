package scoring

import (
	"sort"
	"strings"
)

// skillScore computes the weighted overlap between required and candidate
// skills, returning the score and the common skills (required-side spelling,
// sorted). No required skills yields zero.
func skillScore(cfg Config, required, candidate []string) (float64, []string) {
	if len(required) == 0 {
		return 0, nil
	}

	candidateSet := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		candidateSet[strings.ToLower(strings.TrimSpace(s))] = true
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	var common []string
	seen := make(map[string]bool, len(required))

	for _, skill := range required {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true

		weight := cfg.DefaultSkillWeight
		if w, ok := cfg.SkillWeights[lower]; ok {
			weight = w
		}
		totalWeight += weight

		if candidateSet[lower] {
			matchedWeight += weight
			common = append(common, skill)
		}
	}

	if totalWeight == 0 {
		return 0, common
	}
	sort.Strings(common)
	return matchedWeight / totalWeight, common
}
