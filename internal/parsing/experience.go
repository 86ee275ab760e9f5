package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*yrs?`),
	regexp.MustCompile(`experience\s*[:of]*\s*(\d+)`),
}

// ExtractExperienceYears finds the largest explicit year count mentioned in
// text, or fallback when no pattern matches.
func ExtractExperienceYears(text string, fallback int) int {
	lower := strings.ToLower(text)
	best := -1
	for _, re := range experiencePatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
	}
	if best < 0 {
		return fallback
	}
	return best
}
