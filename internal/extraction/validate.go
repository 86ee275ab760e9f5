package extraction

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/parsing"
)

// defaultSkillVocabulary lists technology terms that never name a real role
// or employer. A field made of these means the strategy mis-split a skills
// line.
var defaultSkillVocabulary = parsing.SkillVocabulary()

// isValidRole rejects triples with empty fields, a too-short title, or a
// title/organization that is really a skill keyword or a list of them.
func isValidRole(title, organization string, vocabulary []string) bool {
	title = strings.TrimSpace(title)
	organization = strings.TrimSpace(organization)
	if title == "" || organization == "" {
		return false
	}
	if len(title) < 2 {
		return false
	}
	if isSkillListing(title, vocabulary) || isSkillListing(organization, vocabulary) {
		return false
	}
	return true
}

// isSkillListing reports whether every comma-separated part of the field is a
// known skill keyword. "Python" and "Python, Django, SQL" are skill listings;
// "Senior Python Developer" is not.
func isSkillListing(field string, vocabulary []string) bool {
	parts := strings.Split(strings.ToLower(field), ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		known := false
		for _, skill := range vocabulary {
			if part == skill {
				known = true
				break
			}
		}
		if !known {
			return false
		}
	}
	return true
}
