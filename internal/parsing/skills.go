// Package parsing extracts skills and experience signals from raw job and
// candidate text.
package parsing

import "strings"

// skillVocabulary is the flat technical-skill vocabulary scanned for in free
// text, grouped loosely by domain.
var skillVocabulary = []string{
	// programming
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "php",
	"swift", "kotlin", "rust",
	// web
	"html", "css", "react", "angular", "vue", "django", "flask", "node.js",
	"express", "spring", "rest api",
	// database
	"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite",
	// cloud
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	// data science
	"machine learning", "deep learning", "tensorflow", "pytorch", "pandas",
	"numpy", "statistics", "data analysis",
	// practices
	"agile", "scrum", "git", "ci/cd",
}

// SkillVocabulary returns a copy of the vocabulary for callers that need the
// raw term list (extraction uses it to reject mis-split skills lines).
func SkillVocabulary() []string {
	out := make([]string, len(skillVocabulary))
	copy(out, skillVocabulary)
	return out
}

// ExtractSkills scans text for vocabulary terms, case-insensitively.
// The result follows vocabulary order, so repeated runs are identical.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// skillNormalizations maps common variants to the vocabulary spelling.
var skillNormalizations = map[string]string{
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"nodejs":     "node.js",
	"node":       "node.js",
	"postgres":   "postgresql",
	"ml":         "machine learning",
	"restful":    "rest api",
	"rest apis":  "rest api",
	"ci cd":      "ci/cd",
	"cicd":       "ci/cd",
	"tensor flow": "tensorflow",
}

// NormalizeSkillName lowercases a skill and folds known variants onto their
// canonical form.
func NormalizeSkillName(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := skillNormalizations[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkills normalizes and de-duplicates a skill list, keeping first
// occurrences in order.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		n := NormalizeSkillName(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
