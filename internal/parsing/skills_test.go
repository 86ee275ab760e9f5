package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	t.Run("finds vocabulary terms case-insensitively", func(t *testing.T) {
		skills := ExtractSkills("Senior Python developer, strong SQL and Docker background")
		assert.Contains(t, skills, "python")
		assert.Contains(t, skills, "sql")
		assert.Contains(t, skills, "docker")
	})

	t.Run("multi-word terms", func(t *testing.T) {
		skills := ExtractSkills("applied machine learning to churn prediction")
		assert.Contains(t, skills, "machine learning")
	})

	t.Run("no skills", func(t *testing.T) {
		assert.Empty(t, ExtractSkills("gardening enthusiast and amateur baker"))
	})

	t.Run("deterministic order", func(t *testing.T) {
		text := "docker, python, sql"
		assert.Equal(t, ExtractSkills(text), ExtractSkills(text))
	})
}

func TestNormalizeSkillName(t *testing.T) {
	cases := map[string]string{
		"  Python ":  "python",
		"JS":         "javascript",
		"k8s":        "kubernetes",
		"ReactJS":    "react",
		"postgres":   "postgresql",
		"node":       "node.js",
		"Go":         "go",
		"unologized": "unologized",
	}
	for input, want := range cases {
		assert.Equal(t, want, NormalizeSkillName(input), "input %q", input)
	}
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{"Python", "python", "JS", "javascript", "", "  "})
	assert.Equal(t, []string{"python", "javascript"}, got)
}

func TestExtractExperienceYears(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"5+ years of backend development", 5},
		{"over 12 years experience", 12},
		{"3 yrs in data engineering", 3},
		{"mentions 2 years here and 7 years there", 7},
		{"no numbers at all", 4},
		{"", 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractExperienceYears(tc.text, 4), "text %q", tc.text)
	}
}
