package semantic

import (
	"context"
	"strings"
)

// domainTermBonuses boosts overlap when both passages mention the same
// technical term, compensating for how little plain word overlap says about
// relevance in short job/candidate texts.
var domainTermBonuses = map[string]float64{
	"python": 0.15, "developer": 0.10, "django": 0.08, "flask": 0.08,
	"web": 0.06, "api": 0.06, "machine learning": 0.12, "react": 0.08,
	"javascript": 0.08, "database": 0.07, "sql": 0.07, "aws": 0.06,
	"docker": 0.06, "experience": 0.05, "senior": 0.05, "junior": 0.03,
}

// LexicalOracle estimates similarity from word overlap plus domain-term
// bonuses. It never fails and serves as the substitute when the real oracle
// is unavailable.
type LexicalOracle struct {
	bonuses map[string]float64
}

// NewLexicalOracle builds the lexical fallback with the default bonus table.
func NewLexicalOracle() *LexicalOracle {
	return &LexicalOracle{bonuses: domainTermBonuses}
}

// Similarity scores overlap of the two texts. Either text being empty yields
// the neutral 0.5.
func (o *LexicalOracle) Similarity(_ context.Context, a, b string) (float64, error) {
	aLower := strings.ToLower(a)
	bLower := strings.ToLower(b)

	wordsA := wordSet(aLower)
	wordsB := wordSet(bLower)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.5, nil
	}

	common := 0
	for w := range wordsA {
		if wordsB[w] {
			common++
		}
	}
	larger := len(wordsA)
	if len(wordsB) > larger {
		larger = len(wordsB)
	}
	score := float64(common) / float64(larger)

	for term, bonus := range o.bonuses {
		if strings.Contains(aLower, term) && strings.Contains(bLower, term) {
			score += bonus
		}
	}
	return clamp01(score), nil
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
