// Package cultural derives cultural-fit profiles from free text and compares
// them between jobs and candidates.
package cultural

import (
	"regexp"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// defaultKeywords is the baseline cultural taxonomy. Evidence for each
// dimension is counted as whole-word keyword occurrences.
var defaultKeywords = map[types.CulturalDimension][]string{
	types.DimensionTeamwork: {
		"team", "teams", "teamwork", "collaborate", "collaboration",
		"collaborative", "partner", "partners", "cooperate", "cross-functional",
	},
	types.DimensionInnovation: {
		"innovation", "innovative", "innovate", "creative", "creativity",
		"initiative", "breakthrough", "new ideas",
	},
	types.DimensionWorkEnvironment: {
		"remote", "office", "hybrid", "on-site", "onsite",
		"work from home", "wfh", "flexible",
	},
	types.DimensionWorkPace: {
		"fast-paced", "dynamic", "rapid", "startup", "agile",
		"stable", "methodical", "structured",
	},
	types.DimensionCustomerFocus: {
		"customer", "customers", "client", "clients",
		"stakeholder", "stakeholders", "user experience", "end user",
	},
}

// Config carries the per-dimension keyword lists. Immutable after
// construction.
type Config struct {
	Keywords map[types.CulturalDimension][]string
}

// DefaultConfig returns the baseline taxonomy.
func DefaultConfig() Config {
	return Config{Keywords: defaultKeywords}
}

// Profiler scores free text against the cultural taxonomy. The keyword
// method is the baseline; any implementation honoring the same output
// contract may replace it.
type Profiler interface {
	Profile(text string) types.CulturalProfile
}

// KeywordProfiler implements Profiler by whole-word keyword counting.
type KeywordProfiler struct {
	patterns map[types.CulturalDimension][]*regexp.Regexp
}

// NewKeywordProfiler compiles the keyword lists into matchers.
func NewKeywordProfiler(cfg Config) *KeywordProfiler {
	patterns := make(map[types.CulturalDimension][]*regexp.Regexp, len(cfg.Keywords))
	for dim, keywords := range cfg.Keywords {
		compiled := make([]*regexp.Regexp, 0, len(keywords))
		for _, k := range keywords {
			compiled = append(compiled, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(k)+`\b`))
		}
		patterns[dim] = compiled
	}
	return &KeywordProfiler{patterns: patterns}
}

// Profile maps the text onto all five dimensions. Dimensions without
// evidence get the neutral default; the profile always carries exactly the
// five fixed keys.
func (p *KeywordProfiler) Profile(text string) types.CulturalProfile {
	profile := types.NeutralCulturalProfile()
	if strings.TrimSpace(text) == "" {
		return profile
	}

	for _, dim := range types.CulturalDimensions {
		matches := 0
		for _, re := range p.patterns[dim] {
			matches += len(re.FindAllStringIndex(text, -1))
		}
		profile[dim] = signalForMatches(matches)
	}
	return profile
}

// signalForMatches converts a match count into the tiered (score, confidence)
// pair. Both tiers are monotonic and capped.
func signalForMatches(matches int) types.CulturalSignal {
	switch {
	case matches <= 0:
		return types.NeutralSignal()
	case matches == 1:
		return types.CulturalSignal{Score: 0.6, Confidence: 0.6}
	case matches == 2:
		return types.CulturalSignal{Score: 0.7, Confidence: 0.8}
	default:
		return types.CulturalSignal{Score: 0.8, Confidence: 0.9}
	}
}
