package extraction

import (
	"regexp"
	"strings"
)

// candidateRole is a raw (title, organization, span) triple produced by one
// layout strategy, before validation and de-duplication.
type candidateRole struct {
	Title        string
	Organization string
	Span         string
	Confidence   float64
}

// layoutStrategy recognizes one resume layout convention. Each strategy is a
// pure function over the text; its confidence reflects how distinctive the
// layout cue is.
type layoutStrategy struct {
	name       string
	confidence float64
	match      func(text string) []candidateRole
}

var (
	// Title (2018–2021)
	// Organization
	reTitleParenSpan = regexp.MustCompile(`(?mi)^(.+?)\s*\((\d{4}\s*[–-]\s*(?:Present|\d{4}))\)\s*\n(.+)$`)

	// Title | Organization | Location | 2018–2021
	rePipeFourField = regexp.MustCompile(`(?mi)^([^|\n]+)\|([^|\n]+)\|[^|\n]+\|\s*(\d{4}\s*[–-]\s*(?:Present|\d{4}))\s*$`)

	// Title
	// Organization, Location 2018–2021
	reTitleOrgComma = regexp.MustCompile(`(?mi)^(.+?)\n(.+?),\s*.+?\s(\d{4}\s*[–-]\s*(?:Present|\d{4}))\s*$`)

	// Organization | Title | 2018–2021
	rePipeThreeField = regexp.MustCompile(`(?mi)^([^|\n]+)\|([^|\n]+)\|\s*(\d{4}\s*[–-]\s*(?:Present|\d{4}))\s*$`)
)

// layoutStrategies returns the strategies ordered by descending confidence.
// The merge policy keeps the first occurrence of a duplicate, so the order
// here decides which strategy wins a conflict.
func layoutStrategies() []layoutStrategy {
	return []layoutStrategy{
		{
			name:       "title_paren_span",
			confidence: 0.9,
			match: matchTriples(reTitleParenSpan, 0.9, func(g []string) (string, string, string) {
				return g[1], g[3], g[2]
			}),
		},
		{
			name:       "pipe_four_field",
			confidence: 0.8,
			match: matchTriples(rePipeFourField, 0.8, func(g []string) (string, string, string) {
				return g[1], g[2], g[3]
			}),
		},
		{
			name:       "title_org_comma",
			confidence: 0.7,
			match: matchTriples(reTitleOrgComma, 0.7, func(g []string) (string, string, string) {
				return g[1], g[2], g[3]
			}),
		},
		{
			name:       "org_pipe_title",
			confidence: 0.6,
			match: matchTriples(rePipeThreeField, 0.6, func(g []string) (string, string, string) {
				return g[2], g[1], g[3]
			}),
		},
	}
}

// matchTriples adapts a regexp plus a group picker into a strategy match
// function. The picker returns (title, organization, span) from the submatch
// groups.
func matchTriples(re *regexp.Regexp, confidence float64, pick func(groups []string) (string, string, string)) func(string) []candidateRole {
	return func(text string) []candidateRole {
		var out []candidateRole
		for _, groups := range re.FindAllStringSubmatch(text, -1) {
			title, org, span := pick(groups)
			out = append(out, candidateRole{
				Title:        strings.TrimSpace(title),
				Organization: strings.TrimSpace(org),
				Span:         strings.TrimSpace(span),
				Confidence:   confidence,
			})
		}
		return out
	}
}
