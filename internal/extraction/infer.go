package extraction

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

var (
	defaultExecutiveKeywords = []string{"chief", "cto", "ceo", "vp", "vice president", "director", "head of", "head"}
	defaultSeniorKeywords    = []string{"senior", "sr.", "lead", "principal", "staff"}
	defaultManagerKeywords   = []string{"manager", "team lead", "supervisor"}

	defaultLeadershipKeywords = []string{
		"chief", "cto", "ceo", "vp", "vice president",
		"director", "head", "manager", "lead", "supervisor",
	}
)

// inferLevel maps a role title onto the 1..4 level scale. Manager keywords
// run before senior ones so "team lead" lands on level 2 instead of matching
// the bare "lead".
func inferLevel(title string, cfg Config) int {
	lower := strings.ToLower(title)
	switch {
	case containsAny(lower, cfg.ExecutiveKeywords):
		return types.LevelExecutive
	case containsAny(lower, cfg.ManagerKeywords):
		return types.LevelManager
	case containsAny(lower, cfg.SeniorKeywords):
		return types.LevelSenior
	default:
		return types.LevelIndividual
	}
}

// inferScope decides whether a title carries people responsibility.
func inferScope(title string, cfg Config) types.RoleScope {
	if containsAny(strings.ToLower(title), cfg.LeadershipKeywords) {
		return types.ScopeTeamLeadership
	}
	return types.ScopeIndividualContributor
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
