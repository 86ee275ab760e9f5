// Package types defines the shared data structures for the matching engine.
package types

// RoleScope describes whether a role carried people responsibility.
type RoleScope string

const (
	ScopeIndividualContributor RoleScope = "individual_contributor"
	ScopeTeamLeadership        RoleScope = "team_leadership"
)

// Role levels inferred from titles.
const (
	LevelIndividual = 1 // individual contributor
	LevelManager    = 2 // team lead / manager / supervisor
	LevelSenior     = 3 // senior / lead / principal
	LevelExecutive  = 4 // chief / director / head / VP
)

// RoleRecord is one job held by a candidate, extracted from career text.
// Records are immutable once created.
type RoleRecord struct {
	Title        string    `json:"title"`
	Organization string    `json:"organization"`
	Span         string    `json:"span"` // free-form duration text, e.g. "2018–2021"
	Level        int       `json:"level"`
	Scope        RoleScope `json:"scope"`

	// Sentinel marks the placeholder record emitted when no valid role could
	// be extracted. Downstream analysis treats a sentinel timeline as
	// insufficient data.
	Sentinel bool `json:"sentinel,omitempty"`
}

// CareerTimeline is an ordered sequence of roles for one candidate.
// Extraction produces it most-recent-first; growth analysis consumes it
// oldest-first via Chronological.
type CareerTimeline struct {
	Roles []RoleRecord `json:"roles"`
}

// Chronological returns the roles oldest-first without mutating the timeline.
func (t CareerTimeline) Chronological() []RoleRecord {
	out := make([]RoleRecord, len(t.Roles))
	for i, r := range t.Roles {
		out[len(t.Roles)-1-i] = r
	}
	return out
}

// RealRoles returns the non-sentinel roles.
func (t CareerTimeline) RealRoles() []RoleRecord {
	out := make([]RoleRecord, 0, len(t.Roles))
	for _, r := range t.Roles {
		if !r.Sentinel {
			out = append(out, r)
		}
	}
	return out
}
