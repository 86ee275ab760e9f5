// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatches outputs a ranked match list for one job.
func (p *Printer) PrintMatches(job types.JobRecord, matches []types.MatchScore) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:      %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString("\n")

	if len(matches) == 0 {
		sb.WriteString("No candidates cleared the semantic floor.\n")
	}

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("%d. candidate %d  %.3f (%s)\n", i+1, m.CandidateID, m.Total, m.Grade))
		sb.WriteString(fmt.Sprintf("   skills %.2f  exp %.2f  loc %.2f  sem %.2f  cult %.2f\n",
			m.Breakdown.Skills, m.Breakdown.Experience, m.Breakdown.Location,
			m.Breakdown.Semantic, m.Breakdown.Cultural))
		if len(m.CommonSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   common: %s\n", strings.Join(m.CommonSkills, ", ")))
		}
	}
	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
	}

	p.printBox("RANKED MATCHES", strings.TrimRight(sb.String(), "\n"))
}

// PrintGrowthProfile outputs a human-readable summary of a growth profile.
func (p *Printer) PrintGrowthProfile(name string, profile types.GrowthProfile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", name))
	sb.WriteString(fmt.Sprintf("Archetype:  %s\n", profile.Archetype))
	sb.WriteString(fmt.Sprintf("Stage:      %s\n", profile.CareerStage))
	sb.WriteString(fmt.Sprintf("Overall:    %.1f\n", profile.OverallScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("vertical      %.2f\n", profile.Dimensions.VerticalGrowth))
	sb.WriteString(fmt.Sprintf("scope         %.2f\n", profile.Dimensions.ScopeGrowth))
	sb.WriteString(fmt.Sprintf("impact        %.2f\n", profile.Dimensions.ImpactGrowth))
	sb.WriteString(fmt.Sprintf("adaptability  %.2f\n", profile.Dimensions.Adaptability))
	sb.WriteString(fmt.Sprintf("leadership    %.2f\n", profile.Dimensions.LeadershipVelocity))

	p.printBox("GROWTH PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintTimeline outputs the extracted career timeline most-recent-first.
func (p *Printer) PrintTimeline(timeline types.CareerTimeline) {
	var sb strings.Builder

	for _, role := range timeline.Roles {
		marker := ""
		if role.Sentinel {
			marker = "  (placeholder)"
		}
		sb.WriteString(fmt.Sprintf("%s @ %s%s\n", role.Title, role.Organization, marker))
		sb.WriteString(fmt.Sprintf("  %s  level %d  %s\n", role.Span, role.Level, role.Scope))
	}

	p.printBox("CAREER TIMELINE", strings.TrimRight(sb.String(), "\n"))
}

// PrintCulturalProfile outputs dimension scores with confidences.
func (p *Printer) PrintCulturalProfile(profile types.CulturalProfile) {
	var sb strings.Builder

	for _, dim := range types.CulturalDimensions {
		signal := profile[dim]
		sb.WriteString(fmt.Sprintf("%-18s %.2f (confidence %.2f)\n", dim, signal.Score, signal.Confidence))
	}

	p.printBox("CULTURAL PROFILE", strings.TrimRight(sb.String(), "\n"))
}
