// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/patch-matchmaker/internal/matching"
	"github.com/jonathan/patch-matchmaker/internal/types"
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

// PrintProfile outputs a human-readable summary of the user profile
// driving a match or recommendation run.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Role:       %s (%s)\n", profile.Role, profile.Experience))
	sb.WriteString(fmt.Sprintf("Work style: %s\n", profile.WorkEthic))

	if len(profile.Industries) > 0 {
		industries := make([]string, 0, len(profile.Industries))
		for _, industry := range profile.Industries {
			industries = append(industries, string(industry))
		}
		sb.WriteString(fmt.Sprintf("Industries: %s", strings.Join(industries, ", ")))
	}

	p.printBox("USER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the winning project, its score signals, and the
// assembled team.
func (p *Printer) PrintMatch(result *matching.MatchResult, reason, dynamic string) {
	if result == nil || result.Best.Project == nil {
		return
	}

	var sb strings.Builder
	best := result.Best

	sb.WriteString(fmt.Sprintf("Project: %s\n", best.Project.Title))
	sb.WriteString(fmt.Sprintf("Score:   %d\n", best.Score))

	var signals []string
	if best.RoleMatch {
		signals = append(signals, "role needed")
	}
	if best.ExactFit {
		signals = append(signals, "exact fit")
	}
	if best.IndustryMatch {
		signals = append(signals, "industry")
	}
	if best.Preferred {
		signals = append(signals, "preferred")
	}
	if len(signals) > 0 {
		sb.WriteString(fmt.Sprintf("Signals: %s\n", strings.Join(signals, ", ")))
	}
	sb.WriteString("\n")

	if len(result.Teammates) > 0 {
		sb.WriteString("Team:\n")
		for _, member := range result.Teammates {
			sb.WriteString(fmt.Sprintf("  • %s (%s, %s)\n", member.Name, member.Role, member.Experience))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Reason:  %s\n", reason))
	sb.WriteString(fmt.Sprintf("Dynamic: %s", dynamic))

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top entries of a recommendation feed.
func (p *Printer) PrintRecommendations(recommendations []types.Recommendation, projects []types.Project) {
	if len(recommendations) == 0 {
		return
	}

	titles := make(map[string]string, len(projects))
	for _, project := range projects {
		titles[project.ID] = project.Title
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total projects scored: %d\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		title := titles[rec.ProjectID]
		if title == "" {
			title = rec.ProjectID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %d\n", rec.MatchScore))
		sb.WriteString(fmt.Sprintf("    %s\n", rec.Reason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recommendations)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
