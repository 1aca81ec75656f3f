// Package report builds a markdown summary of the registry's analytics
// and renders it for terminal display.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/harithj/ascent/internal/models"
	"github.com/harithj/ascent/internal/services/analytics"
)

// Markdown assembles the analytics report for the given registry
// snapshot as a markdown document.
func Markdown(projects []*models.Project, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Transformation Project Report\n\n")
	fmt.Fprintf(&b, "_Generated %s_\n\n", now.Format("2006-01-02"))

	writeOverview(&b, projects, now)
	writeStatusBreakdown(&b, projects)
	writePillarSummary(&b, projects)
	writeManagerMatrix(&b, projects)

	return b.String()
}

func writeOverview(b *strings.Builder, projects []*models.Project, now time.Time) {
	counts := analytics.StatusCounts(projects)

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(b, "- **Total projects:** %d\n", len(projects))
	fmt.Fprintf(b, "- **Completed:** %d\n", counts[models.StatusCompleted])
	fmt.Fprintf(b, "- **In progress:** %d\n", counts[models.StatusInProgress])
	fmt.Fprintf(b, "- **Delayed:** %d\n\n", analytics.DelayedCount(projects, now))
}

func writeStatusBreakdown(b *strings.Builder, projects []*models.Project) {
	counts := analytics.StatusCounts(projects)
	if len(counts) == 0 {
		return
	}

	b.WriteString("## Status Breakdown\n\n")
	b.WriteString("| Status | Projects |\n|---|---|\n")

	seen := make(map[string]bool)
	for _, status := range models.StatusOrder {
		if n, ok := counts[status]; ok {
			fmt.Fprintf(b, "| %s | %d |\n", status, n)
			seen[status] = true
		}
	}
	// Free-text statuses land after the known ones, alphabetically.
	var rest []string
	for status := range counts {
		if !seen[status] {
			rest = append(rest, status)
		}
	}
	sort.Strings(rest)
	for _, status := range rest {
		label := status
		if label == "" {
			label = "(blank)"
		}
		fmt.Fprintf(b, "| %s | %d |\n", label, counts[status])
	}
	b.WriteString("\n")
}

func writePillarSummary(b *strings.Builder, projects []*models.Project) {
	stats := analytics.PillarSummary(projects)
	if len(stats) == 0 {
		return
	}
	means := analytics.GroupedCompletion(projects, analytics.GroupByPillar)

	b.WriteString("## Strategic Pillars\n\n")
	b.WriteString("| Pillar | Projects | Completed | Avg Completion |\n|---|---|---|---|\n")
	for _, s := range stats {
		pillar := s.Pillar
		if pillar == "" {
			pillar = "(unassigned)"
		}
		avg := "-"
		if mean, ok := means[s.Pillar]; ok && !math.IsNaN(mean) {
			avg = fmt.Sprintf("%.1f%%", mean)
		}
		fmt.Fprintf(b, "| %s | %d | %d | %s |\n", pillar, s.Total, s.Completed, avg)
	}
	b.WriteString("\n")
}

func writeManagerMatrix(b *strings.Builder, projects []*models.Project) {
	matrix := analytics.ManagerStatusMatrix(projects)
	if len(matrix) == 0 {
		return
	}

	managers := make([]string, 0, len(matrix))
	for m := range matrix {
		managers = append(managers, m)
	}
	sort.Strings(managers)

	b.WriteString("## Projects by Manager\n\n")
	b.WriteString("| Manager |")
	for _, status := range models.StatusOrder {
		fmt.Fprintf(b, " %s |", status)
	}
	b.WriteString("\n|---|")
	b.WriteString(strings.Repeat("---|", len(models.StatusOrder)))
	b.WriteString("\n")

	for _, m := range managers {
		label := m
		if label == "" {
			label = "(unassigned)"
		}
		fmt.Fprintf(b, "| %s |", label)
		for _, status := range models.StatusOrder {
			fmt.Fprintf(b, " %d |", matrix[m][status])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// Render converts the markdown report to styled terminal output. On
// renderer failure the raw markdown is returned so the report is never
// lost.
func Render(markdown string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSpace(out)
}
