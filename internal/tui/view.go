package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harithj/ascent/internal/models"
	"github.com/harithj/ascent/internal/report"
	"github.com/harithj/ascent/internal/services/analytics"
)

func (m Model) View() string {
	if m.mode == viewForm && m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}
	if m.notice != "" {
		b.WriteString(m.notice + "\n\n")
	}

	switch m.mode {
	case viewOverview:
		b.WriteString(m.renderOverview())
	case viewBoard:
		b.WriteString(m.renderBoard())
	case viewTimeline:
		b.WriteString(m.renderTimeline())
	case viewReport:
		b.WriteString(m.renderReport())
	}

	b.WriteString(HelpStyle.Render("tab/1-4: switch view | n: new project | r: reload | q: quit"))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if viewMode(i) == m.mode {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderOverview() string {
	counts := analytics.StatusCounts(m.projects)
	delayed := analytics.DelayedCount(m.projects, now())

	cards := []string{
		metricCard("Projects", len(m.projects)),
		metricCard("Completed", counts[models.StatusCompleted]),
		metricCard("In Progress", counts[models.StatusInProgress]),
		metricCard("Delayed", delayed),
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n"

	stats := analytics.PillarSummary(m.projects)
	if len(stats) > 0 {
		out += ColumnTitleStyle.Render("Strategic Pillars") + "\n"
		for _, s := range stats {
			pillar := s.Pillar
			if pillar == "" {
				pillar = "(unassigned)"
			}
			out += fmt.Sprintf("  %-45s %3d projects, %3d completed\n", pillar, s.Total, s.Completed)
		}
	}
	return out
}

func metricCard(label string, value int) string {
	return CardStyle.Render(CardValueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + label)
}

// renderBoard lays projects out in one column per status, in board
// order, with unrecognized statuses collected at the end.
func (m Model) renderBoard() string {
	buckets := make(map[string][]*models.Project)
	for _, p := range m.projects {
		buckets[boardColumn(p.Status)] = append(buckets[boardColumn(p.Status)], p)
	}

	columnNames := append([]string{}, models.StatusOrder...)
	if len(buckets["Other"]) > 0 {
		columnNames = append(columnNames, "Other")
	}

	columns := make([]string, 0, len(columnNames))
	for _, name := range columnNames {
		projects := buckets[name]
		var cards []string
		for _, p := range projects {
			cards = append(cards, ProjectCardStyle.Render(
				fmt.Sprintf("%s\n%.0f%% %s", p.Name, p.CompletionRate, p.Manager)))
		}
		body := strings.Join(cards, "\n")
		title := ColumnTitleStyle.Render(fmt.Sprintf("%s (%d)", name, len(projects)))
		columns = append(columns, ColumnStyle.Render(title+"\n"+body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// boardColumn maps a status value onto its board column; free-text
// statuses share an Other column.
func boardColumn(status string) string {
	for _, s := range models.StatusOrder {
		if s == status {
			return s
		}
	}
	return "Other"
}

func (m Model) renderTimeline() string {
	if len(m.timeline.Rows()) == 0 {
		return "No projects with both start and end dates.\n"
	}
	return m.timeline.View() + "\n"
}

func (m Model) renderReport() string {
	md := report.Markdown(m.projects, now())
	width := m.cfg.ReportWidth
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}
	return report.Render(md, width)
}
