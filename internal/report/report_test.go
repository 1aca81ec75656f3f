package report

import (
	"strings"
	"testing"
	"time"

	"github.com/harithj/ascent/internal/models"
)

var reportNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func sampleProjects() []*models.Project {
	return []*models.Project{
		{
			ID: 1, Name: "ERP Migration", Pillar: "Smart Operation",
			Status: models.StatusInProgress, CompletionRate: 50,
			EndDate: "2025-01-31", Manager: "farah",
		},
		{
			ID: 2, Name: "Line Sensors", Pillar: "Smart Operation",
			Status: models.StatusCompleted, CompletionRate: 100,
			Manager: "farah",
		},
		{
			ID: 3, Name: "Training Portal", Pillar: "People Development",
			Status: models.StatusNotStarted, CompletionRate: 0,
		},
	}
}

func TestMarkdownOverview(t *testing.T) {
	t.Parallel()

	md := Markdown(sampleProjects(), reportNow)

	for _, want := range []string{
		"**Total projects:** 3",
		"**Completed:** 1",
		"**In progress:** 1",
		"**Delayed:** 1",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q\n%s", want, md)
		}
	}
}

func TestMarkdownPillarTable(t *testing.T) {
	t.Parallel()

	md := Markdown(sampleProjects(), reportNow)

	if !strings.Contains(md, "| Smart Operation | 2 | 1 | 75.0% |") {
		t.Errorf("missing Smart Operation pillar row:\n%s", md)
	}
	if !strings.Contains(md, "| People Development | 1 | 0 | 0.0% |") {
		t.Errorf("missing People Development pillar row:\n%s", md)
	}
}

func TestMarkdownManagerMatrix(t *testing.T) {
	t.Parallel()

	md := Markdown(sampleProjects(), reportNow)

	if !strings.Contains(md, "## Projects by Manager") {
		t.Fatalf("missing manager section:\n%s", md)
	}
	if !strings.Contains(md, "| farah |") {
		t.Errorf("missing farah row:\n%s", md)
	}
	if !strings.Contains(md, "| (unassigned) |") {
		t.Errorf("missing unassigned manager row:\n%s", md)
	}
}

func TestMarkdownEmptyRegistry(t *testing.T) {
	t.Parallel()

	md := Markdown(nil, reportNow)

	if !strings.Contains(md, "**Total projects:** 0") {
		t.Errorf("empty registry should still report totals:\n%s", md)
	}
	if strings.Contains(md, "## Strategic Pillars") {
		t.Errorf("empty registry should omit pillar table:\n%s", md)
	}
	if strings.Contains(md, "## Projects by Manager") {
		t.Errorf("empty registry should omit manager matrix:\n%s", md)
	}
}

func TestRenderFallsBackToRawMarkdown(t *testing.T) {
	t.Parallel()

	md := "# Heading\n\nBody text.\n"
	out := Render(md, 80)
	if out == "" {
		t.Fatal("Render returned empty output")
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("rendered output lost report content: %q", out)
	}
}
