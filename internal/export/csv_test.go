package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/harithj/ascent/internal/models"
)

func TestWriteCSVHeaderOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected only header row, got %d rows", len(records))
	}
	got := strings.Join(records[0], "|")
	want := strings.Join(Headers, "|")
	if got != want {
		t.Errorf("header row = %q, want %q", got, want)
	}
}

func TestWriteCSVRows(t *testing.T) {
	t.Parallel()

	projects := []*models.Project{
		{
			ID:             1,
			Name:           "ERP Migration",
			Year:           "2025",
			Pillar:         "Smart Operation",
			Status:         models.StatusInProgress,
			CompletionRate: 62.5,
			Manager:        "farah",
		},
		{
			ID:     2,
			Name:   "Line 3, \"phase 2\"",
			Status: models.StatusCompleted,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, projects); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}

	first := records[1]
	if first[0] != "1" || first[1] != "ERP Migration" || first[14] != "62.5" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[13] != "In Progress" {
		t.Errorf("status column = %q, want %q", first[13], "In Progress")
	}

	// encoding/csv must round-trip quotes and commas in names.
	if records[2][1] != "Line 3, \"phase 2\"" {
		t.Errorf("quoted name did not round-trip: %q", records[2][1])
	}
}
