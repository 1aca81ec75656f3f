// Package export serializes the full registry as delimited text for
// download and offline reporting.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/harithj/ascent/internal/models"
)

// Headers is the stable export column order, using the human-readable
// field names shared with the import format.
var Headers = []string{
	"ID", "Project Name", "Year", "JJM Strategic Pillars",
	"Target Main Category", "Target Sub Category", "Target 16 Dimensions",
	"JJM Action Plan", "Start Date", "End Date", "Roadmap Captain",
	"Project Leaders", "Project Owners", "Task Status",
	"Task Completion Rate", "JJM Comments", "Target Remark", "Manager",
}

// WriteCSV writes the registry to w as CSV: a header row followed by
// one row per project in registry order.
func WriteCSV(w io.Writer, projects []*models.Project) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for _, p := range projects {
		record := []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Year,
			p.Pillar,
			p.MainCategory,
			p.SubCategory,
			p.Dimension,
			p.ActionPlan,
			p.StartDate,
			p.EndDate,
			p.Captain,
			p.Leaders,
			p.Owners,
			p.Status,
			strconv.FormatFloat(p.CompletionRate, 'f', -1, 64),
			p.Comments,
			p.Remark,
			p.Manager,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write project %d: %w", p.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
