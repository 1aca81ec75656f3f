// Package importer merges externally supplied spreadsheets into the
// project registry. Its defining property is tolerance: no single
// malformed cell aborts a batch - every failure degrades to a default
// value, and only a missing project name skips a row.
package importer

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"

	"github.com/harithj/ascent/internal/database"
	"github.com/harithj/ascent/internal/models"
)

// Recognized source column headers, mapped onto project fields.
const (
	colName         = "Project Name"
	colYear         = "Year"
	colPillar       = "JJM Strategic Pillars"
	colMainCategory = "Target Main Category"
	colSubCategory  = "Target Sub Category"
	colDimension    = "Target 16 Dimensions"
	colActionPlan   = "JJM Action Plan"
	colStartDate    = "Start Date"
	colEndDate      = "End Date"
	colCaptain      = "Roadmap Captain"
	colLeaders      = "Project Leaders"
	colOwners       = "Project Owners"
	colStatus       = "Task Status"
	colRate         = "Task Completion Rate"
	colComments     = "JJM Comments"
	colRemark       = "Target Remark"
	colManager      = "Manager"
)

// Outcome classifies what happened to one source row.
type Outcome string

const (
	OutcomeInserted      Outcome = "Inserted"
	OutcomeUpdated       Outcome = "Updated"
	OutcomeSkippedNoName Outcome = "SkippedNoName"
)

// RowResult reports the outcome for one source row. Row is 1-based,
// counting data rows in source order.
type RowResult struct {
	Row     int
	Name    string
	Outcome Outcome
}

// Service reconciles import tables against the registry.
type Service struct {
	repo *database.Repository
}

// NewService creates a new importer service
func NewService(repo *database.Repository) *Service {
	return &Service{repo: repo}
}

// Reconcile merges the table into the registry, row by row in source
// order: rows without a real project name are skipped, existing names
// are updated in place (first match wins, identifier preserved), new
// names are inserted. The whole batch runs inside one transaction so the
// find-then-upsert sequences cannot interleave with other writers; a
// storage failure rolls the batch back and propagates unmodified.
func (s *Service) Reconcile(ctx context.Context, table *Table) ([]RowResult, error) {
	if table == nil {
		return nil, ErrSourceUnreadable
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	projects := s.repo.ProjectRepo.WithTx(tx)

	results := make([]RowResult, 0, len(table.Rows))
	for i := range table.Rows {
		rowNum := i + 1

		name := table.Cell(i, colName)
		if !isRealValue(name) {
			slog.Warn("skipping import row: no project name", "row", rowNum)
			results = append(results, RowResult{Row: rowNum, Outcome: OutcomeSkippedNoName})
			continue
		}

		fields := s.rowFields(table, i, name)

		existing, err := projects.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			if err := projects.Update(ctx, existing.ID, fields); err != nil {
				return nil, err
			}
			results = append(results, RowResult{Row: rowNum, Name: name, Outcome: OutcomeUpdated})
		} else {
			if _, err := projects.Create(ctx, fields); err != nil {
				return nil, err
			}
			results = append(results, RowResult{Row: rowNum, Name: name, Outcome: OutcomeInserted})
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import transaction: %w", err)
	}

	return results, nil
}

// rowFields normalizes one source row into project fields. Absent
// columns and blank cells become empty values; dates and the completion
// rate degrade per the tolerant coercion rules.
func (s *Service) rowFields(table *Table, row int, name string) models.Fields {
	startRaw := table.Cell(row, colStartDate)
	endRaw := table.Cell(row, colEndDate)
	rateRaw := table.Cell(row, colRate)

	start := normalizeDate(startRaw)
	if start != startRaw && start != "" {
		slog.Info("normalized start date", "row", row+1, "raw", startRaw, "value", start)
	}
	end := normalizeDate(endRaw)
	if end != endRaw && end != "" {
		slog.Info("normalized end date", "row", row+1, "raw", endRaw, "value", end)
	}

	return models.Fields{
		Name:           name,
		Year:           table.Cell(row, colYear),
		Pillar:         table.Cell(row, colPillar),
		MainCategory:   table.Cell(row, colMainCategory),
		SubCategory:    table.Cell(row, colSubCategory),
		Dimension:      table.Cell(row, colDimension),
		ActionPlan:     table.Cell(row, colActionPlan),
		StartDate:      start,
		EndDate:        end,
		Captain:        table.Cell(row, colCaptain),
		Leaders:        table.Cell(row, colLeaders),
		Owners:         table.Cell(row, colOwners),
		Status:         table.Cell(row, colStatus),
		CompletionRate: normalizeRate(rateRaw),
		Comments:       table.Cell(row, colComments),
		Remark:         table.Cell(row, colRemark),
		Manager:        table.Cell(row, colManager),
	}
}
