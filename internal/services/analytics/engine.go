// Package analytics computes the derived dashboard views over a full
// registry snapshot. Every operation is stateless and recomputed per
// call: a pure function of (snapshot, now). Sparse or odd data never
// fails an operation - missing fields simply fall out of the view, and
// an empty registry yields empty results.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/harithj/ascent/internal/models"
)

// dateLayout is the canonical stored date shape. Dates that fail to
// parse (raw import passthrough text) are treated as absent.
const dateLayout = "2006-01-02"

// projectReader is the only data access the engine needs.
type projectReader interface {
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
}

// Engine produces derived views over the registry.
type Engine struct {
	repo projectReader
}

// NewEngine creates a new analytics engine
func NewEngine(repo projectReader) *Engine {
	return &Engine{repo: repo}
}

// Snapshot fetches the registry state all views are computed from.
func (e *Engine) Snapshot(ctx context.Context) ([]*models.Project, error) {
	return e.repo.GetAllProjects(ctx)
}

// StatusCounts partitions the snapshot by status. Free-text values that
// are not part of the standard ordering get their own bucket.
func StatusCounts(projects []*models.Project) map[string]int {
	counts := make(map[string]int)
	for _, p := range projects {
		counts[p.Status]++
	}
	return counts
}

// IsDelayed reports whether a project is past due: its end date is
// present and parseable, strictly before now, and the project is not
// Completed. Never persisted; recomputed on every pass.
func IsDelayed(p *models.Project, now time.Time) bool {
	if p.Status == models.StatusCompleted {
		return false
	}
	end, err := time.Parse(dateLayout, p.EndDate)
	if err != nil {
		return false
	}
	return end.Before(now)
}

// DelayedCount counts projects delayed at the given instant.
func DelayedCount(projects []*models.Project, now time.Time) int {
	n := 0
	for _, p := range projects {
		if IsDelayed(p, now) {
			n++
		}
	}
	return n
}

// GroupBy selects the grouping field for completion averages.
type GroupBy string

const (
	GroupByPillar   GroupBy = "pillar"
	GroupByCategory GroupBy = "category"
)

// GroupedCompletion returns the arithmetic mean completion rate per
// distinct value of the grouping field. Groups with no members do not
// appear; repeated keys merge into one group.
func GroupedCompletion(projects []*models.Project, by GroupBy) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range projects {
		key := p.Pillar
		if by == GroupByCategory {
			key = p.MainCategory
		}
		sums[key] += p.CompletionRate
		counts[key]++
	}

	means := make(map[string]float64, len(sums))
	for key, sum := range sums {
		means[key] = sum / float64(counts[key])
	}
	return means
}

// PillarStats summarizes one strategic pillar.
type PillarStats struct {
	Pillar    string
	Total     int
	Completed int
}

// PillarSummary returns total and completed project counts per distinct
// pillar value, sorted by pillar for stable rendering.
func PillarSummary(projects []*models.Project) []PillarStats {
	byPillar := make(map[string]*PillarStats)
	for _, p := range projects {
		stats, ok := byPillar[p.Pillar]
		if !ok {
			stats = &PillarStats{Pillar: p.Pillar}
			byPillar[p.Pillar] = stats
		}
		stats.Total++
		if p.Status == models.StatusCompleted {
			stats.Completed++
		}
	}

	summary := make([]PillarStats, 0, len(byPillar))
	for _, stats := range byPillar {
		summary = append(summary, *stats)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Pillar < summary[j].Pillar })
	return summary
}

// ManagerStatusMatrix cross-tabulates status counts per manager.
// Managers with zero projects are simply absent.
func ManagerStatusMatrix(projects []*models.Project) map[string]map[string]int {
	matrix := make(map[string]map[string]int)
	for _, p := range projects {
		row, ok := matrix[p.Manager]
		if !ok {
			row = make(map[string]int)
			matrix[p.Manager] = row
		}
		row[p.Status]++
	}
	return matrix
}

// TimelineEntry is one bar of the schedule view.
type TimelineEntry struct {
	Name   string
	Start  time.Time
	End    time.Time
	Status string
}

// Timeline returns the projects whose start and end dates are both
// present and parseable, in registry order. Sorting (earliest start
// first for rendering) is the caller's concern.
func Timeline(projects []*models.Project) []TimelineEntry {
	var entries []TimelineEntry
	for _, p := range projects {
		start, err := time.Parse(dateLayout, p.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse(dateLayout, p.EndDate)
		if err != nil {
			continue
		}
		entries = append(entries, TimelineEntry{
			Name:   p.Name,
			Start:  start,
			End:    end,
			Status: p.Status,
		})
	}
	return entries
}

// ============================================================================
// ENGINE WRAPPERS
// Each fetches a fresh snapshot and applies the pure computation.
// ============================================================================

func (e *Engine) StatusCounts(ctx context.Context) (map[string]int, error) {
	projects, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return StatusCounts(projects), nil
}

func (e *Engine) DelayedCount(ctx context.Context, now time.Time) (int, error) {
	projects, err := e.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return DelayedCount(projects, now), nil
}

func (e *Engine) GroupedCompletion(ctx context.Context, by GroupBy) (map[string]float64, error) {
	projects, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return GroupedCompletion(projects, by), nil
}

func (e *Engine) PillarSummary(ctx context.Context) ([]PillarStats, error) {
	projects, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return PillarSummary(projects), nil
}

func (e *Engine) ManagerStatusMatrix(ctx context.Context) (map[string]map[string]int, error) {
	projects, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ManagerStatusMatrix(projects), nil
}

func (e *Engine) Timeline(ctx context.Context) ([]TimelineEntry, error) {
	projects, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Timeline(projects), nil
}

func (e *Engine) NumericCorrelation(ctx context.Context) (CorrelationMatrix, error) {
	projects, err := e.Snapshot(ctx)
	if err != nil {
		return CorrelationMatrix{}, err
	}
	return NumericCorrelation(projects), nil
}
