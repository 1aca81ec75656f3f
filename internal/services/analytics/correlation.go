package analytics

import (
	"math"

	"github.com/harithj/ascent/internal/models"
)

// CorrelationMatrix holds pairwise Pearson coefficients for the
// registry's numeric fields. Fields and Coeffs share indexing:
// Coeffs[i][j] is the correlation between Fields[i] and Fields[j].
type CorrelationMatrix struct {
	Fields []string
	Coeffs [][]float64
}

// Empty reports whether there were too few numeric fields to correlate.
func (m CorrelationMatrix) Empty() bool {
	return len(m.Fields) < 2
}

// numericFields extracts the numeric columns of the snapshot. The
// current schema has exactly one (completion rate), which is why the
// correlation view is empty today - the extraction is kept general so
// additive schema changes light it up.
func numericFields(projects []*models.Project) (names []string, columns [][]float64) {
	rates := make([]float64, len(projects))
	for i, p := range projects {
		rates[i] = p.CompletionRate
	}
	return []string{"Task Completion Rate"}, [][]float64{rates}
}

// NumericCorrelation computes the Pearson correlation matrix across the
// snapshot's numeric fields. With fewer than two numeric fields the
// result is empty - not an error.
func NumericCorrelation(projects []*models.Project) CorrelationMatrix {
	names, columns := numericFields(projects)
	if len(names) < 2 {
		return CorrelationMatrix{}
	}

	coeffs := make([][]float64, len(columns))
	for i := range columns {
		coeffs[i] = make([]float64, len(columns))
		for j := range columns {
			coeffs[i][j] = pearson(columns[i], columns[j])
		}
	}
	return CorrelationMatrix{Fields: names, Coeffs: coeffs}
}

// pearson computes the Pearson correlation coefficient of two equal
// length series. Zero-variance series yield NaN, matching the usual
// statistical convention.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return math.NaN()
	}
	return cov / denom
}
