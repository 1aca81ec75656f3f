package importer

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the calendar/timestamp shapes accepted from import
// sources, tried in order. Anything else passes through as raw text.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01-02-06", // excelize's default short date rendering
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"2-Jan-06",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// sentinels are textual not-a-value markers spreadsheets commonly carry
// for blank cells. Matched case-insensitively.
var sentinels = map[string]bool{
	"nan":  true,
	"n/a":  true,
	"#n/a": true,
	"null": true,
	"none": true,
}

// isRealValue reports whether a cell holds an actual value rather than
// blank space or a not-a-value marker.
func isRealValue(raw string) bool {
	v := strings.TrimSpace(raw)
	if v == "" {
		return false
	}
	return !sentinels[strings.ToLower(v)]
}

// normalizeDate converts a parseable date cell to "YYYY-MM-DD".
// Missing or sentinel cells become "". Anything unparseable is kept as
// its raw textual representation, unchanged - a bad date never aborts
// the row.
func normalizeDate(raw string) string {
	v := strings.TrimSpace(raw)
	if !isRealValue(v) {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02")
		}
	}

	// Excel date cells sometimes survive as serial numbers: days since
	// the epoch 1899-12-30.
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 && serial < 200000 {
		epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
		return epoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
	}

	return v
}

// normalizeRate coerces a completion-rate cell to a float, treating
// missing or unparseable values as 0.0. Never fails.
func normalizeRate(raw string) float64 {
	v := strings.TrimSpace(raw)
	if !isRealValue(v) {
		return 0
	}
	v = strings.TrimSuffix(v, "%")
	rate, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return rate
}
