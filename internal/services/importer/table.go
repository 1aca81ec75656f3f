package importer

import "strings"

// Table is the neutral tabular form every import source is read into:
// a header row plus data rows of raw cell text. Rows may be ragged;
// missing trailing cells read as blank.
type Table struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a table and its header lookup. Header names are
// matched after trimming surrounding whitespace; the first occurrence of
// a duplicated header wins.
func NewTable(headers []string, rows [][]string) *Table {
	t := &Table{
		Headers: headers,
		Rows:    rows,
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		key := strings.TrimSpace(h)
		if _, exists := t.index[key]; !exists {
			t.index[key] = i
		}
	}
	return t
}

// HasColumn reports whether the source schema contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the raw text of the named column in the given row.
// A column absent from the source schema, or a row too short to reach
// it, yields "" - never an error. This is the boundary where the
// source's arbitrary shape is absorbed.
func (t *Table) Cell(row int, name string) string {
	col, ok := t.index[name]
	if !ok {
		return ""
	}
	if row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}
