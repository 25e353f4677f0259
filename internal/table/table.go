package table

import "strings"

// Table is an immutable, header-indexed view of one loaded sheet.
// Columns are addressed by display name and resolved through
// NormalizeKey, so callers can use whichever header spelling their
// configuration carries.
type Table struct {
	headers []string       // original header text, trimmed, in file order
	index   map[string]int // NormalizeKey(header) -> column position
	rows    [][]string
}

// Headers returns the original (trimmed) header row.
func (t *Table) Headers() []string { return t.headers }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether a column resolves, using normalized matching.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[NormalizeKey(name)]
	return ok
}

// Value returns the trimmed cell at (row, column). Returns "" when the
// column does not resolve or the row is ragged short of it.
func (t *Table) Value(row int, column string) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	col, ok := t.index[NormalizeKey(column)]
	if !ok || col >= len(t.rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.rows[row][col])
}

// newTable indexes the header row and keeps only non-empty data rows.
// Rows that repeat the header verbatim (after normalization) are
// treated as noise and dropped.
func newTable(header []string, raw [][]string) *Table {
	t := &Table{
		headers: make([]string, len(header)),
		index:   make(map[string]int, len(header)),
	}
	for i, h := range header {
		trimmed := strings.TrimSpace(h)
		t.headers[i] = trimmed
		key := NormalizeKey(trimmed)
		if key == "" {
			continue
		}
		// First occurrence wins on duplicate headers.
		if _, exists := t.index[key]; !exists {
			t.index[key] = i
		}
	}

	for _, row := range raw {
		if rowEmpty(row) || t.isHeaderEcho(row) {
			continue
		}
		t.rows = append(t.rows, row)
	}
	return t
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// isHeaderEcho reports whether row reproduces the header row
// cell-for-cell under normalization.
func (t *Table) isHeaderEcho(row []string) bool {
	if len(row) == 0 {
		return false
	}
	for i, h := range t.headers {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if NormalizeKey(cell) != NormalizeKey(h) {
			return false
		}
	}
	return true
}
