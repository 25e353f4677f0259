package render

import "strings"

// StyleID selects one of the fixed document styles. The XLSX writer
// maps each to fonts, borders, and fills; the grid itself stays
// format-agnostic.
type StyleID int

const (
	StyleNone StyleID = iota
	StyleTitle
	StyleCompany
	StyleSubheader
	StyleLabel
	StyleData
	StyleHighlight
	StyleTableHeader
	StyleTableData
	StyleTableDataLeft
	StyleBoxLabel
	StyleBoxData
	StyleStatement
	StyleFootnote
)

// Cell is one grid cell. Span merges the cell across that many
// columns (minimum 1).
type Cell struct {
	Value string
	Style StyleID
	Span  int
}

// Row is one grid row. Height 0 means the sheet default.
type Row struct {
	Cells  []Cell
	Height float64
}

// Grid is a complete document layout: the unit the golden tests pin
// down and the XLSX writer consumes.
type Grid struct {
	Sheet     string
	ColWidths []float64
	Rows      []Row
}

// Text flattens the grid for golden comparison: one line per row,
// cell values joined by " | ", merged cells emitted once, trailing
// empty cells trimmed. Styling is not part of the contract.
func (g *Grid) Text() string {
	var b strings.Builder
	for _, row := range g.Rows {
		values := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			values[i] = c.Value
		}
		b.WriteString(strings.TrimRight(strings.Join(values, " | "), " |"))
		b.WriteString("\n")
	}
	return b.String()
}

func cell(value string, style StyleID) Cell {
	return Cell{Value: value, Style: style, Span: 1}
}

func span(value string, style StyleID, n int) Cell {
	return Cell{Value: value, Style: style, Span: n}
}

func blankRow() Row { return Row{} }
