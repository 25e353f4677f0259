package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// thinBorder frames a cell on all four sides.
var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

// styleSpec returns the excelize style definition for a StyleID.
func styleSpec(id StyleID) *excelize.Style {
	switch id {
	case StyleTitle:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 16},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}
	case StyleCompany:
		return &excelize.Style{
			Font:      &excelize.Font{Size: 9},
			Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
		}
	case StyleSubheader:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Fill:      fill("F0F0F0"),
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}
	case StyleLabel:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 9},
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		}
	case StyleData:
		return &excelize.Style{
			Font:      &excelize.Font{Size: 10},
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}
	case StyleHighlight:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Fill:      fill("FFFFE0"),
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}
	case StyleTableHeader:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 9},
			Fill:      fill("BFBFBF"),
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}
	case StyleTableData:
		return &excelize.Style{
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center"},
		}
	case StyleTableDataLeft:
		return &excelize.Style{
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "left", WrapText: true},
		}
	case StyleBoxLabel:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 10},
			Fill:      fill("D9D9D9"),
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}
	case StyleBoxData:
		return &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12},
			Fill:      fill("FFFFE0"),
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}
	case StyleStatement:
		return &excelize.Style{
			Font:      &excelize.Font{Size: 9},
			Alignment: &excelize.Alignment{Horizontal: "justify", Vertical: "top", WrapText: true},
		}
	case StyleFootnote:
		return &excelize.Style{
			Font:      &excelize.Font{Size: 9, Italic: true},
			Alignment: &excelize.Alignment{Horizontal: "left"},
		}
	default:
		return nil
	}
}

// writeXLSX translates a Grid into a one-sheet A4 portrait workbook.
func writeXLSX(g *Grid, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := g.Sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, width := range g.ColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("column width %s: %w", col, err)
		}
	}

	styles := make(map[StyleID]int)
	styleFor := func(id StyleID) (int, error) {
		if id == StyleNone {
			return 0, nil
		}
		if sid, ok := styles[id]; ok {
			return sid, nil
		}
		sid, err := f.NewStyle(styleSpec(id))
		if err != nil {
			return 0, err
		}
		styles[id] = sid
		return sid, nil
	}

	for rowIdx, row := range g.Rows {
		rowNum := rowIdx + 1
		if row.Height > 0 {
			if err := f.SetRowHeight(sheet, rowNum, row.Height); err != nil {
				return fmt.Errorf("row %d height: %w", rowNum, err)
			}
		}
		colNum := 1
		for _, c := range row.Cells {
			width := c.Span
			if width < 1 {
				width = 1
			}
			start, err := excelize.CoordinatesToCellName(colNum, rowNum)
			if err != nil {
				return fmt.Errorf("cell (%d,%d): %w", colNum, rowNum, err)
			}
			end, err := excelize.CoordinatesToCellName(colNum+width-1, rowNum)
			if err != nil {
				return fmt.Errorf("cell (%d,%d): %w", colNum+width-1, rowNum, err)
			}
			if width > 1 {
				if err := f.MergeCell(sheet, start, end); err != nil {
					return fmt.Errorf("merge %s:%s: %w", start, end, err)
				}
			}
			if err := f.SetCellValue(sheet, start, c.Value); err != nil {
				return fmt.Errorf("value %s: %w", start, err)
			}
			if c.Style != StyleNone {
				sid, err := styleFor(c.Style)
				if err != nil {
					return fmt.Errorf("style for %s: %w", start, err)
				}
				if err := f.SetCellStyle(sheet, start, end, sid); err != nil {
					return fmt.Errorf("apply style %s: %w", start, err)
				}
			}
			colNum += width
		}
	}

	a4 := 9
	portrait := "portrait"
	fitWidth := 1
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &a4,
		Orientation: &portrait,
		FitToWidth:  &fitWidth,
	}); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	return f.SaveAs(path)
}
