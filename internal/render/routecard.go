package render

import (
	"strconv"
	"time"

	"github.com/pvflorin/RC-Generator/internal/order"
)

// minOperationRows pads the operation table so the printed card always
// has room for handwritten entries.
const minOperationRows = 12

var routeCardWidths = []float64{7, 22, 18, 12, 7, 7, 12, 20}

// routeCardGrid lays out the RC template: identification header,
// operation flow table (one row per technology step plus blanks), and
// the final-inspection block.
func routeCardGrid(company Company, octx *order.OrderContext, now time.Time) *Grid {
	g := &Grid{Sheet: "Route Card", ColWidths: routeCardWidths}

	g.Rows = append(g.Rows,
		Row{Cells: []Cell{span("ROUTE CARD", StyleTitle, 8)}, Height: 28},
		Row{Cells: []Cell{span(company.Name, StyleSubheader, 8)}},
		blankRow(),
		Row{Cells: []Cell{
			cell("Internal Order:", StyleLabel),
			cell(octx.OrderID, StyleHighlight),
			cell("Generated:", StyleLabel),
			cell(now.Format("2006-01-02"), StyleData),
			cell("Position:", StyleLabel),
			span(octx.Position, StyleData, 3),
		}},
		Row{Cells: []Cell{
			cell("Client Order:", StyleLabel),
			cell(octx.ClientOrder, StyleData),
			cell("Client Ref:", StyleLabel),
			cell(octx.ClientRef, StyleData),
			cell("Due Date:", StyleLabel),
			span(octx.DueDate, StyleData, 3),
		}},
		Row{Cells: []Cell{
			cell("Part Code:", StyleLabel),
			cell(octx.ProductCode, StyleData),
			cell("Description:", StyleLabel),
			cell(octx.Description, StyleData),
			cell("Quantity:", StyleLabel),
			span(octx.Quantity, StyleData, 3),
		}},
		Row{Cells: []Cell{
			cell("Material:", StyleLabel),
			cell(octx.Material, StyleData),
			cell("Drawing Rev:", StyleLabel),
			cell(octx.DrawingRev, StyleData),
			cell("Customer:", StyleLabel),
			span(octx.Customer, StyleData, 3),
		}},
		blankRow(),
		Row{Cells: []Cell{span("OPERATION FLOW", StyleSubheader, 8)}},
		Row{Cells: []Cell{
			cell("No.", StyleTableHeader),
			cell("Operation", StyleTableHeader),
			cell("Workstation", StyleTableHeader),
			cell("Std. Time (min)", StyleTableHeader),
			cell("OK", StyleTableHeader),
			cell("REJ", StyleTableHeader),
			cell("Date", StyleTableHeader),
			cell("Operator / Signature", StyleTableHeader),
		}},
	)

	for _, step := range octx.Steps {
		g.Rows = append(g.Rows, Row{Height: 20, Cells: []Cell{
			cell(strconv.Itoa(step.Seq), StyleTableData),
			cell(step.Operation, StyleTableDataLeft),
			cell(step.Workstation, StyleTableDataLeft),
			cell(step.Duration, StyleTableData),
			cell("", StyleTableData),
			cell("", StyleTableData),
			cell("", StyleTableData),
			cell("", StyleTableData),
		}})
	}
	for i := len(octx.Steps); i < minOperationRows; i++ {
		g.Rows = append(g.Rows, Row{Height: 20, Cells: []Cell{
			cell("", StyleTableData),
			cell("", StyleTableDataLeft),
			cell("", StyleTableDataLeft),
			cell("", StyleTableData),
			cell("", StyleTableData),
			cell("", StyleTableData),
			cell("", StyleTableData),
			cell("", StyleTableData),
		}})
	}

	g.Rows = append(g.Rows,
		blankRow(),
		Row{Cells: []Cell{span("FINAL INSPECTION", StyleSubheader, 8)}},
		Row{Cells: []Cell{
			cell("Total OK Quantity:", StyleLabel),
			span("", StyleData, 3),
			cell("Inspection Date:", StyleLabel),
			span("", StyleData, 3),
		}},
		Row{Cells: []Cell{
			cell("QC Inspector:", StyleLabel),
			span("", StyleData, 3),
			cell("Signature:", StyleLabel),
			span("", StyleData, 3),
		}},
		Row{Cells: []Cell{
			cell("Production Manager:", StyleLabel),
			span("", StyleData, 7),
		}},
	)

	return g
}
