package render

import (
	"time"

	"github.com/pvflorin/RC-Generator/internal/order"
)

const conformityStatement = "We hereby declare that the parts covered by this certificate " +
	"conform to the customer requirements transmitted through the firm order. " +
	"All machining was performed to the technical specifications received, " +
	"observing the applicable quality standards and contractual requirements."

const counterfeitStatement = "We declare that all materials used are not of counterfeit origin."

var cocWidths = []float64{15, 15, 15, 15, 15, 15, 15, 15}

// cocGrid lays out the COC template: company header, certificate and
// client boxes, the order line, product identification, and the
// conformity statement. Deliberately no per-step detail.
func cocGrid(company Company, octx *order.OrderContext, cert Certificate, now time.Time) *Grid {
	g := &Grid{Sheet: "COC", ColWidths: cocWidths}

	g.Rows = append(g.Rows, Row{Cells: []Cell{span(company.Name, StyleTitle, 8)}, Height: 24})
	if company.Address != "" {
		g.Rows = append(g.Rows, Row{Cells: []Cell{span(company.Address, StyleCompany, 8)}})
	}
	if company.TaxID != "" {
		g.Rows = append(g.Rows, Row{Cells: []Cell{span("VAT Reg. No.: "+company.TaxID, StyleCompany, 8)}})
	}
	if company.RegistryNo != "" {
		g.Rows = append(g.Rows, Row{Cells: []Cell{span("Trade Registry No.: "+company.RegistryNo, StyleCompany, 8)}})
	}

	g.Rows = append(g.Rows,
		blankRow(),
		Row{Height: 30, Cells: []Cell{
			span("Certificate No.", StyleBoxLabel, 4),
			span("Client", StyleBoxLabel, 4),
		}},
		Row{Cells: []Cell{
			span(cert.Number, StyleBoxData, 4),
			span(octx.Customer, StyleBoxData, 4),
		}},
		blankRow(),
		Row{Cells: []Cell{span("DECLARATION OF CONFORMITY", StyleTitle, 8)}},
		blankRow(),
		Row{Cells: []Cell{
			span("Internal Order", StyleTableHeader, 2),
			span("Quantity (pcs)", StyleTableHeader, 2),
			cell("Batch No.", StyleTableHeader),
			cell("Client Order", StyleTableHeader),
			span("Client Ref.", StyleTableHeader, 2),
		}},
		Row{Cells: []Cell{
			span(octx.OrderID, StyleTableData, 2),
			span(octx.Quantity, StyleTableData, 2),
			cell(cert.Batch, StyleTableData),
			cell(octx.ClientOrder, StyleTableData),
			span(octx.ClientRef, StyleTableData, 2),
		}},
		blankRow(),
		Row{Cells: []Cell{
			span("Part Description", StyleBoxLabel, 3),
			span(octx.Description, StyleBoxData, 5),
		}},
		Row{Cells: []Cell{
			span("Part Code / Drawing No.", StyleBoxLabel, 3),
			span(octx.ProductCode, StyleBoxData, 3),
			cell("Rev.", StyleBoxLabel),
			cell(octx.DrawingRev, StyleBoxData),
		}},
		blankRow(),
		Row{Cells: []Cell{span("Conforms with the specifications of:", StyleLabel, 8)}},
		Row{Cells: []Cell{span("CUSTOMER REQUIREMENTS", StyleBoxLabel, 8)}},
		blankRow(),
		Row{Height: 40, Cells: []Cell{span(conformityStatement, StyleStatement, 8)}},
		blankRow(),
		Row{Cells: []Cell{
			cell("Issue date:", StyleLabel),
			span(now.Format("02.01.2006"), StyleData, 3),
			span(company.Signer, StyleLabel, 4),
		}},
		blankRow(),
		Row{Cells: []Cell{span(counterfeitStatement, StyleFootnote, 8)}},
	)

	return g
}
