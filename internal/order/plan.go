package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pvflorin/RC-Generator/internal/table"
	"github.com/pvflorin/RC-Generator/internal/tech"
)

// Record is one planning row: what to produce, how much, for whom.
// Immutable after ParsePlan; the source of truth for a batch run.
type Record struct {
	OrderID     string
	ProductCode string
	Description string
	Quantity    string
	DueDate     string
	Customer    string
	ClientOrder string
	ClientRef   string
	Position    string
	Material    string
	DrawingRev  string
}

// Columns maps the planning table's header names. Only OrderID,
// ProductCode, and Quantity are required; the rest render as empty
// cells when the upstream sheet lacks them.
type Columns struct {
	OrderID     string
	ProductCode string
	Description string
	Quantity    string
	DueDate     string
	Customer    string
	ClientOrder string
	ClientRef   string
	Position    string
	Material    string
	DrawingRev  string
}

// Required returns the columns that must resolve for the table to be usable.
func (c Columns) Required() []string {
	return []string{c.OrderID, c.ProductCode, c.Quantity}
}

// Plan is the loaded planning table, indexed by normalized order id.
// Built once per run; read-only afterwards.
type Plan struct {
	records []Record
	index   map[string]int
}

// ParsePlan converts a loaded planning table into a Plan.
//
// Rows without an order id are skipped. A duplicate order id is a
// SOURCE_FORMAT defect: the planning table's uniqueness invariant is
// what makes per-order output directories collision-free.
func ParsePlan(t *table.Table, cols Columns) (*Plan, error) {
	p := &Plan{index: make(map[string]int)}
	for i := 0; i < t.Len(); i++ {
		id := table.NormalizeID(t.Value(i, cols.OrderID))
		if id == "" {
			continue
		}
		if _, dup := p.index[id]; dup {
			return nil, &table.LoadError{
				Code:    table.ErrCodeSourceFormat,
				Message: fmt.Sprintf("planning row %d: order id %s appears twice", i+1, id),
			}
		}
		p.index[id] = len(p.records)
		p.records = append(p.records, Record{
			OrderID:     id,
			ProductCode: table.NormalizeID(t.Value(i, cols.ProductCode)),
			Description: t.Value(i, cols.Description),
			Quantity:    normalizeQuantity(t.Value(i, cols.Quantity)),
			DueDate:     t.Value(i, cols.DueDate),
			Customer:    t.Value(i, cols.Customer),
			ClientOrder: t.Value(i, cols.ClientOrder),
			ClientRef:   t.Value(i, cols.ClientRef),
			Position:    t.Value(i, cols.Position),
			Material:    t.Value(i, cols.Material),
			DrawingRev:  t.Value(i, cols.DrawingRev),
		})
	}
	return p, nil
}

// Len returns the number of planning records.
func (p *Plan) Len() int { return len(p.records) }

// OrderContext is the resolved join of one planning record with its
// ordered technology steps. Owned by the generation call that created
// it; read-only downstream.
type OrderContext struct {
	Record
	Steps    []tech.Step
	Warnings []tech.Warning
}

// Resolve looks up an order id and assembles its OrderContext.
//
// Fails with ORDER_NOT_FOUND when no planning row matches the
// normalized id, with PRODUCT_CODE_MISSING when the matched row's
// product code yields zero technology steps, and passes through
// sequencing errors (duplicate steps) unchanged. Gap warnings from the
// sequencer travel on the context.
func (p *Plan) Resolve(orderID string, catalog *tech.Catalog) (*OrderContext, error) {
	id := table.NormalizeID(orderID)
	idx, ok := p.index[id]
	if !ok {
		return nil, &ResolveError{
			Code:    ErrCodeOrderNotFound,
			OrderID: id,
			Message: "order id not present in the planning table",
		}
	}
	rec := p.records[idx]

	steps, warnings, err := catalog.Sequence(rec.ProductCode)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, &ResolveError{
			Code:        ErrCodeProductCodeMissing,
			OrderID:     id,
			ProductCode: rec.ProductCode,
			Message:     "no technology steps for the order's product code",
		}
	}

	return &OrderContext{Record: rec, Steps: steps, Warnings: warnings}, nil
}

// normalizeQuantity strips the float artifacts spreadsheet exports
// attach to integral quantities ("25.0" -> "25"). Non-numeric text
// passes through untouched.
func normalizeQuantity(q string) string {
	if q == "" || !strings.Contains(q, ".") {
		return q
	}
	f, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return q
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return q
}
