package tech

import (
	"fmt"
	"strconv"

	"github.com/pvflorin/RC-Generator/internal/table"
)

// Step is one manufacturing operation for a product code.
// Duration and workstation stay as display text: the spreadsheet mixes
// numbers with annotations like "15/buc" and the route card prints them
// verbatim.
type Step struct {
	ProductCode string
	Seq         int
	Operation   string
	Workstation string
	Duration    string
}

// Columns maps the technology table's header names. Matching is
// normalized, so the configured names may differ from the file in
// case, whitespace, or diacritics.
type Columns struct {
	ProductCode string
	Seq         string
	Operation   string
	Workstation string
	Duration    string
}

// Required returns the columns that must resolve for the table to be usable.
func (c Columns) Required() []string {
	return []string{c.ProductCode, c.Seq, c.Operation}
}

// Catalog holds every technology step, grouped by normalized product
// code. Built once per run; read-only afterwards.
type Catalog struct {
	steps map[string][]Step
}

// ParseCatalog converts a loaded technology table into a Catalog.
//
// Rows with an empty product code are skipped (trailing annotations in
// the sheet). A sequence cell that does not parse as an integer is a
// SOURCE_FORMAT defect - ordering would be undefined for the whole
// product.
func ParseCatalog(t *table.Table, cols Columns) (*Catalog, error) {
	c := &Catalog{steps: make(map[string][]Step)}
	for i := 0; i < t.Len(); i++ {
		code := table.NormalizeID(t.Value(i, cols.ProductCode))
		if code == "" {
			continue
		}
		seqText := t.Value(i, cols.Seq)
		seq, err := strconv.Atoi(seqText)
		if err != nil {
			return nil, &table.LoadError{
				Code:    table.ErrCodeSourceFormat,
				Message: fmt.Sprintf("technology row %d: sequence %q for product %s is not an integer", i+1, seqText, code),
				Err:     err,
			}
		}
		c.steps[code] = append(c.steps[code], Step{
			ProductCode: code,
			Seq:         seq,
			Operation:   t.Value(i, cols.Operation),
			Workstation: t.Value(i, cols.Workstation),
			Duration:    t.Value(i, cols.Duration),
		})
	}
	return c, nil
}

// Products returns the number of distinct product codes in the catalog.
func (c *Catalog) Products() int { return len(c.steps) }
