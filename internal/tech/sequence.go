package tech

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pvflorin/RC-Generator/internal/table"
)

// WarningCode categorizes recoverable sequencing conditions.
type WarningCode string

const (
	// WarnSequenceGap indicates non-contiguous sequence numbers.
	WarnSequenceGap WarningCode = "SEQUENCE_GAP"
)

// Warning is a reported-but-recoverable sequencing condition.
type Warning struct {
	Code        WarningCode
	ProductCode string
	Message     string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (product=%s)", w.Code, w.Message, w.ProductCode)
}

// DuplicateStepError rejects a product whose steps share a sequence
// number. Fatal to the affected order only.
type DuplicateStepError struct {
	ProductCode string
	Seq         int
}

// Error implements the error interface.
func (e *DuplicateStepError) Error() string {
	return fmt.Sprintf("DUPLICATE_STEP: sequence number %d appears twice for product %s", e.Seq, e.ProductCode)
}

// IsDuplicateStep reports whether err is a DuplicateStepError.
func IsDuplicateStep(err error) bool {
	var de *DuplicateStepError
	return errors.As(err, &de)
}

// Sequence returns the steps for a product code sorted ascending by
// sequence number.
//
// Duplicate sequence numbers return a *DuplicateStepError and no
// steps. Gaps in the +1 progression return the steps unchanged plus a
// SEQUENCE_GAP warning per hole; the caller decides whether to warn or
// refuse. A product with no steps returns (nil, nil, nil) - absence is
// the Order Resolver's concern, which surfaces it as
// PRODUCT_CODE_MISSING with the order id attached.
func (c *Catalog) Sequence(productCode string) ([]Step, []Warning, error) {
	steps, ok := c.steps[table.NormalizeID(productCode)]
	if !ok {
		return nil, nil, nil
	}

	ordered := make([]Step, len(steps))
	copy(ordered, steps)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Seq < ordered[j].Seq })

	var warnings []Warning
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if cur.Seq == prev.Seq {
			return nil, nil, &DuplicateStepError{ProductCode: cur.ProductCode, Seq: cur.Seq}
		}
		if cur.Seq != prev.Seq+1 {
			warnings = append(warnings, Warning{
				Code:        WarnSequenceGap,
				ProductCode: cur.ProductCode,
				Message:     fmt.Sprintf("sequence jumps from %d to %d; operations may be missing", prev.Seq, cur.Seq),
			})
		}
	}
	return ordered, warnings, nil
}
