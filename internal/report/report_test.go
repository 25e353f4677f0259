package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pvflorin/RC-Generator/internal/order"
	"github.com/pvflorin/RC-Generator/internal/render"
	"github.com/pvflorin/RC-Generator/internal/tech"
)

func doc(kind render.Kind, path string) *render.GeneratedDocument {
	return &render.GeneratedDocument{
		Kind:        kind,
		OrderID:     "INR000055",
		Path:        path,
		GeneratedAt: time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
	}
}

func TestDescribe(t *testing.T) {
	line := Describe(doc(render.KindRouteCard, "/out/INR000055/Route_Card_INR000055_20260830-143000.xlsx"))
	assert.Contains(t, line, "Route card")
	assert.Contains(t, line, "INR000055")
	assert.Contains(t, line, "Route_Card_INR000055_20260830-143000.xlsx")
}

func TestDescribeFailure(t *testing.T) {
	err := &order.ResolveError{
		Code:    order.ErrCodeOrderNotFound,
		OrderID: "INR000099",
		Message: "no planning row matches",
	}
	line := DescribeFailure("INR000099", err)
	assert.Contains(t, line, "INR000099")
	assert.Contains(t, line, "ORDER_NOT_FOUND")
}

func TestDescribeWarning(t *testing.T) {
	w := tech.Warning{
		Code:        tech.WarnSequenceGap,
		ProductCode: "P-09",
		Message:     "sequence jumps from 1 to 3; operations may be missing",
	}
	line := DescribeWarning("INR000060", w)
	assert.Contains(t, line, "SEQUENCE_GAP")
	assert.Contains(t, line, "P-09")
}

// Attachment paths are read from the document struct, never recovered
// from the display message. A wording change in the message must not
// change what Attachments returns, and RC and COC must behave the same.
func TestAttachments_IndependentOfMessageWording(t *testing.T) {
	rc := doc(render.KindRouteCard, "/out/INR000055/rc.xlsx")
	rc.Message = "ruta a fost salvata in: /somewhere/else.xlsx"
	coc := doc(render.KindCOC, "/out/INR000055/coc.xlsx")
	coc.Message = "declaratia a fost salvată în: /another/place.xlsx"

	got := Attachments([]*render.GeneratedDocument{rc, coc})
	assert.Equal(t, []string{"/out/INR000055/rc.xlsx", "/out/INR000055/coc.xlsx"}, got)
	for _, p := range got {
		assert.False(t, strings.Contains(p, "somewhere"), "path leaked from message text")
	}
}

func TestAttachments_Empty(t *testing.T) {
	assert.Empty(t, Attachments(nil))
}
