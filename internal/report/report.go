package report

import (
	"fmt"

	"github.com/pvflorin/RC-Generator/internal/render"
	"github.com/pvflorin/RC-Generator/internal/tech"
)

// Describe returns the operator-facing success line for a generated
// document. The wording is display-only; the path lives in doc.Path.
func Describe(doc *render.GeneratedDocument) string {
	return fmt.Sprintf("%s for order %s saved at %s", doc.Kind.Label(), doc.OrderID, doc.Path)
}

// DescribeFailure returns the operator-facing failure line for an
// order. The typed errors already carry their taxonomy code and
// context, so this is a prefix pass-through.
func DescribeFailure(orderID string, err error) string {
	return fmt.Sprintf("order %s failed: %v", orderID, err)
}

// DescribeWarning returns the operator-facing line for a recoverable
// sequencing condition.
func DescribeWarning(orderID string, w tech.Warning) string {
	return fmt.Sprintf("order %s: %s", orderID, w)
}

// Attachments collects the output paths of a document slice, in order.
// This is the only sanctioned way to enumerate attachable files.
func Attachments(docs []*render.GeneratedDocument) []string {
	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		paths = append(paths, doc.Path)
	}
	return paths
}
