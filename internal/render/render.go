package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pvflorin/RC-Generator/internal/order"
)

// Renderer writes RC and COC workbooks. Safe to reuse across orders;
// it holds no per-order state.
type Renderer struct {
	clock   Clock
	company Company
}

// New creates a Renderer. A nil clock falls back to the system clock;
// a company without a name falls back to DefaultCompany.
func New(clock Clock, company Company) *Renderer {
	if clock == nil {
		clock = SystemClock{}
	}
	if company.Name == "" {
		company = DefaultCompany()
	}
	return &Renderer{clock: clock, company: company}
}

// Render generates one document for the order under
// outputDir/<orderID>/ and returns its structured result.
//
// The target file name embeds order id, kind, and a timestamp from
// the Renderer's clock, so regenerating an order yields a new file.
// Directory-creation and save failures return *RenderError
// (OUTPUT_WRITE).
func (r *Renderer) Render(kind Kind, octx *order.OrderContext, outputDir string) (*GeneratedDocument, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
	now := r.clock.Now()

	dir := filepath.Join(outputDir, sanitizeName(octx.OrderID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &RenderError{OrderID: octx.OrderID, Path: dir, Err: err}
	}

	path := uniquePath(filepath.Join(dir, fileName(kind, octx, now)))
	if err := writeXLSX(r.grid(kind, octx, now), path); err != nil {
		return nil, &RenderError{OrderID: octx.OrderID, Path: path, Err: err}
	}

	return &GeneratedDocument{
		Kind:        kind,
		OrderID:     octx.OrderID,
		Path:        path,
		GeneratedAt: now,
		Message:     fmt.Sprintf("%s for order %s saved at %s", kind.Label(), octx.OrderID, path),
	}, nil
}

// grid assembles the layout for a kind without touching the filesystem.
func (r *Renderer) grid(kind Kind, octx *order.OrderContext, now time.Time) *Grid {
	if kind == KindCOC {
		return cocGrid(r.company, octx, CertificateFor(octx.OrderID), now)
	}
	return routeCardGrid(r.company, octx, now)
}

func fileName(kind Kind, octx *order.OrderContext, now time.Time) string {
	stamp := now.Format("20060102-150405")
	if kind == KindCOC {
		cert := CertificateFor(octx.OrderID)
		return fmt.Sprintf("Declaration_Of_Conformity_%s_%s_%s.xlsx",
			sanitizeName(cert.Number), sanitizeName(octx.OrderID), stamp)
	}
	return fmt.Sprintf("Route_Card_%s_%s.xlsx", sanitizeName(octx.OrderID), stamp)
}

// sanitizeName strips characters that are hostile in file or directory
// names on either Windows or Unix; spaces become underscores.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer(
		"*", "-", "?", "-", "\"", "-", "<", "-", ">", "-",
		"|", "-", ":", "-", "\\", "-", "/", "-", " ", "_",
	)
	return replacer.Replace(name)
}

// uniquePath appends _2, _3, ... before the extension until the path
// does not exist. Covers two generations inside the same clock second.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
