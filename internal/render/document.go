package render

import (
	"errors"
	"fmt"
	"time"
)

// Kind selects the document template.
type Kind string

const (
	// KindRouteCard enumerates every technology step with workstation
	// and duration columns.
	KindRouteCard Kind = "rc"

	// KindCOC emits the compliance-statement layout: order id, product
	// code, and quantity only, no per-step detail.
	KindCOC Kind = "coc"
)

// Label returns the display name for a kind.
func (k Kind) Label() string {
	switch k {
	case KindRouteCard:
		return "Route card"
	case KindCOC:
		return "Declaration of conformity"
	default:
		return string(k)
	}
}

// Valid reports whether k is a known document kind.
func (k Kind) Valid() bool {
	return k == KindRouteCard || k == KindCOC
}

// GeneratedDocument is the structured outcome of one render call.
// Never mutated after creation. Path is the attachment contract:
// downstream consumers read it from here, not from Message.
type GeneratedDocument struct {
	Kind        Kind
	OrderID     string
	Path        string
	GeneratedAt time.Time

	// Message is display text for status lines and logs. Informational
	// only - it must never be parsed.
	Message string
}

// Company identifies the manufacturer on document headers.
type Company struct {
	Name       string
	Address    string
	TaxID      string
	RegistryNo string
	Signer     string
}

// DefaultCompany returns the header identity used when none is configured.
func DefaultCompany() Company {
	return Company{
		Name:   "S.C. INRED GROUP SRL",
		Signer: "General Manager",
	}
}

// RenderError is an OUTPUT_WRITE failure: the output directory could
// not be created or the workbook could not be saved. Fatal to the
// affected order only.
type RenderError struct {
	OrderID string
	Path    string
	Err     error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("OUTPUT_WRITE: cannot write document for order %s: %v [%s]", e.OrderID, e.Err, e.Path)
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error { return e.Err }

// IsOutputWrite reports whether err is a RenderError.
func IsOutputWrite(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}
