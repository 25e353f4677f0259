package render

import (
	"regexp"
	"strings"
)

// Certificate carries the COC identification numbers derived from the
// order id: certificate number DCIR + trailing digits left-padded to
// six, batch number the same digits without leading zeros.
type Certificate struct {
	Number string
	Batch  string
}

var trailingDigits = regexp.MustCompile(`([0-9]+)$`)

// CertificateFor derives the certificate numbers for an order id.
// An id without trailing digits gets the zero certificate and no
// batch number.
func CertificateFor(orderID string) Certificate {
	m := trailingDigits.FindStringSubmatch(strings.TrimSpace(orderID))
	if m == nil {
		return Certificate{Number: "DCIR000000", Batch: "N/A"}
	}
	digits := m[1]
	padded := digits
	if len(padded) < 6 {
		padded = strings.Repeat("0", 6-len(padded)) + padded
	}
	batch := strings.TrimLeft(digits, "0")
	if batch == "" {
		batch = "0"
	}
	return Certificate{Number: "DCIR" + padded, Batch: batch}
}
