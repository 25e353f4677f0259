package table

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD, drops combining marks, and
// recomposes to NFC. "Locație" becomes "Locatie".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey canonicalizes a header cell for column matching:
// diacritics folded, whitespace trimmed and collapsed, lowercased.
func NormalizeKey(s string) string {
	folded, _, err := transform.String(foldDiacritics, s)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to the raw
		// text so a damaged header still matches itself.
		folded = s
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}

// NormalizeID canonicalizes a key-column value (order id, product
// code) for lookup: trimmed and uppercased. Diacritics are left alone
// - identifiers are ASCII in practice and folding them could merge
// distinct codes.
func NormalizeID(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
