package catalogo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quitarDiacriticos decomposes accented characters (NFD) and drops the
// combining marks, so "Ñandú" and "nandu" collapse to the same key.
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizarNombre canonicalizes a product name for duplicate detection:
// trim, lowercase, collapse whitespace runs, strip diacritics, drop any
// remaining non-word non-space character. The result is a dedup key only —
// it is never shown to users or stored as the display name.
func NormalizarNombre(nombre string) string {
	s := strings.Join(strings.Fields(strings.ToLower(nombre)), " ")
	s, _, _ = transform.String(quitarDiacriticos, s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}
