// Package catalogo contains the pure helpers used by the bulk catalog import:
// price parsing for the mixed separator formats found in chat-commerce
// listings, name normalization for duplicate detection, and description
// cleanup. No dependencies on persistence or HTTP — everything here is
// deterministic and unit-testable in isolation.
package catalogo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrPrecioInvalido marks any price string that cannot be resolved to a
// valid currency amount. Callers match it with errors.Is.
var ErrPrecioInvalido = errors.New("precio invalido")

// precioMinimo is the data-entry floor: catalog prices below 100 are never
// valid amounts in this domain (a "$50" sneaker is a typo, not a price).
const precioMinimo = 100

// ParsePrecioCatalogo converts a free-text catalog price into a decimal
// amount rounded to 2 places. Sellers mix Latin-American ("1.234,56") and
// plain thousands-only ("1.234") formats with no locale metadata, so the
// decimal/thousands ambiguity is resolved by separator position and
// fragment length:
//
//   - both "," and ".": whichever occurs last is the decimal separator
//   - only ",": decimal separator when exactly 2 digits follow the last one
//   - only "." or none: "." is always a thousands separator (these catalogs
//     never write cents with a dot)
func ParsePrecioCatalogo(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" || strings.Contains(strings.ToLower(raw), "sin precio") {
		return decimal.Zero, ErrPrecioInvalido
	}

	texto := soloDigitosYSeparadores(raw)

	tieneComa := strings.Contains(texto, ",")
	tienePunto := strings.Contains(texto, ".")

	switch {
	case tieneComa && tienePunto:
		if strings.LastIndex(texto, ",") > strings.LastIndex(texto, ".") {
			// "1.234,56" — dots are thousands, comma is the decimal mark
			texto = strings.ReplaceAll(texto, ".", "")
			texto = strings.Replace(texto, ",", ".", 1)
		} else {
			// "1,234.56" — commas are thousands
			texto = strings.ReplaceAll(texto, ",", "")
		}
	case tieneComa:
		idx := strings.LastIndex(texto, ",")
		if len(texto)-idx-1 == 2 {
			// "1234,56" — comma followed by exactly two digits is a decimal mark
			texto = strings.ReplaceAll(texto[:idx], ",", "") + "." + texto[idx+1:]
		} else {
			texto = strings.ReplaceAll(texto, ",", "")
		}
	default:
		texto = strings.ReplaceAll(texto, ".", "")
	}

	valor, err := strconv.ParseFloat(texto, 64)
	if err != nil || valor < precioMinimo {
		return decimal.Zero, fmt.Errorf("%w: precio demasiado bajo o no numerico", ErrPrecioInvalido)
	}

	return decimal.NewFromFloat(valor).Round(2), nil
}

// soloDigitosYSeparadores strips every rune that is not a digit, comma or dot.
func soloDigitosYSeparadores(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
