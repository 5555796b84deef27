package catalogo

import (
	"regexp"
	"strings"
)

var (
	// Chat-commerce listings carry markdown-style emphasis; the whole
	// **span** goes, plus any stray run of one or two asterisks.
	reEnfasis = regexp.MustCompile(`\*{2}.*?\*{2}|\*{1,2}`)
	reSaltos  = regexp.MustCompile(`[\r\n]+`)
)

// LimpiarDescripcion strips emphasis markup and line breaks from a scraped
// catalog description. Returns nil when nothing readable remains.
func LimpiarDescripcion(descripcion string) *string {
	s := reEnfasis.ReplaceAllString(descripcion, "")
	s = reSaltos.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
