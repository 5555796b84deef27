package catalogo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrecioCatalogo_FormatosValidos(t *testing.T) {
	casos := []struct {
		raw      string
		esperado string
	}{
		// Latin-American format: dot thousands, comma decimal
		{"1.234,56", "1234.56"},
		{"$ 12.500,00", "12500.00"},
		// US-style format: comma thousands, dot decimal
		{"1,234.56", "1234.56"},
		// Dot with no comma is always a thousands separator
		{"1.234", "1234.00"},
		{"$15.000", "15000.00"},
		// Comma followed by exactly two digits is a decimal mark
		{"1234,56", "1234.56"},
		{"150,50", "150.50"},
		// Comma followed by three digits is a thousands separator
		{"1,500", "1500.00"},
		// Plain digits, currency noise stripped
		{"ARS 1500", "1500.00"},
		{"precio: 2000 pesos", "2000.00"},
	}

	for _, c := range casos {
		got, err := ParsePrecioCatalogo(c.raw)
		require.NoError(t, err, "raw=%q", c.raw)
		assert.Equal(t, c.esperado, got.StringFixed(2), "raw=%q", c.raw)
	}
}

func TestParsePrecioCatalogo_MismoValorConAmbasConvenciones(t *testing.T) {
	latam, err := ParsePrecioCatalogo("1.234,56")
	require.NoError(t, err)
	us, err := ParsePrecioCatalogo("1,234.56")
	require.NoError(t, err)
	assert.True(t, latam.Equal(us), "ambas convenciones deben dar el mismo valor")
}

func TestParsePrecioCatalogo_Redondeo(t *testing.T) {
	got, err := ParsePrecioCatalogo("1.234,568")
	require.NoError(t, err)
	assert.Equal(t, "1234.57", got.StringFixed(2))
}

func TestParsePrecioCatalogo_Invalidos(t *testing.T) {
	invalidos := []string{
		"",
		"   ",
		"sin precio",
		"SIN PRECIO por el momento",
		"consultar",
		"50",    // below the 100 floor
		"99,99", // parses but still below the floor
	}

	for _, raw := range invalidos {
		_, err := ParsePrecioCatalogo(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, errors.Is(err, ErrPrecioInvalido), "raw=%q", raw)
	}
}
