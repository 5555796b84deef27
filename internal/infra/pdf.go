package infra

import (
	"bytes"
	"fmt"

	"zapastock/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// TicketPDF renders sale receipts in the 80mm thermal-printer format used
// by the store.
type TicketPDF struct {
	nombreLocal string
}

func NewTicketPDF(nombreLocal string) *TicketPDF {
	if nombreLocal == "" {
		nombreLocal = "ZapaStock"
	}
	return &TicketPDF{nombreLocal: nombreLocal}
}

func (t *TicketPDF) Generar(venta *model.VentaLocal) ([]byte, error) {
	alto := 120.0 + float64(len(venta.Detalles))*10
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: 80, Ht: alto},
	})
	pdf.SetMargins(5, 5, 5)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(70, 6, t.nombreLocal, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(70, 4, "Ticket no fiscal", "", 1, "C", false, 0, "")
	pdf.CellFormat(70, 4, venta.Fecha.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.CellFormat(70, 4, "Venta "+venta.ID.String()[:8], "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(34, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(8, 5, "Cant", "B", 0, "R", false, 0, "")
	pdf.CellFormat(28, 5, "Importe", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for i := range venta.Detalles {
		det := &venta.Detalles[i]
		nombre := det.ProductoID.String()[:8]
		if det.Producto != nil {
			nombre = det.Producto.Nombre
		}
		if det.Talle != nil {
			nombre += " T" + *det.Talle
		}
		if len(nombre) > 24 {
			nombre = nombre[:24]
		}
		importe := det.PrecioUnitario.Mul(decimal.NewFromInt(int64(det.Cantidad)))
		pdf.CellFormat(34, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(8, 5, fmt.Sprintf("%d", det.Cantidad), "", 0, "R", false, 0, "")
		pdf.CellFormat(28, 5, "$ "+importe.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(42, 6, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(28, 6, "$ "+venta.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(70, 5, "Forma de pago: "+venta.FormaPago, "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.CellFormat(70, 4, "Gracias por su compra", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
