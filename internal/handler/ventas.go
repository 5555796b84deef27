package handler

import (
	"net/http"

	"zapastock/internal/dto"
	"zapastock/internal/infra"
	"zapastock/internal/model"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
)

type VentaHandler struct {
	ventas  *service.VentaService
	tickets *infra.TicketPDF
}

func NewVentaHandler(ventas *service.VentaService, tickets *infra.TicketPDF) *VentaHandler {
	return &VentaHandler{ventas: ventas, tickets: tickets}
}

// Registrar godoc
// @Summary Registrar venta en local
// @Tags ventas
// @Accept json
// @Produce json
// @Success 201 {object} dto.VentaResponse
// @Router /v1/ventas [post]
func (h *VentaHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venta, err := h.ventas.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVentaResponse(venta))
}

func (h *VentaHandler) Listar(c *gin.Context) {
	ventas, err := h.ventas.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		items = append(items, toVentaResponse(&ventas[i]))
	}
	c.JSON(http.StatusOK, dto.VentaListResponse{Data: items, Total: len(items)})
}

func (h *VentaHandler) Obtener(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	venta, err := h.ventas.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVentaResponse(venta))
}

// Ticket streams the sale receipt as a PDF.
func (h *VentaHandler) Ticket(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	venta, err := h.ventas.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := h.tickets.Generar(venta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="ticket-`+venta.ID.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func toVentaResponse(v *model.VentaLocal) dto.VentaResponse {
	resp := dto.VentaResponse{
		ID:        v.ID.String(),
		ClienteID: uuidPtrString(v.ClienteID),
		Fecha:     fechaISO(v.Fecha),
		Total:     v.Total,
		FormaPago: v.FormaPago,
		Estado:    v.Estado,
		Detalles:  make([]dto.DetalleVentaResponse, 0, len(v.Detalles)),
	}
	for i := range v.Detalles {
		det := &v.Detalles[i]
		item := dto.DetalleVentaResponse{
			ProductoID:     det.ProductoID.String(),
			Cantidad:       det.Cantidad,
			Talle:          det.Talle,
			Color:          det.Color,
			PrecioUnitario: det.PrecioUnitario,
		}
		if det.Producto != nil {
			item.ProductoNombre = det.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, item)
	}
	return resp
}
