package handler

import (
	"net/http"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
)

type CompraHandler struct {
	compras *service.CompraService
}

func NewCompraHandler(compras *service.CompraService) *CompraHandler {
	return &CompraHandler{compras: compras}
}

func (h *CompraHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	compra, err := h.compras.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCompraResponse(compra))
}

func (h *CompraHandler) Listar(c *gin.Context) {
	compras, err := h.compras.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		items = append(items, toCompraResponse(&compras[i]))
	}
	c.JSON(http.StatusOK, dto.CompraListResponse{Data: items, Total: len(items)})
}

func (h *CompraHandler) Obtener(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	compra, err := h.compras.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompraResponse(compra))
}

func toCompraResponse(compra *model.CompraMayorista) dto.CompraResponse {
	resp := dto.CompraResponse{
		ID:            compra.ID.String(),
		ProveedorID:   uuidPtrString(compra.ProveedorID),
		Fecha:         fechaISO(compra.Fecha),
		Total:         compra.Total,
		CostoEnvio:    compra.CostoEnvio,
		FormaPago:     compra.FormaPago,
		Observaciones: compra.Observaciones,
		Detalles:      make([]dto.DetalleCompraResponse, 0, len(compra.Detalles)),
	}
	for i := range compra.Detalles {
		det := &compra.Detalles[i]
		item := dto.DetalleCompraResponse{
			ProductoID:     det.ProductoID.String(),
			Cantidad:       det.Cantidad,
			PrecioUnitario: det.PrecioUnitario,
		}
		if det.Producto != nil {
			item.ProductoNombre = det.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, item)
	}
	return resp
}
