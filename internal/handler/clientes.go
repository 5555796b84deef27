package handler

import (
	"net/http"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
)

type ClienteHandler struct {
	clientes *service.ClienteService
}

func NewClienteHandler(clientes *service.ClienteService) *ClienteHandler {
	return &ClienteHandler{clientes: clientes}
}

func (h *ClienteHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.clientes.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toClienteResponse(cliente))
}

func (h *ClienteHandler) Listar(c *gin.Context) {
	clientes, err := h.clientes.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		items = append(items, toClienteResponse(&clientes[i]))
	}
	c.JSON(http.StatusOK, dto.ClienteListResponse{Data: items, Total: len(items)})
}

func (h *ClienteHandler) Obtener(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	cliente, err := h.clientes.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClienteResponse(cliente))
}

func (h *ClienteHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.clientes.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClienteResponse(cliente))
}

// ─── Deudas ──────────────────────────────────────────────────────────────────

func (h *ClienteHandler) CrearDeuda(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CrearDeudaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	deuda, err := h.clientes.CrearDeuda(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDeudaResponse(deuda))
}

func (h *ClienteHandler) ListarDeudas(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	deudas, err := h.clientes.ListarDeudas(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.DeudaResponse, 0, len(deudas))
	for i := range deudas {
		items = append(items, toDeudaResponse(&deudas[i]))
	}
	c.JSON(http.StatusOK, dto.DeudaListResponse{Data: items, Total: len(items)})
}

func (h *ClienteHandler) DeudasPendientes(c *gin.Context) {
	deudas, err := h.clientes.DeudasPendientes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.DeudaResponse, 0, len(deudas))
	for i := range deudas {
		items = append(items, toDeudaResponse(&deudas[i]))
	}
	c.JSON(http.StatusOK, dto.DeudaListResponse{Data: items, Total: len(items)})
}

func (h *ClienteHandler) PagarDeuda(c *gin.Context) {
	id, ok := parseUUIDParam(c, "deudaId")
	if !ok {
		return
	}
	deuda, err := h.clientes.PagarDeuda(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDeudaResponse(deuda))
}

func toClienteResponse(cliente *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:       cliente.ID.String(),
		Nombre:   cliente.Nombre,
		Telefono: cliente.Telefono,
		Email:    cliente.Email,
	}
}

func toDeudaResponse(d *model.Deuda) dto.DeudaResponse {
	resp := dto.DeudaResponse{
		ID:          d.ID.String(),
		ClienteID:   d.ClienteID.String(),
		Monto:       d.Monto,
		Descripcion: d.Descripcion,
		Fecha:       fechaISO(d.Fecha),
		Pagado:      d.Pagado,
		FechaPago:   fechaISOPtr(d.FechaPago),
	}
	if d.FechaLimitePago != nil {
		s := d.FechaLimitePago.Format("2006-01-02")
		resp.FechaLimitePago = &s
	}
	return resp
}
