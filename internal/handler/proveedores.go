package handler

import (
	"net/http"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedorHandler struct {
	proveedores *service.ProveedorService
}

func NewProveedorHandler(proveedores *service.ProveedorService) *ProveedorHandler {
	return &ProveedorHandler{proveedores: proveedores}
}

func (h *ProveedorHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.proveedores.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProveedorResponse(p))
}

func (h *ProveedorHandler) Listar(c *gin.Context) {
	proveedores, err := h.proveedores.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		items = append(items, toProveedorResponse(&proveedores[i]))
	}
	c.JSON(http.StatusOK, dto.ProveedorListResponse{Data: items, Total: len(items)})
}

func (h *ProveedorHandler) Obtener(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	p, err := h.proveedores.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProveedorResponse(p))
}

func (h *ProveedorHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.proveedores.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProveedorResponse(p))
}

func (h *ProveedorHandler) Eliminar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.proveedores.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toProveedorResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:          p.ID.String(),
		Nombre:      p.Nombre,
		Contacto:    p.Contacto,
		Descripcion: p.Descripcion,
		PorDefecto:  p.PorDefecto,
	}
}
