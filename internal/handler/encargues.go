package handler

import (
	"net/http"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
)

type EncargueHandler struct {
	encargues *service.EncargueService
}

func NewEncargueHandler(encargues *service.EncargueService) *EncargueHandler {
	return &EncargueHandler{encargues: encargues}
}

func (h *EncargueHandler) Crear(c *gin.Context) {
	var req dto.CrearEncargueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	encargue, err := h.encargues.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEncargueResponse(encargue))
}

func (h *EncargueHandler) Listar(c *gin.Context) {
	encargues, err := h.encargues.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.EncargueResponse, 0, len(encargues))
	for i := range encargues {
		items = append(items, toEncargueResponse(&encargues[i]))
	}
	c.JSON(http.StatusOK, dto.EncargueListResponse{Data: items, Total: len(items)})
}

func (h *EncargueHandler) Obtener(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	encargue, err := h.encargues.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEncargueResponse(encargue))
}

func (h *EncargueHandler) MarcarRecibido(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	encargue, err := h.encargues.MarcarRecibido(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEncargueResponse(encargue))
}

func toEncargueResponse(e *model.EncargueProveedor) dto.EncargueResponse {
	resp := dto.EncargueResponse{
		ID:          e.ID.String(),
		ProveedorID: uuidPtrString(e.ProveedorID),
		Fecha:       fechaISO(e.Fecha),
		Estado:      e.Estado,
		Detalles:    make([]dto.DetalleEncargueResponse, 0, len(e.Detalles)),
	}
	for i := range e.Detalles {
		det := &e.Detalles[i]
		item := dto.DetalleEncargueResponse{
			ProductoID: det.ProductoID.String(),
			Cantidad:   det.Cantidad,
		}
		if det.Producto != nil {
			item.ProductoNombre = det.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, item)
	}
	return resp
}
