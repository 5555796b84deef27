package handler

import (
	"net/http"
	"strconv"

	"zapastock/internal/apierror"
	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductoHandler struct {
	productos *service.ProductoService
}

func NewProductoHandler(productos *service.ProductoService) *ProductoHandler {
	return &ProductoHandler{productos: productos}
}

// Crear godoc
// @Summary Crear producto
// @Tags productos
// @Accept json
// @Produce json
// @Success 201 {object} dto.ProductoResponse
// @Router /v1/productos [post]
func (h *ProductoHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.productos.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductoResponse(p))
}

// Listar godoc
// @Summary Listar productos
// @Tags productos
// @Produce json
// @Success 200 {object} dto.ProductoListResponse
// @Router /v1/productos [get]
func (h *ProductoHandler) Listar(c *gin.Context) {
	productos, err := h.productos.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoListResponse(productos))
}

// Buscar filtra por termino sobre nombre y descripcion.
func (h *ProductoHandler) Buscar(c *gin.Context) {
	termino := c.Query("q")
	if termino == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el parametro q"))
		return
	}
	productos, err := h.productos.Buscar(c.Request.Context(), termino)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoListResponse(productos))
}

func (h *ProductoHandler) StockBajo(c *gin.Context) {
	productos, err := h.productos.ConStockBajo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoListResponse(productos))
}

func (h *ProductoHandler) PorProveedor(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	productos, err := h.productos.PorProveedor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoListResponse(productos))
}

func (h *ProductoHandler) Obtener(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	p, err := h.productos.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoResponse(p))
}

func (h *ProductoHandler) Actualizar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.productos.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoResponse(p))
}

func (h *ProductoHandler) AjustarStock(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.productos.AjustarStock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductoResponse(p))
}

func (h *ProductoHandler) CambiarPrecio(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CambioPrecioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	hp, err := h.productos.CambiarPrecio(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toHistorialItem(hp))
}

func (h *ProductoHandler) HistorialPrecios(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	historial, err := h.productos.HistorialPrecios(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.HistorialPrecioItem, 0, len(historial))
	for i := range historial {
		items = append(items, *toHistorialItem(&historial[i]))
	}
	c.JSON(http.StatusOK, dto.HistorialPrecioListResponse{Data: items, Total: len(items)})
}

func (h *ProductoHandler) Eliminar(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.productos.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductoHandler) AgregarImagen(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.AgregarImagenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	img, err := h.productos.AgregarImagen(c.Request.Context(), id, req.URL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ImagenItem{ID: img.ID.String(), URL: img.URL})
}

// Movimientos lista el log de stock, filtrable por producto, tipo y origen.
func (h *ProductoHandler) Movimientos(c *gin.Context) {
	filter := repository.MovimientoStockFilter{
		Tipo:   c.Query("tipo"),
		Origen: c.Query("origen"),
	}
	if raw := c.Query("producto_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("producto_id invalido"))
			return
		}
		filter.ProductoID = &id
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	movimientos, total, err := h.productos.Movimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.MovimientoStockItem, 0, len(movimientos))
	for i := range movimientos {
		items = append(items, toMovimientoItem(&movimientos[i]))
	}
	c.JSON(http.StatusOK, dto.MovimientoStockListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func toProductoResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:              p.ID.String(),
		ProveedorID:     uuidPtrString(p.ProveedorID),
		Nombre:          p.Nombre,
		Descripcion:     p.Descripcion,
		PrecioProveedor: p.PrecioProveedor,
		PrecioMiLocal:   p.PrecioMiLocal,
		StockActual:     p.StockActual,
		FechaAgregado:   fechaISO(p.CreatedAt),
	}
	if p.Proveedor != nil {
		resp.ProveedorNombre = &p.Proveedor.Nombre
	}
	for i := range p.Imagenes {
		resp.Imagenes = append(resp.Imagenes, dto.ImagenItem{
			ID:  p.Imagenes[i].ID.String(),
			URL: p.Imagenes[i].URL,
		})
	}
	for i := range p.Movimientos {
		resp.Movimientos = append(resp.Movimientos, toMovimientoItem(&p.Movimientos[i]))
	}
	return resp
}

func toProductoListResponse(productos []model.Producto) dto.ProductoListResponse {
	items := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		items = append(items, toProductoResponse(&productos[i]))
	}
	return dto.ProductoListResponse{Data: items, Total: len(items)}
}

func toHistorialItem(h *model.HistorialPrecio) *dto.HistorialPrecioItem {
	return &dto.HistorialPrecioItem{
		ID:          h.ID.String(),
		ProductoID:  h.ProductoID.String(),
		Precio:      h.Precio,
		Tipo:        h.Tipo,
		FechaCambio: fechaISO(h.CreatedAt),
	}
}

func toMovimientoItem(m *model.MovimientoStock) dto.MovimientoStockItem {
	return dto.MovimientoStockItem{
		ID:           m.ID.String(),
		ProductoID:   m.ProductoID.String(),
		Tipo:         m.Tipo,
		Cantidad:     m.Cantidad,
		Motivo:       m.Motivo,
		Origen:       m.Origen,
		ReferenciaID: uuidPtrString(m.ReferenciaID),
		Fecha:        fechaISO(m.CreatedAt),
	}
}
