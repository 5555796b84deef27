package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"zapastock/internal/apierror"
	"zapastock/internal/dto"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxTamanioArchivo = 5 << 20 // 5 MB

type CargaMasivaHandler struct {
	carga *service.CargaMasivaService
}

func NewCargaMasivaHandler(carga *service.CargaMasivaService) *CargaMasivaHandler {
	return &CargaMasivaHandler{carga: carga}
}

// Inline godoc
// @Summary Carga masiva de catalogo (JSON en el body)
// @Tags carga-masiva
// @Accept json
// @Produce json
// @Success 200 {object} dto.CargaMasivaResponse
// @Router /v1/productos/carga-masiva [post]
func (h *CargaMasivaHandler) Inline(c *gin.Context) {
	var req dto.CargaMasivaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	opts, ok := h.opcionesDesdeRequest(c, req.ProveedorID, req.AumentoPorcentaje, req.StockPorDefecto)
	if !ok {
		return
	}

	lote, err := h.carga.ProcesarInline(c.Request.Context(), req.Productos, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CargaMasivaResponse{
		Message:    mensajeCarga(lote),
		Resultados: lote.Resultados,
		Resumen:    lote.Resumen,
	})
}

// Archivo godoc
// @Summary Carga masiva de catalogo (archivo JSON)
// @Tags carga-masiva
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} dto.CargaMasivaArchivoResponse
// @Router /v1/productos/carga-masiva/archivo [post]
func (h *CargaMasivaHandler) Archivo(c *gin.Context) {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo en el campo 'archivo'"))
		return
	}
	if fileHeader.Size > maxTamanioArchivo {
		c.JSON(http.StatusBadRequest, apierror.Newf("El archivo supera el limite de %dMB", maxTamanioArchivo>>20))
		return
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".json" {
		c.JSON(http.StatusBadRequest, apierror.New("Solo se aceptan archivos .json"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	contenido, err := io.ReadAll(io.LimitReader(f, maxTamanioArchivo+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}

	filas, err := parseCatalogoJSON(contenido)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("El archivo no contiene un catalogo valido"))
		return
	}
	if len(filas) == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("El catalogo esta vacio"))
		return
	}

	var proveedorID *string
	if raw := c.PostForm("proveedor_id"); raw != "" {
		proveedorID = &raw
	}
	aumento, _ := strconv.ParseFloat(c.DefaultPostForm("aumento_porcentaje", "0"), 64)
	if aumento < 0 || aumento > 1000 {
		c.JSON(http.StatusBadRequest, apierror.New("aumento_porcentaje fuera de rango"))
		return
	}
	var stockPorDefecto *int
	if raw := c.PostForm("stock_por_defecto"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, apierror.New("stock_por_defecto invalido"))
			return
		}
		stockPorDefecto = &n
	}

	opts, ok := h.opcionesDesdeRequest(c, proveedorID, aumento, stockPorDefecto)
	if !ok {
		return
	}

	lote, err := h.carga.ProcesarArchivo(c.Request.Context(), filas, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CargaMasivaArchivoResponse{
		Message: mensajeCarga(lote),
		Archivo: dto.ArchivoInfo{
			Nombre:               fileHeader.Filename,
			Tamanio:              fileHeader.Size,
			ProductosEncontrados: len(filas),
		},
		Configuracion: dto.ConfiguracionCarga{
			ProveedorID:       lote.Proveedor.ID.String(),
			AumentoPorcentaje: lote.Opciones.AumentoPorcentaje,
			StockPorDefecto:   lote.Opciones.StockPorDefecto,
		},
		Resultados: lote.Resultados,
		Resumen:    lote.Resumen,
	})
}

func (h *CargaMasivaHandler) opcionesDesdeRequest(c *gin.Context, proveedorID *string, aumento float64, stock *int) (service.OpcionesCarga, bool) {
	// stock_por_defecto omitido equivale a 1 unidad por producto importado;
	// un 0 explicito crea los productos sin stock ni movimiento inicial.
	opts := service.OpcionesCarga{AumentoPorcentaje: aumento, StockPorDefecto: 1}
	if proveedorID != nil {
		id, err := uuid.Parse(*proveedorID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("proveedor_id invalido"))
			return opts, false
		}
		opts.ProveedorID = &id
	}
	if stock != nil {
		opts.StockPorDefecto = *stock
	}
	return opts, true
}

// parseCatalogoJSON accepts either a bare array of rows or an object with a
// "productos" key, the two shapes the scrapers produce.
func parseCatalogoJSON(contenido []byte) ([]dto.FilaCatalogo, error) {
	var filas []dto.FilaCatalogo
	if err := json.Unmarshal(contenido, &filas); err == nil {
		return filas, nil
	}
	var envuelto dto.ArchivoCatalogo
	if err := json.Unmarshal(contenido, &envuelto); err != nil {
		return nil, err
	}
	return envuelto.Productos, nil
}

func mensajeCarga(lote *service.ResultadoLote) string {
	return fmt.Sprintf("Carga completada: %d creados, %d duplicados, %d errores",
		lote.Resumen.Exitosos, lote.Resumen.Duplicados, lote.Resumen.Errores)
}
