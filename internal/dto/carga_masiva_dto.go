package dto

import "github.com/shopspring/decimal"

// FilaCatalogo is one raw row of a scraped catalog: the price arrives as
// free text ("$ 12.500", "1.234,56", "sin precio") and is resolved by the
// import pipeline.
type FilaCatalogo struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Precio      string  `json:"precio"`
}

type CargaMasivaRequest struct {
	Productos         []FilaCatalogo `json:"productos"          validate:"required,min=1"`
	ProveedorID       *string        `json:"proveedor_id"       validate:"omitempty,uuid"`
	AumentoPorcentaje float64        `json:"aumento_porcentaje" validate:"min=0,max=1000"`
	StockPorDefecto   *int           `json:"stock_por_defecto"  validate:"omitempty,min=0"`
}

// Row outcome states.
const (
	EstadoCreado    = "creado"
	EstadoDuplicado = "duplicado"
	EstadoError     = "error"
)

// DetalleCarga is the per-row outcome; Index is the 1-based position of the
// row in the input array, and the detalles slice always preserves input order.
type DetalleCarga struct {
	Index       int              `json:"index"`
	Nombre      string           `json:"nombre"`
	Estado      string           `json:"estado"`
	Mensaje     string           `json:"mensaje,omitempty"`
	ID          *string          `json:"id,omitempty"`
	PrecioFinal *decimal.Decimal `json:"precio_final,omitempty"`
}

type ResultadosCarga struct {
	Procesados int            `json:"procesados"`
	Creados    int            `json:"creados"`
	Errores    int            `json:"errores"`
	Duplicados int            `json:"duplicados"`
	Detalles   []DetalleCarga `json:"detalles"`
}

type ResumenCarga struct {
	Total           int `json:"total"`
	Exitosos        int `json:"exitosos"`
	Errores         int `json:"errores"`
	Duplicados      int `json:"duplicados"`
	PorcentajeExito int `json:"porcentaje_exito"`
}

type CargaMasivaResponse struct {
	Message    string          `json:"message"`
	Resultados ResultadosCarga `json:"resultados"`
	Resumen    ResumenCarga    `json:"resumen"`
}

// ArchivoInfo describes the uploaded catalog file on the file-upload path.
type ArchivoInfo struct {
	Nombre               string `json:"nombre"`
	Tamanio              int64  `json:"tamaño"`
	ProductosEncontrados int    `json:"productos_encontrados"`
}

// ConfiguracionCarga echoes the resolved import options back to the caller.
type ConfiguracionCarga struct {
	ProveedorID       string  `json:"proveedor_id"`
	AumentoPorcentaje float64 `json:"aumento_porcentaje"`
	StockPorDefecto   int     `json:"stock_por_defecto"`
}

type CargaMasivaArchivoResponse struct {
	Message       string             `json:"message"`
	Archivo       ArchivoInfo        `json:"archivo"`
	Configuracion ConfiguracionCarga `json:"configuracion"`
	Resultados    ResultadosCarga    `json:"resultados"`
	Resumen       ResumenCarga       `json:"resumen"`
}

// ArchivoCatalogo is the accepted shape of an uploaded JSON catalog:
// either a bare array or an object with a "productos" key.
type ArchivoCatalogo struct {
	Productos []FilaCatalogo `json:"productos"`
}
