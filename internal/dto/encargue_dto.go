package dto

type DetalleEncargueRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,gt=0"`
}

type CrearEncargueRequest struct {
	ProveedorID string                   `json:"proveedor_id" validate:"required,uuid"`
	Detalles    []DetalleEncargueRequest `json:"detalles"     validate:"required,min=1,dive"`
}

type DetalleEncargueResponse struct {
	ProductoID     string `json:"producto_id"`
	ProductoNombre string `json:"producto_nombre,omitempty"`
	Cantidad       int    `json:"cantidad"`
}

type EncargueResponse struct {
	ID          string                    `json:"id"`
	ProveedorID *string                   `json:"proveedor_id"`
	Fecha       string                    `json:"fecha"`
	Estado      string                    `json:"estado"`
	Detalles    []DetalleEncargueResponse `json:"detalles"`
}

type EncargueListResponse struct {
	Data  []EncargueResponse `json:"data"`
	Total int                `json:"total"`
}
