package dto

type CrearProveedorRequest struct {
	Nombre      string  `json:"nombre"      validate:"required,min=2,max=100"`
	Contacto    *string `json:"contacto"    validate:"omitempty,max=100"`
	Descripcion *string `json:"descripcion"`
}

type ProveedorResponse struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Contacto    *string `json:"contacto"`
	Descripcion *string `json:"descripcion"`
	PorDefecto  bool    `json:"por_defecto"`
}

type ProveedorListResponse struct {
	Data  []ProveedorResponse `json:"data"`
	Total int                 `json:"total"`
}
