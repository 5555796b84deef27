package handler

import (
	"errors"
	"net/http"
	"reflect"
	"time"

	"zapastock/internal/apierror"
	"zapastock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

// newValidator builds the shared validator instance. decimal.Decimal fields
// validate through their float value so numeric tags (gt, min) apply.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// bindAndValidate decodes the JSON body into req and runs struct validation,
// writing the 400 response itself when either step fails.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Cuerpo de la solicitud invalido"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Identificador invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service sentinels to HTTP statuses. Anything unmapped is
// a 500 with a generic detail so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductoNoEncontrado),
		errors.Is(err, service.ErrProveedorNoEncontrado),
		errors.Is(err, service.ErrClienteNoEncontrado),
		errors.Is(err, service.ErrVentaNoEncontrada),
		errors.Is(err, service.ErrCompraNoEncontrada),
		errors.Is(err, service.ErrEncargueNoEncontrado),
		errors.Is(err, service.ErrDeudaNoEncontrada),
		errors.Is(err, service.ErrUsuarioNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))

	case errors.Is(err, service.ErrStockNegativo),
		errors.Is(err, service.ErrStockInsuficiente),
		errors.Is(err, service.ErrTieneTransacciones),
		errors.Is(err, service.ErrProveedorConProductos),
		errors.Is(err, service.ErrProveedorPorDefecto),
		errors.Is(err, service.ErrEncargueYaRecibido),
		errors.Is(err, service.ErrDeudaYaPagada),
		errors.Is(err, service.ErrUsernameEnUso):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.Is(err, service.ErrLimiteFilasExcedido):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))

	case errors.Is(err, service.ErrCredencialesInvalidas),
		errors.Is(err, service.ErrUsuarioInactivo):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))

	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

func fechaISO(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func fechaISOPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := fechaISO(*t)
	return &s
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
