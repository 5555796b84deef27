// Package apierror defines the JSON shapes every failed request answers
// with. Handlers translate service and repository errors into one of these
// envelopes; raw error strings from GORM or drivers never reach a client.
package apierror

import "fmt"

// APIError carries a single human-readable message under "detail".
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError { return &APIError{Detail: msg} }

// Newf builds the detail message with fmt.Sprintf.
func Newf(format string, args ...any) *APIError {
	return &APIError{Detail: fmt.Sprintf(format, args...)}
}

// ValidationError extends the envelope with the field-by-field breakdown
// produced by the request validator.
type ValidationError struct {
	APIError
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{
		APIError: APIError{Detail: "Datos de entrada invalidos"},
		Fields:   fields,
	}
}
