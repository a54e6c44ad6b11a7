package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError detalle de validación a nivel de campo.
type FieldError struct {
	Field  string `json:"field"`
	Detail string `json:"detail"`
}
