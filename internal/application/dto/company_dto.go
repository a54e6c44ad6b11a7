package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCompanyRequest entrada para crear una empresa. ID es opcional (el
// servidor genera un UUID si falta); el resto de campos son requeridos.
type CreateCompanyRequest struct {
	ID        *uuid.UUID `json:"id" swaggertype:"string" format:"uuid"`
	Name      *string    `json:"name" validate:"required"`
	Industry  *string    `json:"industry" validate:"required"`
	Employees *int       `json:"employees" validate:"required"`
	Phone     *string    `json:"phone" validate:"required"`
	State     *string    `json:"state" validate:"required"`
}

// Validate verifica la presencia de los campos requeridos.
func (r CreateCompanyRequest) Validate() []FieldError {
	var fields []FieldError
	if r.Name == nil {
		fields = append(fields, FieldError{Field: "name", Detail: "requerido"})
	}
	if r.Industry == nil {
		fields = append(fields, FieldError{Field: "industry", Detail: "requerido"})
	}
	if r.Employees == nil {
		fields = append(fields, FieldError{Field: "employees", Detail: "requerido"})
	}
	if r.Phone == nil {
		fields = append(fields, FieldError{Field: "phone", Detail: "requerido"})
	}
	if r.State == nil {
		fields = append(fields, FieldError{Field: "state", Detail: "requerido"})
	}
	return fields
}

// UpdateCompanyRequest entrada del patch parcial de una empresa; sin ID.
type UpdateCompanyRequest struct {
	Name      Optional[string] `json:"name" swaggertype:"string"`
	Industry  Optional[string] `json:"industry" swaggertype:"string"`
	Employees Optional[int]    `json:"employees" swaggertype:"integer"`
	Phone     Optional[string] `json:"phone" swaggertype:"string"`
	State     Optional[string] `json:"state" swaggertype:"string"`
}

// Validate rechaza null explícito: ningún campo de empresa acepta null.
func (r UpdateCompanyRequest) Validate() []FieldError {
	var fields []FieldError
	if r.Name.Set && !r.Name.Valid {
		fields = append(fields, FieldError{Field: "name", Detail: "no acepta null"})
	}
	if r.Industry.Set && !r.Industry.Valid {
		fields = append(fields, FieldError{Field: "industry", Detail: "no acepta null"})
	}
	if r.Employees.Set && !r.Employees.Valid {
		fields = append(fields, FieldError{Field: "employees", Detail: "no acepta null"})
	}
	if r.Phone.Set && !r.Phone.Valid {
		fields = append(fields, FieldError{Field: "phone", Detail: "no acepta null"})
	}
	if r.State.Set && !r.State.Valid {
		fields = append(fields, FieldError{Field: "state", Detail: "no acepta null"})
	}
	return fields
}

// CompanyResponse salida de una empresa (representación completa).
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	Employees int       `json:"employees"`
	Phone     string    `json:"phone"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyFilter criterios opcionales de igualdad exacta para el listado.
type CompanyFilter struct {
	Name      *string
	Industry  *string
	Employees *int
	Phone     *string
	State     *string
}
