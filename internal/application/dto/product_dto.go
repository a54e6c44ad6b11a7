package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. ID es opcional: si el
// cliente no lo envía, el servidor genera un UUID nuevo. Los campos requeridos
// son punteros para distinguir "ausente" de "valor cero" (0 y "" son válidos).
type CreateProductRequest struct {
	ID          *uuid.UUID       `json:"id" swaggertype:"string" format:"uuid"`
	Name        *string          `json:"name" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required" swaggertype:"number"`
	Quantity    *int             `json:"quantity" validate:"required"`
}

// Validate verifica la presencia de los campos requeridos; la forma de cada
// valor ya la garantizó el decodificador JSON. Devuelve un detalle por campo.
func (r CreateProductRequest) Validate() []FieldError {
	var fields []FieldError
	if r.Name == nil {
		fields = append(fields, FieldError{Field: "name", Detail: "requerido"})
	}
	if r.Price == nil {
		fields = append(fields, FieldError{Field: "price", Detail: "requerido"})
	}
	if r.Quantity == nil {
		fields = append(fields, FieldError{Field: "quantity", Detail: "requerido"})
	}
	return fields
}

// UpdateProductRequest entrada del patch parcial de un producto: solo los
// campos presentes en el cuerpo se aplican. No expone ID; el ID nunca cambia
// vía patch.
type UpdateProductRequest struct {
	Name        Optional[string]          `json:"name" swaggertype:"string"`
	Description Optional[string]          `json:"description" swaggertype:"string"`
	Price       Optional[decimal.Decimal] `json:"price" swaggertype:"number"`
	Quantity    Optional[int]             `json:"quantity" swaggertype:"integer"`
}

// Validate rechaza null explícito en los campos que no lo aceptan.
// Description sí acepta null: lo interpreta como limpiar la descripción.
func (r UpdateProductRequest) Validate() []FieldError {
	var fields []FieldError
	if r.Name.Set && !r.Name.Valid {
		fields = append(fields, FieldError{Field: "name", Detail: "no acepta null"})
	}
	if r.Price.Set && !r.Price.Valid {
		fields = append(fields, FieldError{Field: "price", Detail: "no acepta null"})
	}
	if r.Quantity.Set && !r.Quantity.Valid {
		fields = append(fields, FieldError{Field: "quantity", Detail: "no acepta null"})
	}
	return fields
}

// ProductResponse salida de un producto (representación completa).
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductFilter criterios opcionales de igualdad exacta para el listado.
// Un criterio nil no restringe; sin criterios se devuelve la colección entera.
type ProductFilter struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
}
