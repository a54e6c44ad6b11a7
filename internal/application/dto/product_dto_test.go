package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

func ptr[T any](v T) *T { return &v }

func names(fields []dto.FieldError) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Field)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de validación de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProductRequest_Validate(t *testing.T) {
	// Caso 1: sin nada, se reportan los tres requeridos
	fields := dto.CreateProductRequest{}.Validate()
	assert.ElementsMatch(t, []string{"name", "price", "quantity"}, names(fields))

	// Caso 2: completo, sin errores
	fields = dto.CreateProductRequest{
		Name:     ptr("Toaster"),
		Price:    ptr(decimal.NewFromFloat(24.99)),
		Quantity: ptr(35),
	}.Validate()
	assert.Empty(t, fields)

	// Caso 3: la validación es de presencia, no de contenido: cadena vacía
	// y cero son valores presentes válidos
	fields = dto.CreateProductRequest{
		Name:     ptr(""),
		Price:    ptr(decimal.Zero),
		Quantity: ptr(0),
	}.Validate()
	assert.Empty(t, fields)
}

func TestUpdateProductRequest_Validate(t *testing.T) {
	// Caso 1: patch vacío es válido (no-op)
	assert.Empty(t, dto.UpdateProductRequest{}.Validate())

	// Caso 2: null explícito en los campos requeridos se rechaza
	fields := dto.UpdateProductRequest{
		Name:     dto.Optional[string]{Set: true},
		Price:    dto.Optional[decimal.Decimal]{Set: true},
		Quantity: dto.Optional[int]{Set: true},
	}.Validate()
	assert.ElementsMatch(t, []string{"name", "price", "quantity"}, names(fields))

	// Caso 3: description sí acepta null (lo limpia)
	fields = dto.UpdateProductRequest{
		Description: dto.Optional[string]{Set: true},
	}.Validate()
	assert.Empty(t, fields)

	// Caso 4: valores presentes y válidos pasan
	fields = dto.UpdateProductRequest{
		Name:  dto.Optional[string]{Set: true, Valid: true, Value: "Kettle"},
		Price: dto.Optional[decimal.Decimal]{Set: true, Valid: true, Value: decimal.NewFromInt(10)},
	}.Validate()
	assert.Empty(t, fields)
}
