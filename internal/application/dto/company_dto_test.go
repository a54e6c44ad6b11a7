package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

func TestCreateCompanyRequest_Validate(t *testing.T) {
	// Los cinco campos de empresa son requeridos
	fields := dto.CreateCompanyRequest{}.Validate()
	assert.ElementsMatch(t, []string{"name", "industry", "employees", "phone", "state"}, names(fields))

	fields = dto.CreateCompanyRequest{
		Name:      ptr("Acme"),
		Industry:  ptr("hardware"),
		Employees: ptr(0),
		Phone:     ptr(""),
		State:     ptr("NY"),
	}.Validate()
	assert.Empty(t, fields, "cero y cadena vacía cuentan como presentes")
}

func TestUpdateCompanyRequest_Validate(t *testing.T) {
	assert.Empty(t, dto.UpdateCompanyRequest{}.Validate())

	// Ningún campo de empresa acepta null explícito
	fields := dto.UpdateCompanyRequest{
		Industry:  dto.Optional[string]{Set: true},
		Employees: dto.Optional[int]{Set: true},
	}.Validate()
	assert.ElementsMatch(t, []string{"industry", "employees"}, names(fields))

	fields = dto.UpdateCompanyRequest{
		State: dto.Optional[string]{Set: true, Valid: true, Value: "CA"},
	}.Validate()
	assert.Empty(t, fields)
}
