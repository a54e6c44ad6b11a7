package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Optional — ausente vs null vs valor
// ──────────────────────────────────────────────────────────────────────────────

type optionalSample struct {
	A dto.Optional[string]          `json:"a"`
	B dto.Optional[int]             `json:"b"`
	C dto.Optional[decimal.Decimal] `json:"c"`
}

func TestOptional_DistingueAusenteNullYValor(t *testing.T) {
	var s optionalSample
	require.NoError(t, json.Unmarshal([]byte(`{"b":null,"c":19.99}`), &s))

	// a ausente: ni Set ni Valid
	assert.False(t, s.A.Set)
	assert.False(t, s.A.Valid)

	// b null explícito: presente pero sin valor
	assert.True(t, s.B.Set)
	assert.False(t, s.B.Valid)
	assert.Zero(t, s.B.Value)

	// c con valor: presente y válido
	assert.True(t, s.C.Set)
	assert.True(t, s.C.Valid)
	assert.True(t, s.C.Value.Equal(decimal.NewFromFloat(19.99)))
}

// El valor cero del tipo es un valor presente legítimo, distinto de null.
func TestOptional_ValorCeroEsValido(t *testing.T) {
	var s optionalSample
	require.NoError(t, json.Unmarshal([]byte(`{"a":"","b":0}`), &s))

	assert.True(t, s.A.Set)
	assert.True(t, s.A.Valid)
	assert.Equal(t, "", s.A.Value)

	assert.True(t, s.B.Set)
	assert.True(t, s.B.Valid)
	assert.Equal(t, 0, s.B.Value)
}

func TestOptional_TipoIncorrecto_PropagaError(t *testing.T) {
	var s optionalSample
	err := json.Unmarshal([]byte(`{"b":"no soy un entero"}`), &s)
	assert.Error(t, err, "el error de tipo del valor interno debe subir al decodificador")
}

func TestOptional_Marshal(t *testing.T) {
	// Sin tocar: todo serializa como null
	raw, err := json.Marshal(optionalSample{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":null,"b":null,"c":null}`, string(raw))

	// Con valor: serializa el valor interno
	s := optionalSample{
		A: dto.Optional[string]{Set: true, Valid: true, Value: "hola"},
		B: dto.Optional[int]{Set: true, Valid: true, Value: 7},
	}
	raw, err = json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"hola","b":7,"c":null}`, string(raw))
}
