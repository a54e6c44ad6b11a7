package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func ptr[T any](v T) *T { return &v }

func opt[T any](v T) dto.Optional[T] {
	return dto.Optional[T]{Set: true, Valid: true, Value: v}
}

func optNull[T any]() dto.Optional[T] {
	return dto.Optional[T]{Set: true}
}

func newProductUC() *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewProductRepository())
}

func createToaster(t *testing.T, uc *usecase.ProductUseCase) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateProductRequest{
		Name:        ptr("Toaster"),
		Description: "dos ranuras",
		Price:       ptr(decimal.NewFromFloat(24.99)),
		Quantity:    ptr(35),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Create_GeneraIDYMarcasDeTiempo(t *testing.T) {
	uc := newProductUC()
	out := createToaster(t, uc)

	// Sin ID del cliente se genera un UUID válido
	_, err := uuid.Parse(out.ID)
	assert.NoError(t, err, "el ID generado debe ser un UUID parseable: %s", out.ID)

	// Ambas marcas de tiempo nacen del mismo instante, en UTC
	assert.True(t, out.CreatedAt.Equal(out.UpdatedAt))
	assert.Equal(t, time.UTC, out.CreatedAt.Location())
	assert.WithinDuration(t, time.Now().UTC(), out.CreatedAt, time.Minute)
}

func TestProductUseCase_Create_RespetaIDProvisto(t *testing.T) {
	uc := newProductUC()
	id := uuid.MustParse("7f9c24e5-2f0b-4b25-9c3a-5b3640c2b1a1")

	out, err := uc.Create(dto.CreateProductRequest{
		ID:       &id,
		Name:     ptr("Kettle"),
		Price:    ptr(decimal.NewFromInt(10)),
		Quantity: ptr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, id.String(), out.ID)

	// Reusar el mismo ID propaga el duplicado del almacén
	_, err = uc.Create(dto.CreateProductRequest{
		ID:       &id,
		Name:     ptr("Clon"),
		Price:    ptr(decimal.NewFromInt(1)),
		Quantity: ptr(1),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUseCase_Update_AplicaSoloCamposPresentes(t *testing.T) {
	uc := newProductUC()
	created := createToaster(t, uc)

	time.Sleep(2 * time.Millisecond)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Price: opt(decimal.NewFromFloat(19.99)),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Price.Equal(decimal.NewFromFloat(19.99)))
	assert.Equal(t, "Toaster", out.Name, "los campos ausentes del patch no cambian")
	assert.Equal(t, "dos ranuras", out.Description)
	assert.Equal(t, 35, out.Quantity)
	assert.True(t, out.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt), "updated_at se refresca al tocar un campo")
}

func TestProductUseCase_Update_SinCampos_EsNoOp(t *testing.T) {
	uc := newProductUC()
	created := createToaster(t, uc)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created.Name, out.Name)
	assert.True(t, created.UpdatedAt.Equal(out.UpdatedAt),
		"un patch sin campos no debe refrescar updated_at")
}

func TestProductUseCase_Update_NullLimpiaDescription(t *testing.T) {
	uc := newProductUC()
	created := createToaster(t, uc)
	require.Equal(t, "dos ranuras", created.Description)

	out, err := uc.Update(created.ID, dto.UpdateProductRequest{
		Description: optNull[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, "", out.Description, "null explícito vacía la descripción")
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt) || out.UpdatedAt.Equal(created.UpdatedAt))
}

func TestProductUseCase_Update_Inexistente_DevuelveNil(t *testing.T) {
	uc := newProductUC()
	out, err := uc.Update("3b9e5a0c-91d4-4f6a-b7e8-0f1a2b3c4d5e", dto.UpdateProductRequest{
		Name: opt("nadie"),
	})
	assert.NoError(t, err)
	assert.Nil(t, out, "un id ausente no es un error de aplicación, es un nil")
}

func TestProductUseCase_List_FiltraSobreElAlmacen(t *testing.T) {
	uc := newProductUC()

	// Vacío: lista vacía, nunca nil
	list, err := uc.List(dto.ProductFilter{})
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Empty(t, list)

	createToaster(t, uc)
	_, err = uc.Create(dto.CreateProductRequest{
		Name:     ptr("Kettle"),
		Price:    ptr(decimal.NewFromFloat(24.99)),
		Quantity: ptr(5),
	})
	require.NoError(t, err)

	list, err = uc.List(dto.ProductFilter{Quantity: ptr(35)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Toaster", list[0].Name)

	// Dos criterios a la vez: ambos deben cumplirse
	list, err = uc.List(dto.ProductFilter{
		Name:  ptr("Kettle"),
		Price: ptr(decimal.NewFromFloat(24.99)),
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kettle", list[0].Name)
}

func TestProductUseCase_Delete(t *testing.T) {
	uc := newProductUC()
	created := createToaster(t, uc)

	require.NoError(t, uc.Delete(created.ID))
	got, err := uc.GetByID(created.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
