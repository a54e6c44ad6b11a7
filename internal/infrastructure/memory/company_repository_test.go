package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

func newCompany(id, name string) *entity.Company {
	return &entity.Company{
		ID:        id,
		Name:      name,
		Industry:  "software",
		Employees: 10,
		Phone:     "+57 601 5551234",
		State:     "Cundinamarca",
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
}

// El almacén de empresas cumple el mismo contrato que el de productos;
// aquí se cubre el ciclo completo sobre sus propios campos.
func TestCompanyRepo_CicloCRUD(t *testing.T) {
	repo := memory.NewCompanyRepository()

	require.NoError(t, repo.Create(newCompany("c-001", "Acme")))
	assert.ErrorIs(t, repo.Create(newCompany("c-001", "Clon")), domain.ErrDuplicate)

	got, err := repo.GetByID("c-001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, 10, got.Employees)

	got.Employees = 11
	got.UpdatedAt = baseTime.Add(time.Minute)
	require.NoError(t, repo.Update(got))
	again, _ := repo.GetByID("c-001")
	assert.Equal(t, 11, again.Employees)

	require.NoError(t, repo.Delete("c-001"))
	gone, err := repo.GetByID("c-001")
	assert.NoError(t, err)
	assert.Nil(t, gone)
	assert.ErrorIs(t, repo.Delete("c-001"), domain.ErrNotFound)
}

func TestCompanyRepo_ListaOrdenDeInsercion(t *testing.T) {
	repo := memory.NewCompanyRepository()
	for _, id := range []string{"c-a", "c-b", "c-c"} {
		require.NoError(t, repo.Create(newCompany(id, id)))
	}

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c-a", list[0].ID)
	assert.Equal(t, "c-c", list[2].ID)

	// Las copias del listado no comparten memoria con el almacén
	list[1].Name = "mutada"
	again, _ := repo.GetByID("c-b")
	assert.Equal(t, "c-b", again.Name)
}
