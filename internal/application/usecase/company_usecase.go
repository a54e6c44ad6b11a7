package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/filter"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas sobre el almacén inyectado.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa nueva. Genera UUID si el cliente no envía ID y
// estampa created_at y updated_at con el mismo instante UTC. Propaga
// domain.ErrDuplicate cuando el ID ya existe.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	id := uuid.New()
	if in.ID != nil {
		id = *in.ID
	}
	now := time.Now().UTC()
	company := &entity.Company{
		ID:        id.String(),
		Name:      *in.Name,
		Industry:  *in.Industry,
		Employees: *in.Employees,
		Phone:     *in.Phone,
		State:     *in.State,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// Update aplica un patch parcial sobre la empresa; updated_at se refresca
// solo si algún campo venía presente. Devuelve (nil, nil) si el ID no existe.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	touched := false
	if in.Name.Set {
		company.Name = in.Name.Value
		touched = true
	}
	if in.Industry.Set {
		company.Industry = in.Industry.Value
		touched = true
	}
	if in.Employees.Set {
		company.Employees = in.Employees.Value
		touched = true
	}
	if in.Phone.Set {
		company.Phone = in.Phone.Value
		touched = true
	}
	if in.State.Set {
		company.State = in.State.Value
		touched = true
	}
	if touched {
		company.UpdatedAt = time.Now().UTC()
		if err := uc.repo.Update(company); err != nil {
			return nil, err
		}
	}
	return toCompanyResponse(company), nil
}

// List devuelve las empresas que cumplen todos los criterios del filtro,
// en el orden de inserción del almacén.
func (uc *CompanyUseCase) List(f dto.CompanyFilter) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := filter.Companies(list, f)
	items := make([]dto.CompanyResponse, 0, len(filtered))
	for _, c := range filtered {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// Delete elimina una empresa por ID. Propaga domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Industry:  c.Industry,
		Employees: c.Employees,
		Phone:     c.Phone,
		State:     c.State,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
