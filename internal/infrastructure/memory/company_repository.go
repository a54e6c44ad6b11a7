package memory

import (
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository en memoria.
// Mismo esquema que ProductRepo: copias por valor bajo RWMutex.
type CompanyRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Company
	order []string // IDs en orden de inserción
}

// NewCompanyRepository construye el adaptador de persistencia en memoria para empresas.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{items: make(map[string]entity.Company)}
}

// Create inserta una empresa nueva. Devuelve domain.ErrDuplicate si el ID ya existe.
func (r *CompanyRepo) Create(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[company.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[company.ID] = *company
	r.order = append(r.order, company.ID)
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List devuelve todas las empresas en orden de inserción.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Company, 0, len(r.order))
	for _, id := range r.order {
		c := r.items[id]
		list = append(list, &c)
	}
	return list, nil
}

// Update reemplaza el registro completo. Devuelve domain.ErrNotFound si el ID no existe.
func (r *CompanyRepo) Update(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[company.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[company.ID] = *company
	return nil
}

// Delete elimina una empresa por ID. Devuelve domain.ErrNotFound si el ID no existe.
func (r *CompanyRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
