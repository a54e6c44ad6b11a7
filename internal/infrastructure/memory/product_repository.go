// Package memory implementa los puertos de persistencia sobre mapas en
// memoria protegidos por mutex. El estado vive solo durante el proceso:
// reiniciar el servidor descarta todos los registros.
package memory

import (
	"sync"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository en memoria.
// Guarda y devuelve copias por valor: el almacén es el único dueño de sus
// registros y ningún llamador puede mutar el estado interno vía punteros.
type ProductRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Product
	order []string // IDs en orden de inserción
}

// NewProductRepository construye el adaptador de persistencia en memoria para productos.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[string]entity.Product)}
}

// Create inserta un producto nuevo. Devuelve domain.ErrDuplicate si el ID ya
// existe; en ese caso el registro previo queda intacto.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[product.ID]; exists {
		return domain.ErrDuplicate
	}
	r.items[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.items[id]
		list = append(list, &p)
	}
	return list, nil
}

// Update reemplaza el registro completo. Devuelve domain.ErrNotFound si el ID no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[product.ID] = *product
	return nil
}

// Delete elimina un producto por ID. Devuelve domain.ErrNotFound si el ID no existe.
func (r *ProductRepo) Delete(id string) error {
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
