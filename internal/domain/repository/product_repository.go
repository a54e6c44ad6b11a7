package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Contrato de errores: Create devuelve domain.ErrDuplicate si el ID ya existe;
// Update y Delete devuelven domain.ErrNotFound si el ID no existe;
// GetByID devuelve (nil, nil) cuando no hay registro.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
