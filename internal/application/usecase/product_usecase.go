package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/filter"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos sobre el almacén inyectado.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. Si el cliente no envía ID se genera un UUID;
// created_at y updated_at reciben el mismo instante UTC. Propaga
// domain.ErrDuplicate cuando el ID ya existe.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	id := uuid.New()
	if in.ID != nil {
		id = *in.ID
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          id.String(),
		Name:        *in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update aplica un patch parcial: solo los campos presentes en la petición
// tocan el registro y updated_at se refresca si al menos uno venía presente
// (un cuerpo vacío es un no-op que devuelve el registro tal cual).
// Devuelve (nil, nil) si el ID no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	touched := false
	if in.Name.Set {
		product.Name = in.Name.Value
		touched = true
	}
	if in.Description.Set {
		// null explícito limpia la descripción (Value queda en cadena vacía)
		product.Description = in.Description.Value
		touched = true
	}
	if in.Price.Set {
		product.Price = in.Price.Value
		touched = true
	}
	if in.Quantity.Set {
		product.Quantity = in.Quantity.Value
		touched = true
	}
	if touched {
		product.UpdatedAt = time.Now().UTC()
		if err := uc.repo.Update(product); err != nil {
			return nil, err
		}
	}
	return toProductResponse(product), nil
}

// List devuelve los productos que cumplen todos los criterios del filtro,
// en el orden de inserción del almacén.
func (uc *ProductUseCase) List(f dto.ProductFilter) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := filter.Products(list, f)
	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID. Propaga domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
