package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Mismo contrato de errores que
// ProductRepository: ErrDuplicate en Create, ErrNotFound en Update/Delete,
// (nil, nil) en GetByID sin registro.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error
}
