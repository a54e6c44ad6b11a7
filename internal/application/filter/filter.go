// Package filter aplica criterios de igualdad exacta sobre listas de
// entidades. Funciones puras: AND lógico entre los criterios presentes,
// sin criterios se devuelve la lista completa y sin coincidencias una
// lista vacía; nunca hay error.
package filter

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Products filtra productos preservando el orden de la lista de entrada.
// La igualdad de precio es numérica (2.50 coincide con 2.5).
func Products(list []*entity.Product, f dto.ProductFilter) []*entity.Product {
	result := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if f.Name != nil && p.Name != *f.Name {
			continue
		}
		if f.Description != nil && p.Description != *f.Description {
			continue
		}
		if f.Price != nil && !p.Price.Equal(*f.Price) {
			continue
		}
		if f.Quantity != nil && p.Quantity != *f.Quantity {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Companies filtra empresas preservando el orden de la lista de entrada.
func Companies(list []*entity.Company, f dto.CompanyFilter) []*entity.Company {
	result := make([]*entity.Company, 0, len(list))
	for _, c := range list {
		if f.Name != nil && c.Name != *f.Name {
			continue
		}
		if f.Industry != nil && c.Industry != *f.Industry {
			continue
		}
		if f.Employees != nil && c.Employees != *f.Employees {
			continue
		}
		if f.Phone != nil && c.Phone != *f.Phone {
			continue
		}
		if f.State != nil && c.State != *f.State {
			continue
		}
		result = append(result, c)
	}
	return result
}
