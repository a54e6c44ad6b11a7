package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa el registro almacenado de un producto del catálogo.
// CreatedAt y UpdatedAt se estampan en UTC; al crear son el mismo instante
// y UpdatedAt se refresca con cada actualización parcial aplicada.
type Product struct {
	ID          string // UUID canónico
	Name        string
	Description string // opcional; vacío cuando el cliente no la envía
	Price       decimal.Decimal
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
