package entity

import "time"

// Company representa el registro almacenado de una empresa del catálogo.
type Company struct {
	ID        string // UUID canónico
	Name      string
	Industry  string
	Employees int
	Phone     string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
