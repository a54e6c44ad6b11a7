package dto

import "encoding/json"

// Optional distingue los tres estados de un campo JSON en un patch parcial:
// ausente (Set=false), null explícito (Set=true, Valid=false) y valor presente
// (Set=true, Valid=true). Un campo ausente nunca toca el registro almacenado.
type Optional[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON marca presencia; encoding/json no lo invoca para campos ausentes.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// MarshalJSON emite null cuando el valor está ausente o es null explícito.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
