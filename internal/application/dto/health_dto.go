package dto

import "time"

// HealthResponse estado del proceso para los endpoints de salud.
// Echo siempre aparece (null si el cliente no mandó ?echo=); PathEcho solo
// aparece en la variante con segmento de ruta.
type HealthResponse struct {
	Status        int       `json:"status"`
	StatusMessage string    `json:"status_message"`
	Timestamp     time.Time `json:"timestamp"`
	IPAddress     string    `json:"ip_address"`
	Echo          *string   `json:"echo"`
	PathEcho      *string   `json:"path_echo,omitempty"`
}
