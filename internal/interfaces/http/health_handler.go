package http

import (
	"net"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// HealthHandler reporta el estado del proceso. No guarda estado: cada
// petición estampa su propio timestamp UTC y resuelve la dirección del host.
type HealthHandler struct{}

// NewHealthHandler construye el handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Get godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Param        echo  query  string  false  "Cadena opcional devuelta en el campo echo"
// @Success      200   {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.report(c, nil))
}

// GetWithPath godoc
// @Summary      Estado del servicio con eco de ruta
// @Tags         health
// @Produce      json
// @Param        path_echo  path   string  true   "Cadena devuelta en el campo path_echo"
// @Param        echo       query  string  false  "Cadena opcional devuelta en el campo echo"
// @Success      200  {object}  dto.HealthResponse
// @Router       /health/{path_echo} [get]
func (h *HealthHandler) GetWithPath(c *fiber.Ctx) error {
	pathEcho := c.Params("path_echo")
	return c.JSON(h.report(c, &pathEcho))
}

func (h *HealthHandler) report(c *fiber.Ctx, pathEcho *string) dto.HealthResponse {
	var echo *string
	if c.Context().QueryArgs().Has("echo") {
		v := c.Query("echo")
		echo = &v
	}
	return dto.HealthResponse{
		Status:        fiber.StatusOK,
		StatusMessage: "OK",
		Timestamp:     time.Now().UTC(),
		IPAddress:     hostIPv4(),
		Echo:          echo,
		PathEcho:      pathEcho,
	}
}

// hostIPv4 resuelve el hostname del proceso a su dirección IPv4. Si la
// resolución falla (DNS restringido en contenedores o sandboxes) responde
// con la dirección de loopback en lugar de fallar la petición.
func hostIPv4() string {
	host, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return "127.0.0.1"
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return "127.0.0.1"
}
