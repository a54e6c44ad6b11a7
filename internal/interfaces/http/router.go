package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	CompanyUC *usecase.CompanyUseCase
}

// Router registra las rutas de la API. El contrato original expone la
// creación en la ruta singular (/product, /company) y la lectura en la
// plural; el listado responde también en la singular por compatibilidad.
func Router(app *fiber.App, deps RouterDeps) {
	// Raíz: bienvenida apuntando a la documentación generada.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Bienvenido a Catálogo API (productos y empresas en memoria). La documentación OpenAPI está en /docs.",
		})
	})

	// Health (público, sin estado)
	healthHandler := NewHealthHandler()
	app.Get("/health", healthHandler.Get)
	app.Get("/health/:path_echo", healthHandler.GetWithPath)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	app.Post("/product", productHandler.Create)
	app.Get("/product", productHandler.List)
	app.Get("/products", productHandler.List)
	app.Get("/products/:id", productHandler.GetByID)
	app.Patch("/products/:id", productHandler.Update)
	app.Delete("/products/:id", productHandler.Delete)

	// Companies
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	app.Post("/company", companyHandler.Create)
	app.Get("/company", companyHandler.List)
	app.Get("/companies", companyHandler.List)
	app.Get("/companies/:id", companyHandler.GetByID)
	app.Patch("/companies/:id", companyHandler.Update)
	app.Delete("/companies/:id", companyHandler.Delete)
}

// parseID valida y canoniza el parámetro de ruta :id. Cualquier forma válida
// de UUID se normaliza a la canónica en minúsculas antes de tocar el almacén.
func parseID(c *fiber.Ctx) (string, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", false
	}
	return id.String(), true
}
