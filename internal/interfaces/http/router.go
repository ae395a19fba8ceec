package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rations-api/internal/application/usecase"
	"github.com/jhoicas/rations-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlimentUC *usecase.AlimentUseCase
	RationUC  *usecase.RationUseCase
	Adapter   *storage.Adapter
}

// Router registra las rutas de la API. Toda la aplicación es local y de un
// solo usuario: no hay autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.Adapter))

	api := app.Group("/api")

	// Vista compuesta (catálogo + personalizados)
	aliments := api.Group("/aliments")
	alimentHandler := NewAlimentHandler(deps.AlimentUC)
	aliments.Get("/", alimentHandler.List)
	aliments.Get("/count", alimentHandler.Count)
	aliments.Get("/:id", alimentHandler.GetByID)

	// CRUD de alimentos personalizados
	custom := api.Group("/custom-aliments")
	custom.Post("/", alimentHandler.Create)
	custom.Put("/:id", alimentHandler.Update)
	custom.Delete("/:id", alimentHandler.Delete)

	// Registro de raciones
	rations := api.Group("/rations")
	rationHandler := NewRationHandler(deps.RationUC)
	rations.Get("/", rationHandler.List)
	rations.Post("/", rationHandler.Create)
	rations.Get("/:id", rationHandler.GetByID)
	rations.Delete("/:id", rationHandler.Delete)
}

// Health devuelve el estado del proceso y la disponibilidad del medio de
// almacenamiento (sondeada, no cacheada).
func Health(adapter *storage.Adapter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":           "ok",
			"storageAvailable": adapter.IsAvailable(),
		})
	}
}
