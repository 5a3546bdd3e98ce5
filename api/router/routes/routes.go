package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/to-dy/pgapex-builder/api/handlers"
	"github.com/to-dy/pgapex-builder/api/router/routes/region"
)

func SetupRoutes(app *fiber.App, regionHandlers *handlers.RegionHandlers) {
	apiRoutes := app.Group("/api")

	apiRoutes.Get("/health", handlers.Health)

	region.SetupRegionRoutes(apiRoutes, regionHandlers)
}
