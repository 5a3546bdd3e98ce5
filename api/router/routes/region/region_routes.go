package region

import (
	"github.com/gofiber/fiber/v2"

	"github.com/to-dy/pgapex-builder/api/handlers"
)

func SetupRegionRoutes(router fiber.Router, h *handlers.RegionHandlers) {
	regionRouter := router.Group("/application-builder/app/:applicationId/pages/:pageId/regions/:displayPoint/navigation")

	regionRouter.Get("/create", h.ShowNavigationRegion)
	regionRouter.Post("/create", h.SaveNavigationRegion)

	regionRouter.Get("/:regionId/edit", h.ShowNavigationRegion)
	regionRouter.Post("/:regionId/edit", h.SaveNavigationRegion)
}
