package router

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/to-dy/pgapex-builder/api/handlers"
	"github.com/to-dy/pgapex-builder/api/pages/navigationregion"
	"github.com/to-dy/pgapex-builder/api/router/routes"
)

func NewApp(deps navigationregion.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "pgapex-builder",
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	// server logging
	app.Use(logger.New())
	app.Use(requestScope)

	routes.SetupRoutes(app, handlers.NewRegionHandlers(deps))

	return app
}

// requestScope cancels the user context once the request is answered, so
// page loaders still running at that point stop writing.
func requestScope(c *fiber.Ctx) error {
	parent := c.UserContext()
	ctx, cancel := context.WithCancel(parent)
	defer func() {
		cancel()
		c.SetUserContext(parent)
	}()

	c.SetUserContext(ctx)
	return c.Next()
}

// SetupServer serves the builder API on addr until the listener fails.
func SetupServer(addr string, deps navigationregion.Deps) error {
	return NewApp(deps).Listen(addr)
}
