package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/loads-service/internal/api/http/handlers"
	"github.com/spec-kit/loads-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Loads          *handlers.LoadsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads on the load collection are public;
// every mutation sits behind the authorization gate, including the password
// update the original service left open.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Loads API")
	})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Put("/update", cfg.AuthMiddleware.Handle, cfg.Auth.UpdatePassword)

	loads := app.Group("/loads")
	loads.Get("/", cfg.Loads.List)
	loads.Get("/:id", cfg.Loads.Get)
	loads.Post("/", cfg.AuthMiddleware.Handle, cfg.Loads.Create)
	loads.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Loads.Update)
	loads.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Loads.Delete)
}
