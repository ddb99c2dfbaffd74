package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/animal-catalog/internal/api/http/handlers"
	"github.com/spec-kit/animal-catalog/internal/auth"
	"github.com/spec-kit/animal-catalog/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)
	api.Post("/customers/register", cfg.Auth.Register)

	api.Get("/session", cfg.AuthMiddleware.Handle, auth.RequireAnyRole(), cfg.Auth.Session)
	api.Get("/admin/session", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Auth.Session)

	api.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
