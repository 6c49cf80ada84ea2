package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/http/handlers"
	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Accounts       *handlers.AccountsHandler
	Profile        *handlers.ProfileHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Protected routes compose the credential
// verifier first, then (where required) the role gate; a failed stage
// short-circuits before the handler.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	app.Get("/me", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Profile.Me)
	app.Get("/profile", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleUser), cfg.Profile.Me)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/accounts", cfg.Accounts.List)
	admin.Get("/accounts/:id", cfg.Accounts.Get)
	admin.Patch("/accounts/:id/role", cfg.Accounts.UpdateRole)
	admin.Patch("/accounts/:id/status", cfg.Accounts.UpdateStatus)
	admin.Delete("/accounts/:id", cfg.Accounts.Delete)
}
