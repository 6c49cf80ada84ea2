package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/domain"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// RequireRole gates a route on an exact role match. There is no hierarchy:
// admin does not implicitly satisfy a user requirement. Must run after the
// auth middleware; a missing identity fails closed rather than crashing.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		if identity.Role != required {
			return apperrors.NewForbidden("insufficient privilege")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a caller passed verification, any role.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return apperrors.NewUnauthenticated("authentication required")
		}
		return c.Next()
	}
}
