package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/domain"
)

// RequireAuthenticated rejects anonymous requests.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}

// RequireAdmin allows only ADMIN and SUPERADMIN principals.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if !principal.Role.IsAdmin() {
			return fiber.NewError(http.StatusForbidden, "administrator access required")
		}
		return c.Next()
	}
}

// RequireSuperAdmin allows only the SUPERADMIN role.
func RequireSuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if principal.Role != domain.RoleSuperAdmin {
			return fiber.NewError(http.StatusForbidden, "administrator access required")
		}
		return c.Next()
	}
}
