package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	SubjectID int64
	Role      domain.Role
}

// Middleware resolves the session cookie into a request principal.
type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: logger}
}

// Authenticate reads the Authentication cookie and attaches the verified
// claims to the request. A missing, malformed, expired, or badly signed
// token leaves the request anonymous; route guards decide whether anonymous
// is acceptable. Nothing here ever fails the request itself.
func (m *Middleware) Authenticate(c *fiber.Ctx) error {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return c.Next()
	}

	claims, err := m.tokens.Verify(raw)
	if err != nil {
		m.logger.Debug("rejected session token", zap.Error(err))
		return c.Next()
	}

	c.Locals(principalKey, &Principal{SubjectID: claims.SubjectID, Role: claims.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
