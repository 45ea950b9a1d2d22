package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/service"
)

type loginFunc func(ctx context.Context, email, password string) (*service.LoginResult, error)

// AuthHandler exposes the login endpoints. Successful logins answer with the
// claim payload only; the signed token travels exclusively in the cookie.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, h.auth.Login)
}

// AdminLogin handles POST /auth/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, h.auth.AdminLogin)
}

func (h *AuthHandler) login(c *fiber.Ctx, verify loginFunc) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := verify(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(auth.SessionCookie(result.Token, result.TTL))
	return c.JSON(fiber.Map{
		"message":      "login successful",
		"tokenPayload": result.Payload,
	})
}

// Logout handles POST /auth/logout by discarding the session cookie. Tokens
// are stateless, so the already-issued token stays valid until its expiry.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(auth.ExpiredSessionCookie())
	return c.JSON(fiber.Map{"message": "logged out"})
}
