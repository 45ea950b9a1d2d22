package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/service"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Create(c.Context(), req.Email, req.Password, req.AcceptedPrivacyPolicy)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":                    user.ID,
			"email":                 user.Email,
			"acceptedPrivacyPolicy": user.PrivacyAccepted,
		},
	})
}

// Me handles GET /users/me, echoing the caller's verified claims.
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"subjectId": principal.SubjectID,
			"role":      principal.Role,
		},
	})
}

// DeleteMe handles DELETE /users/me.
func (h *UsersHandler) DeleteMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	if err := h.users.Delete(c.Context(), principal.SubjectID); err != nil {
		return err
	}
	c.Cookie(auth.ExpiredSessionCookie())
	return c.JSON(fiber.Map{"message": "account deleted"})
}
