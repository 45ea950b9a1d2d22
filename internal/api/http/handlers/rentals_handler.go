package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/service"
)

// RentalsHandler exposes rental endpoints.
type RentalsHandler struct {
	rentals *service.RentalService
}

// NewRentalsHandler constructs handler.
func NewRentalsHandler(rentals *service.RentalService) *RentalsHandler {
	return &RentalsHandler{rentals: rentals}
}

// Create handles POST /rentals.
func (h *RentalsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ProductID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "productId required")
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid startDate")
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid endDate")
	}

	rental, err := h.rentals.Create(c.Context(), principal.SubjectID, req.ProductID, start, end)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": rentalJSON(*rental)})
}

// List handles GET /rentals.
func (h *RentalsHandler) List(c *fiber.Ctx) error {
	rentals, err := h.rentals.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]fiber.Map, 0, len(rentals))
	for _, r := range rentals {
		items = append(items, rentalJSON(r))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /rentals/:rentalId.
func (h *RentalsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "rentalId")
	if err != nil {
		return err
	}
	rental, err := h.rentals.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rentalJSON(*rental)})
}

// Update handles PUT /rentals/:rentalId.
func (h *RentalsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "rentalId")
	if err != nil {
		return err
	}

	var req dto.UpdateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	input := service.UpdateRentalInput{}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid startDate")
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid endDate")
		}
		input.EndDate = &end
	}
	if req.Status != nil {
		status := domain.RentalStatus(*req.Status)
		input.Status = &status
	}

	rental, err := h.rentals.Update(c.Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rentalJSON(*rental)})
}

func rentalJSON(r domain.Rental) fiber.Map {
	return fiber.Map{
		"id":         r.ID,
		"userId":     r.UserID,
		"productId":  r.ProductID,
		"startDate":  r.StartDate,
		"endDate":    r.EndDate,
		"status":     r.Status,
		"totalPrice": r.TotalPrice,
	}
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
