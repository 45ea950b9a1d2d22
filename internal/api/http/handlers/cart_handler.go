package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/service"
)

// CartHandler exposes shopping cart endpoints.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get handles GET /cart.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	view, err := h.carts.Get(c.Context(), principal.SubjectID)
	if err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(view.Entries))
	for _, entry := range view.Entries {
		items = append(items, fiber.Map{
			"id":       entry.Item.ID,
			"quantity": entry.Item.Quantity,
			"product":  productSummaryJSON(entry.Product),
			"variant":  variantJSON(entry.Variant),
		})
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"id":    view.Cart.ID,
			"items": items,
		},
	})
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ProductID <= 0 || req.VariantID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "productId and variantId required")
	}

	item, err := h.carts.AddItem(c.Context(), principal.SubjectID, req.ProductID, req.VariantID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":        item.ID,
			"productId": item.ProductID,
			"variantId": item.VariantID,
			"quantity":  item.Quantity,
		},
	})
}

func productSummaryJSON(p domain.Product) fiber.Map {
	return fiber.Map{
		"id":    p.ID,
		"name":  p.Name,
		"price": p.Price,
	}
}
