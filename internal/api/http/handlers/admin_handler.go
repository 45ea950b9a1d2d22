package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/service"
)

// AdminHandler exposes dashboard endpoints.
type AdminHandler struct {
	products *service.ProductService
	audit    *service.AuditService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(products *service.ProductService, audit *service.AuditService) *AdminHandler {
	return &AdminHandler{products: products, audit: audit}
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.products.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// AuditLogs handles GET /admin/audit-logs.
func (h *AdminHandler) AuditLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	records, err := h.audit.List(c.Context(), limit)
	if err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		item := fiber.Map{
			"id":        r.ID,
			"action":    r.Action,
			"actorId":   r.ActorID,
			"createdAt": r.CreatedAt,
		}
		if r.ProductID != nil {
			item["productId"] = *r.ProductID
		}
		items = append(items, item)
	}
	return c.JSON(fiber.Map{"data": items})
}
