package handlers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/service"
)

// ProductsHandler exposes catalog endpoints.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// Create handles POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	input := service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PricePerDay: req.PricePerDay,
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.VariantInput{Size: v.Size, Color: v.Color, Stock: v.Stock})
	}

	detail, err := h.products.Create(c.Context(), principal.SubjectID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": productJSON(*detail)})
}

// List handles GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	details, err := h.products.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]fiber.Map, 0, len(details))
	for _, d := range details {
		items = append(items, productJSON(d))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /products/:productId.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	detail, err := h.products.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productJSON(*detail)})
}

// Update handles PATCH /products/:productId.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.products.Update(c.Context(), id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PricePerDay: req.PricePerDay,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productJSON(service.ProductDetail{Product: *product})})
}

// Delete handles DELETE /products/:productId.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	if err := h.products.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "product deleted"})
}

// AddVariant handles POST /products/:productId/variants.
func (h *ProductsHandler) AddVariant(c *fiber.Ctx) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var req dto.VariantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	variant, err := h.products.AddVariant(c.Context(), id, service.VariantInput{
		Size:  req.Size,
		Color: req.Color,
		Stock: req.Stock,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": variantJSON(*variant)})
}

// ListVariants handles GET /products/:productId/variants.
func (h *ProductsHandler) ListVariants(c *fiber.Ctx) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	variants, err := h.products.Variants(c.Context(), id)
	if err != nil {
		return err
	}
	items := make([]fiber.Map, 0, len(variants))
	for _, v := range variants {
		items = append(items, variantJSON(v))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetVariant handles GET /variants/:variantId.
func (h *ProductsHandler) GetVariant(c *fiber.Ctx) error {
	id, err := pathID(c, "variantId")
	if err != nil {
		return err
	}
	variant, err := h.products.GetVariant(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": variantJSON(*variant)})
}

// UpdateVariant handles PATCH /variants/:variantId.
func (h *ProductsHandler) UpdateVariant(c *fiber.Ctx) error {
	id, err := pathID(c, "variantId")
	if err != nil {
		return err
	}

	var req dto.UpdateVariantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	variant, err := h.products.UpdateVariant(c.Context(), id, service.UpdateVariantInput{
		Size:  req.Size,
		Color: req.Color,
		Stock: req.Stock,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": variantJSON(*variant)})
}

// DeleteVariant handles DELETE /variants/:variantId.
func (h *ProductsHandler) DeleteVariant(c *fiber.Ctx) error {
	id, err := pathID(c, "variantId")
	if err != nil {
		return err
	}
	if err := h.products.DeleteVariant(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "variant deleted"})
}

// UploadImage handles POST /products/:productId/image. JPEG only, capped by
// configuration, stored on disk keyed by product id.
func (h *ProductsHandler) UploadImage(c *fiber.Ctx) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	if _, err := h.products.Get(c.Context(), id); err != nil {
		return err
	}

	file, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "image file required")
	}
	if file.Size > h.products.MaxImageBytes() {
		return fiber.NewError(http.StatusBadRequest, "image too large")
	}
	contentType := file.Header.Get("Content-Type")
	name := strings.ToLower(file.Filename)
	if contentType != "image/jpeg" && !strings.HasSuffix(name, ".jpg") && !strings.HasSuffix(name, ".jpeg") {
		return fiber.NewError(http.StatusBadRequest, "only jpeg images accepted")
	}

	if err := c.SaveFile(file, h.products.ImagePath(id)); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"id": id}})
}

// GetImage handles GET /products/:productId/image.
func (h *ProductsHandler) GetImage(c *fiber.Ctx) error {
	id, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	path := h.products.ImagePath(id)
	if _, err := os.Stat(path); err != nil {
		return fiber.NewError(http.StatusNotFound, "image not found")
	}
	return c.SendFile(path)
}

func productJSON(d service.ProductDetail) fiber.Map {
	m := fiber.Map{
		"id":          d.Product.ID,
		"name":        d.Product.Name,
		"description": d.Product.Description,
		"price":       d.Product.Price,
		"imageExists": d.ImageExists,
		"createdAt":   d.Product.CreatedAt,
		"updatedAt":   d.Product.UpdatedAt,
	}
	if d.Product.PricePerDay != nil {
		m["pricePerDay"] = *d.Product.PricePerDay
	}
	if d.Variants != nil {
		items := make([]fiber.Map, 0, len(d.Variants))
		for _, v := range d.Variants {
			items = append(items, variantJSON(v))
		}
		m["variants"] = items
	}
	return m
}

func variantJSON(v domain.Variant) fiber.Map {
	return fiber.Map{
		"id":        v.ID,
		"productId": v.ProductID,
		"size":      v.Size,
		"color":     v.Color,
		"stock":     v.Stock,
	}
}

// pathID parses a positive integer path parameter.
func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return int64(id), nil
}
