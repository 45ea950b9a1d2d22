package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// CreateProductInput carries a new catalog entry with its initial variants.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	PricePerDay *float64
	Variants    []VariantInput
}

// VariantInput describes one size/color/stock combination.
type VariantInput struct {
	Size  string
	Color string
	Stock int
}

// UpdateProductInput patches product fields; nil means "leave unchanged".
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	PricePerDay *float64
}

// UpdateVariantInput patches variant fields; nil means "leave unchanged".
type UpdateVariantInput struct {
	Size  *string
	Color *string
	Stock *int
}

// ProductDetail is a product together with presentation metadata.
type ProductDetail struct {
	Product     domain.Product
	Variants    []domain.Variant
	ImageExists bool
}

// CatalogStats aggregates dashboard counters.
type CatalogStats struct {
	TotalProducts int64 `json:"totalProducts"`
	TotalVariants int64 `json:"totalVariants"`
}

// ProductService manages the catalog: products, variants, and their images.
type ProductService struct {
	products repository.ProductRepository
	variants repository.VariantRepository
	upload   config.UploadConfig
}

// NewProductService builds the service and makes sure the image directory
// exists.
func NewProductService(products repository.ProductRepository, variants repository.VariantRepository, upload config.UploadConfig) *ProductService {
	_ = os.MkdirAll(upload.Dir, 0o755)
	return &ProductService{products: products, variants: variants, upload: upload}
}

// Create stores a product and its initial variants.
func (s *ProductService) Create(ctx context.Context, userID int64, input CreateProductInput) (*ProductDetail, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	if input.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		PricePerDay: input.PricePerDay,
		UserID:      userID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	created := make([]domain.Variant, 0, len(input.Variants))
	for _, v := range input.Variants {
		variant := &domain.Variant{
			ProductID: product.ID,
			Size:      v.Size,
			Color:     v.Color,
			Stock:     v.Stock,
		}
		if err := s.variants.Create(ctx, variant); err != nil {
			return nil, err
		}
		created = append(created, *variant)
	}

	return &ProductDetail{Product: *product, Variants: created, ImageExists: false}, nil
}

// List returns all products with their image flag.
func (s *ProductService) List(ctx context.Context) ([]ProductDetail, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]ProductDetail, 0, len(products))
	for _, p := range products {
		result = append(result, ProductDetail{Product: p, ImageExists: s.imageExists(p.ID)})
	}
	return result, nil
}

// Get returns one product with variants and image flag.
func (s *ProductService) Get(ctx context.Context, id int64) (*ProductDetail, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", map[string]any{"product_id": id})
		}
		return nil, err
	}
	variants, err := s.variants.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: *product, Variants: variants, ImageExists: s.imageExists(id)}, nil
}

// Update patches a product.
func (s *ProductService) Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", map[string]any{"product_id": id})
		}
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.PricePerDay != nil {
		product.PricePerDay = input.PricePerDay
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product, its variants, and its stored image.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("product", map[string]any{"product_id": id})
		}
		return err
	}
	_ = os.Remove(s.ImagePath(id))
	return nil
}

// AddVariant attaches a new variant to an existing product.
func (s *ProductService) AddVariant(ctx context.Context, productID int64, input VariantInput) (*domain.Variant, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", map[string]any{"product_id": productID})
		}
		return nil, err
	}
	variant := &domain.Variant{
		ProductID: productID,
		Size:      input.Size,
		Color:     input.Color,
		Stock:     input.Stock,
	}
	if err := s.variants.Create(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// Variants lists all variants of a product.
func (s *ProductService) Variants(ctx context.Context, productID int64) ([]domain.Variant, error) {
	return s.variants.ListByProduct(ctx, productID)
}

// GetVariant loads a variant by id.
func (s *ProductService) GetVariant(ctx context.Context, id int64) (*domain.Variant, error) {
	variant, err := s.variants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("variant", map[string]any{"variant_id": id})
		}
		return nil, err
	}
	return variant, nil
}

// UpdateVariant patches a variant.
func (s *ProductService) UpdateVariant(ctx context.Context, id int64, input UpdateVariantInput) (*domain.Variant, error) {
	variant, err := s.GetVariant(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Size != nil {
		variant.Size = *input.Size
	}
	if input.Color != nil {
		variant.Color = *input.Color
	}
	if input.Stock != nil {
		variant.Stock = *input.Stock
	}
	if err := s.variants.Update(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes a variant.
func (s *ProductService) DeleteVariant(ctx context.Context, id int64) error {
	if err := s.variants.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("variant", map[string]any{"variant_id": id})
		}
		return err
	}
	return nil
}

// Stats returns dashboard counters.
func (s *ProductService) Stats(ctx context.Context) (*CatalogStats, error) {
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalVariants, err := s.variants.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &CatalogStats{TotalProducts: totalProducts, TotalVariants: totalVariants}, nil
}

// ImagePath returns where the product's JPEG lives on disk.
func (s *ProductService) ImagePath(productID int64) string {
	return filepath.Join(s.upload.Dir, fmt.Sprintf("%d.jpg", productID))
}

// MaxImageBytes is the upload size cap.
func (s *ProductService) MaxImageBytes() int64 {
	return s.upload.MaxBytes
}

func (s *ProductService) imageExists(productID int64) bool {
	_, err := os.Stat(s.ImagePath(productID))
	return err == nil
}
