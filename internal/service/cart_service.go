package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// CartView is a cart with its resolved lines.
type CartView struct {
	Cart    domain.Cart
	Entries []domain.CartEntry
}

// CartService manages per-user shopping carts.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	variants repository.VariantRepository
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, variants repository.VariantRepository) *CartService {
	return &CartService{carts: carts, products: products, variants: variants}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(ctx context.Context, userID int64) (*CartView, error) {
	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.carts.ListEntries(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	return &CartView{Cart: *cart, Entries: entries}, nil
}

// AddItem puts one unit of a product variant into the user's cart. Adding
// the same product+variant again increments the line's quantity.
func (s *CartService) AddItem(ctx context.Context, userID, productID, variantID int64) (*domain.CartItem, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", map[string]any{"product_id": productID})
		}
		return nil, err
	}
	variant, err := s.variants.GetByID(ctx, variantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("variant", map[string]any{"variant_id": variantID})
		}
		return nil, err
	}
	if variant.ProductID != productID {
		return nil, apperrors.NewValidationError("variant does not belong to product", map[string]any{
			"product_id": productID,
			"variant_id": variantID,
		})
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.carts.UpsertItem(ctx, cart.ID, productID, variantID)
}
