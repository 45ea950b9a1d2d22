package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shop-service/internal/domain"
)

// CartRepository defines persistence access for carts and their items.
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Cart, error)
	UpsertItem(ctx context.Context, cartID, productID, variantID int64) (*domain.CartItem, error)
	ListEntries(ctx context.Context, cartID int64) ([]domain.CartEntry, error)
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) GetOrCreate(ctx context.Context, userID int64) (*domain.Cart, error) {
	const query = `
        INSERT INTO carts (user_id) VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, created_at`

	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpsertItem inserts a line or bumps its quantity when the same
// product+variant is already in the cart.
func (r *cartRepository) UpsertItem(ctx context.Context, cartID, productID, variantID int64) (*domain.CartItem, error) {
	const query = `
        INSERT INTO cart_items (cart_id, product_id, variant_id, quantity)
        VALUES ($1, $2, $3, 1)
        ON CONFLICT (cart_id, product_id, variant_id)
        DO UPDATE SET quantity = cart_items.quantity + 1
        RETURNING id, cart_id, product_id, variant_id, quantity`

	var item domain.CartItem
	if err := r.pool.QueryRow(ctx, query, cartID, productID, variantID).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.VariantID,
		&item.Quantity,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) ListEntries(ctx context.Context, cartID int64) ([]domain.CartEntry, error) {
	const query = `
        SELECT ci.id, ci.cart_id, ci.product_id, ci.variant_id, ci.quantity,
               p.id, p.name, p.description, p.price, p.price_per_day, p.user_id, p.created_at, p.updated_at,
               v.id, v.product_id, v.size, v.color, v.stock, v.created_at
        FROM cart_items ci
        JOIN products p ON p.id = ci.product_id
        JOIN variants v ON v.id = ci.variant_id
        WHERE ci.cart_id=$1 ORDER BY ci.id ASC`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CartEntry
	for rows.Next() {
		var entry domain.CartEntry
		if err := rows.Scan(
			&entry.Item.ID,
			&entry.Item.CartID,
			&entry.Item.ProductID,
			&entry.Item.VariantID,
			&entry.Item.Quantity,
			&entry.Product.ID,
			&entry.Product.Name,
			&entry.Product.Description,
			&entry.Product.Price,
			&entry.Product.PricePerDay,
			&entry.Product.UserID,
			&entry.Product.CreatedAt,
			&entry.Product.UpdatedAt,
			&entry.Variant.ID,
			&entry.Variant.ProductID,
			&entry.Variant.Size,
			&entry.Variant.Color,
			&entry.Variant.Stock,
			&entry.Variant.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
