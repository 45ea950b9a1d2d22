package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shop-service/internal/domain"
)

// VariantRepository defines persistence access for product variants.
type VariantRepository interface {
	Create(ctx context.Context, variant *domain.Variant) error
	Update(ctx context.Context, variant *domain.Variant) error
	GetByID(ctx context.Context, id int64) (*domain.Variant, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Variant, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type variantRepository struct {
	pool *pgxpool.Pool
}

// NewVariantRepository returns a Postgres-backed implementation.
func NewVariantRepository(pool *pgxpool.Pool) VariantRepository {
	return &variantRepository{pool: pool}
}

func (r *variantRepository) Create(ctx context.Context, variant *domain.Variant) error {
	const query = `
        INSERT INTO variants (product_id, size, color, stock)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		variant.ProductID,
		variant.Size,
		variant.Color,
		variant.Stock,
	).Scan(&variant.ID, &variant.CreatedAt)
}

func (r *variantRepository) Update(ctx context.Context, variant *domain.Variant) error {
	const query = `
        UPDATE variants SET size=$1, color=$2, stock=$3 WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query, variant.Size, variant.Color, variant.Stock, variant.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *variantRepository) GetByID(ctx context.Context, id int64) (*domain.Variant, error) {
	const query = `
        SELECT id, product_id, size, color, stock, created_at
        FROM variants WHERE id=$1`

	var variant domain.Variant
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&variant.ID,
		&variant.ProductID,
		&variant.Size,
		&variant.Color,
		&variant.Stock,
		&variant.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.Variant, error) {
	const query = `
        SELECT id, product_id, size, color, stock, created_at
        FROM variants WHERE product_id=$1 ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Variant
	for rows.Next() {
		var variant domain.Variant
		if err := rows.Scan(
			&variant.ID,
			&variant.ProductID,
			&variant.Size,
			&variant.Color,
			&variant.Stock,
			&variant.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, variant)
	}
	return result, rows.Err()
}

func (r *variantRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM variants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *variantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM variants`).Scan(&count)
	return count, err
}
