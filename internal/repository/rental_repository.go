package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shop-service/internal/domain"
)

// RentalRepository defines persistence access for rentals.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	Update(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
}

type rentalRepository struct {
	pool *pgxpool.Pool
}

// NewRentalRepository returns a Postgres-backed implementation.
func NewRentalRepository(pool *pgxpool.Pool) RentalRepository {
	return &rentalRepository{pool: pool}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	const query = `
        INSERT INTO rentals (user_id, product_id, start_date, end_date, status, total_price)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		rental.UserID,
		rental.ProductID,
		rental.StartDate,
		rental.EndDate,
		rental.Status,
		rental.TotalPrice,
	).Scan(&rental.ID, &rental.CreatedAt)
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	const query = `
        UPDATE rentals SET start_date=$1, end_date=$2, status=$3, total_price=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		rental.StartDate,
		rental.EndDate,
		rental.Status,
		rental.TotalPrice,
		rental.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	const query = `
        SELECT id, user_id, product_id, start_date, end_date, status, total_price, created_at
        FROM rentals WHERE id=$1`

	var rental domain.Rental
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&rental.ID,
		&rental.UserID,
		&rental.ProductID,
		&rental.StartDate,
		&rental.EndDate,
		&rental.Status,
		&rental.TotalPrice,
		&rental.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	const query = `
        SELECT id, user_id, product_id, start_date, end_date, status, total_price, created_at
        FROM rentals ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Rental
	for rows.Next() {
		var rental domain.Rental
		if err := rows.Scan(
			&rental.ID,
			&rental.UserID,
			&rental.ProductID,
			&rental.StartDate,
			&rental.EndDate,
			&rental.Status,
			&rental.TotalPrice,
			&rental.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rental)
	}
	return result, rows.Err()
}
