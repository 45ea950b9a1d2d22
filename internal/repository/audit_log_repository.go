package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shop-service/internal/domain"
)

// AuditLogRepository stores audit records. Records are append-only.
type AuditLogRepository interface {
	Create(ctx context.Context, record *domain.AuditLog) error
	List(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

type auditLogRepository struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepository builds repository.
func NewAuditLogRepository(pool *pgxpool.Pool) AuditLogRepository {
	return &auditLogRepository{pool: pool}
}

func (r *auditLogRepository) Create(ctx context.Context, record *domain.AuditLog) error {
	const query = `
        INSERT INTO audit_logs (action, actor_id, product_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		record.Action,
		record.ActorID,
		record.ProductID,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *auditLogRepository) List(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
        SELECT id, action, actor_id, product_id, created_at
        FROM audit_logs ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AuditLog
	for rows.Next() {
		var record domain.AuditLog
		if err := rows.Scan(
			&record.ID,
			&record.Action,
			&record.ActorID,
			&record.ProductID,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
