// Package bookings provides PostgreSQL-backed storage for appointment bookings.
package bookings

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookings/internal/dbx"
	"github.com/dmitrijs2005/bookings/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a booking and fills in the store-assigned ID and creation time.
func (r *PostgresRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query :=
		`INSERT INTO bookings (service, scheduled_at)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, booking.Service, booking.ScheduledAt).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return booking, nil
}

// FindByIDs returns all bookings whose id is in ids, in a single query.
// The ids travel as one text[] parameter, so the batch size is not bounded by
// the bind parameter limit. Ids without a matching row are simply absent from
// the result.
func (r *PostgresRepository) FindByIDs(ctx context.Context, ids []string) ([]*models.Booking, error) {
	if len(ids) == 0 {
		return []*models.Booking{}, nil
	}

	query :=
		`SELECT id, service, scheduled_at, created_at FROM bookings
		 WHERE id = ANY($1)
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to select bookings: %w", err)
	}
	defer rows.Close()

	result := []*models.Booking{}
	for rows.Next() {
		var item models.Booking
		if err := rows.Scan(&item.ID, &item.Service, &item.ScheduledAt, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
