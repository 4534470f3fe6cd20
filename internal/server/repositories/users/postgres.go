// Package users provides the PostgreSQL-backed credential store.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookings/internal/common"
	"github.com/dmitrijs2005/bookings/internal/dbx"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and fills in the store-assigned ID. The unique
// constraint on username is the final arbiter: a violation is reported as
// common.ErrorAlreadyExists even if a prior existence check passed.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, password_hash, is_admin, phone_number, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.Email, user.PasswordHash, user.IsAdmin, user.PhoneNumber, user.CreatedAt).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if user.BookingReferences == nil {
		user.BookingReferences = []string{}
	}

	return user, nil
}

// GetUserByLogin loads the user with the given username together with its
// booking references. Returns common.ErrorNotFound if there is no such user.
func (r *PostgresRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, is_admin, phone_number, created_at FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userName).Scan(
		&user.ID, &user.UserName, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.PhoneNumber, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	refs, err := r.referencesByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.BookingReferences = refs

	return user, nil
}

func (r *PostgresRepository) referencesByUserID(ctx context.Context, userID string) ([]string, error) {
	query :=
		`SELECT booking_id FROM user_booking_refs
		 WHERE user_id = $1
		 ORDER BY position
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	refs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		refs = append(refs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return refs, nil
}

// BookingReferences fetches only the ordered booking reference list of the
// user. It always reads the store, never a cached principal.
func (r *PostgresRepository) BookingReferences(ctx context.Context, userName string) ([]string, error) {
	query :=
		`SELECT u.id, r.booking_id FROM users u
		 LEFT JOIN user_booking_refs r ON r.user_id = u.id
		 WHERE u.username = $1
		 ORDER BY r.position
		 `

	rows, err := r.db.QueryContext(ctx, query, userName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	found := false
	refs := []string{}
	for rows.Next() {
		var userID string
		var bookingID sql.NullString
		if err := rows.Scan(&userID, &bookingID); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		found = true
		if bookingID.Valid {
			refs = append(refs, bookingID.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if !found {
		return nil, common.ErrorNotFound
	}

	return refs, nil
}

// AppendBookingReference adds bookingID at the end of the user's list.
func (r *PostgresRepository) AppendBookingReference(ctx context.Context, userID, bookingID string) error {
	query :=
		`INSERT INTO user_booking_refs (user_id, booking_id, position)
		 SELECT $1, $2, COALESCE(MAX(position), 0) + 1 FROM user_booking_refs WHERE user_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, bookingID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
