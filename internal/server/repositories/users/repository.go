package users

import (
	"context"

	"github.com/dmitrijs2005/bookings/internal/server/models"
)

// Repository is the credential store for principals. Usernames are unique;
// Create reports common.ErrorAlreadyExists when the store rejects a duplicate.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	BookingReferences(ctx context.Context, login string) ([]string, error)
	AppendBookingReference(ctx context.Context, userID, bookingID string) error
}
