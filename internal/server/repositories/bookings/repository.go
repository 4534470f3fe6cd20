package bookings

import (
	"context"

	"github.com/dmitrijs2005/bookings/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	FindByIDs(ctx context.Context, ids []string) ([]*models.Booking, error)
}
