package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookings/internal/common"
	"github.com/dmitrijs2005/bookings/internal/dbx"
	"github.com/dmitrijs2005/bookings/internal/logging"
	"github.com/dmitrijs2005/bookings/internal/server/auth"
	"github.com/dmitrijs2005/bookings/internal/server/metrics"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/dmitrijs2005/bookings/internal/server/repositories/repomanager"
)

// BookingService resolves booking references and records new bookings.
//
// Resolution is best effort: references without a matching booking are
// dropped from the result and never reported as errors.
type BookingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewBookingService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *BookingService {
	return &BookingService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "booking_service"),
	}
}

// Resolve returns the bookings matching ids in one lookup, in first-reference
// order with duplicates collapsed.
func (s *BookingService) Resolve(ctx context.Context, ids []string) ([]*models.Booking, error) {
	found, err := s.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}
	return collect(ids, found), nil
}

// ResolveHistories resolves the references of every given user with a
// single lookup and returns the bookings keyed by user id.
func (s *BookingService) ResolveHistories(ctx context.Context, users ...*models.User) (map[string][]*models.Booking, error) {
	var all []string
	for _, u := range users {
		if u != nil {
			all = append(all, u.BookingReferences...)
		}
	}

	found, err := s.lookup(ctx, all)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]*models.Booking, len(users))
	for _, u := range users {
		if u != nil {
			out[u.ID] = collect(u.BookingReferences, found)
		}
	}
	return out, nil
}

// History re-reads the caller's references from the store and resolves
// them. Token claims are never trusted for the reference list.
func (s *BookingService) History(ctx context.Context, claims *auth.Claims) ([]*models.Booking, error) {
	if claims == nil {
		return nil, common.Unauthenticated("authorization header must be provided", nil)
	}

	refs, err := s.repomanager.Users(s.db).BookingReferences(ctx, claims.UserName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.UserNotFound()
		}
		s.logger.Error(ctx, "reading booking references failed", "user_id", claims.UserID, "error", err)
		return nil, common.Upstream("failed to read booking references", err)
	}

	return s.Resolve(ctx, refs)
}

// Create records a booking for the caller and appends it to the caller's
// references in one transaction.
func (s *BookingService) Create(ctx context.Context, claims *auth.Claims, service string, scheduledAt time.Time) (*models.Booking, error) {
	if claims == nil {
		return nil, common.Unauthenticated("authorization header must be provided", nil)
	}

	errs := map[string]string{}
	if strings.TrimSpace(service) == "" {
		errs["service"] = "Service must not be empty"
	}
	if scheduledAt.IsZero() {
		errs["scheduledAt"] = "Scheduled time must be provided"
	}
	if len(errs) > 0 {
		return nil, common.InvalidInput(errs)
	}

	var booking *models.Booking
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		b, err := s.repomanager.Bookings(tx).Create(ctx, &models.Booking{
			Service:     strings.TrimSpace(service),
			ScheduledAt: scheduledAt.UTC(),
		})
		if err != nil {
			return err
		}

		if err := s.repomanager.Users(tx).AppendBookingReference(ctx, claims.UserID, b.ID); err != nil {
			return err
		}

		booking = b
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "booking creation failed", "user_id", claims.UserID, "error", err)
		return nil, common.Upstream("failed to create booking", err)
	}

	s.logger.Info(ctx, "booking created", "user_id", claims.UserID, "booking_id", booking.ID)

	return booking, nil
}

// lookup fetches the distinct ids in one call. An empty id list never
// reaches the store.
func (s *BookingService) lookup(ctx context.Context, ids []string) (map[string]*models.Booking, error) {
	distinct := dedupe(ids)
	if len(distinct) == 0 {
		return map[string]*models.Booking{}, nil
	}

	rows, err := s.repomanager.Bookings(s.db).FindByIDs(ctx, distinct)
	if err != nil {
		s.logger.Error(ctx, "booking lookup failed", "count", len(distinct), "error", err)
		return nil, common.Upstream("failed to resolve bookings", err)
	}

	found := make(map[string]*models.Booking, len(rows))
	for _, b := range rows {
		found[b.ID] = b
	}

	metrics.RecordResolve(len(distinct), len(found))
	if missing := len(distinct) - len(found); missing > 0 {
		s.logger.Debug(ctx, "unresolved booking references", "count", missing)
	}

	return found, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func collect(ids []string, found map[string]*models.Booking) []*models.Booking {
	out := make([]*models.Booking, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if b, ok := found[id]; ok {
			out = append(out, b)
		}
	}
	return out
}
