package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/bookings/internal/server/auth"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/dmitrijs2005/bookings/internal/server/services"
)

// ---- fakes ----

type fakeUsers struct {
	regIn   services.RegisterInput
	regResp *services.AuthResult
	regErr  error

	loginResp *services.AuthResult
	loginErr  error
}

func (f *fakeUsers) Register(_ context.Context, in services.RegisterInput) (*services.AuthResult, error) {
	f.regIn = in
	return f.regResp, f.regErr
}

func (f *fakeUsers) Login(context.Context, string, string) (*services.AuthResult, error) {
	return f.loginResp, f.loginErr
}

type fakeBookings struct {
	histories  map[string][]*models.Booking
	resolveErr error

	history    []*models.Booking
	historyErr error
	gotClaims  *auth.Claims

	created   *models.Booking
	createErr error
	gotAt     time.Time
}

func (f *fakeBookings) ResolveHistories(context.Context, ...*models.User) (map[string][]*models.Booking, error) {
	return f.histories, f.resolveErr
}

func (f *fakeBookings) History(_ context.Context, c *auth.Claims) ([]*models.Booking, error) {
	f.gotClaims = c
	return f.history, f.historyErr
}

func (f *fakeBookings) Create(_ context.Context, c *auth.Claims, _ string, at time.Time) (*models.Booking, error) {
	f.gotClaims = c
	f.gotAt = at
	return f.created, f.createErr
}

type fakeExtractor struct {
	claims *auth.Claims
	err    error
}

func (f *fakeExtractor) Extract(context.Context) (*auth.Claims, error) {
	return f.claims, f.err
}
