package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/bookings/internal/dbx"
	"github.com/dmitrijs2005/bookings/internal/server/auth"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/dmitrijs2005/bookings/internal/server/repositories/bookings"
	"github.com/dmitrijs2005/bookings/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func newTestIssuer(t *testing.T) *auth.Issuer {
	t.Helper()
	i, err := auth.NewIssuer([]byte("test-secret"))
	require.NoError(t, err)
	return i
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakeUsersRepo struct {
	getOut *models.User
	getErr error

	createErr   error
	createdUser *models.User
	createCalls int

	refsOut []string
	refsErr error

	appendErr    error
	appendedUser string
	appendedRef  string
	getCalls     int
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.createCalls++
	f.createdUser = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *u
	out.ID = "u-1"
	return &out, nil
}

func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) BookingReferences(context.Context, string) ([]string, error) {
	if f.refsErr != nil {
		return nil, f.refsErr
	}
	return f.refsOut, nil
}

func (f *fakeUsersRepo) AppendBookingReference(_ context.Context, userID, bookingID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appendedUser = userID
	f.appendedRef = bookingID
	return nil
}

type fakeBookingsRepo struct {
	byID    map[string]*models.Booking
	findErr error
	calls   [][]string

	createErr error
}

func (f *fakeBookingsRepo) Create(_ context.Context, b *models.Booking) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *b
	out.ID = "b-new"
	return &out, nil
}

func (f *fakeBookingsRepo) FindByIDs(_ context.Context, ids []string) ([]*models.Booking, error) {
	f.calls = append(f.calls, append([]string(nil), ids...))
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []*models.Booking
	for _, id := range ids {
		if b, ok := f.byID[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	b *fakeBookingsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.u }
func (m *fakeRepoManager) Bookings(dbx.DBTX) bookings.Repository       { return m.b }

type fakeHasher struct {
	hashOut   string
	hashErr   error
	match     bool
	verifyErr error
	hashCalls int
}

func (f *fakeHasher) Hash(string) (string, error) {
	f.hashCalls++
	return f.hashOut, f.hashErr
}

func (f *fakeHasher) Verify(string, string) (bool, error) {
	return f.match, f.verifyErr
}
