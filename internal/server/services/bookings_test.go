package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookings/internal/common"
	"github.com/dmitrijs2005/bookings/internal/logging"
	"github.com/dmitrijs2005/bookings/internal/server/auth"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingFixtures() map[string]*models.Booking {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return map[string]*models.Booking{
		"b1": {ID: "b1", Service: "haircut", ScheduledAt: at},
		"b2": {ID: "b2", Service: "massage", ScheduledAt: at.Add(time.Hour)},
		"b3": {ID: "b3", Service: "manicure", ScheduledAt: at.Add(2 * time.Hour)},
	}
}

func ids(bs []*models.Booking) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}

func TestResolve_OmitsMissingAndDedupes(t *testing.T) {
	db, _ := newSQLMockDB(t)
	br := &fakeBookingsRepo{byID: bookingFixtures()}
	s := NewBookingService(db, &fakeRepoManager{b: br}, logging.Nop{})

	got, err := s.Resolve(context.Background(), []string{"b2", "nope", "b1", "b2", "not-a-uuid"})
	require.NoError(t, err)

	assert.Equal(t, []string{"b2", "b1"}, ids(got))
	require.Len(t, br.calls, 1)
	assert.Equal(t, []string{"b2", "nope", "b1", "not-a-uuid"}, br.calls[0])
}

func TestResolve_OrderIndependentAndIdempotent(t *testing.T) {
	db, _ := newSQLMockDB(t)
	br := &fakeBookingsRepo{byID: bookingFixtures()}
	s := NewBookingService(db, &fakeRepoManager{b: br}, logging.Nop{})
	ctx := context.Background()

	forward, err := s.Resolve(ctx, []string{"b1", "b2", "b3"})
	require.NoError(t, err)
	backward, err := s.Resolve(ctx, []string{"b3", "b2", "b1"})
	require.NoError(t, err)

	assert.ElementsMatch(t, ids(forward), ids(backward))
	assert.ElementsMatch(t, []string{"b1", "b2", "b3"}, ids(forward))

	again, err := s.Resolve(ctx, []string{"b1", "b2", "b3"})
	require.NoError(t, err)
	assert.Equal(t, ids(forward), ids(again))
	assert.Len(t, br.calls, 3)
}

func TestResolve_EmptySkipsStore(t *testing.T) {
	db, _ := newSQLMockDB(t)
	br := &fakeBookingsRepo{}
	s := NewBookingService(db, &fakeRepoManager{b: br}, logging.Nop{})

	got, err := s.Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, br.calls)
}

func TestResolve_StoreFailure(t *testing.T) {
	db, _ := newSQLMockDB(t)
	br := &fakeBookingsRepo{findErr: errBoom{}}
	s := NewBookingService(db, &fakeRepoManager{b: br}, logging.Nop{})

	_, err := s.Resolve(context.Background(), []string{"b1"})
	require.ErrorIs(t, err, common.ErrUpstreamFailure)
	assert.True(t, errors.Is(err, errBoom{}))
}

func TestResolveHistories_SingleLookup(t *testing.T) {
	db, _ := newSQLMockDB(t)
	br := &fakeBookingsRepo{byID: bookingFixtures()}
	s := NewBookingService(db, &fakeRepoManager{b: br}, logging.Nop{})

	alice := &models.User{ID: "u1", BookingReferences: []string{"b1", "gone"}}
	bob := &models.User{ID: "u2", BookingReferences: []string{"b3", "b1"}}
	carol := &models.User{ID: "u3"}

	got, err := s.ResolveHistories(context.Background(), alice, bob, carol, nil)
	require.NoError(t, err)

	require.Len(t, br.calls, 1)
	assert.ElementsMatch(t, []string{"b1", "gone", "b3"}, br.calls[0])
	assert.Equal(t, []string{"b1"}, ids(got["u1"]))
	assert.Equal(t, []string{"b3", "b1"}, ids(got["u2"]))
	assert.Empty(t, got["u3"])
}

func TestHistory_ReadsFreshReferences(t *testing.T) {
	db, _ := newSQLMockDB(t)
	ur := &fakeUsersRepo{refsOut: []string{"b3", "missing"}}
	br := &fakeBookingsRepo{byID: bookingFixtures()}
	s := NewBookingService(db, &fakeRepoManager{u: ur, b: br}, logging.Nop{})

	got, err := s.History(context.Background(), &auth.Claims{UserID: "u1", UserName: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b3"}, ids(got))
}

func TestHistory_Errors(t *testing.T) {
	db, _ := newSQLMockDB(t)
	claims := &auth.Claims{UserID: "u1", UserName: "alice"}

	tests := []struct {
		name    string
		claims  *auth.Claims
		refsErr error
		want    error
	}{
		{
			name: "no claims",
			want: common.ErrUnauthenticated,
		},
		{
			name:    "principal gone",
			claims:  claims,
			refsErr: common.ErrorNotFound,
			want:    common.ErrNotFound,
		},
		{
			name:    "store failure",
			claims:  claims,
			refsErr: errBoom{},
			want:    common.ErrUpstreamFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := &fakeRepoManager{u: &fakeUsersRepo{refsErr: tt.refsErr}, b: &fakeBookingsRepo{}}
			s := NewBookingService(db, rm, logging.Nop{})

			_, err := s.History(context.Background(), tt.claims)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreate_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	ur := &fakeUsersRepo{}
	s := NewBookingService(db, &fakeRepoManager{u: ur, b: &fakeBookingsRepo{}}, logging.Nop{})

	at := time.Date(2026, 5, 1, 9, 30, 0, 0, time.FixedZone("X", 3600))
	b, err := s.Create(context.Background(), &auth.Claims{UserID: "u1"}, "  haircut ", at)
	require.NoError(t, err)

	assert.Equal(t, "b-new", b.ID)
	assert.Equal(t, "haircut", b.Service)
	assert.True(t, b.ScheduledAt.Equal(at))
	assert.Equal(t, "u1", ur.appendedUser)
	assert.Equal(t, "b-new", ur.appendedRef)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RollsBackOnAppendFailure(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	ur := &fakeUsersRepo{appendErr: errBoom{}}
	s := NewBookingService(db, &fakeRepoManager{u: ur, b: &fakeBookingsRepo{}}, logging.Nop{})

	_, err := s.Create(context.Background(), &auth.Claims{UserID: "u1"}, "haircut", time.Now())
	require.ErrorIs(t, err, common.ErrUpstreamFailure)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Validation(t *testing.T) {
	db, mock := newSQLMockDB(t)
	s := NewBookingService(db, &fakeRepoManager{u: &fakeUsersRepo{}, b: &fakeBookingsRepo{}}, logging.Nop{})

	_, err := s.Create(context.Background(), &auth.Claims{UserID: "u1"}, " ", time.Time{})
	require.ErrorIs(t, err, common.ErrInvalidInput)
	var e *common.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, map[string]string{
		"service":     "Service must not be empty",
		"scheduledAt": "Scheduled time must be provided",
	}, e.Fields)

	_, err = s.Create(context.Background(), nil, "haircut", time.Now())
	require.ErrorIs(t, err, common.ErrUnauthenticated)

	require.NoError(t, mock.ExpectationsWereMet())
}
