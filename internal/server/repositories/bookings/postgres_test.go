package bookings

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	qInsertBooking = `^INSERT INTO bookings \(service, scheduled_at\) VALUES \(\$1, \$2\) RETURNING id, created_at`
	qFindBookings  = `^SELECT id, service, scheduled_at, created_at FROM bookings WHERE id = ANY\(\$1\) ORDER BY id`
)

// arrayConverter lets []string arguments through, as the pgx driver does.
type arrayConverter struct{}

func (arrayConverter) ConvertValue(v any) (driver.Value, error) {
	if ids, ok := v.([]string); ok {
		return ids, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
		sqlmock.ValueConverterOption(arrayConverter{}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(qInsertBooking).
		WithArgs("haircut", at).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("b-1", now))

	got, err := repo.Create(context.Background(), &models.Booking{Service: "haircut", ScheduledAt: at})
	require.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, now, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(qInsertBooking).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Booking{Service: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}

func TestFindByIDs_SingleBatchedQuery(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(qFindBookings).
		WithArgs([]string{"a", "missing", "c"}).
		WillReturnRows(sqlmock.NewRows([]string{"id", "service", "scheduled_at", "created_at"}).
			AddRow("a", "haircut", at, at).
			AddRow("c", "massage", at, at))

	got, err := repo.FindByIDs(context.Background(), []string{"a", "missing", "c"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "massage", got[1].Service)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDs_LargeBatchIsOneParameter(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	ids := make([]string, 70000)
	for i := range ids {
		ids[i] = fmt.Sprintf("id-%d", i)
	}

	mock.ExpectQuery(qFindBookings).
		WithArgs(ids).
		WillReturnRows(sqlmock.NewRows([]string{"id", "service", "scheduled_at", "created_at"}))

	got, err := repo.FindByIDs(context.Background(), ids)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDs_EmptyInputSkipsQuery(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	got, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDs_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`^SELECT id, service`).WillReturnError(errors.New("timeout"))

	_, err := repo.FindByIDs(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select bookings")
}
