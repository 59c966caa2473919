//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingWriteQueries) UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) DeleteBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	period, err := booking.NewPeriod(
		time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	b, err := booking.NewBooking(uuid.New(), booking.Details{
		Period:     period,
		Type:       booking.TypeBlocked,
		GuestCount: 2,
		Guests:     []booking.Guest{{Name: "Ana", Contact: "ana@example.com"}},
	}, time.Now())
	require.NoError(t, err)
	return b
}

func TestBookingRepository_Create(t *testing.T) {
	b := newTestBooking(t)

	t.Run("stores guests as json", func(t *testing.T) {
		q := new(MockBookingWriteQueries)
		q.On("CreateBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateBookingParams) bool {
			return p.ID == b.ID() &&
				p.Type == "BLOCKED" &&
				p.GuestCount == 2 &&
				string(p.GuestsDetail) == `[{"name":"Ana","contact":"ana@example.com"}]`
		})).Return(sqlc.Bookings{ID: b.ID()}, nil)

		repo := NewBookingRepository(q, nil)
		require.NoError(t, repo.Create(context.Background(), nil, b))
		q.AssertExpectations(t)
	})

	t.Run("exclusion violation is a conflict", func(t *testing.T) {
		q := new(MockBookingWriteQueries)
		q.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.Bookings{}, &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"})

		repo := NewBookingRepository(q, nil)
		err := repo.Create(context.Background(), nil, b)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindExclusionViolated))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}

func TestBookingRepository_UpdateAndDelete(t *testing.T) {
	b := newTestBooking(t)

	t.Run("update of missing row", func(t *testing.T) {
		q := new(MockBookingWriteQueries)
		q.On("UpdateBooking", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewBookingRepository(q, nil).Update(context.Background(), nil, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("delete scoped to property", func(t *testing.T) {
		q := new(MockBookingWriteQueries)
		q.On("DeleteBooking", mock.Anything, mock.Anything, sqlc.DeleteBookingParams{ID: b.ID(), PropertyID: b.PropertyID()}).
			Return(int64(1), nil)

		err := NewBookingRepository(q, nil).Delete(context.Background(), nil, b.PropertyID(), b.ID())
		require.NoError(t, err)
		q.AssertExpectations(t)
	})

	t.Run("delete of missing row", func(t *testing.T) {
		q := new(MockBookingWriteQueries)
		q.On("DeleteBooking", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewBookingRepository(q, nil).Delete(context.Background(), nil, uuid.New(), uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
