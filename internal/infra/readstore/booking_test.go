//go:build unit

package readstore

import (
	"context"
	"testing"

	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) GetBookingByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingByIDParams) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsByProperty(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, propertyID)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func TestBookingReadStore_ListByProperty(t *testing.T) {
	propertyID := uuid.New()
	first := builder.NewBookingBuilder().WithProperty(propertyID).WithDays("2025-12-15", "2025-12-20")
	second := builder.NewBookingBuilder().WithProperty(propertyID).WithDays("2025-12-20", "2025-12-25").WithObservations("late checkin")

	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListBookingsByProperty", mock.Anything, mock.Anything, propertyID).
		Return([]sqlc.Bookings{first.BuildInfra(), second.BuildInfra()}, nil)

	store := NewBookingReadStore(mockQueries, nil)
	views, err := store.ListByProperty(context.Background(), propertyID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	if diff := cmp.Diff(first.BuildView(), views[0]); diff != "" {
		t.Errorf("first booking mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(second.BuildView(), views[1]); diff != "" {
		t.Errorf("second booking mismatch (-want +got):\n%s", diff)
	}
	mockQueries.AssertExpectations(t)
}

func TestBookingReadStore_FindByID_CorruptGuests(t *testing.T) {
	row := builder.NewBookingBuilder().BuildInfra()
	row.GuestsDetail = []byte(`{not json`)

	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("GetBookingByID", mock.Anything, mock.Anything, sqlc.GetBookingByIDParams{ID: row.ID, PropertyID: row.PropertyID}).
		Return(row, nil)

	store := NewBookingReadStore(mockQueries, nil)
	view, err := store.FindByID(context.Background(), row.PropertyID, row.ID)

	assert.Error(t, err)
	assert.Nil(t, view)
}
