package queries

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)

type BookingReadStore interface {
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*BookingView, error)
	FindByID(ctx context.Context, propertyID, bookingID uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	ListBookingsForProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) ([]*BookingView, error)
	GetBooking(ctx context.Context, callerUserID, propertyID, bookingID uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	properties PropertyReadStore
	bookings   BookingReadStore
}

func NewBookingQueries(properties PropertyReadStore, bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{properties: properties, bookings: bookings}
}

func (q *bookingQueriesImpl) ListBookingsForProperty(ctx context.Context, callerUserID, propertyID uuid.UUID) ([]*BookingView, error) {
	if _, err := authorizeProperty(ctx, q.properties, callerUserID, propertyID); err != nil {
		return nil, err
	}
	return q.bookings.ListByProperty(ctx, propertyID)
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, callerUserID, propertyID, bookingID uuid.UUID) (*BookingView, error) {
	if _, err := authorizeProperty(ctx, q.properties, callerUserID, propertyID); err != nil {
		return nil, err
	}
	b, err := q.bookings.FindByID(ctx, propertyID, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
