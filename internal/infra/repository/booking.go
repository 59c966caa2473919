package repository

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts b. An exclusion violation means a concurrent writer won the
// range and is returned with KindExclusionViolated.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return err
	}
	if _, err := r.queries.CreateBooking(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params, err := converter.BookingToUpdateParams(b)
	if err != nil {
		return err
	}
	n, err := r.queries.UpdateBooking(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, propertyID, bookingID uuid.UUID) error {
	n, err := r.queries.DeleteBooking(ctx, tx, sqlc.DeleteBookingParams{ID: bookingID, PropertyID: propertyID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
