package readstore

import (
	"context"

	"github.com/google/uuid"

	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingByIDParams) (sqlc.Bookings, error)
	ListBookingsByProperty(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByProperty returns bookings in start order.
func (r *BookingReadStore) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByProperty(ctx, r.db, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, err := toBookingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, propertyID, bookingID uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, sqlc.GetBookingByIDParams{
		ID:         bookingID,
		PropertyID: propertyID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return toBookingView(row)
}

func toBookingView(row sqlc.Bookings) (*queries.BookingView, error) {
	guests, err := converter.UnmarshalGuests(row.GuestsDetail)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt guests_detail", err)
	}

	detail := make([]queries.GuestView, len(guests))
	for i, g := range guests {
		detail[i] = queries.GuestView{Name: g.Name, Contact: g.Contact}
	}

	return &queries.BookingView{
		ID:           row.ID,
		PropertyID:   row.PropertyID,
		StartDate:    row.StartDate.Time.UTC(),
		EndDate:      row.EndDate.Time.UTC(),
		Type:         row.Type,
		Observations: pgconv.StringPtrFromPgtype(row.Observations),
		GuestCount:   int(row.GuestCount),
		GuestsDetail: detail,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}, nil
}
