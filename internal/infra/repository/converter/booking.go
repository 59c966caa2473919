package converter

import (
	"encoding/json"
	"math"

	"stayhub/internal/domain/booking"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/pgconv"
)

var ErrGuestCountOutOfRange = errs.Mark(errs.New("guest count out of int32 range"), errs.ErrInvalidInput)

func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	guests, err := marshalGuests(b.Guests())
	if err != nil {
		return sqlc.CreateBookingParams{}, err
	}
	count, err := guestCount(b.GuestCount())
	if err != nil {
		return sqlc.CreateBookingParams{}, err
	}

	return sqlc.CreateBookingParams{
		ID:           b.ID(),
		PropertyID:   b.PropertyID(),
		StartDate:    pgconv.TimeToPgtype(b.Period().Start()),
		EndDate:      pgconv.TimeToPgtype(b.Period().End()),
		Type:         b.Type().String(),
		Observations: pgconv.StringPtrToPgtype(b.Observations()),
		GuestCount:   count,
		GuestsDetail: guests,
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt()),
	}, nil
}

func BookingToUpdateParams(b *booking.Booking) (sqlc.UpdateBookingParams, error) {
	guests, err := marshalGuests(b.Guests())
	if err != nil {
		return sqlc.UpdateBookingParams{}, err
	}
	count, err := guestCount(b.GuestCount())
	if err != nil {
		return sqlc.UpdateBookingParams{}, err
	}

	return sqlc.UpdateBookingParams{
		ID:           b.ID(),
		StartDate:    pgconv.TimeToPgtype(b.Period().Start()),
		EndDate:      pgconv.TimeToPgtype(b.Period().End()),
		Type:         b.Type().String(),
		Observations: pgconv.StringPtrToPgtype(b.Observations()),
		GuestCount:   count,
		GuestsDetail: guests,
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BookingFromInfra(row sqlc.Bookings) (*booking.Booking, error) {
	period, err := booking.NewPeriod(row.StartDate.Time, row.EndDate.Time)
	if err != nil {
		return nil, err
	}
	guests, err := UnmarshalGuests(row.GuestsDetail)
	if err != nil {
		return nil, err
	}

	details := booking.Details{
		Period:       period,
		Type:         booking.Type(row.Type),
		Observations: pgconv.StringPtrFromPgtype(row.Observations),
		GuestCount:   int(row.GuestCount),
		Guests:       guests,
	}
	return booking.Reconstruct(row.ID, row.PropertyID, details, row.CreatedAt.Time, row.UpdatedAt.Time)
}

func BookingsFromInfra(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromInfra(row)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s", row.ID)
		}
		out = append(out, b)
	}
	return out, nil
}

func UnmarshalGuests(raw []byte) ([]booking.Guest, error) {
	guests := []booking.Guest{}
	if len(raw) == 0 {
		return guests, nil
	}
	if err := json.Unmarshal(raw, &guests); err != nil {
		return nil, errs.Wrap(err, "decode guests_detail")
	}
	return guests, nil
}

func marshalGuests(guests []booking.Guest) ([]byte, error) {
	if guests == nil {
		guests = []booking.Guest{}
	}
	raw, err := json.Marshal(guests)
	if err != nil {
		return nil, errs.Wrap(err, "encode guests_detail")
	}
	return raw, nil
}

func guestCount(n int) (int32, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, ErrGuestCountOutOfRange
	}
	return int32(n), nil
}
