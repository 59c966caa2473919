//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"stayhub/internal/domain/booking"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	Start        time.Time
	End          time.Time
	Type         booking.Type
	Observations *string
	GuestCount   int
	Guests       []booking.Guest
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Start:      Day("2025-12-15"),
		End:        Day("2025-12-20"),
		Type:       booking.TypeReservation,
		GuestCount: 2,
		Guests:     []booking.Guest{{Name: "Ana", Contact: "ana@example.com"}},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDetails() (booking.Details, error) {
	period, err := booking.NewPeriod(b.Start, b.End)
	if err != nil {
		return booking.Details{}, err
	}
	return booking.Details{
		Period:       period,
		Type:         b.Type,
		Observations: b.Observations,
		GuestCount:   b.GuestCount,
		Guests:       b.Guests,
	}, nil
}

// BuildDomain reconstructs a persisted booking with the builder's id.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	d, err := b.BuildDetails()
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(b.ID, b.PropertyID, d, BaseTime, BaseTime)
}

// MustBuildDomain is for fixtures whose dates are known to be valid.
func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	guests := b.Guests
	if guests == nil {
		guests = []booking.Guest{}
	}
	raw, _ := json.Marshal(guests)
	return sqlc.Bookings{
		ID:           b.ID,
		PropertyID:   b.PropertyID,
		StartDate:    pgconv.TimeToPgtype(b.Start),
		EndDate:      pgconv.TimeToPgtype(b.End),
		Type:         b.Type.String(),
		Observations: pgconv.StringPtrToPgtype(b.Observations),
		GuestCount:   int32(b.GuestCount),
		GuestsDetail: raw,
		CreatedAt:    pgconv.TimeToPgtype(BaseTime),
		UpdatedAt:    pgconv.TimeToPgtype(BaseTime),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	guests := make([]queries.GuestView, len(b.Guests))
	for i, g := range b.Guests {
		guests[i] = queries.GuestView{Name: g.Name, Contact: g.Contact}
	}
	return &queries.BookingView{
		ID:           b.ID,
		PropertyID:   b.PropertyID,
		StartDate:    b.Start,
		EndDate:      b.End,
		Type:         b.Type.String(),
		Observations: b.Observations,
		GuestCount:   b.GuestCount,
		GuestsDetail: guests,
		CreatedAt:    BaseTime,
		UpdatedAt:    BaseTime,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithProperty(propertyID uuid.UUID) *BookingBuilder {
	b.PropertyID = propertyID
	return b
}

// WithDays sets the stay as two YYYY-MM-DD dates.
func (b *BookingBuilder) WithDays(start, end string) *BookingBuilder {
	b.Start = Day(start)
	b.End = Day(end)
	return b
}

func (b *BookingBuilder) WithType(t booking.Type) *BookingBuilder {
	b.Type = t
	return b
}

func (b *BookingBuilder) WithObservations(s string) *BookingBuilder {
	b.Observations = &s
	return b
}
