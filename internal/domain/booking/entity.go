package booking

import (
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingDates        = errs.Mark(errs.New("start and end dates are required"), errs.ErrInvalidInput)
	ErrInvalidPeriod       = errs.Mark(errs.New("start date must be before end date"), errs.ErrInvalidInput)
	ErrInvalidType         = errs.Mark(errs.New("type must be one of RESERVATION, BLOCKED, MAINTENANCE"), errs.ErrInvalidInput)
	ErrNegativeGuestCount  = errs.Mark(errs.New("guest count cannot be negative"), errs.ErrInvalidInput)
	ErrObservationsTooLong = errs.Mark(errs.New("observations are too long (max 2000 characters)"), errs.ErrInvalidInput)
	ErrGuestNameRequired   = errs.Mark(errs.New("guest name is required"), errs.ErrInvalidInput)
	ErrGuestFieldTooLong   = errs.Mark(errs.New("guest field is too long (max 255 characters)"), errs.ErrInvalidInput)
	ErrMissingProperty     = errs.Mark(errs.New("booking must belong to a property"), errs.ErrInvalidInput)
)

// Details holds every attribute of a booking that may change after creation.
type Details struct {
	Period       Period
	Type         Type
	Observations *string
	GuestCount   int
	Guests       []Guest
}

type Booking struct {
	id           uuid.UUID
	propertyID   uuid.UUID
	period       Period
	bookingType  Type
	observations *string
	guestCount   int
	guests       []Guest
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(propertyID uuid.UUID, d Details, now time.Time) (*Booking, error) {
	if propertyID == uuid.Nil {
		return nil, ErrMissingProperty
	}
	b := &Booking{
		id:         uuid.New(),
		propertyID: propertyID,
		createdAt:  now,
		updatedAt:  now,
	}
	if err := b.apply(d); err != nil {
		return nil, err
	}
	return b, nil
}

// Reconstruct rebuilds a persisted booking. Stored rows already satisfy the
// invariants, but they are re-checked so corrupt rows surface early.
func Reconstruct(id, propertyID uuid.UUID, d Details, createdAt, updatedAt time.Time) (*Booking, error) {
	b := &Booking{
		id:         id,
		propertyID: propertyID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
	if err := b.apply(d); err != nil {
		return nil, err
	}
	return b, nil
}

// Revise replaces the mutable attributes. id and propertyID are fixed.
func (b *Booking) Revise(d Details, now time.Time) error {
	if err := b.apply(d); err != nil {
		return err
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) apply(d Details) error {
	if d.Period.start.IsZero() || d.Period.end.IsZero() {
		return ErrMissingDates
	}
	if !d.Period.start.Before(d.Period.end) {
		return ErrInvalidPeriod
	}
	if !d.Type.IsValid() {
		return ErrInvalidType
	}
	if d.GuestCount < 0 {
		return ErrNegativeGuestCount
	}
	observations, err := normalizeObservations(d.Observations)
	if err != nil {
		return err
	}
	guests, err := NewGuests(d.Guests)
	if err != nil {
		return err
	}

	b.period = d.Period
	b.bookingType = d.Type
	b.observations = observations
	b.guestCount = d.GuestCount
	b.guests = guests
	return nil
}

func (b *Booking) Details() Details {
	guests := make([]Guest, len(b.guests))
	copy(guests, b.guests)
	return Details{
		Period:       b.period,
		Type:         b.bookingType,
		Observations: b.observations,
		GuestCount:   b.guestCount,
		Guests:       guests,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) PropertyID() uuid.UUID { return b.propertyID }
func (b *Booking) Period() Period        { return b.period }
func (b *Booking) Type() Type            { return b.bookingType }
func (b *Booking) Observations() *string { return b.observations }
func (b *Booking) GuestCount() int       { return b.guestCount }
func (b *Booking) Guests() []Guest       { return b.guests }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
