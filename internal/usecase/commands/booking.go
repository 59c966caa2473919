package commands

import (
	"context"
	"log/slog"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/patch"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	StartDate    time.Time
	EndDate      time.Time
	Type         string
	Observations *string
	GuestCount   *int
	Guests       []booking.Guest
}

// UpdateBookingInput fields left absent keep their stored value.
type UpdateBookingInput struct {
	StartDate    patch.Field[time.Time]
	EndDate      patch.Field[time.Time]
	Type         patch.Field[string]
	Observations patch.Field[string]
	GuestCount   patch.Field[int]
	Guests       patch.Field[[]booking.Guest]
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, callerUserID, propertyID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	UpdateBooking(ctx context.Context, callerUserID, propertyID, bookingID uuid.UUID, in UpdateBookingInput) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, callerUserID, propertyID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, callerUserID, propertyID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	details, err := in.details()
	if err != nil {
		return nil, err
	}
	b, err := booking.NewBooking(propertyID, details, c.clock.Now())
	if err != nil {
		return nil, err
	}

	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockOwnedProperty(ctx, tx, callerUserID, propertyID); err != nil {
			return err
		}
		if err := ensureNoConflicts(ctx, tx, propertyID, b.Period(), nil); err != nil {
			return err
		}
		return asConflict(tx.Bookings().Create(ctx, tx.DB(), b), b.Period())
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking created", "booking_id", b.ID(), "property_id", propertyID, "period", b.Period().String())
	return bookingView(b), nil
}

func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, callerUserID, propertyID, bookingID uuid.UUID, in UpdateBookingInput) (*queries.BookingView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockOwnedProperty(ctx, tx, callerUserID, propertyID); err != nil {
			return err
		}

		b, err := tx.Reads().BookingByID(ctx, propertyID, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrBookingNotFound
			}
			return err
		}

		details, err := in.merge(b.Details())
		if err != nil {
			return err
		}
		if err := b.Revise(details, c.clock.Now()); err != nil {
			return err
		}

		id := b.ID()
		if err := ensureNoConflicts(ctx, tx, propertyID, b.Period(), &id); err != nil {
			return err
		}
		if err := asConflict(tx.Bookings().Update(ctx, tx.DB(), b), b.Period()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return queries.ErrBookingNotFound
			}
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bookingView(updated), nil
}

// DeleteBooking never needs an overlap check.
func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, callerUserID, propertyID, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockOwnedProperty(ctx, tx, callerUserID, propertyID); err != nil {
			return err
		}
		err := tx.Bookings().Delete(ctx, tx.DB(), propertyID, bookingID)
		if infra.IsKind(err, infra.KindNotFound) {
			return queries.ErrBookingNotFound
		}
		return err
	})
}

func ensureNoConflicts(ctx context.Context, tx shared.Tx, propertyID uuid.UUID, candidate booking.Period, exclude *uuid.UUID) error {
	existing, err := tx.Reads().BookingsByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	conflicts := booking.FindConflicts(existing, candidate, exclude)
	if len(conflicts) > 0 {
		return booking.NewConflictError(candidate, booking.ToConflicts(conflicts))
	}
	return nil
}

// asConflict maps a lost race on the exclusion constraint to the same error
// kind as a detected overlap. The competing row is not visible to us, so the
// conflict list is empty.
func asConflict(err error, requested booking.Period) error {
	if infra.IsKind(err, infra.KindExclusionViolated) {
		return booking.NewConflictError(requested, nil)
	}
	return err
}

func (in CreateBookingInput) details() (booking.Details, error) {
	period, err := booking.NewPeriod(in.StartDate, in.EndDate)
	if err != nil {
		return booking.Details{}, err
	}
	t := booking.TypeReservation
	if in.Type != "" {
		if t, err = booking.ParseType(in.Type); err != nil {
			return booking.Details{}, err
		}
	}
	guestCount := 0
	if in.GuestCount != nil {
		guestCount = *in.GuestCount
	}
	return booking.Details{
		Period:       period,
		Type:         t,
		Observations: in.Observations,
		GuestCount:   guestCount,
		Guests:       in.Guests,
	}, nil
}

func (in UpdateBookingInput) validate() error {
	if in.StartDate.IsNull() || in.EndDate.IsNull() || in.Type.IsNull() {
		return ErrRequiredFieldCleared
	}
	if v, ok := in.Type.Get(); ok {
		if _, err := booking.ParseType(v); err != nil {
			return err
		}
	}
	return nil
}

func (in UpdateBookingInput) merge(current booking.Details) (booking.Details, error) {
	period, err := booking.NewPeriod(
		in.StartDate.Apply(current.Period.Start()),
		in.EndDate.Apply(current.Period.End()),
	)
	if err != nil {
		return booking.Details{}, err
	}

	t := current.Type
	if v, ok := in.Type.Get(); ok {
		if t, err = booking.ParseType(v); err != nil {
			return booking.Details{}, err
		}
	}

	guests := in.Guests.Apply(current.Guests)
	if in.Guests.IsNull() {
		guests = nil
	}
	guestCount := in.GuestCount.Apply(current.GuestCount)
	if in.GuestCount.IsNull() {
		guestCount = 0
	}

	return booking.Details{
		Period:       period,
		Type:         t,
		Observations: in.Observations.ApplyPtr(current.Observations),
		GuestCount:   guestCount,
		Guests:       guests,
	}, nil
}
