//go:build unit

package booking_test

import (
	"strings"
	"testing"

	"stayhub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	propertyID := uuid.New()
	valid := func() booking.Details {
		return booking.Details{Period: period(t, 15, 20), Type: booking.TypeReservation}
	}

	t.Run("基本成功ケース", func(t *testing.T) {
		obs := "  late check-in  "
		d := valid()
		d.Observations = &obs
		d.GuestCount = 2
		d.Guests = []booking.Guest{{Name: " Ann ", Contact: "ann@example.com"}}

		b, err := booking.NewBooking(propertyID, d, day(1))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, propertyID, b.PropertyID())
		require.NotNil(t, b.Observations())
		assert.Equal(t, "late check-in", *b.Observations())
		assert.Equal(t, []booking.Guest{{Name: "Ann", Contact: "ann@example.com"}}, b.Guests())
		assert.Equal(t, day(1), b.CreatedAt())
	})

	cases := []struct {
		name   string
		mutate func(*booking.Details)
		errIs  error
	}{
		{"期間未設定NG", func(d *booking.Details) { d.Period = booking.Period{} }, booking.ErrMissingDates},
		{"不正な種別NG", func(d *booking.Details) { d.Type = "HOLIDAY" }, booking.ErrInvalidType},
		{"負のゲスト数NG", func(d *booking.Details) { d.GuestCount = -1 }, booking.ErrNegativeGuestCount},
		{"長すぎる備考NG", func(d *booking.Details) {
			s := strings.Repeat("x", booking.MaxObservationsLength+1)
			d.Observations = &s
		}, booking.ErrObservationsTooLong},
		{"ゲスト名なしNG", func(d *booking.Details) { d.Guests = []booking.Guest{{Contact: "x"}} }, booking.ErrGuestNameRequired},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := valid()
			c.mutate(&d)
			b, err := booking.NewBooking(propertyID, d, day(1))
			require.Nil(t, b)
			require.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("物件なしNG", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.Nil, valid(), day(1))
		require.ErrorIs(t, err, booking.ErrMissingProperty)
	})

	t.Run("空白のみの備考はnil", func(t *testing.T) {
		blank := "   "
		d := valid()
		d.Observations = &blank
		b, err := booking.NewBooking(propertyID, d, day(1))
		require.NoError(t, err)
		assert.Nil(t, b.Observations())
	})
}

func TestReviseKeepsStateOnFailure(t *testing.T) {
	b := newBooking(t, uuid.New(), 15, 20, booking.TypeReservation)
	before := b.Details()

	err := b.Revise(booking.Details{Period: period(t, 16, 18), Type: "bogus"}, day(2))
	require.ErrorIs(t, err, booking.ErrInvalidType)
	assert.Equal(t, before, b.Details())
	assert.Equal(t, day(1), b.UpdatedAt())

	require.NoError(t, b.Revise(booking.Details{Period: period(t, 16, 18), Type: booking.TypeBlocked}, day(2)))
	assert.Equal(t, day(16), b.Period().Start())
	assert.Equal(t, booking.TypeBlocked, b.Type())
	assert.Equal(t, day(2), b.UpdatedAt())
}

func TestParseType(t *testing.T) {
	typ, err := booking.ParseType(" blocked ")
	require.NoError(t, err)
	assert.Equal(t, booking.TypeBlocked, typ)

	_, err = booking.ParseType("holiday")
	require.ErrorIs(t, err, booking.ErrInvalidType)
}
