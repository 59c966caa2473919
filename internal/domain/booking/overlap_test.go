//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.December, d, 0, 0, 0, 0, time.UTC)
}

func period(t *testing.T, from, to int) booking.Period {
	t.Helper()
	p, err := booking.NewPeriod(day(from), day(to))
	require.NoError(t, err)
	return p
}

func newBooking(t *testing.T, propertyID uuid.UUID, from, to int, typ booking.Type) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(propertyID, booking.Details{Period: period(t, from, to), Type: typ}, day(1))
	require.NoError(t, err)
	return b
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     [2]int
		expected bool
	}{
		{"隣接（終了日=開始日）は重ならない", [2]int{15, 20}, [2]int{20, 25}, false},
		{"逆向きの隣接も重ならない", [2]int{20, 25}, [2]int{15, 20}, false},
		{"1日の重なり", [2]int{15, 20}, [2]int{19, 22}, true},
		{"内包", [2]int{10, 30}, [2]int{15, 16}, true},
		{"同一期間", [2]int{15, 20}, [2]int{15, 20}, true},
		{"完全に離れている", [2]int{1, 3}, [2]int{5, 8}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := period(t, c.a[0], c.a[1])
			b := period(t, c.b[0], c.b[1])
			assert.Equal(t, c.expected, booking.Overlaps(a, b))
			assert.Equal(t, c.expected, booking.Overlaps(b, a), "overlap must be symmetric")
		})
	}
}

func TestFindConflicts(t *testing.T) {
	propertyID := uuid.New()
	late := newBooking(t, propertyID, 20, 25, booking.TypeReservation)
	early := newBooking(t, propertyID, 10, 14, booking.TypeBlocked)
	apart := newBooking(t, propertyID, 27, 29, booking.TypeMaintenance)
	existing := []*booking.Booking{late, apart, early}

	t.Run("開始日順にすべての衝突を返す", func(t *testing.T) {
		got := booking.FindConflicts(existing, period(t, 12, 22), nil)
		require.Len(t, got, 2)
		assert.Equal(t, early.ID(), got[0].ID())
		assert.Equal(t, late.ID(), got[1].ID())
	})

	t.Run("除外IDは無視される", func(t *testing.T) {
		id := late.ID()
		got := booking.FindConflicts(existing, period(t, 21, 23), &id)
		assert.Empty(t, got)
	})

	t.Run("衝突なしは空スライス", func(t *testing.T) {
		got := booking.FindConflicts(existing, period(t, 14, 20), nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestConflictError(t *testing.T) {
	propertyID := uuid.New()
	existing := newBooking(t, propertyID, 20, 25, booking.TypeReservation)
	requested := period(t, 18, 22)

	err := booking.NewConflictError(requested, booking.ToConflicts([]*booking.Booking{existing}))

	assert.True(t, errs.Is(err, errs.ErrConflict))
	var ce *booking.ConflictError
	require.True(t, errs.As(err, &ce))
	require.Len(t, ce.Conflicts, 1)
	assert.Equal(t, existing.ID(), ce.Conflicts[0].BookingID)
	assert.Equal(t, booking.TypeReservation, ce.Conflicts[0].Type)
	assert.Contains(t, err.Error(), "2025-12-18 to 2025-12-22")
	assert.Contains(t, err.Error(), "2025-12-20 to 2025-12-25 (RESERVATION)")

	bare := booking.NewConflictError(requested, nil)
	assert.Contains(t, bare.Error(), "overlap an existing booking")
}

func TestPeriod(t *testing.T) {
	t.Run("開始日なしNG", func(t *testing.T) {
		_, err := booking.NewPeriod(time.Time{}, day(5))
		require.ErrorIs(t, err, booking.ErrMissingDates)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})

	t.Run("開始=終了NG", func(t *testing.T) {
		_, err := booking.NewPeriod(day(5), day(5))
		require.ErrorIs(t, err, booking.ErrInvalidPeriod)
	})

	t.Run("逆転NG", func(t *testing.T) {
		_, err := booking.NewPeriod(day(6), day(5))
		require.ErrorIs(t, err, booking.ErrInvalidPeriod)
	})

	t.Run("UTCに正規化", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		p, err := booking.NewPeriod(time.Date(2025, 12, 15, 9, 0, 0, 0, tokyo), time.Date(2025, 12, 20, 9, 0, 0, 0, tokyo))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, p.Start().Location())
		assert.Equal(t, day(15), p.Start())
		assert.Equal(t, "2025-12-15 to 2025-12-20", p.String())
	})
}
