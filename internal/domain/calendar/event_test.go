//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(d int) time.Time {
	return time.Date(2025, time.December, d, 0, 0, 0, 0, time.UTC)
}

func TestEventNormalize(t *testing.T) {
	t.Run("終日イベントの終了日なしは1日", func(t *testing.T) {
		e, ok := calendar.Event{UID: "a", AllDay: true, Start: date(15)}.Normalize()
		require.True(t, ok)
		assert.Equal(t, date(16), e.End)
	})

	t.Run("時刻付きで終了なしは破棄", func(t *testing.T) {
		_, ok := calendar.Event{UID: "a", Start: date(15)}.Normalize()
		assert.False(t, ok)
	})

	t.Run("UIDなしは破棄", func(t *testing.T) {
		_, ok := calendar.Event{UID: "  ", Start: date(15), End: date(16)}.Normalize()
		assert.False(t, ok)
	})

	t.Run("逆転した期間は破棄", func(t *testing.T) {
		_, ok := calendar.Event{UID: "a", Start: date(16), End: date(15)}.Normalize()
		assert.False(t, ok)
	})

	t.Run("UTCに変換", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*60*60)
		e, ok := calendar.Event{
			UID:   " x@ota ",
			Start: time.Date(2025, 12, 15, 15, 0, 0, 0, jst),
			End:   time.Date(2025, 12, 20, 11, 0, 0, 0, jst),
		}.Normalize()
		require.True(t, ok)
		assert.Equal(t, "x@ota", e.UID)
		assert.Equal(t, time.UTC, e.Start.Location())
		assert.Equal(t, time.Date(2025, 12, 15, 6, 0, 0, 0, time.UTC), e.Start)
	})
}

func TestDayRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{"日付境界はそのまま", date(15), date(20), date(15), date(20)},
		{"端数は切り上げ", date(15).Add(15 * time.Hour), date(20).Add(11 * time.Hour), date(15), date(21)},
		{"同日内は1日", date(15).Add(time.Hour), date(15).Add(2 * time.Hour), date(15), date(16)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, e := calendar.DayRange(c.start, c.end)
			assert.Equal(t, c.wantStart, s)
			assert.Equal(t, c.wantEnd, e)
		})
	}
}

func TestNewSource(t *testing.T) {
	propertyID := uuid.New()

	t.Run("webcalはhttpsに変換", func(t *testing.T) {
		s, err := calendar.NewSource(propertyID, " Airbnb ", "webcal://example.com/feed.ics", true, date(1))
		require.NoError(t, err)
		assert.Equal(t, "Airbnb", s.Name())
		assert.Equal(t, "https://example.com/feed.ics", s.URL())
		assert.True(t, s.Enabled())
	})

	cases := []struct {
		name  string
		url   string
		title string
		errIs error
	}{
		{"空の名前NG", "https://example.com/a.ics", " ", calendar.ErrEmptySourceName},
		{"ftpはNG", "ftp://example.com/a.ics", "x", calendar.ErrInvalidSourceURL},
		{"相対URLはNG", "/a.ics", "x", calendar.ErrInvalidSourceURL},
		{"空URLはNG", "", "x", calendar.ErrInvalidSourceURL},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calendar.NewSource(propertyID, c.title, c.url, true, date(1))
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestBatchResult(t *testing.T) {
	batch := calendar.BatchResult{Results: []calendar.SyncResult{
		{EventsStored: 3},
		{EventsStored: 2, Err: assert.AnError},
		{EventsStored: 1},
	}}
	assert.Equal(t, 1, batch.Failed())
	assert.Equal(t, 6, batch.EventsStored())
	assert.Equal(t, calendar.SyncStatusError, batch.Results[1].Status())
	assert.Equal(t, calendar.SyncStatusSuccess, batch.Results[0].Status())
}
