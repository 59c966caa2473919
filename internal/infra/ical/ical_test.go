//go:build unit

package ical_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"stayhub/internal/infra/ical"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(d int) time.Time {
	return time.Date(2025, time.December, d, 0, 0, 0, 0, time.UTC)
}

func testConfig() config.CalendarConfig {
	return config.NewTestConfig().Calendar
}

func TestEncodeParseRoundTrip(t *testing.T) {
	enc := ical.NewEncoder(testConfig(), clock.NewMockClock(dec(1)))
	bookings := []*queries.BookingView{
		{ID: uuid.New(), StartDate: dec(15), EndDate: dec(20), Type: "RESERVATION"},
		{ID: uuid.New(), StartDate: dec(20), EndDate: dec(22), Type: "BLOCKED"},
		{ID: uuid.New(), StartDate: dec(24), EndDate: dec(25), Type: "MAINTENANCE"},
	}
	doc := queries.BuildCalendarDocument("Sea View; Loft", bookings)

	body, err := enc.Encode(doc)
	require.NoError(t, err)
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "DTSTART;VALUE=DATE:20251215")
	assert.Equal(t, 3, strings.Count(body, "BEGIN:VEVENT"))

	events, err := ical.Parse(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, ev := range events {
		assert.Equal(t, queries.EventUID(bookings[i].ID), ev.UID)
		assert.True(t, ev.AllDay)
		assert.Equal(t, bookings[i].StartDate, ev.Start)
		assert.Equal(t, bookings[i].EndDate, ev.End)
	}
	assert.Equal(t, "Reserved", events[0].Summary)
}

func TestEncodeEmptyCalendar(t *testing.T) {
	enc := ical.NewEncoder(testConfig(), clock.NewMockClock(dec(1)))

	body, err := enc.Encode(queries.CalendarDocument{Name: "Empty"})
	require.NoError(t, err)

	events, err := ical.Parse(strings.NewReader(body))
	require.NoError(t, err)
	assert.Empty(t, events)
}

const otaFeed = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Example OTA//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:one@ota\r\n" +
	"DTSTART;VALUE=DATE:20251215\r\n" +
	"DTEND;VALUE=DATE:20251220\r\n" +
	"SUMMARY:Reserved\\, guest\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:two@ota\r\n" +
	"DTSTART;VALUE=DATE:20251224\r\n" +
	"SUMMARY:Not available\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:three@ota\r\n" +
	"DTSTART:20251226T150000Z\r\n" +
	"DTEND:20251227T110000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"DTSTART;VALUE=DATE:20251228\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseExternalFeed(t *testing.T) {
	events, err := ical.Parse(strings.NewReader(otaFeed))
	require.NoError(t, err)
	require.Len(t, events, 3, "event without UID is skipped")

	assert.Equal(t, "one@ota", events[0].UID)
	assert.Equal(t, "Reserved, guest", events[0].Summary)
	assert.Equal(t, dec(20), events[0].End)

	assert.Equal(t, dec(24), events[1].Start)
	assert.Equal(t, dec(25), events[1].End, "all-day event without DTEND lasts one day")

	assert.False(t, events[2].AllDay)
	assert.Equal(t, dec(26).Add(15*time.Hour), events[2].Start)
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "plain text", body: "this is not a calendar"},
		{name: "empty body", body: ""},
		{name: "whitespace only", body: "\r\n  \r\n"},
		{name: "html error page", body: "<html><body>Service Unavailable</body></html>"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			events, err := ical.Parse(strings.NewReader(c.body))
			require.Error(t, err)
			assert.Nil(t, events)
			assert.True(t, errs.Is(err, ical.ErrMalformedFeed))
		})
	}
}

func TestFeedReader(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/feed.ics":
			w.Header().Set("Content-Type", "text/calendar")
			_, _ = w.Write([]byte(otaFeed))
		case "/empty.ics":
			w.Header().Set("Content-Type", "text/calendar")
		case "/big.ics":
			_, _ = w.Write([]byte(strings.Repeat("X", 64)))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.FeedCacheTTL = time.Minute
	reader := ical.NewFeedReader(cfg)
	defer reader.Close()

	t.Run("取得とキャッシュ", func(t *testing.T) {
		events, err := reader.Read(context.Background(), srv.URL+"/feed.ics")
		require.NoError(t, err)
		assert.Len(t, events, 3)

		_, err = reader.Read(context.Background(), srv.URL+"/feed.ics")
		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("404はunavailable", func(t *testing.T) {
		_, err := reader.Read(context.Background(), srv.URL+"/missing.ics")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUnavailable))
	})

	t.Run("空の200応答はmalformed", func(t *testing.T) {
		events, err := reader.Read(context.Background(), srv.URL+"/empty.ics")
		require.Error(t, err)
		assert.Nil(t, events)
		assert.True(t, errs.Is(err, ical.ErrMalformedFeed))
	})

	t.Run("ループバック宛ては拒否", func(t *testing.T) {
		strict := testConfig()
		strict.AllowPrivateHosts = false
		r := ical.NewFeedReader(strict)
		defer r.Close()

		before := hits.Load()
		_, err := r.Read(context.Background(), srv.URL+"/feed.ics")
		require.ErrorIs(t, err, ical.ErrBlockedHost)
		assert.True(t, errs.Is(err, errs.ErrUnavailable))
		assert.Equal(t, before, hits.Load(), "request must not reach the server")
	})

	t.Run("サイズ超過", func(t *testing.T) {
		small := testConfig()
		small.MaxFeedBytes = 16
		r := ical.NewFeedReader(small)
		defer r.Close()

		_, err := r.Read(context.Background(), srv.URL+"/big.ics")
		require.ErrorIs(t, err, ical.ErrFeedTooLarge)
	})
}
