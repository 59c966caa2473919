package calendar

import (
	"strings"
	"time"
)

const day = 24 * time.Hour

// Event is one VEVENT read from an external feed.
type Event struct {
	UID     string
	Summary string
	AllDay  bool
	Start   time.Time
	End     time.Time
}

// Normalize fixes up events the way OTA feeds tend to emit them. An all-day
// event without DTEND covers one day; an inverted or empty range is dropped.
func (e Event) Normalize() (Event, bool) {
	e.UID = strings.TrimSpace(e.UID)
	e.Summary = strings.TrimSpace(e.Summary)
	if e.UID == "" || e.Start.IsZero() {
		return Event{}, false
	}
	e.Start = e.Start.UTC()
	if e.End.IsZero() {
		if !e.AllDay {
			return Event{}, false
		}
		e.End = e.Start.Add(day)
	}
	e.End = e.End.UTC()
	if !e.Start.Before(e.End) {
		return Event{}, false
	}
	return e, true
}

// TruncateDay returns the UTC calendar day containing t.
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange truncates [start, end) to whole UTC days. end is rounded up so a
// partial trailing day is still covered, and never collapses onto start.
func DayRange(start, end time.Time) (time.Time, time.Time) {
	s := TruncateDay(start)
	e := TruncateDay(end)
	if e.Before(end.UTC()) {
		e = e.Add(day)
	}
	if !s.Before(e) {
		e = s.Add(day)
	}
	return s, e
}
