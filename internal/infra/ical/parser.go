package ical

import (
	"bytes"
	"io"
	"strings"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/pkg/errs"

	ics "github.com/arran4/golang-ical"
)

var ErrMalformedFeed = errs.New("malformed calendar feed")

var beginCalendar = []byte("BEGIN:VCALENDAR")

// Parse reads every VEVENT of an iCalendar document. Events without a usable
// uid or date range are skipped rather than failing the whole feed.
// A body without a VCALENDAR is malformed, so an empty 200 never reads as
// "no events".
func Parse(r io.Reader) ([]calendar.Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read calendar"), ErrMalformedFeed)
	}
	if !bytes.Contains(bytes.ToUpper(data), beginCalendar) {
		return nil, errs.Mark(errs.New("missing BEGIN:VCALENDAR"), ErrMalformedFeed)
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse calendar"), ErrMalformedFeed)
	}

	vevents := cal.Events()
	events := make([]calendar.Event, 0, len(vevents))
	for _, ve := range vevents {
		ev, ok := toEvent(ve)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}

func toEvent(ve *ics.VEvent) (calendar.Event, bool) {
	ev := calendar.Event{UID: ve.Id()}
	if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
		ev.Summary = unescapeText(p.Value)
	}

	start, allDay, ok := readTime(ve, ics.ComponentPropertyDtStart)
	if !ok {
		return calendar.Event{}, false
	}
	ev.Start = start
	ev.AllDay = allDay

	if end, _, ok := readTime(ve, ics.ComponentPropertyDtEnd); ok {
		ev.End = end
	}

	return ev.Normalize()
}

// readTime treats date-only values as UTC midnights so day boundaries do not
// shift with the server's local zone.
func readTime(ve *ics.VEvent, prop ics.ComponentProperty) (time.Time, bool, bool) {
	p := ve.GetProperty(prop)
	if p == nil {
		return time.Time{}, false, false
	}
	if isDateOnly(p) {
		t, err := time.Parse("20060102", strings.TrimSpace(p.Value))
		if err != nil {
			return time.Time{}, false, false
		}
		return t, true, true
	}

	var (
		t   time.Time
		err error
	)
	if prop == ics.ComponentPropertyDtEnd {
		t, err = ve.GetEndAt()
	} else {
		t, err = ve.GetStartAt()
	}
	if err != nil {
		return time.Time{}, false, false
	}
	return t.UTC(), false, true
}

func isDateOnly(p *ics.IANAProperty) bool {
	if vals, ok := p.ICalParameters[string(ics.ParameterValue)]; ok {
		for _, v := range vals {
			if strings.EqualFold(v, string(ics.ValueDataTypeDate)) {
				return true
			}
		}
	}
	v := strings.TrimSpace(p.Value)
	return len(v) == 8 && !strings.ContainsAny(v, "TZ")
}

var textUnescaper = strings.NewReplacer(`\\`, `\`, `\;`, ";", `\,`, ",", `\n`, "\n", `\N`, "\n")

func unescapeText(s string) string {
	return textUnescaper.Replace(s)
}
